package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/middleware"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, paymentService: paymentService}
}

func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		// Gateway redirects land here without an Authorization header.
		payments.GET("/verify/:reference", h.Verify)
	}

	authed := rg.Group("/payments")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/initialize", middleware.RequireRoles(models.UserRoleClient), h.Initialize)
		authed.GET("/client", middleware.RequireRoles(models.UserRoleClient), h.ListForClient)
		authed.GET("/all", middleware.RequireStaff(), h.ListAll)
		authed.GET("/:id", h.GetByID)
		authed.POST("/refund", middleware.RequireStaff(), h.Refund)
	}
}

func (h *PaymentHandler) Initialize(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.InitializePaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.paymentService.Initialize(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusCreated, resp)
}

func (h *PaymentHandler) Verify(c *gin.Context) {
	payment, err := h.paymentService.Verify(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, payment)
}

func (h *PaymentHandler) ListForClient(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.PaymentListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	payments, summary, pagination, err := h.paymentService.ListForClient(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       payments,
		"summary":    summary,
		"pagination": pagination,
	})
}

func (h *PaymentHandler) ListAll(c *gin.Context) {
	var query dto.PaymentListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	payments, summary, pagination, err := h.paymentService.ListAll(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       payments,
		"summary":    summary,
		"pagination": pagination,
	})
}

func (h *PaymentHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetByID(c.Param("id"), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, payment)
}

func (h *PaymentHandler) Refund(c *gin.Context) {
	var req dto.RefundPaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Refund(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondDataMessage(c, http.StatusOK, payment, "Payment refunded")
}
