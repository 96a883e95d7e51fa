package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/middleware"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
)

type RequestHandler struct {
	*BaseHandler
	requestService services.RequestService
}

func NewRequestHandler(base *BaseHandler, requestService services.RequestService) *RequestHandler {
	return &RequestHandler{BaseHandler: base, requestService: requestService}
}

func (h *RequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("", middleware.RequireRoles(models.UserRoleClient), h.Create)
		requests.GET("/client", middleware.RequireRoles(models.UserRoleClient), h.ListForClient)
		requests.GET("/talent", middleware.RequireRoles(models.UserRoleTalent), h.ListForTalent)
		requests.GET("/:id", h.GetByID)
		requests.POST("/:id/respond", middleware.RequireRoles(models.UserRoleTalent), h.Respond)
		requests.DELETE("/:id", middleware.RequireRoles(models.UserRoleClient), h.Cancel)
	}
}

func (h *RequestHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.requestService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusCreated, request)
}

func (h *RequestHandler) ListForClient(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.RequestListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	requests, pagination, err := h.requestService.ListForClient(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondPage(c, requests, pagination)
}

func (h *RequestHandler) ListForTalent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.RequestListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	requests, pagination, err := h.requestService.ListForTalent(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondPage(c, requests, pagination)
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	request, err := h.requestService.GetByID(c.Param("id"), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, request)
}

func (h *RequestHandler) Respond(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RespondToRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.requestService.Respond(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, request)
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.requestService.Cancel(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondMessage(c, http.StatusOK, "Request cancelled")
}
