package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/middleware"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/storage"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

type AdHandler struct {
	*BaseHandler
	adService services.AdService
	store     storage.Storage
}

func NewAdHandler(base *BaseHandler, adService services.AdService, store storage.Storage) *AdHandler {
	return &AdHandler{BaseHandler: base, adService: adService, store: store}
}

func (h *AdHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ads := rg.Group("/ads")
	ads.Use(middleware.AuthMiddleware())
	{
		ads.POST("", middleware.RequireRoles(models.UserRoleClient), h.Create)
		ads.GET("/client", middleware.RequireRoles(models.UserRoleClient), h.ListForClient)
		ads.GET("/talent", middleware.RequireRoles(models.UserRoleTalent), h.ListForTalent)
		ads.GET("/arcon", middleware.RequireRoles(models.UserRoleArcon, models.UserRoleAdmin, models.UserRoleSuperadmin), h.ListForArcon)
		ads.GET("/all", middleware.RequireStaff(), h.ListAll)
		ads.GET("/:id", h.GetByID)
		ads.POST("/arcon-review", middleware.RequireRoles(models.UserRoleArcon, models.UserRoleAdmin, models.UserRoleSuperadmin), h.ArconReview)
		ads.GET("/:id/documents/:type", middleware.RequireRoles(models.UserRoleArcon, models.UserRoleAdmin, models.UserRoleSuperadmin), h.GetDocuments)
	}
}

func (h *AdHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAdRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	media, err := saveFormFiles(c, h.store, "adMedia", "ads/media")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	ad, err := h.adService.Create(userID, &req, media)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondDataMessage(c, http.StatusCreated, ad, "Ad submitted for regulatory review")
}

func (h *AdHandler) ListForClient(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.AdListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	ads, pagination, err := h.adService.ListForClient(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondPage(c, ads, pagination)
}

func (h *AdHandler) ListForTalent(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.AdListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	ads, pagination, err := h.adService.ListForTalent(userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondPage(c, ads, pagination)
}

func (h *AdHandler) ListForArcon(c *gin.Context) {
	var query dto.AdListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	ads, pagination, err := h.adService.ListForArcon(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondPage(c, ads, pagination)
}

func (h *AdHandler) ListAll(c *gin.Context) {
	var query dto.AdListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	ads, stats, pagination, err := h.adService.ListAll(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       ads,
		"stats":      stats,
		"pagination": pagination,
	})
}

func (h *AdHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	ad, err := h.adService.GetByID(c.Param("id"), userID, middleware.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, ad)
}

func (h *AdHandler) ArconReview(c *gin.Context) {
	var req dto.ArconReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ad, err := h.adService.Review(&req, middleware.GetUserEmail(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, ad)
}

func (h *AdHandler) GetDocuments(c *gin.Context) {
	docs, err := h.adService.GetDocuments(c.Param("id"), c.Param("type"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, docs)
}
