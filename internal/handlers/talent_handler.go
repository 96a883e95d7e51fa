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

type TalentHandler struct {
	*BaseHandler
	talentService services.TalentService
	store         storage.Storage
}

func NewTalentHandler(base *BaseHandler, talentService services.TalentService, store storage.Storage) *TalentHandler {
	return &TalentHandler{BaseHandler: base, talentService: talentService, store: store}
}

func (h *TalentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	talents := rg.Group("/talents")
	{
		talents.POST("/submit-anonymous", h.SubmitAnonymous)
		talents.GET("/approved", h.ListApproved)
		talents.GET("/:id", middleware.OptionalAuthMiddleware(), h.GetByID)
	}

	profile := rg.Group("/talents")
	profile.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleTalent))
	{
		profile.POST("/profile", h.UpdateProfile)
		profile.GET("/profile", h.GetOwnProfile)
	}

	review := rg.Group("/talents")
	review.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleArcon, models.UserRoleAdmin, models.UserRoleSuperadmin))
	{
		review.POST("/arcon-approval", h.ArconApproval)
		review.GET("/:id/documents/:type", h.GetDocuments)
	}
}

func (h *TalentHandler) SubmitAnonymous(c *gin.Context) {
	var req dto.SubmitTalentRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	uploads, ok := h.collectUploads(c)
	if !ok {
		return
	}

	talent, err := h.talentService.SubmitAnonymous(&req, uploads)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondDataMessage(c, http.StatusCreated, talent, "Profile submitted. Check your email to set a password.")
}

func (h *TalentHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTalentProfileRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	uploads, ok := h.collectUploads(c)
	if !ok {
		return
	}

	talent, err := h.talentService.UpdateProfile(userID, &req, uploads)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, talent)
}

func (h *TalentHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	talent, err := h.talentService.GetOwnProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, talent)
}

func (h *TalentHandler) ListApproved(c *gin.Context) {
	var query dto.ApprovedTalentsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	talents, pagination, err := h.talentService.ListApproved(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondPage(c, talents, pagination)
}

func (h *TalentHandler) GetByID(c *gin.Context) {
	role := middleware.GetUserRole(c)

	talent, err := h.talentService.GetByID(c.Param("id"), role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, talent)
}

func (h *TalentHandler) ArconApproval(c *gin.Context) {
	var req dto.ArconApprovalRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	talent, err := h.talentService.ReviewApproval(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, talent)
}

func (h *TalentHandler) GetDocuments(c *gin.Context) {
	docs, err := h.talentService.GetDocuments(c.Param("id"), c.Param("type"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, docs)
}

func (h *TalentHandler) collectUploads(c *gin.Context) (*dto.TalentUploads, bool) {
	nin, err := saveFormFile(c, h.store, "nin", "talents/nin")
	if err != nil {
		apperrors.HandleError(c, err)
		return nil, false
	}
	photos, err := saveFormFiles(c, h.store, "photos", "talents/photos")
	if err != nil {
		apperrors.HandleError(c, err)
		return nil, false
	}
	portfolio, err := saveFormFiles(c, h.store, "portfolio", "talents/portfolio")
	if err != nil {
		apperrors.HandleError(c, err)
		return nil, false
	}
	return &dto.TalentUploads{NIN: nin, Photos: photos, Portfolio: portfolio}, true
}
