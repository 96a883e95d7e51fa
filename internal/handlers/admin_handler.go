package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/middleware"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{BaseHandler: base, adminService: adminService}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("/users", middleware.RequireStaff(), h.ListUsers)
		admin.GET("/users/:id", middleware.RequireStaff(), h.GetUser)
		admin.PUT("/users/status", middleware.RequireRoles(models.UserRoleSuperadmin), h.UpdateUserStatus)
		admin.POST("/users/create", middleware.RequireRoles(models.UserRoleSuperadmin), h.CreateStaffUser)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.AdminUsersQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	users, pagination, err := h.adminService.ListUsers(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondPage(c, users, pagination)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.adminService.GetUser(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, user)
}

func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.adminService.UpdateUserStatus(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, user)
}

func (h *AdminHandler) CreateStaffUser(c *gin.Context) {
	var req dto.CreateStaffUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.adminService.CreateStaffUser(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusCreated, user)
}
