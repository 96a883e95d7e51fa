package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/middleware"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{BaseHandler: base, contactService: contactService}
}

func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contacts", h.Create)

	staff := rg.Group("/contacts")
	staff.Use(middleware.AuthMiddleware(), middleware.RequireStaff())
	{
		staff.GET("", h.List)
		staff.GET("/:id", h.GetByID)
		staff.PUT("/:id/status", h.UpdateStatus)
		staff.POST("/:id/notes", h.AddNote)
		staff.POST("/:id/respond", h.Respond)
	}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondDataMessage(c, http.StatusCreated, contact, "Message received. We will get back to you shortly.")
}

func (h *ContactHandler) List(c *gin.Context) {
	var query dto.ContactListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	contacts, pagination, err := h.contactService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondPage(c, contacts, pagination)
}

func (h *ContactHandler) GetByID(c *gin.Context) {
	contact, err := h.contactService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, contact)
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateContactStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.UpdateStatus(c.Param("id"), &req, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, contact)
}

func (h *ContactHandler) AddNote(c *gin.Context) {
	var req dto.AddContactNoteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.AddNote(c.Param("id"), &req, middleware.GetUserEmail(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, contact)
}

func (h *ContactHandler) Respond(c *gin.Context) {
	var req dto.RespondToContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.Respond(c.Param("id"), &req, middleware.GetUserEmail(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RespondData(c, http.StatusOK, contact)
}
