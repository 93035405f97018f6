package api

import (
	"net/http"

	"flightdesk/internal/service/admins"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	service admins.AdminUseCase
}

type createAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAdminHandler(service admins.AdminUseCase) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/admins", h.list)
	router.POST("/admins", h.create)
	router.DELETE("/admins/:id", h.delete)
	router.POST("/admin/login", h.login)
}

func (h *AdminHandler) list(c *gin.Context) {
	admins, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Admin")
		return
	}
	c.JSON(http.StatusOK, admins)
}

func (h *AdminHandler) create(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	admin, err := h.service.Create(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Admin")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin created successfully",
		"adminId": admin.ID,
	})
}

func (h *AdminHandler) delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Admin")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Admin deleted successfully",
		"deletedId": id,
	})
}

func (h *AdminHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	admin, token, err := h.service.Login(c.Request.Context(), req.Email, req.PasswordHash)
	if err != nil {
		respondError(c, err, "Admin")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Admin login successful",
		"admin":   admin,
		"token":   token,
	})
}
