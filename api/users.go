package api

import (
	"net/http"

	"flightdesk/internal/service/users"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service users.UserUseCase
}

type loginRequest struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

func NewUserHandler(service users.UserUseCase) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.GET("/users", h.list)
	router.POST("/users", h.create)
	router.DELETE("/users/:id", h.delete)
	router.POST("/login", h.login)
}

func (h *UserHandler) list(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) create(c *gin.Context) {
	var input users.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	user, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"userId":  user.ID,
	})
}

func (h *UserHandler) delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
		"userId":  id,
	})
}

func (h *UserHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.PasswordHash)
	if err != nil {
		respondError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}
