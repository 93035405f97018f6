package api

import (
	"net/http"

	"flightdesk/internal/repository"

	"github.com/gin-gonic/gin"
)

// StateHandler serves the read-only state list for the signup address
// autocompletion. Thin enough that it talks to the repository directly.
type StateHandler struct {
	repo repository.StateRepository
}

func NewStateHandler(repo repository.StateRepository) *StateHandler {
	return &StateHandler{repo: repo}
}

func (h *StateHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
}

func (h *StateHandler) list(c *gin.Context) {
	states, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "State")
		return
	}
	c.JSON(http.StatusOK, states)
}
