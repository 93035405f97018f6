package api

import (
	"errors"
	"net/http"

	"flightdesk/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the API's status-code taxonomy.
// entity names the record kind for the not-found and duplicate messages;
// storage failures always collapse to one static 500 message.
func respondError(c *gin.Context, err error, entity string) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": entity + " not found"})
	case errors.Is(err, domain.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"message": entity + " already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
