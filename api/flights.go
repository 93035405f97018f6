package api

import (
	"net/http"

	"flightdesk/internal/domain"
	"flightdesk/internal/service/flights"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Flight")
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Flight")
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	var flight domain.Flight
	if err := c.ShouldBindJSON(&flight); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid flight data"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &flight)
	if err != nil {
		respondError(c, err, "Flight")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Flight created successfully",
		"flight":  created,
	})
}

func (h *FlightHandler) update(c *gin.Context) {
	var update domain.FlightUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid flight data"})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err, "Flight")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Flight updated successfully",
		"flight":  updated,
	})
}

func (h *FlightHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Flight")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Flight deleted successfully",
		"deletedCount": 1,
	})
}
