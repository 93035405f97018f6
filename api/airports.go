package api

import (
	"net/http"

	"flightdesk/internal/domain"
	"flightdesk/internal/service/airports"

	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service airports.AirportUseCase
}

// iataResponse is the flattened record shape the admin screen expects:
// message plus the record fields at the top level.
type iataResponse struct {
	Message     string `json:"message"`
	ID          string `json:"_id"`
	IataCode    string `json:"iataCode"`
	AirportName string `json:"airportName"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

func NewAirportHandler(service airports.AirportUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *AirportHandler) list(c *gin.Context) {
	codes, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "IATA code")
		return
	}
	c.JSON(http.StatusOK, codes)
}

func (h *AirportHandler) get(c *gin.Context) {
	code, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "IATA code")
		return
	}
	c.JSON(http.StatusOK, code)
}

func (h *AirportHandler) create(c *gin.Context) {
	var code domain.IATACode
	if err := c.ShouldBindJSON(&code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &code)
	if err != nil {
		respondError(c, err, "IATA code")
		return
	}
	c.JSON(http.StatusCreated, iataResponse{
		Message:     "IATA code created successfully",
		ID:          created.ID,
		IataCode:    created.IataCode,
		AirportName: created.AirportName,
		City:        created.City,
		Country:     created.Country,
	})
}

func (h *AirportHandler) update(c *gin.Context) {
	var code domain.IATACode
	if err := c.ShouldBindJSON(&code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &code)
	if err != nil {
		respondError(c, err, "IATA code")
		return
	}
	c.JSON(http.StatusOK, iataResponse{
		Message:     "IATA code updated successfully",
		ID:          updated.ID,
		IataCode:    updated.IataCode,
		AirportName: updated.AirportName,
		City:        updated.City,
		Country:     updated.Country,
	})
}

func (h *AirportHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "IATA code")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "IATA code deleted successfully"})
}
