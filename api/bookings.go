package api

import (
	"net/http"

	"flightdesk/internal/domain"
	"flightdesk/internal/service/booking"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id/status", h.updateStatus)
	router.DELETE("/:id", h.delete)
}

func (h *BookingHandler) list(c *gin.Context) {
	filter := domain.BookingFilter{
		UserID:    c.Query("userId"),
		Status:    domain.BookingStatus(c.Query("status")),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	bookings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Bookings retrieved successfully",
		"bookings": bookings,
	})
}

func (h *BookingHandler) get(c *gin.Context) {
	booking, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking retrieved successfully",
		"booking": booking,
	})
}

func (h *BookingHandler) create(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Required fields are missing"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Booking")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":        "Booking created successfully",
		"bookingId":      created.ID,
		"bookingDetails": created,
	})
}

func (h *BookingHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status. Must be one of: Confirmed, Cancelled, Pending, Completed"})
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		respondError(c, err, "Booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated successfully",
		"booking": updated,
	})
}

func (h *BookingHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
