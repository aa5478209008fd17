package handlers

import (
	"net/http"

	"clinicport/middleware"
	"clinicport/models"
	"clinicport/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and retrieval.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBookingHandler handles POST /booking. A booking that duplicates an
// existing (treatment, date, patient) triple is rejected with a success:false
// payload carrying the first booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		h.Logger.Error("CreateBooking: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, created, err := h.Svc.CreateBooking(&b)
	if err != nil {
		h.Logger.Error("CreateBooking: failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": stored})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": stored})
}

// GetPatientBookingsHandler handles GET /booking?patient=email. The patient
// must match the requester derived from the token.
func (h *BookingHandler) GetPatientBookingsHandler(c *gin.Context) {
	patient := c.Query("patient")
	requester, ok := middleware.Requester(c)
	if !ok || patient != requester {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	bookings, err := h.Svc.GetBookingsByPatient(patient)
	if err != nil {
		h.Logger.Error("GetPatientBookings: failed to fetch bookings",
			zap.String("patient", patient), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByIDHandler handles GET /booking/:id.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Svc.GetBookingByID(id)
	if err != nil {
		h.Logger.Error("GetBookingByID: booking not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}
