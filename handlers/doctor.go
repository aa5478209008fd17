package handlers

import (
	"net/http"

	"clinicport/models"
	"clinicport/services/doctor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the admin-managed doctor roster.
type DoctorHandler struct {
	Svc    doctor.DoctorService
	Logger *zap.Logger
}

func NewDoctorHandler(svc doctor.DoctorService, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Svc: svc, Logger: logger}
}

// AddDoctorHandler handles POST /doctor.
func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		h.Logger.Error("AddDoctor: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Svc.AddDoctor(&d); err != nil {
		h.Logger.Error("AddDoctor: insert failed", zap.String("email", d.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": d})
}

// GetAllDoctorsHandler handles GET /doctor.
func (h *DoctorHandler) GetAllDoctorsHandler(c *gin.Context) {
	doctors, err := h.Svc.GetAllDoctors()
	if err != nil {
		h.Logger.Error("GetAllDoctors: failed to fetch doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// DeleteDoctorHandler handles DELETE /doctor/:email.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	email := c.Param("email")
	if err := h.Svc.RemoveDoctor(email); err != nil {
		h.Logger.Error("DeleteDoctor: delete failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
