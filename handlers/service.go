package handlers

import (
	"net/http"

	serviceRepo "clinicport/database/repository/service"
	"clinicport/models"
	"clinicport/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler serves the clinic service catalog and availability.
type ServiceHandler struct {
	Repo         serviceRepo.ServiceRepository
	Availability availability.AvailabilityService
	Logger       *zap.Logger
}

func NewServiceHandler(repo serviceRepo.ServiceRepository, avail availability.AvailabilityService, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{Repo: repo, Availability: avail, Logger: logger}
}

// ListServicesHandler handles GET /service. With ?fields=name only service
// names are returned.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	if c.Query("fields") == "name" {
		names, err := h.Repo.GetAllNames()
		if err != nil {
			h.Logger.Error("ListServices: failed to fetch service names", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
			return
		}
		c.JSON(http.StatusOK, names)
		return
	}

	services, err := h.Repo.GetAll()
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// AddServiceHandler handles POST /service (admin only).
func (h *ServiceHandler) AddServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		h.Logger.Error("AddService: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Repo.Create(&svc); err != nil {
		h.Logger.Error("AddService: insert failed", zap.String("name", svc.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": svc})
}

// GetAvailableHandler handles GET /available?date=YYYY-MM-DD, returning every
// service with already-booked slots for that date removed.
func (h *ServiceHandler) GetAvailableHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter: date"})
		return
	}

	services, err := h.Availability.AvailableServices(date)
	if err != nil {
		h.Logger.Error("GetAvailable: failed to compute availability",
			zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
		return
	}
	c.JSON(http.StatusOK, services)
}
