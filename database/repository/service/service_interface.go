package serviceRepo

import "clinicport/models"

// ServiceRepository defines persistence operations for clinic services.
type ServiceRepository interface {
	GetAll() ([]models.Service, error)
	GetAllNames() ([]models.ServiceName, error)
	Create(svc *models.Service) error
}
