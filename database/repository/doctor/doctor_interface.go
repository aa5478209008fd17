package doctorRepo

import "clinicport/models"

// DoctorRepository defines persistence operations for the admin-managed
// doctor set, keyed by email for deletion.
type DoctorRepository interface {
	Create(doc *models.Doctor) error
	GetAll() ([]models.Doctor, error)
	DeleteByEmail(email string) error
}
