package doctor

import (
	doctorRepo "clinicport/database/repository/doctor"
	"clinicport/models"
)

// DoctorService manages the admin-facing doctor roster.
type DoctorService interface {
	AddDoctor(d *models.Doctor) error
	GetAllDoctors() ([]models.Doctor, error)
	RemoveDoctor(email string) error
}

// DefaultDoctorService implements DoctorService over the doctor repository.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) AddDoctor(d *models.Doctor) error {
	return s.Repo.Create(d)
}

func (s *DefaultDoctorService) GetAllDoctors() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

func (s *DefaultDoctorService) RemoveDoctor(email string) error {
	return s.Repo.DeleteByEmail(email)
}
