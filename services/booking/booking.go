package booking

import (
	"fmt"

	bookingRepo "clinicport/database/repository/booking"
	"clinicport/models"
)

// BookingService records and retrieves bookings.
type BookingService interface {
	// CreateBooking inserts the booking unless one already exists for the
	// same (treatment, date, patient) triple. It returns the stored booking
	// and whether a new one was created; on a duplicate the first booking is
	// returned unchanged.
	CreateBooking(b *models.Booking) (*models.Booking, bool, error)
	GetBookingByID(id string) (*models.Booking, error)
	GetBookingsByPatient(patient string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService over the booking repository.
//
// The duplicate check is read-then-insert and is not atomic: two concurrent
// requests for the same triple can both pass the check and both insert.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

func (s *DefaultBookingService) CreateBooking(b *models.Booking) (*models.Booking, bool, error) {
	existing, err := s.Repo.FindExisting(b.Treatment, b.Date, b.Patient)
	if err != nil {
		return nil, false, fmt.Errorf("duplicate check failed: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	if err := s.Repo.Create(b); err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *DefaultBookingService) GetBookingByID(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultBookingService) GetBookingsByPatient(patient string) ([]models.Booking, error) {
	return s.Repo.GetByPatient(patient)
}
