package bookingRepo

import "clinicport/models"

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByPatient(patient string) ([]models.Booking, error)
	GetByDate(date string) ([]models.Booking, error)
	// FindExisting returns the booking matching the exact
	// (treatment, date, patient) triple, or (nil, nil) when none exists.
	FindExisting(treatment, date, patient string) (*models.Booking, error)
}
