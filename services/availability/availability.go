package availability

import (
	"fmt"

	bookingRepo "clinicport/database/repository/booking"
	serviceRepo "clinicport/database/repository/service"
	"clinicport/models"
)

// Compute returns the services with their slot lists reduced to the slots not
// yet claimed by a booking for the same treatment. Bookings whose treatment
// matches no service are ignored; slot labels are compared by exact string
// equality. The inputs are not mutated.
func Compute(services []models.Service, bookingsForDate []models.Booking) []models.Service {
	claimed := make(map[string]map[string]bool, len(bookingsForDate))
	for _, b := range bookingsForDate {
		if claimed[b.Treatment] == nil {
			claimed[b.Treatment] = make(map[string]bool)
		}
		claimed[b.Treatment][b.Slot] = true
	}

	out := make([]models.Service, len(services))
	for i, svc := range services {
		taken := claimed[svc.Name]
		remaining := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if !taken[slot] {
				remaining = append(remaining, slot)
			}
		}
		svc.Slots = remaining
		out[i] = svc
	}
	return out
}

// AvailabilityService computes per-service remaining slots for a date.
type AvailabilityService interface {
	AvailableServices(date string) ([]models.Service, error)
}

// DefaultAvailabilityService loads services and the date's bookings and
// applies Compute.
type DefaultAvailabilityService struct {
	ServiceRepo serviceRepo.ServiceRepository
	BookingRepo bookingRepo.BookingRepository
}

// AvailableServices returns all services with booked slots for the given date
// removed.
func (s *DefaultAvailabilityService) AvailableServices(date string) ([]models.Service, error) {
	services, err := s.ServiceRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	bookings, err := s.BookingRepo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}
	return Compute(services, bookings), nil
}
