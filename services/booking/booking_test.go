package booking

import (
	"errors"
	"testing"

	"clinicport/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings  []models.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	if b.ID == "" {
		b.ID = "generated-id"
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeBookingRepo) GetByPatient(patient string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindExisting(treatment, date, patient string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.Treatment == treatment && b.Date == date && b.Patient == patient {
			return &b, nil
		}
	}
	return nil, nil
}

func TestCreateBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	b := &models.Booking{Treatment: "Cleaning", Date: "2021-01-01", Patient: "a@x.com", Slot: "9am"}
	stored, created, err := svc.CreateBooking(b)

	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, stored.ID)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBookingDuplicateReturnsFirst(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	first := &models.Booking{Treatment: "Cleaning", Date: "2021-01-01", Patient: "a@x.com", Slot: "9am"}
	_, created, err := svc.CreateBooking(first)
	require.NoError(t, err)
	require.True(t, created)

	second := &models.Booking{Treatment: "Cleaning", Date: "2021-01-01", Patient: "a@x.com", Slot: "10am"}
	stored, created, err := svc.CreateBooking(second)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "9am", stored.Slot, "duplicate must return the first booking unchanged")
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBookingDifferentDateIsNotDuplicate(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	_, created, err := svc.CreateBooking(&models.Booking{Treatment: "Cleaning", Date: "2021-01-01", Patient: "a@x.com", Slot: "9am"})
	require.NoError(t, err)
	require.True(t, created)

	_, created, err = svc.CreateBooking(&models.Booking{Treatment: "Cleaning", Date: "2021-01-02", Patient: "a@x.com", Slot: "9am"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, repo.bookings, 2)
}

func TestCreateBookingInsertError(t *testing.T) {
	repo := &fakeBookingRepo{createErr: errors.New("store down")}
	svc := &DefaultBookingService{Repo: repo}

	_, _, err := svc.CreateBooking(&models.Booking{Treatment: "Cleaning", Date: "2021-01-01", Patient: "a@x.com", Slot: "9am"})
	assert.Error(t, err)
}
