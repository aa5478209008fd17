package availability

import (
	"testing"

	"clinicport/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRemovesClaimedSlots(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: []string{"9am", "10am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "2021-01-01", Slot: "9am"},
	}

	got := Compute(services, bookings)

	require.Len(t, got, 1)
	assert.Equal(t, "Cleaning", got[0].Name)
	assert.Equal(t, []string{"10am"}, got[0].Slots)
}

func TestComputeNeverReturnsClaimedSlot(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}},
		{Name: "Whitening", Slots: []string{"9am", "10am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "9am"},
		{Treatment: "Cleaning", Slot: "11am"},
		{Treatment: "Whitening", Slot: "10am"},
	}

	got := Compute(services, bookings)

	claimed := make(map[string]map[string]bool)
	for _, b := range bookings {
		if claimed[b.Treatment] == nil {
			claimed[b.Treatment] = make(map[string]bool)
		}
		claimed[b.Treatment][b.Slot] = true
	}
	for _, svc := range got {
		for _, slot := range svc.Slots {
			assert.False(t, claimed[svc.Name][slot],
				"service %s still offers claimed slot %s", svc.Name, slot)
		}
	}
}

func TestComputePreservesOrderAndOtherFields(t *testing.T) {
	services := []models.Service{
		{ID: "svc-1", Name: "Cleaning", Price: 50, Slots: []string{"8am", "9am", "10am", "11am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "9am"},
	}

	got := Compute(services, bookings)

	require.Len(t, got, 1)
	assert.Equal(t, "svc-1", got[0].ID)
	assert.Equal(t, 50.0, got[0].Price)
	assert.Equal(t, []string{"8am", "10am", "11am"}, got[0].Slots)
}

func TestComputeIgnoresUnknownTreatment(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: []string{"9am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Nonexistent", Slot: "9am"},
	}

	got := Compute(services, bookings)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"9am"}, got[0].Slots)
}

func TestComputeExactStringMatchOnly(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: []string{"9am", "9AM"}},
	}
	bookings := []models.Booking{
		{Treatment: "cleaning", Slot: "9am"}, // treatment case differs
		{Treatment: "Cleaning", Slot: "9AM"},
	}

	got := Compute(services, bookings)

	assert.Equal(t, []string{"9am"}, got[0].Slots)
}

func TestComputeEmptyBookings(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: []string{"9am", "10am"}},
		{Name: "Whitening", Slots: nil},
	}

	got := Compute(services, nil)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"9am", "10am"}, got[0].Slots)
	assert.Empty(t, got[1].Slots)
}

func TestComputeIsPureAndIdempotent(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: []string{"9am", "10am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "9am"},
	}

	first := Compute(services, bookings)
	second := Compute(services, bookings)

	assert.Equal(t, first, second)
	// Inputs stay untouched.
	assert.Equal(t, []string{"9am", "10am"}, services[0].Slots)
	assert.Equal(t, "9am", bookings[0].Slot)
}
