package report

import (
	"testing"
	"time"

	"omnibook-admin/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func sampleBookings() []model.Booking {
	return []model.Booking{
		{
			ID: "1", Department: model.DepartmentHotel, Status: model.BookingStatusConfirmed,
			UserID: "u1", UserName: "Priya Shah", PropertyName: "Sea View Resort",
			CheckInDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "2", Department: model.DepartmentCab, Status: model.BookingStatusPending,
			UserID: "u2", UserName: "Arun Kumar", PropertyName: "City Cabs",
			AppointmentDate: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "3", Department: model.DepartmentHotel, Status: model.BookingStatusConfirmed,
			UserID: "u3", UserName: "Meera Nair", PropertyName: "Hilltop Inn",
			CheckInDate: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "4", Department: model.DepartmentSalon, Status: model.BookingStatusCompleted,
			UserID: "u1", UserName: "Priya Shah", PropertyName: "Glow Studio",
			AppointmentDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestFilterBookingsStatusSubsetAndIdempotent(t *testing.T) {
	bookings := sampleBookings()

	filter := BookingFilter{Status: model.BookingStatusConfirmed}
	once := FilterBookings(bookings, filter, testNow)
	twice := FilterBookings(once, filter, testNow)

	assert.Len(t, once, 2)
	for _, b := range once {
		assert.Equal(t, model.BookingStatusConfirmed, b.Status)
	}
	assert.Equal(t, once, twice)
}

func TestFilterBookingsCombinesWithAND(t *testing.T) {
	out := FilterBookings(sampleBookings(), BookingFilter{
		Department: model.DepartmentHotel,
		Status:     model.BookingStatusConfirmed,
		SearchTerm: "priya",
	}, testNow)

	assert.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)
}

func TestFilterBookingsSearchCaseInsensitive(t *testing.T) {
	hits := FilterBookings(sampleBookings(), BookingFilter{SearchTerm: "PRIYA"}, testNow)
	assert.Len(t, hits, 2)

	misses := FilterBookings(sampleBookings(), BookingFilter{SearchTerm: "zzz"}, testNow)
	assert.Empty(t, misses)
}

func TestFilterBookingsSearchMatchesPropertyAndID(t *testing.T) {
	byProperty := FilterBookings(sampleBookings(), BookingFilter{SearchTerm: "hilltop"}, testNow)
	assert.Len(t, byProperty, 1)
	assert.Equal(t, "3", byProperty[0].ID)

	byID := FilterBookings(sampleBookings(), BookingFilter{SearchTerm: "4"}, testNow)
	assert.Len(t, byID, 1)
	assert.Equal(t, "4", byID[0].ID)
}

func TestFilterBookingsDateRangeToday(t *testing.T) {
	// testNow is 2024-06-15 12:00 UTC; only booking 1 checks in today.
	out := FilterBookings(sampleBookings(), BookingFilter{
		Range: &DateRange{Preset: RangeToday},
	}, testNow)

	assert.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)
}

func TestFilterBookingsDateRangeThisMonth(t *testing.T) {
	out := FilterBookings(sampleBookings(), BookingFilter{
		Range: &DateRange{Preset: RangeThisMonth},
	}, testNow)

	ids := make([]string, 0, len(out))
	for _, b := range out {
		ids = append(ids, b.ID)
	}
	assert.ElementsMatch(t, []string{"1", "2", "4"}, ids)
}

func TestFilterBookingsCustomRangeHalfOpen(t *testing.T) {
	// End boundary is exclusive: a check-in exactly at End must not match.
	out := FilterBookings(sampleBookings(), BookingFilter{
		Range: &DateRange{
			Preset: RangeCustom,
			Start:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			End:    time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}, testNow)

	ids := make([]string, 0, len(out))
	for _, b := range out {
		ids = append(ids, b.ID)
	}
	assert.ElementsMatch(t, []string{"2", "4"}, ids)
}

func TestFilterBookingsEmptyFilterReturnsAll(t *testing.T) {
	bookings := sampleBookings()
	out := FilterBookings(bookings, BookingFilter{}, testNow)
	assert.Equal(t, bookings, out)
}

func TestFilterBookingsDoesNotMutateInput(t *testing.T) {
	bookings := sampleBookings()
	FilterBookings(bookings, BookingFilter{Status: model.BookingStatusPending}, testNow)
	assert.Equal(t, sampleBookings(), bookings)
}

func TestDateRangeBounds(t *testing.T) {
	// 2024-06-15 is a Saturday; the week starts Monday 2024-06-10.
	start, end, ok := DateRange{Preset: RangeThisWeek}.Bounds(testNow)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC), end)

	_, _, ok = DateRange{Preset: RangeAllTime}.Bounds(testNow)
	assert.False(t, ok)

	_, _, ok = DateRange{}.Bounds(testNow)
	assert.False(t, ok)
}
