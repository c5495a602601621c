package report

import (
	"testing"
	"time"

	"omnibook-admin/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestNormalizeBookingPrefersCamelCase(t *testing.T) {
	raw := map[string]interface{}{
		"id":          "b1",
		"department":  "Hotel",
		"userId":      "u1",
		"user_id":     "legacy-user",
		"userName":    "Priya Shah",
		"propertyId":  "p1",
		"finalPrice":  150.0,
		"final_price": 999.0,
		"status":      "Confirmed",
		"checkInDate": "2024-06-20",
	}

	b := NormalizeBooking(raw, testNow)

	assert.Equal(t, "u1", b.UserID)
	assert.Equal(t, 150.0, b.FinalPrice)
	assert.Equal(t, model.DepartmentHotel, b.Department)
	assert.Equal(t, model.BookingStatusConfirmed, b.Status)
	assert.Equal(t, time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), b.CheckInDate)
}

func TestNormalizeBookingSnakeCaseFallback(t *testing.T) {
	raw := map[string]interface{}{
		"_id":             "b2",
		"department":      "Cab",
		"user_id":         "u2",
		"user_name":       "Arun Kumar",
		"property_id":     "p2",
		"final_price":     75,
		"total_price":     "80.5",
		"status":          "Completed",
		"pickup_location": "Airport",
	}

	b := NormalizeBooking(raw, testNow)

	assert.Equal(t, "b2", b.ID)
	assert.Equal(t, "u2", b.UserID)
	assert.Equal(t, "Arun Kumar", b.UserName)
	assert.Equal(t, 75.0, b.FinalPrice)
	assert.Equal(t, 80.5, b.TotalPrice)
	assert.Equal(t, "Airport", b.PickupLocation)
}

func TestNormalizeBookingTypedDefaults(t *testing.T) {
	b := NormalizeBooking(map[string]interface{}{}, testNow)

	assert.Equal(t, "", b.ID)
	assert.Equal(t, "N/A", b.UserName)
	assert.Equal(t, "N/A", b.PropertyName)
	assert.Equal(t, 0.0, b.FinalPrice)
	assert.Equal(t, 0.0, b.TotalPrice)
	assert.Equal(t, testNow, b.CreatedAt)
	assert.Equal(t, model.DepartmentUnknown, b.Department)
	assert.Equal(t, model.BookingStatusPending, b.Status)
}

func TestNormalizeBookingNeverPanicsOnGarbage(t *testing.T) {
	raw := map[string]interface{}{
		"id":          []string{"not", "a", "string"},
		"finalPrice":  "not-a-number",
		"checkInDate": 42,
		"department":  "Cinema",
		"status":      "Teleported",
	}

	assert.NotPanics(t, func() {
		b := NormalizeBooking(raw, testNow)
		assert.Equal(t, 0.0, b.FinalPrice)
		assert.Equal(t, model.DepartmentUnknown, b.Department)
		assert.Equal(t, model.BookingStatusPending, b.Status)
		assert.True(t, b.CheckInDate.IsZero())
	})
}

func TestNormalizeBookingMongoTypes(t *testing.T) {
	oid := primitive.NewObjectID()
	created := primitive.NewDateTimeFromTime(time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC))

	b := NormalizeBooking(map[string]interface{}{
		"_id":         oid,
		"created_at":  created,
		"final_price": int64(320),
	}, testNow)

	assert.Equal(t, oid.Hex(), b.ID)
	assert.Equal(t, created.Time(), b.CreatedAt)
	assert.Equal(t, 320.0, b.FinalPrice)
}

func TestNormalizeBookingsWarnsOnce(t *testing.T) {
	raws := []map[string]interface{}{
		{"id": "ok", "department": "Salon", "propertyId": "p1", "status": "Pending"},
		{"department": "Hotel"},
		{"id": "no-prop", "department": "Hotel"},
	}

	bookings, warnings := NormalizeBookings(raws, testNow)

	assert.Len(t, bookings, 3)
	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "no id")
	assert.Contains(t, warnings[1], "no property reference")
}

func TestNormalizeBookingDeterministic(t *testing.T) {
	raw := map[string]interface{}{
		"id": "b9", "department": "Hospital", "appointment_date": "2024-03-01",
	}

	first := NormalizeBooking(raw, testNow)
	second := NormalizeBooking(raw, testNow)

	assert.Equal(t, first, second)
}
