package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"omnibook-admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeBooking maps a raw wire record onto the canonical Booking type.
// Legacy API versions disagree on field naming, so every field is resolved
// through a fallback chain: camelCase first, snake_case second, a typed
// default last ("N/A" for display strings, 0 for prices, the supplied
// reference time for missing dates). The function is total; malformed input
// degrades to defaults, it never fails.
func NormalizeBooking(raw map[string]interface{}, now time.Time) model.Booking {
	b := model.Booking{
		ID:           stringField(raw, "", "id", "_id", "bookingId", "booking_id"),
		UserID:       stringField(raw, "", "userId", "user_id"),
		UserName:     stringField(raw, "N/A", "userName", "user_name", "customerName", "customer_name"),
		PropertyID:   stringField(raw, "", "propertyId", "property_id"),
		PropertyName: stringField(raw, "N/A", "propertyName", "property_name", "companyName", "company_name"),

		AppointmentTime: stringField(raw, "N/A", "appointmentTime", "appointment_time"),
		PickupLocation:  stringField(raw, "N/A", "pickupLocation", "pickup_location"),
		DropoffLocation: stringField(raw, "N/A", "dropoffLocation", "dropoff_location"),

		TotalPrice: numberField(raw, "totalPrice", "total_price"),
		FinalPrice: numberField(raw, "finalPrice", "final_price"),
		CouponCode: stringField(raw, "", "couponCode", "coupon_code"),

		CheckInDate:     timeField(raw, time.Time{}, "checkInDate", "check_in_date"),
		CheckOutDate:    timeField(raw, time.Time{}, "checkOutDate", "check_out_date"),
		AppointmentDate: timeField(raw, time.Time{}, "appointmentDate", "appointment_date"),
		CreatedAt:       timeField(raw, now, "createdAt", "created_at"),
	}

	dept := model.Department(stringField(raw, "", "department", "dept"))
	if dept.IsValid() {
		b.Department = dept
	} else {
		b.Department = model.DepartmentUnknown
	}

	status := model.BookingStatus(stringField(raw, "", "status", "bookingStatus", "booking_status"))
	if status.IsValid() {
		b.Status = status
	} else {
		b.Status = model.BookingStatusPending
	}

	return b
}

// NormalizeBookings normalizes a batch and reports records that needed
// default substitution. Warnings are informational for the caller to log;
// they are never errors and never abort the batch.
func NormalizeBookings(raws []map[string]interface{}, now time.Time) ([]model.Booking, []string) {
	bookings := make([]model.Booking, 0, len(raws))
	var warnings []string

	for i, raw := range raws {
		b := NormalizeBooking(raw, now)
		bookings = append(bookings, b)

		switch {
		case b.ID == "":
			warnings = append(warnings, fmt.Sprintf("booking record %d has no id", i))
		case b.PropertyID == "":
			warnings = append(warnings, fmt.Sprintf("booking %s has no property reference", b.ID))
		case b.Department == model.DepartmentUnknown:
			warnings = append(warnings, fmt.Sprintf("booking %s has unrecognized department", b.ID))
		}
	}

	return bookings, warnings
}

// stringField resolves the first key holding a usable string value. Numeric
// ids are stringified since some legacy records carry them as numbers.
func stringField(raw map[string]interface{}, def string, keys ...string) string {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		case int32:
			return strconv.FormatInt(int64(v), 10)
		case int64:
			return strconv.FormatInt(v, 10)
		case primitive.ObjectID:
			return v.Hex()
		}
	}
	return def
}

// numberField resolves a price field, tolerating every numeric type the
// wire can produce plus numeric strings. Anything else is 0.
func numberField(raw map[string]interface{}, keys ...string) float64 {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case float64:
			return v
		case float32:
			return float64(v)
		case int:
			return float64(v)
		case int32:
			return float64(v)
		case int64:
			return float64(v)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// timeField resolves a date field from the representations seen in the wild:
// native times, Mongo datetimes, and a handful of string formats.
func timeField(raw map[string]interface{}, def time.Time, keys ...string) time.Time {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case time.Time:
			return v
		case primitive.DateTime:
			return v.Time()
		case string:
			if t, ok := parseDateString(v); ok {
				return t
			}
		}
	}
	return def
}

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
