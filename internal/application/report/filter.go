package report

import (
	"strings"
	"time"

	"omnibook-admin/internal/domain/model"
)

// BookingFilter narrows a booking snapshot. Zero-valued fields place no
// constraint; the populated ones combine with logical AND.
type BookingFilter struct {
	Department model.Department
	Status     model.BookingStatus
	Range      *DateRange
	SearchTerm string
}

// FilterBookings returns the bookings matching every constraint in f. The
// date window is matched against the booking's primary scheduling date
// (check-in for hotels, appointment date otherwise) on a [start, end) basis,
// resolved relative to now. Search is a case-insensitive substring match
// over user name, property name and booking id. The input slice is never
// mutated.
func FilterBookings(bookings []model.Booking, f BookingFilter, now time.Time) []model.Booking {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	out := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if f.Department != "" && b.Department != f.Department {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.Range != nil && !f.Range.Contains(b.EffectiveDate(), now) {
			continue
		}
		if term != "" && !matchesSearch(b, term) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesSearch(b model.Booking, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(b.UserName), lowerTerm) ||
		strings.Contains(strings.ToLower(b.PropertyName), lowerTerm) ||
		strings.Contains(strings.ToLower(b.ID), lowerTerm)
}
