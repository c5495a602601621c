package model

import (
	"fmt"
	"time"
)

// Department is the service vertical a booking or property belongs to.
type Department string

const (
	DepartmentHotel    Department = "Hotel"
	DepartmentCab      Department = "Cab"
	DepartmentHospital Department = "Hospital"
	DepartmentSalon    Department = "Salon"

	// DepartmentUnknown is the placeholder bucket for bookings whose
	// property reference cannot be resolved.
	DepartmentUnknown Department = "Unknown"
)

// AllDepartments lists the four real verticals in display order.
func AllDepartments() []Department {
	return []Department{DepartmentHotel, DepartmentCab, DepartmentHospital, DepartmentSalon}
}

func (d Department) IsValid() bool {
	switch d {
	case DepartmentHotel, DepartmentCab, DepartmentHospital, DepartmentSalon:
		return true
	}
	return false
}

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending             BookingStatus = "Pending"
	BookingStatusConfirmed           BookingStatus = "Confirmed"
	BookingStatusCompleted           BookingStatus = "Completed"
	BookingStatusCancelled           BookingStatus = "Cancelled"
	BookingStatusCancelledByCustomer BookingStatus = "CancelledByCustomer"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted,
		BookingStatusCancelled, BookingStatusCancelledByCustomer:
		return true
	}
	return false
}

// Booking is the canonical record after normalization. Field naming is fixed
// here; the camelCase/snake_case fallback logic lives only in the report
// package and never leaks past it.
type Booking struct {
	ID           string        `json:"id" bson:"_id"`
	Department   Department    `json:"department" bson:"department"`
	UserID       string        `json:"user_id" bson:"user_id"`
	UserName     string        `json:"user_name" bson:"user_name"`
	PropertyID   string        `json:"property_id" bson:"property_id"`
	PropertyName string        `json:"property_name" bson:"property_name"`
	Status       BookingStatus `json:"status" bson:"status"`

	// Scheduling fields are department-dependent: hotels use check-in/out,
	// the other verticals use a single appointment slot, cabs additionally
	// carry pickup/dropoff locations.
	CheckInDate     time.Time `json:"check_in_date" bson:"check_in_date"`
	CheckOutDate    time.Time `json:"check_out_date" bson:"check_out_date"`
	AppointmentDate time.Time `json:"appointment_date" bson:"appointment_date"`
	AppointmentTime string    `json:"appointment_time" bson:"appointment_time"`
	PickupLocation  string    `json:"pickup_location" bson:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location" bson:"dropoff_location"`

	TotalPrice float64 `json:"total_price" bson:"total_price"`
	FinalPrice float64 `json:"final_price" bson:"final_price"`
	CouponCode string  `json:"coupon_code,omitempty" bson:"coupon_code,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// EffectiveDate is the primary scheduling date used for date-range filters:
// check-in for hotel bookings, the appointment date otherwise. Falls back to
// CreatedAt when the scheduling field is missing.
func (b Booking) EffectiveDate() time.Time {
	if b.Department == DepartmentHotel {
		if !b.CheckInDate.IsZero() {
			return b.CheckInDate
		}
	} else if !b.AppointmentDate.IsZero() {
		return b.AppointmentDate
	}
	return b.CreatedAt
}

// SeriesDate is the date a booking contributes revenue on: CreatedAt
// preferred, the scheduling date otherwise.
func (b Booking) SeriesDate() time.Time {
	if !b.CreatedAt.IsZero() {
		return b.CreatedAt
	}
	return b.EffectiveDate()
}

// CanTransitionTo reports whether an admin status change is allowed.
// Completed and both cancelled states are terminal.
func (b Booking) CanTransitionTo(next BookingStatus) error {
	if !next.IsValid() {
		return fmt.Errorf("unknown status %q", next)
	}
	if b.Status == next {
		return fmt.Errorf("booking is already %s", next)
	}
	switch b.Status {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusCancelledByCustomer:
		return fmt.Errorf("booking in terminal status %s cannot change to %s", b.Status, next)
	}
	return nil
}
