package services

import (
	"context"
	"fmt"
	"time"

	"omnibook-admin/internal/application/report"
	"omnibook-admin/internal/domain/model"
	"omnibook-admin/internal/domain/repository"
	"omnibook-admin/pkg/errors"
)

// BookingService handles the booking management screen: listing with
// filters, status changes and deletion.
type BookingService struct {
	bookingRepo repository.BookingRepository
}

// NewBookingService creates a new booking service
func NewBookingService(bookingRepo repository.BookingRepository) *BookingService {
	return &BookingService{bookingRepo: bookingRepo}
}

// ListBookings returns the bookings matching the filter, newest scheduling
// date first is left to the caller; order here follows the snapshot.
func (s *BookingService) ListBookings(ctx context.Context, filter report.BookingFilter, now time.Time) ([]model.Booking, []string, error) {
	bookings, warnings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	return report.FilterBookings(bookings, filter, now), warnings, nil
}

// GetBooking returns a single booking by id.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, errors.NewValidationError("booking id is required")
	}
	return s.bookingRepo.FindByID(ctx, id)
}

// UpdateStatus applies an admin status change after checking the lifecycle
// rules: terminal bookings stay terminal.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error {
	if id == "" {
		return errors.NewValidationError("booking id is required")
	}

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := booking.CanTransitionTo(status); err != nil {
		return errors.NewValidationError(err.Error())
	}

	return s.bookingRepo.UpdateStatus(ctx, id, status)
}

// DeleteBooking removes a booking record entirely.
func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("booking id is required")
	}
	return s.bookingRepo.Delete(ctx, id)
}
