package services

import (
	"context"
	"testing"
	"time"

	"omnibook-admin/internal/application/report"
	"omnibook-admin/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestListBookingsAppliesFilterAndForwardsWarnings(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []model.Booking{
			{ID: "b1", Department: model.DepartmentHotel, Status: model.BookingStatusCompleted, CreatedAt: testNow},
			{ID: "b2", Department: model.DepartmentCab, Status: model.BookingStatusPending, CreatedAt: testNow},
		},
		warnings: []string{"booking 3: no id"},
	}
	svc := NewBookingService(repo)

	bookings, warnings, err := svc.ListBookings(context.Background(), report.BookingFilter{Department: model.DepartmentHotel}, testNow)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b1", bookings[0].ID)
	assert.Equal(t, []string{"booking 3: no id"}, warnings)
}

func TestUpdateStatusAllowsPendingToConfirmed(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []model.Booking{{ID: "b1", Status: model.BookingStatusPending}},
	}
	svc := NewBookingService(repo)

	err := svc.UpdateStatus(context.Background(), "b1", model.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, repo.statusUpdates["b1"])
}

func TestUpdateStatusRejectsTerminalBooking(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []model.Booking{{ID: "b1", Status: model.BookingStatusCompleted}},
	}
	svc := NewBookingService(repo)

	err := svc.UpdateStatus(context.Background(), "b1", model.BookingStatusCancelled)
	require.Error(t, err)
	assert.Empty(t, repo.statusUpdates, "terminal booking must not be written")
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []model.Booking{{ID: "b1", Status: model.BookingStatusPending}},
	}
	svc := NewBookingService(repo)

	err := svc.UpdateStatus(context.Background(), "b1", model.BookingStatus("Done"))
	require.Error(t, err)
	assert.Empty(t, repo.statusUpdates)
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	svc := NewBookingService(&fakeBookingRepo{})
	err := svc.UpdateStatus(context.Background(), "missing", model.BookingStatusConfirmed)
	require.Error(t, err)
}

func TestDeleteBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewBookingService(repo)

	require.NoError(t, svc.DeleteBooking(context.Background(), "b9"))
	assert.Equal(t, []string{"b9"}, repo.deleted)

	require.Error(t, svc.DeleteBooking(context.Background(), ""))
}
