package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"omnibook-admin/internal/application/report"
	"omnibook-admin/internal/domain/model"
	"omnibook-admin/internal/domain/repository"
)

// ExportService renders the filtered booking table as a downloadable CSV.
// An empty result set still produces a valid file with the header row, so a
// filtered-to-nothing export is a "no data" artifact rather than an error.
type ExportService struct {
	bookingRepo repository.BookingRepository
}

// NewExportService creates a new export service
func NewExportService(bookingRepo repository.BookingRepository) *ExportService {
	return &ExportService{bookingRepo: bookingRepo}
}

var bookingExportColumns = []report.Column{
	{Header: "Booking ID", Field: "id"},
	{Header: "Department", Field: "department"},
	{Header: "Customer", Field: "customer"},
	{Header: "Property", Field: "property"},
	{Header: "Status", Field: "status"},
	{Header: "Date", Field: "date"},
	{Header: "Total Price", Field: "total_price", Currency: true},
	{Header: "Final Price", Field: "final_price", Currency: true},
	{Header: "Coupon", Field: "coupon"},
}

// FormatINR renders an amount with the platform currency symbol.
func FormatINR(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// ExportBookingsCSV writes the filtered bookings to w as CSV and returns the
// normalization warnings gathered while loading the snapshot.
func (s *ExportService) ExportBookingsCSV(ctx context.Context, w io.Writer, filter report.BookingFilter, now time.Time) ([]string, error) {
	bookings, warnings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	filtered := report.FilterBookings(bookings, filter, now)

	records := make([]map[string]interface{}, 0, len(filtered))
	for _, b := range filtered {
		records = append(records, bookingExportRecord(b))
	}

	rows := report.ToFlatRows(records, bookingExportColumns, FormatINR)
	if err := report.WriteCSV(w, bookingExportColumns, rows); err != nil {
		return nil, fmt.Errorf("failed to write export: %w", err)
	}
	return warnings, nil
}

func bookingExportRecord(b model.Booking) map[string]interface{} {
	record := map[string]interface{}{
		"id":          b.ID,
		"department":  string(b.Department),
		"customer":    b.UserName,
		"property":    b.PropertyName,
		"status":      string(b.Status),
		"total_price": b.TotalPrice,
		"final_price": b.FinalPrice,
	}
	if date := b.EffectiveDate(); !date.IsZero() {
		record["date"] = date
	}
	if b.CouponCode != "" {
		record["coupon"] = b.CouponCode
	}
	return record
}
