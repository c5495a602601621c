package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"omnibook-admin/internal/application/report"
	"omnibook-admin/internal/domain/model"
)

// parseBookingFilter reads the shared filter query parameters:
// ?department=Hotel&status=Completed&range=ThisWeek&start=2024-06-01&end=2024-06-30&search=priya
func parseBookingFilter(r *http.Request) (report.BookingFilter, error) {
	q := r.URL.Query()
	var filter report.BookingFilter

	if dept := q.Get("department"); dept != "" {
		d := model.Department(dept)
		if !d.IsValid() {
			return filter, fmt.Errorf("unknown department %q", dept)
		}
		filter.Department = d
	}

	if status := q.Get("status"); status != "" {
		s := model.BookingStatus(status)
		if !s.IsValid() {
			return filter, fmt.Errorf("unknown status %q", status)
		}
		filter.Status = s
	}

	rng, err := parseDateRange(r)
	if err != nil {
		return filter, err
	}
	filter.Range = rng

	filter.SearchTerm = q.Get("search")
	return filter, nil
}

// parseDateRange reads the range preset or an explicit start/end pair.
// Returns nil when no constraint was requested.
func parseDateRange(r *http.Request) (*report.DateRange, error) {
	q := r.URL.Query()
	preset := q.Get("range")
	startStr := q.Get("start")
	endStr := q.Get("end")

	if preset == "" && startStr == "" && endStr == "" {
		return nil, nil
	}

	if startStr != "" || endStr != "" {
		rng := &report.DateRange{Preset: report.RangeCustom}
		if startStr != "" {
			start, err := time.Parse("2006-01-02", startStr)
			if err != nil {
				return nil, fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", startStr)
			}
			rng.Start = start
		}
		if endStr != "" {
			end, err := time.Parse("2006-01-02", endStr)
			if err != nil {
				return nil, fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", endStr)
			}
			// The end day is inclusive in the query string, the engine
			// works with half-open intervals.
			rng.End = end.AddDate(0, 0, 1)
		}
		return rng, nil
	}

	switch strings.ToLower(preset) {
	case "today":
		return &report.DateRange{Preset: report.RangeToday}, nil
	case "thisweek", "week":
		return &report.DateRange{Preset: report.RangeThisWeek}, nil
	case "thismonth", "month":
		return &report.DateRange{Preset: report.RangeThisMonth}, nil
	case "alltime", "all":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown range preset %q", preset)
	}
}

// parseIntParam reads an integer query parameter with a default.
func parseIntParam(r *http.Request, name string, fallback int) int {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
