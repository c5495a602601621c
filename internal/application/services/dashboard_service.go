package services

import (
	"context"
	"fmt"
	"time"

	"omnibook-admin/internal/application/report"
	"omnibook-admin/internal/domain/repository"
)

// DashboardService recomputes the admin dashboard from the current data
// snapshot on every request. It holds no derived state; a refresh after an
// upstream change always reflects that change.
type DashboardService struct {
	bookingRepo  repository.BookingRepository
	propertyRepo repository.PropertyRepository
	hostRepo     repository.HostRepository
	userRepo     repository.UserRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	bookingRepo repository.BookingRepository,
	propertyRepo repository.PropertyRepository,
	hostRepo repository.HostRepository,
	userRepo repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		hostRepo:     hostRepo,
		userRepo:     userRepo,
	}
}

// Overview is the full dashboard payload: platform totals, one stat block per
// department, and the top-properties ranking.
type Overview struct {
	TotalBookings  int                        `json:"total_bookings"`
	TotalHosts     int                        `json:"total_hosts"`
	TotalUsers     int                        `json:"total_users"`
	TotalRevenue   float64                    `json:"total_revenue"`
	Departments    []report.DepartmentSummary `json:"departments"`
	TopProperties  []report.TopPropertyEntry  `json:"top_properties"`
	GeneratedAt    time.Time                  `json:"generated_at"`
	AppliedFilters report.BookingFilter       `json:"-"`
}

const topPropertiesLimit = 5

// GetOverview builds the dashboard for the given filter. The returned warning
// list carries normalization notes from the booking snapshot; a non-empty
// list never blocks the response.
func (s *DashboardService) GetOverview(ctx context.Context, filter report.BookingFilter, now time.Time) (*Overview, []string, error) {
	bookings, warnings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	properties, err := s.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load properties: %w", err)
	}
	hosts, err := s.hostRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load hosts: %w", err)
	}
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load users: %w", err)
	}

	filtered := report.FilterBookings(bookings, filter, now)
	summaries := report.SummarizeByDepartment(filtered, properties, hosts)

	totalRevenue := 0.0
	for _, dept := range summaries {
		totalRevenue += dept.Revenue
	}

	overview := &Overview{
		TotalBookings:  len(filtered),
		TotalHosts:     len(hosts),
		TotalUsers:     len(users),
		TotalRevenue:   totalRevenue,
		Departments:    summaries,
		TopProperties:  report.TopProperties(filtered, properties, topPropertiesLimit),
		GeneratedAt:    now,
		AppliedFilters: filter,
	}
	return overview, warnings, nil
}

// GetRevenueSeries builds the cumulative per-host revenue chart for the top n
// hosts by total revenue. Selection happens before bucketing: first the top
// hosts are picked over the whole filtered set, then only their bookings feed
// the series.
func (s *DashboardService) GetRevenueSeries(ctx context.Context, rng *report.DateRange, topN int, now time.Time) (*report.RevenueSeries, []string, error) {
	bookings, warnings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	properties, err := s.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load properties: %w", err)
	}

	topHosts := report.TopHostsByRevenue(bookings, properties, topN)
	inTop := make(map[string]bool, len(topHosts))
	for _, id := range topHosts {
		inTop[id] = true
	}

	keyFn := report.HostKeyFn(properties)
	selected := bookings[:0:0]
	for _, b := range bookings {
		if inTop[keyFn(b)] {
			selected = append(selected, b)
		}
	}

	series := report.BuildRevenueSeries(selected, keyFn, rng, now)
	return &series, warnings, nil
}

// GetTopProperties returns the top-n properties ranking over the filtered
// booking set.
func (s *DashboardService) GetTopProperties(ctx context.Context, filter report.BookingFilter, n int, now time.Time) ([]report.TopPropertyEntry, []string, error) {
	bookings, warnings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	properties, err := s.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load properties: %w", err)
	}

	filtered := report.FilterBookings(bookings, filter, now)
	return report.TopProperties(filtered, properties, n), warnings, nil
}
