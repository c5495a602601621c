package report

import (
	"sort"
	"time"

	"omnibook-admin/internal/domain/model"
)

// SeriesGroup is one line on a revenue chart: a grouping key and one
// cumulative value per label on the shared date axis.
type SeriesGroup struct {
	Key    string    `json:"key"`
	Points []float64 `json:"points"`
}

// RevenueSeries is a chart-ready time series: sorted day labels plus one
// numeric array per group, aligned index-for-index with the labels.
type RevenueSeries struct {
	Labels []time.Time   `json:"labels"`
	Series []SeriesGroup `json:"series"`
}

// BuildRevenueSeries buckets Completed bookings by calendar day and produces
// cumulative revenue per grouping key: each point carries that day's
// contribution plus everything before it, so days without activity inherit
// the running total. Labels are the sorted distinct days that received any
// contribution within the range. keyFn assigns each booking to its series
// (per host, per department, or a constant for a single-line chart).
func BuildRevenueSeries(bookings []model.Booking, keyFn func(model.Booking) string, rng *DateRange, now time.Time) RevenueSeries {
	daily := make(map[string]map[time.Time]float64)
	daySet := make(map[time.Time]bool)

	for _, b := range bookings {
		if b.Status != model.BookingStatusCompleted {
			continue
		}
		date := b.SeriesDate()
		if rng != nil && !rng.Contains(date, now) {
			continue
		}

		key := keyFn(b)
		day := dayKey(date)
		if daily[key] == nil {
			daily[key] = make(map[time.Time]float64)
		}
		daily[key][day] += b.FinalPrice
		daySet[day] = true
	}

	labels := make([]time.Time, 0, len(daySet))
	for day := range daySet {
		labels = append(labels, day)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].Before(labels[j]) })

	keys := make([]string, 0, len(daily))
	for key := range daily {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	series := make([]SeriesGroup, 0, len(keys))
	for _, key := range keys {
		points := make([]float64, len(labels))
		running := 0.0
		for i, day := range labels {
			running += daily[key][day]
			points[i] = running
		}
		series = append(series, SeriesGroup{Key: key, Points: points})
	}

	return RevenueSeries{Labels: labels, Series: series}
}

// TopHostsByRevenue ranks hosts by total Completed revenue across their
// properties and returns the top n host ids, ties broken by ascending id.
// This is the explicit selection step applied before bucketing a per-host
// series, never inside it.
func TopHostsByRevenue(bookings []model.Booking, properties []model.Property, n int) []string {
	hostByProp := make(map[string]string, len(properties))
	for _, p := range properties {
		hostByProp[p.ID] = p.HostID
	}

	totals := make(map[string]float64)
	for _, b := range bookings {
		if b.Status != model.BookingStatusCompleted {
			continue
		}
		hostID := hostByProp[b.PropertyID]
		if hostID == "" {
			continue
		}
		totals[hostID] += b.FinalPrice
	}

	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if totals[ids[i]] != totals[ids[j]] {
			return totals[ids[i]] > totals[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if n > 0 && len(ids) > n {
		ids = ids[:n]
	}
	return ids
}

// HostKeyFn builds a grouping function that assigns each booking to the host
// owning its property, for per-host revenue charts. Unresolved property
// references group under "Unknown".
func HostKeyFn(properties []model.Property) func(model.Booking) string {
	hostByProp := make(map[string]string, len(properties))
	for _, p := range properties {
		hostByProp[p.ID] = p.HostID
	}
	return func(b model.Booking) string {
		if hostID := hostByProp[b.PropertyID]; hostID != "" {
			return hostID
		}
		return string(model.DepartmentUnknown)
	}
}
