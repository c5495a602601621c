package report

import (
	"sort"

	"omnibook-admin/internal/domain/model"
)

// DepartmentSummary is the per-vertical stat block shown on the dashboard.
type DepartmentSummary struct {
	Name         string  `json:"name"`
	BookingCount int     `json:"booking_count"`
	HostCount    int     `json:"host_count"`
	UserCount    int     `json:"user_count"`
	Revenue      float64 `json:"revenue"`
}

// TopPropertyEntry is one row of the "Top Properties" ranking.
type TopPropertyEntry struct {
	Property     model.Property `json:"property"`
	BookingCount int            `json:"booking_count"`
}

// SummarizeByDepartment groups bookings by the department of their resolved
// property and derives counts and revenue per vertical. All four departments
// are always present, zero-valued when empty, so the dashboard cards never
// disappear. Bookings whose property reference resolves to nothing are
// retained in an extra "Unknown" bucket, so the sum of bucket counts always
// equals the number of input bookings. Revenue sums FinalPrice over
// Completed bookings only.
func SummarizeByDepartment(bookings []model.Booking, properties []model.Property, hosts []model.Host) []DepartmentSummary {
	propByID := make(map[string]model.Property, len(properties))
	for _, p := range properties {
		propByID[p.ID] = p
	}
	knownHosts := make(map[string]bool, len(hosts))
	for _, h := range hosts {
		knownHosts[h.ID] = true
	}

	type bucket struct {
		bookings int
		hosts    map[string]bool
		users    map[string]bool
		revenue  float64
	}
	buckets := make(map[model.Department]*bucket)
	getBucket := func(d model.Department) *bucket {
		if buckets[d] == nil {
			buckets[d] = &bucket{hosts: make(map[string]bool), users: make(map[string]bool)}
		}
		return buckets[d]
	}
	for _, d := range model.AllDepartments() {
		getBucket(d)
	}

	for _, b := range bookings {
		dept := model.DepartmentUnknown
		prop, resolved := propByID[b.PropertyID]
		if resolved {
			dept = prop.Department
			if !dept.IsValid() {
				dept = model.DepartmentUnknown
			}
		}

		bk := getBucket(dept)
		bk.bookings++
		if b.UserID != "" {
			bk.users[b.UserID] = true
		}
		if resolved && knownHosts[prop.HostID] {
			bk.hosts[prop.HostID] = true
		}
		if b.Status == model.BookingStatusCompleted {
			bk.revenue += b.FinalPrice
		}
	}

	order := model.AllDepartments()
	if unknown, exists := buckets[model.DepartmentUnknown]; exists && unknown.bookings > 0 {
		order = append(order, model.DepartmentUnknown)
	}

	summaries := make([]DepartmentSummary, 0, len(order))
	for _, d := range order {
		bk := getBucket(d)
		summaries = append(summaries, DepartmentSummary{
			Name:         string(d),
			BookingCount: bk.bookings,
			HostCount:    len(bk.hosts),
			UserCount:    len(bk.users),
			Revenue:      bk.revenue,
		})
	}
	return summaries
}

// TopProperties ranks properties by booking count, ties broken by higher
// rating and then ascending id so the ordering is deterministic. Bookings
// that resolve to no property do not contribute.
func TopProperties(bookings []model.Booking, properties []model.Property, n int) []TopPropertyEntry {
	counts := make(map[string]int)
	for _, b := range bookings {
		if b.PropertyID != "" {
			counts[b.PropertyID]++
		}
	}

	entries := make([]TopPropertyEntry, 0, len(properties))
	for _, p := range properties {
		if c := counts[p.ID]; c > 0 {
			entries = append(entries, TopPropertyEntry{Property: p, BookingCount: c})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].BookingCount != entries[j].BookingCount {
			return entries[i].BookingCount > entries[j].BookingCount
		}
		if entries[i].Property.Rating != entries[j].Property.Rating {
			return entries[i].Property.Rating > entries[j].Property.Rating
		}
		return entries[i].Property.ID < entries[j].Property.ID
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
