package report

import "time"

// RangePreset names a relative date window computed against a reference time.
type RangePreset string

const (
	RangeToday     RangePreset = "Today"
	RangeThisWeek  RangePreset = "ThisWeek"
	RangeThisMonth RangePreset = "ThisMonth"
	RangeAllTime   RangePreset = "AllTime"
	RangeCustom    RangePreset = "Custom"
)

// DateRange is either a preset window or an explicit [Start, End) interval.
// The zero value means AllTime.
type DateRange struct {
	Preset RangePreset
	Start  time.Time
	End    time.Time
}

// Bounds resolves the range to a concrete [start, end) interval relative to
// now. ok is false when the range places no constraint. Boundaries are
// computed in now's location; callers that need UTC day boundaries pass a
// UTC reference time.
func (r DateRange) Bounds(now time.Time) (start, end time.Time, ok bool) {
	switch r.Preset {
	case RangeToday:
		start = startOfDay(now)
		return start, start.AddDate(0, 0, 1), true
	case RangeThisWeek:
		// Weeks start on Monday.
		day := startOfDay(now)
		offset := (int(day.Weekday()) + 6) % 7
		start = day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7), true
	case RangeThisMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0), true
	case RangeCustom:
		if r.Start.IsZero() && r.End.IsZero() {
			return time.Time{}, time.Time{}, false
		}
		return r.Start, r.End, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Contains reports whether t falls inside the resolved interval. Open-ended
// custom bounds are treated as unconstrained on that side.
func (r DateRange) Contains(t time.Time, now time.Time) bool {
	start, end, ok := r.Bounds(now)
	if !ok {
		return true
	}
	if !start.IsZero() && t.Before(start) {
		return false
	}
	if !end.IsZero() && !t.Before(end) {
		return false
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayKey collapses a timestamp to its calendar day in UTC terms, the bucket
// unit for revenue series.
func dayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
