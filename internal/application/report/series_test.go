package report

import (
	"testing"
	"time"

	"omnibook-admin/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func constantKey(model.Booking) string { return "all" }

func TestBuildRevenueSeriesCumulative(t *testing.T) {
	bookings := []model.Booking{
		{ID: "1", Status: model.BookingStatusCompleted, FinalPrice: 100, CreatedAt: day(2024, 1, 1)},
		{ID: "2", Status: model.BookingStatusCompleted, FinalPrice: 50, CreatedAt: day(2024, 1, 2)},
	}

	result := BuildRevenueSeries(bookings, constantKey, nil, testNow)

	require.Equal(t, []time.Time{day(2024, 1, 1), day(2024, 1, 2)}, result.Labels)
	require.Len(t, result.Series, 1)
	assert.Equal(t, "all", result.Series[0].Key)
	assert.Equal(t, []float64{100, 150}, result.Series[0].Points)
}

func TestBuildRevenueSeriesOnlyCompletedContribute(t *testing.T) {
	bookings := []model.Booking{
		{ID: "1", Status: model.BookingStatusCompleted, FinalPrice: 100, CreatedAt: day(2024, 1, 1)},
		{ID: "2", Status: model.BookingStatusPending, FinalPrice: 900, CreatedAt: day(2024, 1, 1)},
		{ID: "3", Status: model.BookingStatusCancelled, FinalPrice: 400, CreatedAt: day(2024, 1, 2)},
	}

	result := BuildRevenueSeries(bookings, constantKey, nil, testNow)

	require.Len(t, result.Labels, 1)
	assert.Equal(t, []float64{100}, result.Series[0].Points)
}

func TestBuildRevenueSeriesMonotonic(t *testing.T) {
	bookings := []model.Booking{
		{ID: "1", Status: model.BookingStatusCompleted, FinalPrice: 10, CreatedAt: day(2024, 2, 3)},
		{ID: "2", Status: model.BookingStatusCompleted, FinalPrice: 5, CreatedAt: day(2024, 2, 1)},
		{ID: "3", Status: model.BookingStatusCompleted, FinalPrice: 25, CreatedAt: day(2024, 2, 8)},
		{ID: "4", Status: model.BookingStatusCompleted, FinalPrice: 1, CreatedAt: day(2024, 2, 3)},
	}

	result := BuildRevenueSeries(bookings, constantKey, nil, testNow)

	for _, group := range result.Series {
		for i := 1; i < len(group.Points); i++ {
			assert.GreaterOrEqual(t, group.Points[i], group.Points[i-1])
		}
	}
}

func TestBuildRevenueSeriesSharedAxisCarriesForward(t *testing.T) {
	// Host h2 has no sale on Jan 2; its line must carry the running total.
	properties := []model.Property{
		{ID: "p1", HostID: "h1"},
		{ID: "p2", HostID: "h2"},
	}
	bookings := []model.Booking{
		{ID: "1", PropertyID: "p1", Status: model.BookingStatusCompleted, FinalPrice: 100, CreatedAt: day(2024, 1, 1)},
		{ID: "2", PropertyID: "p2", Status: model.BookingStatusCompleted, FinalPrice: 30, CreatedAt: day(2024, 1, 1)},
		{ID: "3", PropertyID: "p1", Status: model.BookingStatusCompleted, FinalPrice: 70, CreatedAt: day(2024, 1, 2)},
	}

	result := BuildRevenueSeries(bookings, HostKeyFn(properties), nil, testNow)

	require.Len(t, result.Series, 2)
	assert.Equal(t, "h1", result.Series[0].Key)
	assert.Equal(t, []float64{100, 170}, result.Series[0].Points)
	assert.Equal(t, "h2", result.Series[1].Key)
	assert.Equal(t, []float64{30, 30}, result.Series[1].Points)
}

func TestBuildRevenueSeriesRespectsRange(t *testing.T) {
	bookings := []model.Booking{
		{ID: "1", Status: model.BookingStatusCompleted, FinalPrice: 100, CreatedAt: day(2024, 6, 14)},
		{ID: "2", Status: model.BookingStatusCompleted, FinalPrice: 50, CreatedAt: day(2023, 12, 25)},
	}

	result := BuildRevenueSeries(bookings, constantKey, &DateRange{Preset: RangeThisMonth}, testNow)

	require.Equal(t, []time.Time{day(2024, 6, 14)}, result.Labels)
	assert.Equal(t, []float64{100}, result.Series[0].Points)
}

func TestBuildRevenueSeriesEmptyInput(t *testing.T) {
	result := BuildRevenueSeries(nil, constantKey, nil, testNow)

	assert.Empty(t, result.Labels)
	assert.Empty(t, result.Series)
}

func TestTopHostsByRevenue(t *testing.T) {
	properties := []model.Property{
		{ID: "p1", HostID: "h1"},
		{ID: "p2", HostID: "h2"},
		{ID: "p3", HostID: "h3"},
	}
	bookings := []model.Booking{
		{ID: "1", PropertyID: "p1", Status: model.BookingStatusCompleted, FinalPrice: 500},
		{ID: "2", PropertyID: "p2", Status: model.BookingStatusCompleted, FinalPrice: 200},
		{ID: "3", PropertyID: "p2", Status: model.BookingStatusCompleted, FinalPrice: 350},
		{ID: "4", PropertyID: "p3", Status: model.BookingStatusCompleted, FinalPrice: 100},
		{ID: "5", PropertyID: "p1", Status: model.BookingStatusPending, FinalPrice: 9999},
		{ID: "6", PropertyID: "ghost", Status: model.BookingStatusCompleted, FinalPrice: 9999},
	}

	top := TopHostsByRevenue(bookings, properties, 2)

	assert.Equal(t, []string{"h2", "h1"}, top)
}

func TestTopHostsByRevenueTieBreaksOnID(t *testing.T) {
	properties := []model.Property{
		{ID: "p1", HostID: "hb"},
		{ID: "p2", HostID: "ha"},
	}
	bookings := []model.Booking{
		{ID: "1", PropertyID: "p1", Status: model.BookingStatusCompleted, FinalPrice: 100},
		{ID: "2", PropertyID: "p2", Status: model.BookingStatusCompleted, FinalPrice: 100},
	}

	top := TopHostsByRevenue(bookings, properties, 0)

	assert.Equal(t, []string{"ha", "hb"}, top)
}
