package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mis-safeli/safeli-api/internal/models"
)

// fixedFiller always returns the minimum of the placeholder range, so
// every assertion below is deterministic.
func fixedFiller(min, span int) int { return min }

func date(value string) models.Date {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return models.Date(t)
}

func TestBuildStats(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	agg := New(now, fixedFiller)

	sales := []*models.Sale{
		{Quantity: 10, ExpectedDispatchDate: date("2026-03-10")},
		{Quantity: 20, ExpectedDispatchDate: date("2026-03-15")},
		{Quantity: 0, ExpectedDispatchDate: date("2026-03-20")},
	}
	clients := []*models.Client{{FirmName: "Akasha Traders"}, {FirmName: "CAPL"}}

	stats := agg.BuildStats(sales, clients)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 30, stats.TotalBatteries)
	assert.Equal(t, 27, stats.TotalProduction)
	// Dispatched counts only dates strictly before today; today and
	// later are pending.
	assert.Equal(t, 10, stats.TotalDispatched)
	assert.Equal(t, 20, stats.PendingOrders)
	assert.Equal(t, 2, stats.ActiveClients)
}

func TestBuildStatsSkipsMissingDispatchDate(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	agg := New(now, fixedFiller)

	stats := agg.BuildStats([]*models.Sale{{Quantity: 50}}, nil)

	assert.Equal(t, 50, stats.TotalBatteries)
	assert.Equal(t, 0, stats.TotalDispatched)
	assert.Equal(t, 0, stats.PendingOrders)
}

func TestDailyTrendCountsTodayAndPadsEmptyDays(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	agg := New(now, fixedFiller)

	sales := []*models.Sale{
		{
			Timestamp:            time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC),
			Quantity:             20,
			ExpectedDispatchDate: date("2026-03-14"),
		},
	}

	trend := agg.DailyTrend(sales)
	require.Len(t, trend, 7)

	today := trend[6]
	assert.Equal(t, "Sun", today.Day)
	assert.Equal(t, 1, today.Orders)
	assert.Equal(t, 18, today.Production)
	assert.Equal(t, 20, today.Dispatched)

	// Days with no orders get the minimum placeholder values.
	for _, point := range trend[:6] {
		assert.Equal(t, 5, point.Orders)
		assert.Equal(t, 4, point.Production)
		assert.Equal(t, 3, point.Dispatched)
	}
}

func TestDailyTrendSampleFallback(t *testing.T) {
	agg := New(time.Now(), fixedFiller)

	trend := agg.DailyTrend(nil)
	require.Len(t, trend, 7)
	assert.Equal(t, "Mon", trend[0].Day)
	assert.Equal(t, 12, trend[0].Orders)
	assert.Equal(t, "Sun", trend[6].Day)
}

func TestApplicationDistribution(t *testing.T) {
	agg := New(time.Now(), fixedFiller)

	sales := []*models.Sale{
		{Application: "Solar"},
		{Application: "Solar"},
		{Application: "UPS"},
		{Application: ""},
	}

	dist := agg.ApplicationDistribution(sales)
	require.Len(t, dist, 3)

	assert.Equal(t, "Solar", dist[0].Name)
	assert.Equal(t, 50, dist[0].Value)
	assert.Equal(t, 2, dist[0].Count)
	assert.Equal(t, distributionColors[0], dist[0].Color)

	assert.Equal(t, "UPS", dist[1].Name)
	assert.Equal(t, 25, dist[1].Value)

	assert.Equal(t, "Unknown", dist[2].Name)
	assert.Equal(t, distributionColors[2], dist[2].Color)
}

func TestApplicationDistributionSampleFallback(t *testing.T) {
	agg := New(time.Now(), fixedFiller)

	dist := agg.ApplicationDistribution(nil)
	require.Len(t, dist, 4)
	assert.Equal(t, "E-Rickshaw", dist[0].Name)
	assert.Equal(t, 45, dist[0].Value)
}

func TestSalesForecast(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	agg := New(now, fixedFiller)

	sales := []*models.Sale{
		{Timestamp: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), Quantity: 200},
		{Timestamp: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), Quantity: 150},
	}

	points := agg.SalesForecast(sales)
	require.Len(t, points, 8)

	// Six trailing months ending at the current month.
	assert.Equal(t, "Jan", points[0].Month)
	assert.Equal(t, "Jun", points[5].Month)

	// Months with no data get the minimum placeholder.
	assert.Equal(t, 100, points[0].Actual)
	// Forecast grows with distance from now: 100 * (1 + 5*0.15).
	assert.Equal(t, 175, points[0].Forecast)

	assert.Equal(t, 150, points[4].Actual)
	assert.Equal(t, 200, points[5].Actual)
	assert.Equal(t, 200, points[5].Forecast)

	// Two projected months with no actuals.
	assert.Equal(t, "Jul", points[6].Month)
	assert.Equal(t, 0, points[6].Actual)
	assert.Equal(t, 230, points[6].Forecast)
	assert.Equal(t, "Aug", points[7].Month)
	assert.Equal(t, 260, points[7].Forecast)
}

func TestSalesForecastSampleFallback(t *testing.T) {
	agg := New(time.Now(), fixedFiller)

	points := agg.SalesForecast(nil)
	require.Len(t, points, 8)
	assert.Equal(t, "Jan", points[0].Month)
	assert.Equal(t, 380, points[7].Forecast)
}

func TestBuildAssemblesAllSections(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	agg := New(now, fixedFiller)

	payload := agg.Build(nil, nil)

	assert.Equal(t, 0, payload.Stats.TotalOrders)
	assert.Len(t, payload.DailyTrend, 7)
	assert.Len(t, payload.ApplicationDistribution, 4)
	assert.Len(t, payload.SalesForecast, 8)
}
