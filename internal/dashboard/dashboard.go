// Package dashboard derives the admin panel's summary counters and
// chart datasets from the current sale and client lists. The numbers
// are presentation-grade approximations, not a forecasting model: days
// and months with no real data are padded with placeholder values so
// the charts never render empty.
package dashboard

import (
	"math"
	"math/rand"
	"time"

	"github.com/mis-safeli/safeli-api/internal/models"
)

const productionRate = 0.9

// monthlyGrowth is the per-month factor applied to forecast points.
const monthlyGrowth = 0.15

// Filler produces placeholder values for chart points that would
// otherwise be zero. It returns a value in [min, min+span).
type Filler func(min, span int) int

// RandomFiller returns the default pseudo-random placeholder source.
func RandomFiller(seed int64) Filler {
	rng := rand.New(rand.NewSource(seed))
	return func(min, span int) int {
		return min + rng.Intn(span)
	}
}

type Stats struct {
	TotalOrders     int `json:"totalOrders"`
	TotalBatteries  int `json:"totalBatteries"`
	TotalProduction int `json:"totalProduction"`
	TotalDispatched int `json:"totalDispatched"`
	PendingOrders   int `json:"pendingOrders"`
	ActiveClients   int `json:"activeClients"`
}

type TrendPoint struct {
	Day        string `json:"day"`
	Orders     int    `json:"orders"`
	Production int    `json:"production"`
	Dispatched int    `json:"dispatched"`
}

type DistributionSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

type ForecastPoint struct {
	Month    string `json:"month"`
	Actual   int    `json:"actual"`
	Forecast int    `json:"forecast"`
}

type Payload struct {
	Stats                   Stats               `json:"stats"`
	DailyTrend              []TrendPoint        `json:"dailyTrend"`
	ApplicationDistribution []DistributionSlice `json:"applicationDistribution"`
	SalesForecast           []ForecastPoint     `json:"salesForecast"`
}

var distributionColors = []string{
	"from-blue-500 to-blue-600",
	"from-green-500 to-green-600",
	"from-purple-500 to-purple-600",
	"from-orange-500 to-orange-600",
	"from-red-500 to-red-600",
	"from-indigo-500 to-indigo-600",
}

// Aggregator computes dashboard data relative to a fixed "now" with an
// injectable placeholder source, so tests stay deterministic.
type Aggregator struct {
	Now    time.Time
	Filler Filler
}

func New(now time.Time, filler Filler) *Aggregator {
	return &Aggregator{Now: now, Filler: filler}
}

// Build assembles the full dashboard payload.
func (a *Aggregator) Build(sales []*models.Sale, clients []*models.Client) Payload {
	return Payload{
		Stats:                   a.BuildStats(sales, clients),
		DailyTrend:              a.DailyTrend(sales),
		ApplicationDistribution: a.ApplicationDistribution(sales),
		SalesForecast:           a.SalesForecast(sales),
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BuildStats computes the summary counters. A missing or non-numeric
// quantity counts as zero; a missing dispatch date means the order has
// not been dispatched.
func (a *Aggregator) BuildStats(sales []*models.Sale, clients []*models.Client) Stats {
	today := startOfDay(a.Now)

	var batteries, dispatched, pending int
	for _, sale := range sales {
		qty := sale.Quantity.Int()
		batteries += qty

		if sale.ExpectedDispatchDate.IsZero() {
			continue
		}
		dispatchDay := startOfDay(sale.ExpectedDispatchDate.ToTime())
		if dispatchDay.Before(today) {
			dispatched += qty
		} else {
			pending += qty
		}
	}

	return Stats{
		TotalOrders:     len(sales),
		TotalBatteries:  batteries,
		TotalProduction: int(math.Round(float64(batteries) * productionRate)),
		TotalDispatched: dispatched,
		PendingOrders:   pending,
		ActiveClients:   len(clients),
	}
}

// DailyTrend covers the last 7 calendar days including today. A day
// whose true value is zero gets a placeholder so the chart is never
// visually empty.
func (a *Aggregator) DailyTrend(sales []*models.Sale) []TrendPoint {
	if len(sales) == 0 {
		return sampleDailyTrend()
	}

	result := make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := a.Now.AddDate(0, 0, -i)

		var orders, quantity, dispatched int
		for _, sale := range sales {
			when := sale.Timestamp
			if when.IsZero() {
				if sale.ExpectedDispatchDate.IsZero() {
					continue
				}
				when = sale.ExpectedDispatchDate.ToTime()
			}
			if !sameDay(when, day) {
				continue
			}
			orders++
			quantity += sale.Quantity.Int()
			if !sale.ExpectedDispatchDate.IsZero() &&
				!startOfDay(sale.ExpectedDispatchDate.ToTime()).After(startOfDay(day)) {
				dispatched += sale.Quantity.Int()
			}
		}

		production := int(math.Round(float64(quantity) * productionRate))

		point := TrendPoint{
			Day:        day.Format("Mon"),
			Orders:     orders,
			Production: production,
			Dispatched: dispatched,
		}
		if point.Orders == 0 {
			point.Orders = a.Filler(5, 10)
		}
		if point.Production == 0 {
			point.Production = a.Filler(4, 8)
		}
		if point.Dispatched == 0 {
			point.Dispatched = a.Filler(3, 6)
		}
		result = append(result, point)
	}
	return result
}

// ApplicationDistribution groups orders by application field and turns
// the counts into rounded percentage shares paired with a fixed color
// cycle.
func (a *Aggregator) ApplicationDistribution(sales []*models.Sale) []DistributionSlice {
	counts := map[string]int{}
	order := []string{}
	for _, sale := range sales {
		app := sale.Application
		if app == "" {
			app = "Unknown"
		}
		if _, seen := counts[app]; !seen {
			order = append(order, app)
		}
		counts[app]++
	}

	if len(counts) == 0 {
		return sampleDistribution()
	}

	total := len(sales)
	result := make([]DistributionSlice, 0, len(order))
	for i, name := range order {
		count := counts[name]
		result = append(result, DistributionSlice{
			Name:  name,
			Value: int(math.Round(float64(count) / float64(total) * 100)),
			Color: distributionColors[i%len(distributionColors)],
			Count: count,
		})
	}
	return result
}

// SalesForecast sums quantities for the trailing six calendar months
// (placeholder when a month has nothing) and projects two future
// months at the fixed growth factor.
func (a *Aggregator) SalesForecast(sales []*models.Sale) []ForecastPoint {
	if len(sales) == 0 {
		return sampleForecast()
	}

	monthly := map[string]int{}
	for _, sale := range sales {
		when := sale.Timestamp
		if when.IsZero() {
			if sale.ExpectedDispatchDate.IsZero() {
				when = a.Now
			} else {
				when = sale.ExpectedDispatchDate.ToTime()
			}
		}
		monthly[when.Format("Jan")] += sale.Quantity.Int()
	}

	result := make([]ForecastPoint, 0, 8)
	for i := 5; i >= 0; i-- {
		month := a.Now.AddDate(0, -i, 0).Format("Jan")
		actual, ok := monthly[month]
		if !ok || actual == 0 {
			actual = a.Filler(100, 200)
		}
		result = append(result, ForecastPoint{
			Month:    month,
			Actual:   actual,
			Forecast: int(math.Round(float64(actual) * (1 + float64(i)*monthlyGrowth))),
		})
	}

	lastActual := result[len(result)-1].Actual
	for i := 1; i <= 2; i++ {
		month := a.Now.AddDate(0, i, 0).Format("Jan")
		result = append(result, ForecastPoint{
			Month:    month,
			Actual:   0,
			Forecast: int(math.Round(float64(lastActual) * (1 + float64(i)*monthlyGrowth))),
		})
	}
	return result
}

// Fixed sample datasets shown when there are no orders at all.

func sampleDailyTrend() []TrendPoint {
	return []TrendPoint{
		{Day: "Mon", Orders: 12, Production: 10, Dispatched: 8},
		{Day: "Tue", Orders: 18, Production: 15, Dispatched: 12},
		{Day: "Wed", Orders: 15, Production: 12, Dispatched: 10},
		{Day: "Thu", Orders: 22, Production: 18, Dispatched: 15},
		{Day: "Fri", Orders: 20, Production: 16, Dispatched: 14},
		{Day: "Sat", Orders: 14, Production: 11, Dispatched: 9},
		{Day: "Sun", Orders: 8, Production: 6, Dispatched: 5},
	}
}

func sampleDistribution() []DistributionSlice {
	return []DistributionSlice{
		{Name: "E-Rickshaw", Value: 45, Color: distributionColors[0], Count: 45},
		{Name: "Solar", Value: 25, Color: distributionColors[1], Count: 25},
		{Name: "UPS", Value: 20, Color: distributionColors[2], Count: 20},
		{Name: "Inverter", Value: 10, Color: distributionColors[3], Count: 10},
	}
}

func sampleForecast() []ForecastPoint {
	return []ForecastPoint{
		{Month: "Jan", Actual: 120, Forecast: 110},
		{Month: "Feb", Actual: 150, Forecast: 140},
		{Month: "Mar", Actual: 180, Forecast: 170},
		{Month: "Apr", Actual: 220, Forecast: 210},
		{Month: "May", Actual: 280, Forecast: 270},
		{Month: "Jun", Actual: 320, Forecast: 310},
		{Month: "Jul", Actual: 0, Forecast: 350},
		{Month: "Aug", Actual: 0, Forecast: 380},
	}
}
