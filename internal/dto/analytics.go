package dto

import (
	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthBucketResponse represents one month's aggregated figures.
type MonthBucketResponse struct {
	Month            string          `json:"month"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Profit           decimal.Decimal `json:"profit"`
	TransactionCount int             `json:"transactionCount"`
}

// ProfitabilityResponse represents the per-vehicle profitability summary response.
type ProfitabilityResponse struct {
	VehicleID       string                `json:"vehicleID"`
	CurrentMonth    MonthBucketResponse   `json:"currentMonth"`
	LastMonth       MonthBucketResponse   `json:"lastMonth"`
	AllTimeRevenue  decimal.Decimal       `json:"allTimeRevenue"`
	AllTimeExpenses decimal.Decimal       `json:"allTimeExpenses"`
	AllTimeProfit   decimal.Decimal       `json:"allTimeProfit"`
	Months          []MonthBucketResponse `json:"months"`
}

// DashboardResponse represents the full dashboard metrics response.
type DashboardResponse struct {
	Overall     domain.OverallMetrics     `json:"overall"`
	Time        TimeMetricsResponse       `json:"time"`
	Vehicles    domain.VehicleMetrics     `json:"vehicles"`
	Customers   domain.CustomerMetrics    `json:"customers"`
	Categories  domain.CategoryMetrics    `json:"categories"`
	Operational domain.OperationalMetrics `json:"operational"`
}

// TimeMetricsResponse represents the calendar-bucketed metrics with the
// monthly trend converted to response buckets.
type TimeMetricsResponse struct {
	CurrentMonth  domain.PeriodTotals   `json:"currentMonth"`
	LastMonth     domain.PeriodTotals   `json:"lastMonth"`
	RevenueGrowth decimal.Decimal       `json:"revenueGrowth"`
	ExpenseGrowth decimal.Decimal       `json:"expenseGrowth"`
	ProfitGrowth  decimal.Decimal       `json:"profitGrowth"`
	YTDRevenue    decimal.Decimal       `json:"ytdRevenue"`
	YTDExpenses   decimal.Decimal       `json:"ytdExpenses"`
	YTDProfit     decimal.Decimal       `json:"ytdProfit"`
	MonthlyTrend  []MonthBucketResponse `json:"monthlyTrend"`
}

// ToMonthBucketResponse converts a domain.MonthBucket to its response DTO
func ToMonthBucketResponse(b domain.MonthBucket) MonthBucketResponse {
	return MonthBucketResponse{
		Month:            b.Month,
		TotalRevenue:     b.TotalRevenue,
		TotalExpenses:    b.TotalExpenses,
		Profit:           b.Profit,
		TransactionCount: b.TransactionCount,
	}
}

func toMonthBucketResponses(buckets []domain.MonthBucket) []MonthBucketResponse {
	res := make([]MonthBucketResponse, len(buckets))
	for i, b := range buckets {
		res[i] = ToMonthBucketResponse(b)
	}
	return res
}

// ToProfitabilityResponse converts a domain.VehicleProfitability to its response DTO
func ToProfitabilityResponse(p *domain.VehicleProfitability) ProfitabilityResponse {
	return ProfitabilityResponse{
		VehicleID:       p.VehicleID,
		CurrentMonth:    ToMonthBucketResponse(p.CurrentMonth),
		LastMonth:       ToMonthBucketResponse(p.LastMonth),
		AllTimeRevenue:  p.AllTimeRevenue,
		AllTimeExpenses: p.AllTimeExpenses,
		AllTimeProfit:   p.AllTimeProfit,
		Months:          toMonthBucketResponses(p.Months),
	}
}

// ToDashboardResponse converts a domain.DashboardMetrics to its response DTO
func ToDashboardResponse(m *domain.DashboardMetrics) DashboardResponse {
	return DashboardResponse{
		Overall: m.Overall,
		Time: TimeMetricsResponse{
			CurrentMonth:  m.Time.CurrentMonth,
			LastMonth:     m.Time.LastMonth,
			RevenueGrowth: m.Time.RevenueGrowth,
			ExpenseGrowth: m.Time.ExpenseGrowth,
			ProfitGrowth:  m.Time.ProfitGrowth,
			YTDRevenue:    m.Time.YTDRevenue,
			YTDExpenses:   m.Time.YTDExpenses,
			YTDProfit:     m.Time.YTDProfit,
			MonthlyTrend:  toMonthBucketResponses(m.Time.MonthlyTrend),
		},
		Vehicles:    m.Vehicles,
		Customers:   m.Customers,
		Categories:  m.Categories,
		Operational: m.Operational,
	}
}
