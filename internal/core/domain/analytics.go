package domain

import "github.com/shopspring/decimal"

// MonthBucket aggregates all transactions sharing one normalised YYYY-MM key.
type MonthBucket struct {
	Month            string          `json:"month"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Profit           decimal.Decimal `json:"profit"`
	TransactionCount int             `json:"transactionCount"`
}

// ZeroMonthBucket returns a synthetic zero-valued bucket for the given key.
func ZeroMonthBucket(month string) MonthBucket {
	return MonthBucket{
		Month:         month,
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		Profit:        decimal.Zero,
	}
}

// VehicleProfitability is the per-vehicle profitability summary.
//
// All-time totals are summed over the raw transaction set, not over the month
// buckets, so that records with unbucketable month keys still count.
type VehicleProfitability struct {
	VehicleID       string          `json:"vehicleID"`
	CurrentMonth    MonthBucket     `json:"currentMonth"`
	LastMonth       MonthBucket     `json:"lastMonth"`
	AllTimeRevenue  decimal.Decimal `json:"allTimeRevenue"`
	AllTimeExpenses decimal.Decimal `json:"allTimeExpenses"`
	AllTimeProfit   decimal.Decimal `json:"allTimeProfit"`
	Months          []MonthBucket   `json:"months"` // Rolling 12-month window, oldest first
}

// PeriodTotals carries revenue, expenses and profit for one period.
type PeriodTotals struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// OverallMetrics are the whole-fleet, all-time headline figures.
type OverallMetrics struct {
	TotalRevenue         decimal.Decimal `json:"totalRevenue"`
	TotalExpenses        decimal.Decimal `json:"totalExpenses"`
	NetProfit            decimal.Decimal `json:"netProfit"`
	ProfitMargin         decimal.Decimal `json:"profitMargin"` // Percent; 0 when no revenue
	AvgRevenuePerVehicle decimal.Decimal `json:"avgRevenuePerVehicle"`
	AvgProfitPerVehicle  decimal.Decimal `json:"avgProfitPerVehicle"`
	TotalTransactions    int             `json:"totalTransactions"`
	AvgTransactionValue  decimal.Decimal `json:"avgTransactionValue"`
}

// TimeMetrics are the calendar-bucketed figures.
type TimeMetrics struct {
	CurrentMonth  PeriodTotals    `json:"currentMonth"`
	LastMonth     PeriodTotals    `json:"lastMonth"`
	RevenueGrowth decimal.Decimal `json:"revenueGrowth"` // Month-over-month, percent
	ExpenseGrowth decimal.Decimal `json:"expenseGrowth"`
	ProfitGrowth  decimal.Decimal `json:"profitGrowth"`
	YTDRevenue    decimal.Decimal `json:"ytdRevenue"`
	YTDExpenses   decimal.Decimal `json:"ytdExpenses"`
	YTDProfit     decimal.Decimal `json:"ytdProfit"`
	MonthlyTrend  []MonthBucket   `json:"monthlyTrend"` // 12 entries, oldest first
}

// VehicleStanding is one vehicle's entry in a ranked list.
type VehicleStanding struct {
	VehicleID        string          `json:"vehicleID"`
	VehicleNumber    string          `json:"vehicleNumber"`
	Revenue          decimal.Decimal `json:"revenue"`
	Expenses         decimal.Decimal `json:"expenses"`
	Profit           decimal.Decimal `json:"profit"`
	TransactionCount int             `json:"transactionCount"`
}

// VehicleMetrics are the fleet composition figures and rankings.
type VehicleMetrics struct {
	ActiveCount     int               `json:"activeCount"` // Vehicles with at least one transaction
	ProfitableCount int               `json:"profitableCount"`
	LossMakingCount int               `json:"lossMakingCount"`
	NoDataCount     int               `json:"noDataCount"`
	TopByRevenue    []VehicleStanding `json:"topByRevenue"`   // At most 5, descending
	TopByProfit     []VehicleStanding `json:"topByProfit"`    // At most 5, descending
	BottomByProfit  []VehicleStanding `json:"bottomByProfit"` // At most 5, ascending
}

// CustomerRevenue is one customer's revenue attribution.
type CustomerRevenue struct {
	CustomerID string          `json:"customerID"`
	Name       string          `json:"name"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// CustomerMetrics are derived transitively through invoices: only revenue
// transactions carrying a resolvable invoiceID contribute.
type CustomerMetrics struct {
	DistinctCount         int               `json:"distinctCount"`
	TopByRevenue          []CustomerRevenue `json:"topByRevenue"` // At most 5, descending
	AvgRevenuePerCustomer decimal.Decimal   `json:"avgRevenuePerCustomer"`
}

// CategoryMetrics bucket amounts by resolved category label.
type CategoryMetrics struct {
	RevenueByCategory  map[string]decimal.Decimal `json:"revenueByCategory"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`
	TopExpenseCategory string                     `json:"topExpenseCategory"` // "N/A" when no expenses exist
}

// VehicleActivity identifies the busiest vehicle.
type VehicleActivity struct {
	VehicleID        string `json:"vehicleID"`
	VehicleNumber    string `json:"vehicleNumber"`
	TransactionCount int    `json:"transactionCount"`
}

// OperationalMetrics are the utilisation figures.
type OperationalMetrics struct {
	RevenuePerVehiclePerMonth decimal.Decimal `json:"revenuePerVehiclePerMonth"`
	ExpenseRatio              decimal.Decimal `json:"expenseRatio"` // Percent; 0 when no revenue
	MostActiveVehicle         VehicleActivity `json:"mostActiveVehicle"`
	AvgTransactionsPerVehicle decimal.Decimal `json:"avgTransactionsPerVehicle"`
}

// DashboardMetrics is the full six-family dashboard payload.
type DashboardMetrics struct {
	Overall     OverallMetrics     `json:"overall"`
	Time        TimeMetrics        `json:"time"`
	Vehicles    VehicleMetrics     `json:"vehicles"`
	Customers   CustomerMetrics    `json:"customers"`
	Categories  CategoryMetrics    `json:"categories"`
	Operational OperationalMetrics `json:"operational"`
}

// EmptyDashboardMetrics returns a structurally-valid all-zero dashboard whose
// monthly trend covers the 12 months ending at the given canonical key. The
// HTTP layer serves this shape instead of an error body when aggregation
// fails, so a broken dashboard degrades to "no data" rather than a 500.
func EmptyDashboardMetrics(currentKey string, window []string) DashboardMetrics {
	trend := make([]MonthBucket, len(window))
	for i, key := range window {
		trend[i] = ZeroMonthBucket(key)
	}
	return DashboardMetrics{
		Overall: OverallMetrics{
			TotalRevenue:         decimal.Zero,
			TotalExpenses:        decimal.Zero,
			NetProfit:            decimal.Zero,
			ProfitMargin:         decimal.Zero,
			AvgRevenuePerVehicle: decimal.Zero,
			AvgProfitPerVehicle:  decimal.Zero,
			AvgTransactionValue:  decimal.Zero,
		},
		Time: TimeMetrics{
			CurrentMonth:  zeroPeriod(),
			LastMonth:     zeroPeriod(),
			RevenueGrowth: decimal.Zero,
			ExpenseGrowth: decimal.Zero,
			ProfitGrowth:  decimal.Zero,
			YTDRevenue:    decimal.Zero,
			YTDExpenses:   decimal.Zero,
			YTDProfit:     decimal.Zero,
			MonthlyTrend:  trend,
		},
		Vehicles: VehicleMetrics{
			TopByRevenue:   []VehicleStanding{},
			TopByProfit:    []VehicleStanding{},
			BottomByProfit: []VehicleStanding{},
		},
		Customers: CustomerMetrics{
			TopByRevenue:          []CustomerRevenue{},
			AvgRevenuePerCustomer: decimal.Zero,
		},
		Categories: CategoryMetrics{
			RevenueByCategory:  map[string]decimal.Decimal{},
			ExpensesByCategory: map[string]decimal.Decimal{},
			TopExpenseCategory: "N/A",
		},
		Operational: OperationalMetrics{
			RevenuePerVehiclePerMonth: decimal.Zero,
			ExpenseRatio:              decimal.Zero,
			MostActiveVehicle:         VehicleActivity{VehicleID: "", VehicleNumber: "N/A", TransactionCount: 0},
			AvgTransactionsPerVehicle: decimal.Zero,
		},
	}
}

func zeroPeriod() PeriodTotals {
	return PeriodTotals{Revenue: decimal.Zero, Expenses: decimal.Zero, Profit: decimal.Zero}
}
