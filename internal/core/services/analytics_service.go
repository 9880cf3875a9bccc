package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/fleetserve/fleet_management_app/internal/apperrors"
	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portsrepo "github.com/fleetserve/fleet_management_app/internal/core/ports/repositories"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/utils/monthkey"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// analyticsService implements the AnalyticsService interface
type analyticsService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	vehicleRepo     portsrepo.VehicleReader
	invoiceRepo     portsrepo.InvoiceReader
	customerRepo    portsrepo.CustomerReader
	now             func() time.Time
}

// AnalyticsServiceOption is a functional option for configuring the analytics service
type AnalyticsServiceOption func(*analyticsService)

// WithAnalyticsClock overrides the clock used to determine the current month.
func WithAnalyticsClock(now func() time.Time) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.now = now
	}
}

// NewAnalyticsService creates a new analytics service with the provided options
func NewAnalyticsService(
	transactionRepo portsrepo.TransactionReader,
	vehicleRepo portsrepo.VehicleReader,
	invoiceRepo portsrepo.InvoiceReader,
	customerRepo portsrepo.CustomerReader,
	options ...AnalyticsServiceOption,
) portssvc.AnalyticsService {
	svc := &analyticsService{
		transactionRepo: transactionRepo,
		vehicleRepo:     vehicleRepo,
		invoiceRepo:     invoiceRepo,
		customerRepo:    customerRepo,
		now:             time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure analyticsService implements the AnalyticsService interface
var _ portssvc.AnalyticsService = (*analyticsService)(nil)

// GetProfitabilityByVehicle computes the per-vehicle profitability summary.
func (s *analyticsService) GetProfitabilityByVehicle(ctx context.Context, vehicleID string) (*domain.VehicleProfitability, error) {
	if _, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactionsByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for vehicle %s: %w", vehicleID, err)
	}

	// All-time totals come from a raw scan so that records excluded from the
	// month buckets (no usable month key) still count.
	allTimeRevenue := decimal.Zero
	allTimeExpenses := decimal.Zero
	buckets := map[string]*domain.MonthBucket{}
	unbucketable := 0

	for _, txn := range txns {
		if txn.Type == domain.Revenue {
			allTimeRevenue = allTimeRevenue.Add(txn.Amount)
		} else {
			allTimeExpenses = allTimeExpenses.Add(txn.Amount)
		}

		key := monthkey.Normalize(txn.Month, txn.Date)
		if key == "" {
			unbucketable++
			continue
		}
		bucket := buckets[key]
		if bucket == nil {
			b := domain.ZeroMonthBucket(key)
			bucket = &b
			buckets[key] = bucket
		}
		if txn.Type == domain.Revenue {
			bucket.TotalRevenue = bucket.TotalRevenue.Add(txn.Amount)
		} else {
			bucket.TotalExpenses = bucket.TotalExpenses.Add(txn.Amount)
		}
		bucket.TransactionCount++
	}

	for _, bucket := range buckets {
		bucket.Profit = bucket.TotalRevenue.Sub(bucket.TotalExpenses)
	}

	if unbucketable > 0 {
		s.LogWarn(ctx, "Transactions without a usable month key excluded from month buckets",
			slog.String("vehicle_id", vehicleID),
			slog.Int("count", unbucketable))
	}

	currentKey := monthkey.FromTime(s.now())
	lastKey, err := monthkey.Prev(currentKey)
	if err != nil {
		return nil, fmt.Errorf("failed to derive previous month key: %w", err)
	}
	window, err := monthkey.Window(currentKey, 12)
	if err != nil {
		return nil, fmt.Errorf("failed to derive rolling window: %w", err)
	}

	bucketOrZero := func(key string) domain.MonthBucket {
		if b, ok := buckets[key]; ok {
			return *b
		}
		return domain.ZeroMonthBucket(key)
	}

	months := make([]domain.MonthBucket, len(window))
	for i, key := range window {
		months[i] = bucketOrZero(key)
	}

	return &domain.VehicleProfitability{
		VehicleID:       vehicleID,
		CurrentMonth:    bucketOrZero(currentKey),
		LastMonth:       bucketOrZero(lastKey),
		AllTimeRevenue:  allTimeRevenue,
		AllTimeExpenses: allTimeExpenses,
		AllTimeProfit:   allTimeRevenue.Sub(allTimeExpenses),
		Months:          months,
	}, nil
}

// GetDashboardMetrics computes the global dashboard across all six metric families.
func (s *analyticsService) GetDashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	vehicles, err := s.vehicleRepo.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	currentKey := monthkey.FromTime(s.now())
	lastKey, err := monthkey.Prev(currentKey)
	if err != nil {
		return nil, fmt.Errorf("failed to derive previous month key: %w", err)
	}
	window, err := monthkey.Window(currentKey, 12)
	if err != nil {
		return nil, fmt.Errorf("failed to derive rolling window: %w", err)
	}

	type vehicleAgg struct {
		revenue  decimal.Decimal
		expenses decimal.Decimal
		count    int
	}

	totalRevenue := decimal.Zero
	totalExpenses := decimal.Zero
	perVehicle := map[string]*vehicleAgg{}
	buckets := map[string]*domain.MonthBucket{}
	revenueByCategory := map[string]decimal.Decimal{}
	expensesByCategory := map[string]decimal.Decimal{}
	var expenseCategoryOrder []string

	for _, txn := range txns {
		agg := perVehicle[txn.VehicleID]
		if agg == nil {
			agg = &vehicleAgg{revenue: decimal.Zero, expenses: decimal.Zero}
			perVehicle[txn.VehicleID] = agg
		}
		agg.count++

		category := txn.ResolvedCategory()
		if txn.Type == domain.Revenue {
			totalRevenue = totalRevenue.Add(txn.Amount)
			agg.revenue = agg.revenue.Add(txn.Amount)
			revenueByCategory[category] = revenueByCategory[category].Add(txn.Amount)
		} else {
			totalExpenses = totalExpenses.Add(txn.Amount)
			agg.expenses = agg.expenses.Add(txn.Amount)
			if _, seen := expensesByCategory[category]; !seen {
				expenseCategoryOrder = append(expenseCategoryOrder, category)
			}
			expensesByCategory[category] = expensesByCategory[category].Add(txn.Amount)
		}

		key := monthkey.Normalize(txn.Month, txn.Date)
		if key == "" {
			continue
		}
		bucket := buckets[key]
		if bucket == nil {
			b := domain.ZeroMonthBucket(key)
			bucket = &b
			buckets[key] = bucket
		}
		if txn.Type == domain.Revenue {
			bucket.TotalRevenue = bucket.TotalRevenue.Add(txn.Amount)
		} else {
			bucket.TotalExpenses = bucket.TotalExpenses.Add(txn.Amount)
		}
		bucket.TransactionCount++
	}

	for _, bucket := range buckets {
		bucket.Profit = bucket.TotalRevenue.Sub(bucket.TotalExpenses)
	}

	// Vehicle standings follow the natural order of the vehicle set so that
	// stable sorting keeps ties deterministic.
	var standings []domain.VehicleStanding
	activeCount := 0
	profitableCount := 0
	lossMakingCount := 0
	activeRevenueSum := decimal.Zero
	activeProfitSum := decimal.Zero
	for _, v := range vehicles {
		agg := perVehicle[v.VehicleID]
		if agg == nil || agg.count == 0 {
			continue
		}
		profit := agg.revenue.Sub(agg.expenses)
		standings = append(standings, domain.VehicleStanding{
			VehicleID:        v.VehicleID,
			VehicleNumber:    v.VehicleNumber,
			Revenue:          agg.revenue,
			Expenses:         agg.expenses,
			Profit:           profit,
			TransactionCount: agg.count,
		})
		activeCount++
		if profit.IsPositive() {
			profitableCount++
		} else if profit.IsNegative() {
			lossMakingCount++
		}
		activeRevenueSum = activeRevenueSum.Add(agg.revenue)
		activeProfitSum = activeProfitSum.Add(profit)
	}

	customers, err := s.aggregateCustomers(ctx, txns)
	if err != nil {
		return nil, err
	}

	netProfit := totalRevenue.Sub(totalExpenses)
	totalTransactions := len(txns)

	avgTransactionValue := decimal.Zero
	if totalTransactions > 0 {
		avgTransactionValue = totalRevenue.Add(totalExpenses).Div(decimal.NewFromInt(int64(totalTransactions)))
	}

	overall := domain.OverallMetrics{
		TotalRevenue:         totalRevenue,
		TotalExpenses:        totalExpenses,
		NetProfit:            netProfit,
		ProfitMargin:         percentOf(netProfit, totalRevenue),
		AvgRevenuePerVehicle: averageOver(activeRevenueSum, activeCount),
		AvgProfitPerVehicle:  averageOver(activeProfitSum, activeCount),
		TotalTransactions:    totalTransactions,
		AvgTransactionValue:  avgTransactionValue,
	}

	bucketOrZero := func(key string) domain.MonthBucket {
		if b, ok := buckets[key]; ok {
			return *b
		}
		return domain.ZeroMonthBucket(key)
	}

	currentBucket := bucketOrZero(currentKey)
	lastBucket := bucketOrZero(lastKey)

	ytdRevenue := decimal.Zero
	ytdExpenses := decimal.Zero
	currentYear, _ := monthkey.Year(currentKey)
	for key, bucket := range buckets {
		if year, ok := monthkey.Year(key); ok && year == currentYear {
			ytdRevenue = ytdRevenue.Add(bucket.TotalRevenue)
			ytdExpenses = ytdExpenses.Add(bucket.TotalExpenses)
		}
	}

	trend := make([]domain.MonthBucket, len(window))
	trendRevenue := decimal.Zero
	for i, key := range window {
		trend[i] = bucketOrZero(key)
		trendRevenue = trendRevenue.Add(trend[i].TotalRevenue)
	}

	timeMetrics := domain.TimeMetrics{
		CurrentMonth:  periodTotals(currentBucket),
		LastMonth:     periodTotals(lastBucket),
		RevenueGrowth: growthPercent(currentBucket.TotalRevenue, lastBucket.TotalRevenue),
		ExpenseGrowth: growthPercent(currentBucket.TotalExpenses, lastBucket.TotalExpenses),
		ProfitGrowth:  profitGrowthPercent(currentBucket.Profit, lastBucket.Profit),
		YTDRevenue:    ytdRevenue,
		YTDExpenses:   ytdExpenses,
		YTDProfit:     ytdRevenue.Sub(ytdExpenses),
		MonthlyTrend:  trend,
	}

	vehicleMetrics := domain.VehicleMetrics{
		ActiveCount:     activeCount,
		ProfitableCount: profitableCount,
		LossMakingCount: lossMakingCount,
		NoDataCount:     len(vehicles) - activeCount,
		TopByRevenue: rankStandings(standings, 5, func(a, b domain.VehicleStanding) bool {
			return a.Revenue.GreaterThan(b.Revenue)
		}),
		TopByProfit: rankStandings(standings, 5, func(a, b domain.VehicleStanding) bool {
			return a.Profit.GreaterThan(b.Profit)
		}),
		BottomByProfit: rankStandings(standings, 5, func(a, b domain.VehicleStanding) bool {
			return a.Profit.LessThan(b.Profit)
		}),
	}

	topExpenseCategory := "N/A"
	topExpenseValue := decimal.Zero
	for _, category := range expenseCategoryOrder {
		if value := expensesByCategory[category]; topExpenseCategory == "N/A" || value.GreaterThan(topExpenseValue) {
			topExpenseCategory = category
			topExpenseValue = value
		}
	}

	categoryMetrics := domain.CategoryMetrics{
		RevenueByCategory:  revenueByCategory,
		ExpensesByCategory: expensesByCategory,
		TopExpenseCategory: topExpenseCategory,
	}

	mostActive := domain.VehicleActivity{VehicleID: "", VehicleNumber: "N/A", TransactionCount: 0}
	for i, v := range vehicles {
		count := 0
		if agg := perVehicle[v.VehicleID]; agg != nil {
			count = agg.count
		}
		if i == 0 || count > mostActive.TransactionCount {
			mostActive = domain.VehicleActivity{
				VehicleID:        v.VehicleID,
				VehicleNumber:    v.VehicleNumber,
				TransactionCount: count,
			}
		}
	}

	revenuePerVehiclePerMonth := decimal.Zero
	if activeCount > 0 && len(trend) > 0 {
		revenuePerVehiclePerMonth = trendRevenue.Div(decimal.NewFromInt(int64(activeCount * len(trend))))
	}

	operational := domain.OperationalMetrics{
		RevenuePerVehiclePerMonth: revenuePerVehiclePerMonth,
		ExpenseRatio:              percentOf(totalExpenses, totalRevenue),
		MostActiveVehicle:         mostActive,
		AvgTransactionsPerVehicle: averageOver(decimal.NewFromInt(int64(totalTransactions)), activeCount),
	}

	return &domain.DashboardMetrics{
		Overall:     overall,
		Time:        timeMetrics,
		Vehicles:    vehicleMetrics,
		Customers:   customers,
		Categories:  categoryMetrics,
		Operational: operational,
	}, nil
}

// aggregateCustomers attributes revenue to customers transitively through
// invoices. Only revenue transactions carrying a resolvable invoiceID count;
// dangling invoice or customer references contribute nothing.
func (s *analyticsService) aggregateCustomers(ctx context.Context, txns []domain.VehicleTransaction) (domain.CustomerMetrics, error) {
	invoiceCustomer := map[string]string{} // invoiceID -> customerID, "" when dangling
	customerNames := map[string]string{}
	dangling := map[string]bool{} // customerIDs that no longer resolve
	totals := map[string]decimal.Decimal{}
	var order []string // first-seen order keeps top-5 ties stable

	for _, txn := range txns {
		if txn.Type != domain.Revenue || txn.InvoiceID == "" {
			continue
		}

		customerID, cached := invoiceCustomer[txn.InvoiceID]
		if !cached {
			invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, txn.InvoiceID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					invoiceCustomer[txn.InvoiceID] = ""
					continue
				}
				return domain.CustomerMetrics{}, fmt.Errorf("failed to resolve invoice %s: %w", txn.InvoiceID, err)
			}
			customerID = invoice.CustomerID
			invoiceCustomer[txn.InvoiceID] = customerID
		}
		if customerID == "" || dangling[customerID] {
			continue
		}

		if _, known := customerNames[customerID]; !known {
			customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					dangling[customerID] = true
					continue
				}
				return domain.CustomerMetrics{}, fmt.Errorf("failed to resolve customer %s: %w", customerID, err)
			}
			customerNames[customerID] = customer.Name
		}

		if _, seen := totals[customerID]; !seen {
			order = append(order, customerID)
			totals[customerID] = decimal.Zero
		}
		totals[customerID] = totals[customerID].Add(txn.Amount)
	}

	revenueSum := decimal.Zero
	entries := make([]domain.CustomerRevenue, 0, len(order))
	for _, customerID := range order {
		revenueSum = revenueSum.Add(totals[customerID])
		entries = append(entries, domain.CustomerRevenue{
			CustomerID: customerID,
			Name:       customerNames[customerID],
			Revenue:    totals[customerID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Revenue.GreaterThan(entries[j].Revenue)
	})
	top := entries
	if len(top) > 5 {
		top = top[:5]
	}
	if top == nil {
		top = []domain.CustomerRevenue{}
	}

	return domain.CustomerMetrics{
		DistinctCount:         len(order),
		TopByRevenue:          top,
		AvgRevenuePerCustomer: averageOver(revenueSum, len(order)),
	}, nil
}

func periodTotals(b domain.MonthBucket) domain.PeriodTotals {
	return domain.PeriodTotals{
		Revenue:  b.TotalRevenue,
		Expenses: b.TotalExpenses,
		Profit:   b.Profit,
	}
}

// percentOf returns part/base*100, or zero when the base is zero.
func percentOf(part, base decimal.Decimal) decimal.Decimal {
	if base.IsZero() {
		return decimal.Zero
	}
	return part.Div(base).Mul(oneHundred)
}

// growthPercent returns the month-over-month growth of current against
// previous, or zero when the previous-period base is zero.
func growthPercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(oneHundred)
}

// profitGrowthPercent divides by the absolute base so the sign of the result
// reflects the direction of change even when the base profit is negative.
func profitGrowthPercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(oneHundred)
}

func averageOver(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}

// rankStandings returns at most n entries sorted by the given ordering.
// The sort is stable so ties keep their natural input order.
func rankStandings(standings []domain.VehicleStanding, n int, before func(a, b domain.VehicleStanding) bool) []domain.VehicleStanding {
	ranked := make([]domain.VehicleStanding, 0, len(standings))
	ranked = append(ranked, standings...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return before(ranked[i], ranked[j])
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
