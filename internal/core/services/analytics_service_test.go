package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fleetserve/fleet_management_app/internal/apperrors"
	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func newTxn(vehicleID string, txnType domain.TransactionType, category string, amount int64, date, month string) domain.VehicleTransaction {
	return domain.VehicleTransaction{
		TransactionID: vehicleID + "-" + date + "-" + string(txnType),
		VehicleID:     vehicleID,
		Type:          txnType,
		Category:      category,
		Amount:        dec(amount),
		Date:          date,
		Month:         month,
	}
}

// AnalyticsServiceTestSuite fixes the clock at mid January 2025 so the
// current month key is always "2025-01" and the last month key "2024-12".
type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockVehicleRepo  *MockVehicleRepository
	mockInvoiceRepo  *MockInvoiceRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.AnalyticsService
	ctx              context.Context
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockVehicleRepo = new(MockVehicleRepository)
	s.mockInvoiceRepo = new(MockInvoiceRepository)
	s.mockCustomerRepo = new(MockCustomerRepository)
	s.service = services.NewAnalyticsService(
		s.mockTxnRepo,
		s.mockVehicleRepo,
		s.mockInvoiceRepo,
		s.mockCustomerRepo,
		services.WithAnalyticsClock(func() time.Time {
			return time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
		}),
	)
	s.ctx = context.Background()
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

// --- GetProfitabilityByVehicle ---

func (s *AnalyticsServiceTestSuite) TestProfitability_SingleMonth() {
	vehicle := &domain.Vehicle{VehicleID: "veh-1", VehicleNumber: "KA-01-1234"}
	txns := []domain.VehicleTransaction{
		newTxn("veh-1", domain.Revenue, "Rental Income", 1000, "2025-01-05", "2025-01"),
		newTxn("veh-1", domain.Expense, "Fuel", 400, "2025-01-10", "2025-01"),
	}
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "veh-1").Return(vehicle, nil)
	s.mockTxnRepo.On("ListTransactionsByVehicle", s.ctx, "veh-1").Return(txns, nil)

	result, err := s.service.GetProfitabilityByVehicle(s.ctx, "veh-1")

	require.NoError(s.T(), err)
	require.NotNil(s.T(), result)
	assert.Equal(s.T(), "veh-1", result.VehicleID)

	assert.Equal(s.T(), "2025-01", result.CurrentMonth.Month)
	assert.True(s.T(), result.CurrentMonth.TotalRevenue.Equal(dec(1000)))
	assert.True(s.T(), result.CurrentMonth.TotalExpenses.Equal(dec(400)))
	assert.True(s.T(), result.CurrentMonth.Profit.Equal(dec(600)))
	assert.Equal(s.T(), 2, result.CurrentMonth.TransactionCount)

	assert.Equal(s.T(), "2024-12", result.LastMonth.Month)
	assert.True(s.T(), result.LastMonth.Profit.IsZero())
	assert.Equal(s.T(), 0, result.LastMonth.TransactionCount)

	assert.True(s.T(), result.AllTimeRevenue.Equal(dec(1000)))
	assert.True(s.T(), result.AllTimeExpenses.Equal(dec(400)))
	assert.True(s.T(), result.AllTimeProfit.Equal(dec(600)))
	s.mockVehicleRepo.AssertExpectations(s.T())
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *AnalyticsServiceTestSuite) TestProfitability_RollingWindowComplete() {
	vehicle := &domain.Vehicle{VehicleID: "veh-1", VehicleNumber: "KA-01-1234"}
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "veh-1").Return(vehicle, nil)
	s.mockTxnRepo.On("ListTransactionsByVehicle", s.ctx, "veh-1").Return([]domain.VehicleTransaction{}, nil)

	result, err := s.service.GetProfitabilityByVehicle(s.ctx, "veh-1")

	require.NoError(s.T(), err)
	require.Len(s.T(), result.Months, 12)
	assert.Equal(s.T(), "2024-02", result.Months[0].Month)
	assert.Equal(s.T(), "2025-01", result.Months[11].Month)
	for i := 1; i < len(result.Months); i++ {
		assert.Greater(s.T(), result.Months[i].Month, result.Months[i-1].Month, "window must be ascending")
	}
	for _, bucket := range result.Months {
		assert.True(s.T(), bucket.TotalRevenue.IsZero())
		assert.True(s.T(), bucket.TotalExpenses.IsZero())
		assert.True(s.T(), bucket.Profit.IsZero())
		assert.Equal(s.T(), 0, bucket.TransactionCount)
	}
}

// Month keys already in canonical two-digit form and keys needing padding land
// in the same bucket; normalisation is idempotent across mixed input.
func (s *AnalyticsServiceTestSuite) TestProfitability_MixedKeyFormsShareBucket() {
	vehicle := &domain.Vehicle{VehicleID: "veh-1", VehicleNumber: "KA-01-1234"}
	txns := []domain.VehicleTransaction{
		newTxn("veh-1", domain.Revenue, "", 100, "2025-01-02", "2025-1"),
		newTxn("veh-1", domain.Revenue, "", 200, "2025-01-03", "2025-01"),
		newTxn("veh-1", domain.Revenue, "", 300, "2025-01-04", ""), // falls back to the date
	}
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "veh-1").Return(vehicle, nil)
	s.mockTxnRepo.On("ListTransactionsByVehicle", s.ctx, "veh-1").Return(txns, nil)

	result, err := s.service.GetProfitabilityByVehicle(s.ctx, "veh-1")

	require.NoError(s.T(), err)
	assert.True(s.T(), result.CurrentMonth.TotalRevenue.Equal(dec(600)))
	assert.Equal(s.T(), 3, result.CurrentMonth.TransactionCount)
}

// All-time totals are computed over the raw set, so a record with no usable
// month key still counts there while being excluded from every bucket.
func (s *AnalyticsServiceTestSuite) TestProfitability_UnbucketableCountsAllTimeOnly() {
	vehicle := &domain.Vehicle{VehicleID: "veh-1", VehicleNumber: "KA-01-1234"}
	txns := []domain.VehicleTransaction{
		newTxn("veh-1", domain.Revenue, "", 500, "2025-01-02", "2025-01"),
		{
			TransactionID: "orphan",
			VehicleID:     "veh-1",
			Type:          domain.Revenue,
			Amount:        dec(250),
			Date:          "",
			Month:         "",
		},
	}
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "veh-1").Return(vehicle, nil)
	s.mockTxnRepo.On("ListTransactionsByVehicle", s.ctx, "veh-1").Return(txns, nil)

	result, err := s.service.GetProfitabilityByVehicle(s.ctx, "veh-1")

	require.NoError(s.T(), err)
	assert.True(s.T(), result.AllTimeRevenue.Equal(dec(750)))
	assert.True(s.T(), result.CurrentMonth.TotalRevenue.Equal(dec(500)))

	bucketed := decimal.Zero
	for _, bucket := range result.Months {
		bucketed = bucketed.Add(bucket.TotalRevenue)
	}
	assert.True(s.T(), bucketed.Equal(dec(500)), "buckets must exclude the orphan record")
}

// When every record carries a usable key, the bucket profits reconcile
// exactly with the all-time profit.
func (s *AnalyticsServiceTestSuite) TestProfitability_ProfitConservation() {
	vehicle := &domain.Vehicle{VehicleID: "veh-1", VehicleNumber: "KA-01-1234"}
	txns := []domain.VehicleTransaction{
		newTxn("veh-1", domain.Revenue, "", 900, "2024-11-05", "2024-11"),
		newTxn("veh-1", domain.Expense, "", 150, "2024-11-20", "2024-11"),
		newTxn("veh-1", domain.Revenue, "", 700, "2024-12-01", "2024-12"),
		newTxn("veh-1", domain.Expense, "", 800, "2025-01-09", "2025-01"),
	}
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "veh-1").Return(vehicle, nil)
	s.mockTxnRepo.On("ListTransactionsByVehicle", s.ctx, "veh-1").Return(txns, nil)

	result, err := s.service.GetProfitabilityByVehicle(s.ctx, "veh-1")

	require.NoError(s.T(), err)
	bucketProfit := decimal.Zero
	for _, bucket := range result.Months {
		bucketProfit = bucketProfit.Add(bucket.Profit)
	}
	assert.True(s.T(), bucketProfit.Equal(result.AllTimeProfit),
		"bucket profits %s must equal all-time profit %s", bucketProfit, result.AllTimeProfit)
	assert.True(s.T(), result.AllTimeProfit.Equal(dec(650)))
}

func (s *AnalyticsServiceTestSuite) TestProfitability_UnknownVehicle() {
	s.mockVehicleRepo.On("FindVehicleByID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	result, err := s.service.GetProfitabilityByVehicle(s.ctx, "ghost")

	assert.Nil(s.T(), result)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
	s.mockTxnRepo.AssertNotCalled(s.T(), "ListTransactionsByVehicle", mock.Anything, mock.Anything)
}

// --- GetDashboardMetrics ---

func (s *AnalyticsServiceTestSuite) TestDashboard_EmptyFleet() {
	s.mockTxnRepo.On("ListTransactions", s.ctx).Return([]domain.VehicleTransaction{}, nil)
	s.mockVehicleRepo.On("ListVehicles", s.ctx).Return([]domain.Vehicle{}, nil)

	result, err := s.service.GetDashboardMetrics(s.ctx)

	require.NoError(s.T(), err)
	require.NotNil(s.T(), result)

	assert.True(s.T(), result.Overall.TotalRevenue.IsZero())
	assert.True(s.T(), result.Overall.ProfitMargin.IsZero(), "no revenue means zero margin, not an error")
	assert.True(s.T(), result.Overall.AvgRevenuePerVehicle.IsZero())
	assert.Equal(s.T(), 0, result.Overall.TotalTransactions)
	assert.True(s.T(), result.Overall.AvgTransactionValue.IsZero())

	assert.True(s.T(), result.Time.RevenueGrowth.IsZero())
	assert.True(s.T(), result.Time.ProfitGrowth.IsZero())
	require.Len(s.T(), result.Time.MonthlyTrend, 12)
	assert.Equal(s.T(), "2025-01", result.Time.MonthlyTrend[11].Month)

	assert.Empty(s.T(), result.Vehicles.TopByRevenue)
	assert.Empty(s.T(), result.Customers.TopByRevenue)
	assert.Equal(s.T(), "N/A", result.Categories.TopExpenseCategory)

	assert.Equal(s.T(), "", result.Operational.MostActiveVehicle.VehicleID)
	assert.Equal(s.T(), "N/A", result.Operational.MostActiveVehicle.VehicleNumber)
	assert.Equal(s.T(), 0, result.Operational.MostActiveVehicle.TransactionCount)
	assert.True(s.T(), result.Operational.ExpenseRatio.IsZero())
}

func (s *AnalyticsServiceTestSuite) TestDashboard_OverallAndTimeMetrics() {
	vehicles := []domain.Vehicle{
		{VehicleID: "veh-1", VehicleNumber: "KA-01-0001"},
		{VehicleID: "veh-2", VehicleNumber: "KA-01-0002"},
		{VehicleID: "veh-3", VehicleNumber: "KA-01-0003"}, // no transactions
	}
	txns := []domain.VehicleTransaction{
		newTxn("veh-1", domain.Revenue, "", 1000, "2024-12-05", "2024-12"),
		newTxn("veh-1", domain.Expense, "Fuel", 200, "2024-12-10", "2024-12"),
		newTxn("veh-1", domain.Revenue, "", 1500, "2025-01-05", "2025-01"),
		newTxn("veh-2", domain.Expense, "Maintenance", 700, "2025-01-08", "2025-01"),
	}
	s.mockTxnRepo.On("ListTransactions", s.ctx).Return(txns, nil)
	s.mockVehicleRepo.On("ListVehicles", s.ctx).Return(vehicles, nil)

	result, err := s.service.GetDashboardMetrics(s.ctx)

	require.NoError(s.T(), err)

	assert.True(s.T(), result.Overall.TotalRevenue.Equal(dec(2500)))
	assert.True(s.T(), result.Overall.TotalExpenses.Equal(dec(900)))
	assert.True(s.T(), result.Overall.NetProfit.Equal(dec(1600)))
	assert.Equal(s.T(), 4, result.Overall.TotalTransactions)
	// (2500+900)/4
	assert.True(s.T(), result.Overall.AvgTransactionValue.Equal(dec(850)))
	// 1600/2500*100
	assert.True(s.T(), result.Overall.ProfitMargin.Equal(dec(64)))

	// Current month 2025-01: revenue 1500, expenses 700. Last month: 1000/200.
	assert.True(s.T(), result.Time.CurrentMonth.Revenue.Equal(dec(1500)))
	assert.True(s.T(), result.Time.CurrentMonth.Expenses.Equal(dec(700)))
	assert.True(s.T(), result.Time.LastMonth.Revenue.Equal(dec(1000)))
	// (1500-1000)/1000*100
	assert.True(s.T(), result.Time.RevenueGrowth.Equal(dec(50)))
	// (700-200)/200*100
	assert.True(s.T(), result.Time.ExpenseGrowth.Equal(dec(250)))
	// (800-800)/800*100
	assert.True(s.T(), result.Time.ProfitGrowth.IsZero())

	// YTD only covers 2025 buckets.
	assert.True(s.T(), result.Time.YTDRevenue.Equal(dec(1500)))
	assert.True(s.T(), result.Time.YTDExpenses.Equal(dec(700)))
	assert.True(s.T(), result.Time.YTDProfit.Equal(dec(800)))

	assert.Equal(s.T(), 2, result.Vehicles.ActiveCount)
	assert.Equal(s.T(), 1, result.Vehicles.ProfitableCount)
	assert.Equal(s.T(), 1, result.Vehicles.LossMakingCount)
	assert.Equal(s.T(), 1, result.Vehicles.NoDataCount)

	assert.Equal(s.T(), "veh-1", result.Operational.MostActiveVehicle.VehicleID)
	assert.Equal(s.T(), 3, result.Operational.MostActiveVehicle.TransactionCount)
	// 900/2500*100
	assert.True(s.T(), result.Operational.ExpenseRatio.Equal(dec(36)))
}

// A negative last-month profit divides by its absolute value so recovery
// shows as positive growth.
func (s *AnalyticsServiceTestSuite) TestDashboard_ProfitGrowthFromLoss() {
	vehicles := []domain.Vehicle{{VehicleID: "veh-1", VehicleNumber: "KA-01-0001"}}
	txns := []domain.VehicleTransaction{
		newTxn("veh-1", domain.Expense, "", 100, "2024-12-10", "2024-12"), // profit -100
		newTxn("veh-1", domain.Revenue, "", 100, "2025-01-05", "2025-01"), // profit +100
	}
	s.mockTxnRepo.On("ListTransactions", s.ctx).Return(txns, nil)
	s.mockVehicleRepo.On("ListVehicles", s.ctx).Return(vehicles, nil)

	result, err := s.service.GetDashboardMetrics(s.ctx)

	require.NoError(s.T(), err)
	// (100 - (-100)) / |-100| * 100 = 200
	assert.True(s.T(), result.Time.ProfitGrowth.Equal(dec(200)))
}

func (s *AnalyticsServiceTestSuite) TestDashboard_CategoryDefaults() {
	vehicles := []domain.Vehicle{{VehicleID: "veh-1", VehicleNumber: "KA-01-0001"}}
	txns := []domain.VehicleTransaction{
		newTxn("veh-1", domain.Revenue, "", 100, "2025-01-02", "2025-01"),
		newTxn("veh-1", domain.Expense, "", 40, "2025-01-03", "2025-01"),
		newTxn("veh-1", domain.Expense, "Fuel", 60, "2025-01-04", "2025-01"),
	}
	s.mockTxnRepo.On("ListTransactions", s.ctx).Return(txns, nil)
	s.mockVehicleRepo.On("ListVehicles", s.ctx).Return(vehicles, nil)

	result, err := s.service.GetDashboardMetrics(s.ctx)

	require.NoError(s.T(), err)
	assert.True(s.T(), result.Categories.RevenueByCategory["Rental Income"].Equal(dec(100)))
	assert.True(s.T(), result.Categories.ExpensesByCategory["Other"].Equal(dec(40)))
	assert.True(s.T(), result.Categories.ExpensesByCategory["Fuel"].Equal(dec(60)))
	assert.Equal(s.T(), "Fuel", result.Categories.TopExpenseCategory)
}

func (s *AnalyticsServiceTestSuite) TestDashboard_TopFiveRankings() {
	var vehicles []domain.Vehicle
	var txns []domain.VehicleTransaction
	ids := []string{"veh-1", "veh-2", "veh-3", "veh-4", "veh-5", "veh-6", "veh-7"}
	for i, id := range ids {
		vehicles = append(vehicles, domain.Vehicle{VehicleID: id, VehicleNumber: "KA-01-000" + id})
		// veh-1 earns 100, veh-2 earns 200, ... veh-7 earns 700.
		txns = append(txns, newTxn(id, domain.Revenue, "", int64((i+1)*100), "2025-01-05", "2025-01"))
	}
	s.mockTxnRepo.On("ListTransactions", s.ctx).Return(txns, nil)
	s.mockVehicleRepo.On("ListVehicles", s.ctx).Return(vehicles, nil)

	result, err := s.service.GetDashboardMetrics(s.ctx)

	require.NoError(s.T(), err)
	require.Len(s.T(), result.Vehicles.TopByRevenue, 5)
	assert.Equal(s.T(), "veh-7", result.Vehicles.TopByRevenue[0].VehicleID)
	assert.Equal(s.T(), "veh-3", result.Vehicles.TopByRevenue[4].VehicleID)
	for i := 1; i < 5; i++ {
		assert.True(s.T(),
			result.Vehicles.TopByRevenue[i-1].Revenue.GreaterThanOrEqual(result.Vehicles.TopByRevenue[i].Revenue),
			"top-by-revenue must be descending")
	}

	require.Len(s.T(), result.Vehicles.BottomByProfit, 5)
	assert.Equal(s.T(), "veh-1", result.Vehicles.BottomByProfit[0].VehicleID)
}

func (s *AnalyticsServiceTestSuite) TestDashboard_CustomerAttribution() {
	vehicles := []domain.Vehicle{{VehicleID: "veh-1", VehicleNumber: "KA-01-0001"}}
	txns := []domain.VehicleTransaction{
		newTxn("veh-1", domain.Revenue, "", 500, "2025-01-02", "2025-01"),
		newTxn("veh-1", domain.Revenue, "", 300, "2025-01-03", "2025-01"),
		newTxn("veh-1", domain.Revenue, "", 900, "2025-01-04", "2025-01"),
	}
	txns[0].InvoiceID = "inv-1"
	txns[1].InvoiceID = "inv-1"
	txns[2].InvoiceID = "inv-dangling"

	s.mockTxnRepo.On("ListTransactions", s.ctx).Return(txns, nil)
	s.mockVehicleRepo.On("ListVehicles", s.ctx).Return(vehicles, nil)
	s.mockInvoiceRepo.On("FindInvoiceByID", s.ctx, "inv-1").
		Return(&domain.Invoice{InvoiceID: "inv-1", CustomerID: "cust-1"}, nil).Once()
	s.mockInvoiceRepo.On("FindInvoiceByID", s.ctx, "inv-dangling").
		Return(nil, apperrors.ErrNotFound).Once()
	s.mockCustomerRepo.On("FindCustomerByID", s.ctx, "cust-1").
		Return(&domain.Customer{CustomerID: "cust-1", Name: "Acme Logistics"}, nil).Once()

	result, err := s.service.GetDashboardMetrics(s.ctx)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, result.Customers.DistinctCount)
	require.Len(s.T(), result.Customers.TopByRevenue, 1)
	assert.Equal(s.T(), "Acme Logistics", result.Customers.TopByRevenue[0].Name)
	assert.True(s.T(), result.Customers.TopByRevenue[0].Revenue.Equal(dec(800)),
		"revenue on the dangling invoice must not be attributed")
	assert.True(s.T(), result.Customers.AvgRevenuePerCustomer.Equal(dec(800)))
	s.mockInvoiceRepo.AssertExpectations(s.T())
	s.mockCustomerRepo.AssertExpectations(s.T())
}

func (s *AnalyticsServiceTestSuite) TestDashboard_StoreFailurePropagates() {
	storeErr := errors.New("database is locked")
	s.mockTxnRepo.On("ListTransactions", s.ctx).Return(nil, storeErr)

	result, err := s.service.GetDashboardMetrics(s.ctx)

	assert.Nil(s.T(), result)
	assert.ErrorIs(s.T(), err, storeErr)
}
