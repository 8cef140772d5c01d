package services_test

import (
	"testing"
	"time"

	"barberpos-backend/models"
	"barberpos-backend/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceItem(barberID uuid.UUID, barberName string, subtotal, rate float64, qty int) models.TransactionItem {
	return models.TransactionItem{
		ID:               uuid.New(),
		ItemName:         "Potong Rambut",
		ItemType:         models.ItemTypeService,
		Quantity:         qty,
		UnitPrice:        subtotal / float64(qty),
		Subtotal:         subtotal,
		BarberID:         &barberID,
		BarberName:       barberName,
		CommissionRate:   rate,
		CommissionAmount: services.CommissionAmount(subtotal, rate),
	}
}

func productItem(barberID *uuid.UUID, name string, subtotal, rate float64, qty int) models.TransactionItem {
	item := models.TransactionItem{
		ID:        uuid.New(),
		ItemName:  name,
		ItemType:  models.ItemTypeProduct,
		Quantity:  qty,
		UnitPrice: subtotal / float64(qty),
		Subtotal:  subtotal,
		BarberID:  barberID,
	}
	if barberID != nil {
		item.CommissionRate = rate
		item.CommissionAmount = services.CommissionAmount(subtotal, rate)
	}
	return item
}

func completedTx(method string, amount float64, at time.Time) models.Transaction {
	return models.Transaction{
		ID:            uuid.New(),
		TotalAmount:   amount,
		PaymentMethod: method,
		PaymentStatus: models.PaymentCompleted,
		CreatedAt:     at,
	}
}

func TestCommissionAmount(t *testing.T) {
	assert.Equal(t, 40000.0, services.CommissionAmount(100000, 40))
	assert.Equal(t, 0.0, services.CommissionAmount(100000, 0))
	// Rounded to whole rupiah
	assert.Equal(t, 33333.0, services.CommissionAmount(99999, 33.333))
}

func TestSummarizeBarber_BasicCommissionFlow(t *testing.T) {
	// Barber X, 40% service rate, one 100k service item, one 15k withdrawal.
	barberID := uuid.New()
	items := []models.TransactionItem{serviceItem(barberID, "Barber X", 100000, 40, 1)}
	withdrawals := []models.Withdrawal{{ID: uuid.New(), BarberID: barberID, Amount: 15000}}

	s := services.SummarizeBarber(items, withdrawals)

	assert.Equal(t, 100000.0, s.ServiceRevenue)
	assert.Equal(t, 40000.0, s.ServiceCommission)
	assert.Equal(t, 40000.0, s.TotalCommission)
	assert.Equal(t, 15000.0, s.TotalWithdrawn)
	assert.Equal(t, 25000.0, s.Remaining)
}

func TestSummarizeBarber_OverWithdrawalIsValid(t *testing.T) {
	barberID := uuid.New()
	items := []models.TransactionItem{serviceItem(barberID, "Barber X", 100000, 40, 1)}
	withdrawals := []models.Withdrawal{{ID: uuid.New(), BarberID: barberID, Amount: 50000}}

	s := services.SummarizeBarber(items, withdrawals)

	assert.Equal(t, -10000.0, s.Remaining)
}

func TestSummarizeBarber_EmptyPeriodYieldsZeroTuple(t *testing.T) {
	s := services.SummarizeBarber(nil, nil)
	assert.Equal(t, services.BarberSummary{}, s)
}

func TestSummarizeBarber_ConservationInvariant(t *testing.T) {
	barberID := uuid.New()
	tests := []struct {
		name        string
		items       []models.TransactionItem
		withdrawals []models.Withdrawal
	}{
		{name: "empty"},
		{
			name:  "items only",
			items: []models.TransactionItem{serviceItem(barberID, "A", 80000, 35, 2)},
		},
		{
			name:        "withdrawals only",
			withdrawals: []models.Withdrawal{{Amount: 20000}, {Amount: 5000}},
		},
		{
			name: "mixed item types",
			items: []models.TransactionItem{
				serviceItem(barberID, "A", 120000, 40, 3),
				productItem(&barberID, "Pomade", 45000, 10, 1),
				productItem(nil, "Razor", 30000, 0, 2),
			},
			withdrawals: []models.Withdrawal{{Amount: 60000}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := services.SummarizeBarber(tt.items, tt.withdrawals)
			assert.Equal(t, s.TotalCommission-s.TotalWithdrawn, s.Remaining)
			assert.Equal(t, s.ServiceCommission+s.ProductCommission, s.TotalCommission)
		})
	}
}

func TestSummarizeBarber_UsesStoredSnapshotsOnly(t *testing.T) {
	// A rate edit after the sale must not change historical figures: the
	// stored commission_amount wins even if it disagrees with rate*subtotal.
	barberID := uuid.New()
	item := serviceItem(barberID, "A", 100000, 40, 1)
	item.CommissionRate = 60 // simulate a later roster edit leaking into the row
	item.CommissionAmount = 40000

	s := services.SummarizeBarber([]models.TransactionItem{item}, nil)

	assert.Equal(t, 40000.0, s.TotalCommission)
}

func TestSummarizeBarber_Idempotent(t *testing.T) {
	barberID := uuid.New()
	items := []models.TransactionItem{
		serviceItem(barberID, "A", 100000, 40, 1),
		productItem(&barberID, "Pomade", 50000, 10, 2),
	}
	withdrawals := []models.Withdrawal{{Amount: 25000}}

	first := services.SummarizeBarber(items, withdrawals)
	second := services.SummarizeBarber(items, withdrawals)

	assert.Equal(t, first, second)
}

func TestBuildLeaderboard(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	items := []models.TransactionItem{
		serviceItem(alice, "Alice", 100000, 40, 2),
		serviceItem(alice, "Alice", 50000, 40, 1),
		serviceItem(bob, "Bob", 200000, 30, 4),
		productItem(&alice, "Pomade", 999999, 10, 1), // products never rank
		productItem(nil, "Razor", 10000, 0, 1),
	}

	rows := services.BuildLeaderboard(items)

	require.Len(t, rows, 2)
	assert.Equal(t, "Bob", rows[0].BarberName)
	assert.Equal(t, 200000.0, rows[0].TotalRevenue)
	assert.Equal(t, 4, rows[0].ServiceCount)
	assert.Equal(t, "Alice", rows[1].BarberName)
	assert.Equal(t, 150000.0, rows[1].TotalRevenue)
	assert.Equal(t, 3, rows[1].ServiceCount)
	assert.Equal(t, services.CommissionAmount(100000, 40)+services.CommissionAmount(50000, 40),
		rows[1].TotalCommission)
}

func TestBuildLeaderboard_ZeroActivityBarbersOmitted(t *testing.T) {
	rows := services.BuildLeaderboard(nil)
	assert.Empty(t, rows)
}

func TestBuildLeaderboard_RevenueTiesBreakByName(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	items := []models.TransactionItem{
		serviceItem(b, "Zed", 100000, 40, 1),
		serviceItem(a, "Andi", 100000, 40, 1),
	}

	rows := services.BuildLeaderboard(items)

	require.Len(t, rows, 2)
	assert.Equal(t, "Andi", rows[0].BarberName)
	assert.Equal(t, "Zed", rows[1].BarberName)
}

func TestBreakdownPayments_PercentageShares(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		completedTx(models.PaymentCash, 100000, now),
		completedTx(models.PaymentTransfer, 50000, now),
		completedTx(models.PaymentQRIS, 50000, now),
	}

	rows := services.BreakdownPayments(transactions)

	require.Len(t, rows, 3)
	assert.Equal(t, models.PaymentCash, rows[0].Method)
	assert.Equal(t, 100000.0, rows[0].Total)
	assert.Equal(t, 50.0, rows[0].Percentage)
	assert.Equal(t, 25.0, rows[1].Percentage)
	assert.Equal(t, 25.0, rows[2].Percentage)
}

func TestBreakdownPayments_IgnoresPending(t *testing.T) {
	now := time.Now()
	pending := completedTx(models.PaymentCash, 70000, now)
	pending.PaymentStatus = models.PaymentPending

	rows := services.BreakdownPayments([]models.Transaction{
		pending,
		completedTx(models.PaymentQRIS, 30000, now),
	})

	require.Len(t, rows, 1)
	assert.Equal(t, models.PaymentQRIS, rows[0].Method)
	assert.Equal(t, 100.0, rows[0].Percentage)
}

func TestGroupExpensesByCategory(t *testing.T) {
	expenses := []models.Expense{
		{Category: "listrik", Amount: 200000},
		{Category: "kopi", Amount: 50000},
		{Category: "kopi", Amount: 25000},
	}

	rows := services.GroupExpensesByCategory(expenses)

	require.Len(t, rows, 2)
	assert.Equal(t, "listrik", rows[0].Category)
	assert.Equal(t, 200000.0, rows[0].Total)
	assert.Equal(t, 1, rows[0].Count)
	assert.Equal(t, "kopi", rows[1].Category)
	assert.Equal(t, 75000.0, rows[1].Total)
	assert.Equal(t, 2, rows[1].Count)
}

func TestBuildDailyTrend_DenseSeries(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	transactions := []models.Transaction{
		completedTx(models.PaymentCash, 100000, now.AddDate(0, 0, -1)),
		completedTx(models.PaymentCash, 50000, now),
	}

	buckets := services.BuildDailyTrend(transactions, 14, now)

	require.Len(t, buckets, 14)
	assert.Equal(t, "2026-08-28", buckets[13].Label)
	assert.Equal(t, 50000.0, buckets[13].Revenue)
	assert.Equal(t, 100000.0, buckets[12].Revenue)
	for _, b := range buckets[:12] {
		assert.Zero(t, b.Revenue)
		assert.Zero(t, b.TransactionCount)
	}
}

func TestBuildDailyTrend_EmptyRowsStillDense(t *testing.T) {
	buckets := services.BuildDailyTrend(nil, 14, time.Now())
	require.Len(t, buckets, 14)
	for _, b := range buckets {
		assert.GreaterOrEqual(t, b.Revenue, 0.0)
	}
}

func TestBuildMonthlyTrend_DenseSeries(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.Local)
	transactions := []models.Transaction{
		completedTx(models.PaymentCash, 300000, time.Date(2026, 7, 2, 9, 0, 0, 0, time.Local)),
	}

	buckets := services.BuildMonthlyTrend(transactions, 6, now)

	require.Len(t, buckets, 6)
	assert.Equal(t, "2026-03", buckets[0].Label)
	assert.Equal(t, "2026-08", buckets[5].Label)
	assert.Equal(t, 300000.0, buckets[4].Revenue)
}

func TestTopItems(t *testing.T) {
	items := []models.TransactionItem{
		productItem(nil, "Pomade", 90000, 0, 3),
		productItem(nil, "Pomade", 30000, 0, 1),
		productItem(nil, "Razor", 40000, 0, 2),
		productItem(nil, "Tonic", 15000, 0, 1),
		productItem(nil, "Wax", 20000, 0, 1),
		productItem(nil, "Comb", 5000, 0, 1),
		productItem(nil, "Oil", 25000, 0, 1),
	}

	rows := services.TopItems(items, models.ItemTypeProduct, 5)

	require.Len(t, rows, 5)
	assert.Equal(t, "Pomade", rows[0].Name)
	assert.Equal(t, 4, rows[0].Count)
	assert.Equal(t, 120000.0, rows[0].Revenue)
	assert.Equal(t, "Razor", rows[1].Name)
	// Count ties break alphabetically
	assert.Equal(t, "Comb", rows[2].Name)
}

func TestNetProfit(t *testing.T) {
	now := time.Now()
	pending := completedTx(models.PaymentCash, 999999, now)
	pending.PaymentStatus = models.PaymentPending

	profit := services.NetProfit(
		[]models.Transaction{completedTx(models.PaymentCash, 500000, now), pending},
		[]models.Expense{{Amount: 150000}},
		[]models.Withdrawal{{Amount: 200000}},
	)

	assert.Equal(t, 150000.0, profit)
}

func TestNetProfit_MayBeNegative(t *testing.T) {
	profit := services.NetProfit(nil, []models.Expense{{Amount: 100000}}, nil)
	assert.Equal(t, -100000.0, profit)
}
