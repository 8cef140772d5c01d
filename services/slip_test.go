package services_test

import (
	"strings"
	"testing"
	"time"

	"barberpos-backend/models"
	"barberpos-backend/services"
	"barberpos-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSalarySlip_FiguresMatchSummaryVerbatim(t *testing.T) {
	barberID := uuid.New()
	items := []models.TransactionItem{
		serviceItem(barberID, "Budi", 100000, 40, 1),
		productItem(&barberID, "Pomade", 50000, 10, 1),
	}
	withdrawals := []models.Withdrawal{
		{ID: uuid.New(), BarberID: barberID, Amount: 15000, PaymentMethod: "cash", CreatedAt: time.Now()},
	}
	summary := services.SummarizeBarber(items, withdrawals)

	window := utils.Window{
		From: time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local),
		To:   time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local),
	}
	slip := services.BuildSalarySlip("Budi", window, summary, items, withdrawals, time.Now())

	// Every summary figure appears exactly as the aggregator computed it.
	assert.Contains(t, slip, utils.FormatRupiah(summary.ServiceRevenue))
	assert.Contains(t, slip, utils.FormatRupiah(summary.ProductRevenue))
	assert.Contains(t, slip, utils.FormatRupiah(summary.TotalCommission))
	assert.Contains(t, slip, utils.FormatRupiah(summary.TotalWithdrawn))
	assert.Contains(t, slip, utils.FormatRupiah(summary.Remaining))
	assert.Contains(t, slip, "Budi")
	assert.Contains(t, slip, "01 Aug 2026")
	assert.Contains(t, slip, "31 Aug 2026")
}

func TestBuildSalarySlip_NegativeRemainingRendered(t *testing.T) {
	summary := services.SummarizeBarber(nil, []models.Withdrawal{{Amount: 10000}})
	require.Equal(t, -10000.0, summary.Remaining)

	slip := services.BuildSalarySlip("Budi", utils.Window{From: time.Now(), To: time.Now()},
		summary, nil, nil, time.Now())

	assert.Contains(t, slip, "-Rp 10.000")
}

func TestBuildSalarySlip_EmptyPeriodSections(t *testing.T) {
	slip := services.BuildSalarySlip("Budi", utils.Window{From: time.Now(), To: time.Now()},
		services.BarberSummary{}, nil, nil, time.Now())

	assert.Contains(t, slip, "tidak ada transaksi")
	assert.Contains(t, slip, "tidak ada penarikan")
	assert.True(t, strings.Contains(slip, "Rp 0"), "zero figures render as Rp 0")
}
