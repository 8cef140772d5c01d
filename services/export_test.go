package services_test

import (
	"testing"
	"time"

	"barberpos-backend/services"
	"barberpos-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestExportFileName(t *testing.T) {
	generated := time.Date(2026, 8, 28, 15, 30, 0, 0, time.Local)
	window := utils.Window{
		From: time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local),
		To:   time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local),
	}

	assert.Equal(t, "transaksi_20260801-20260831_20260828.xlsx",
		services.ExportFileName(services.ExportTransactions, window.Label(), generated))
	assert.Equal(t, "laporan_lengkap_20260801-20260831_20260828.xlsx",
		services.ExportFileName(services.ExportFull, window.Label(), generated))
}

func TestExportFileName_SingleDayWindow(t *testing.T) {
	generated := time.Date(2026, 8, 28, 15, 30, 0, 0, time.Local)
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
	window := utils.Window{From: day, To: utils.EndOfDay(day)}

	assert.Equal(t, "pengeluaran_20260828_20260828.xlsx",
		services.ExportFileName(services.ExportExpenses, window.Label(), generated))
}
