// services/export.go
package services

import (
	"errors"
	"fmt"
	"time"

	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	ExportTransactions = "transaksi"
	ExportExpenses     = "pengeluaran"
	ExportWithdrawals  = "penarikan"
	ExportFull         = "laporan_lengkap"
)

// ErrNoExportData means no sheet had any rows for the window; the caller
// reports "no data" instead of producing an empty workbook.
var ErrNoExportData = errors.New("no data for period")

// ErrUnknownExportKind rejects kinds outside the fixed set.
var ErrUnknownExportKind = errors.New("unknown export kind")

// ExportFileName follows the fixed convention {kind}_{periodLabel}_{YYYYMMDD}.xlsx,
// where the trailing date is the generation date.
func ExportFileName(kind, periodLabel string, generatedAt time.Time) string {
	return fmt.Sprintf("%s_%s_%s.xlsx", kind, periodLabel, generatedAt.Format("20060102"))
}

// ExportService projects ledger rows 1:1 into xlsx sheets. Sheets with zero
// source rows are omitted from the workbook.
type ExportService struct {
	db *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{db: db}
}

// Workbook builds the workbook for one export kind and window and returns it
// with its conventional filename.
func (s *ExportService) Workbook(kind string, window utils.Window) (*excelize.File, string, error) {
	f := excelize.NewFile()
	sheets := 0

	withTransactions := kind == ExportTransactions || kind == ExportFull
	withExpenses := kind == ExportExpenses || kind == ExportFull
	withWithdrawals := kind == ExportWithdrawals || kind == ExportFull
	if !withTransactions && !withExpenses && !withWithdrawals {
		return nil, "", ErrUnknownExportKind
	}

	if withTransactions {
		n, err := s.addTransactionSheet(f, window)
		if err != nil {
			return nil, "", err
		}
		sheets += n
	}
	if withExpenses {
		n, err := s.addExpenseSheet(f, window)
		if err != nil {
			return nil, "", err
		}
		sheets += n
	}
	if withWithdrawals {
		n, err := s.addWithdrawalSheet(f, window)
		if err != nil {
			return nil, "", err
		}
		sheets += n
	}

	if sheets == 0 {
		return nil, "", ErrNoExportData
	}

	// Drop excelize's default sheet; our own sheets carry the data.
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(0)

	return f, ExportFileName(kind, window.Label(), time.Now()), nil
}

func (s *ExportService) addTransactionSheet(f *excelize.File, window utils.Window) (int, error) {
	var transactions []models.Transaction
	if err := s.db.Preload("Items").
		Where("created_at BETWEEN ? AND ?", window.From, window.To).
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		return 0, err
	}
	if len(transactions) == 0 {
		return 0, nil
	}

	sheet := "Transaksi"
	f.NewSheet(sheet)
	headers := []interface{}{"Tanggal", "Item", "Tipe", "Barber", "Qty", "Harga Satuan", "Subtotal", "Metode", "Status"}
	f.SetSheetRow(sheet, "A1", &headers)

	row := 2
	for _, tx := range transactions {
		for _, item := range tx.Items {
			cells := []interface{}{
				tx.CreatedAt.Format("2006-01-02 15:04"),
				item.ItemName,
				item.ItemType,
				item.BarberName,
				item.Quantity,
				item.UnitPrice,
				item.Subtotal,
				tx.PaymentMethod,
				tx.PaymentStatus,
			}
			f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &cells)
			row++
		}
	}
	return 1, nil
}

func (s *ExportService) addExpenseSheet(f *excelize.File, window utils.Window) (int, error) {
	var expenses []models.Expense
	if err := s.db.
		Where("created_at BETWEEN ? AND ?", window.From, window.To).
		Order("created_at ASC").
		Find(&expenses).Error; err != nil {
		return 0, err
	}
	if len(expenses) == 0 {
		return 0, nil
	}

	sheet := "Pengeluaran"
	f.NewSheet(sheet)
	headers := []interface{}{"Tanggal", "Deskripsi", "Kategori", "Metode", "Jumlah"}
	f.SetSheetRow(sheet, "A1", &headers)

	for i, e := range expenses {
		cells := []interface{}{
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Description,
			e.Category,
			e.PaymentMethod,
			e.Amount,
		}
		f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells)
	}
	return 1, nil
}

func (s *ExportService) addWithdrawalSheet(f *excelize.File, window utils.Window) (int, error) {
	var withdrawals []models.Withdrawal
	if err := s.db.
		Where("created_at BETWEEN ? AND ?", window.From, window.To).
		Order("created_at ASC").
		Find(&withdrawals).Error; err != nil {
		return 0, err
	}
	if len(withdrawals) == 0 {
		return 0, nil
	}

	barberNames, err := s.barberNames()
	if err != nil {
		return 0, err
	}

	sheet := "Penarikan"
	f.NewSheet(sheet)
	headers := []interface{}{"Tanggal", "Barber", "Metode", "Jumlah", "Catatan"}
	f.SetSheetRow(sheet, "A1", &headers)

	for i, w := range withdrawals {
		cells := []interface{}{
			w.CreatedAt.Format("2006-01-02 15:04"),
			barberNames[w.BarberID.String()],
			w.PaymentMethod,
			w.Amount,
			w.Notes,
		}
		f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells)
	}
	return 1, nil
}

// barberNames resolves ids to names for withdrawal rows. Unscoped so rows
// referencing deactivated barbers still render a name.
func (s *ExportService) barberNames() (map[string]string, error) {
	var barbers []models.Barber
	if err := s.db.Unscoped().Find(&barbers).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(barbers))
	for _, b := range barbers {
		names[b.ID.String()] = b.Name
	}
	return names, nil
}
