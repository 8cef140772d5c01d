// services/report.go
package services

import (
	"time"

	"barberpos-backend/models"
	"barberpos-backend/utils"

	"gorm.io/gorm"
)

const topItemLimit = 5

// PeriodReport is the full reporting-engine output for one window. Every
// field is recomputed from freshly fetched rows on each call.
type PeriodReport struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	TotalRevenue     float64 `json:"totalRevenue"` // completed transactions only
	TransactionCount int     `json:"transactionCount"`
	TotalExpenses    float64 `json:"totalExpenses"`
	TotalWithdrawals float64 `json:"totalWithdrawals"`
	NetProfit        float64 `json:"netProfit"`

	Leaderboard        []LeaderboardRow      `json:"leaderboard"`
	PaymentBreakdown   []PaymentBreakdownRow `json:"paymentBreakdown"`
	ExpensesByCategory []ExpenseCategoryRow  `json:"expensesByCategory"`
	TopServices        []ItemSummary         `json:"topServices"`
	TopProducts        []ItemSummary         `json:"topProducts"`
}

// ReportService composes the pure aggregation folds over window-scoped
// fetches. It holds no state besides the database handle.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// FullReport produces every sub-report for the window.
func (s *ReportService) FullReport(window utils.Window) (*PeriodReport, error) {
	transactions, err := s.fetchTransactions(window)
	if err != nil {
		return nil, err
	}
	items, err := s.fetchItems(window)
	if err != nil {
		return nil, err
	}
	expenses, err := s.fetchExpenses(window)
	if err != nil {
		return nil, err
	}
	withdrawals, err := s.fetchWithdrawals(window)
	if err != nil {
		return nil, err
	}

	report := &PeriodReport{
		From:               window.From,
		To:                 window.To,
		TotalExpenses:      sumExpenses(expenses),
		TotalWithdrawals:   sumWithdrawals(withdrawals),
		NetProfit:          NetProfit(transactions, expenses, withdrawals),
		Leaderboard:        BuildLeaderboard(items),
		PaymentBreakdown:   BreakdownPayments(transactions),
		ExpensesByCategory: GroupExpensesByCategory(expenses),
		TopServices:        TopItems(items, models.ItemTypeService, topItemLimit),
		TopProducts:        TopItems(items, models.ItemTypeProduct, topItemLimit),
	}
	for _, tx := range transactions {
		if tx.PaymentStatus == models.PaymentCompleted {
			report.TotalRevenue += tx.TotalAmount
			report.TransactionCount++
		}
	}
	return report, nil
}

// DailyTrend returns a dense series of the last `days` calendar days.
func (s *ReportService) DailyTrend(days int, now time.Time) ([]TrendBucket, error) {
	from := utils.BeginningOfDay(now).AddDate(0, 0, 1-days)
	transactions, err := s.fetchTransactions(utils.Window{From: from, To: utils.EndOfDay(now)})
	if err != nil {
		return nil, err
	}
	return BuildDailyTrend(transactions, days, now), nil
}

// MonthlyTrend returns a dense series of the last `months` calendar months.
func (s *ReportService) MonthlyTrend(months int, now time.Time) ([]TrendBucket, error) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1-months, 0)
	transactions, err := s.fetchTransactions(utils.Window{From: first, To: utils.EndOfDay(now)})
	if err != nil {
		return nil, err
	}
	return BuildMonthlyTrend(transactions, months, now), nil
}

func (s *ReportService) fetchTransactions(window utils.Window) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.
		Where("created_at BETWEEN ? AND ?", window.From, window.To).
		Order("created_at ASC").
		Find(&transactions).Error
	return transactions, err
}

func (s *ReportService) fetchItems(window utils.Window) ([]models.TransactionItem, error) {
	var items []models.TransactionItem
	err := s.db.
		Where("created_at BETWEEN ? AND ?", window.From, window.To).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (s *ReportService) fetchExpenses(window utils.Window) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.
		Where("created_at BETWEEN ? AND ?", window.From, window.To).
		Order("created_at ASC").
		Find(&expenses).Error
	return expenses, err
}

func (s *ReportService) fetchWithdrawals(window utils.Window) ([]models.Withdrawal, error) {
	var withdrawals []models.Withdrawal
	err := s.db.
		Where("created_at BETWEEN ? AND ?", window.From, window.To).
		Order("created_at ASC").
		Find(&withdrawals).Error
	return withdrawals, err
}

func sumExpenses(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

func sumWithdrawals(withdrawals []models.Withdrawal) float64 {
	var total float64
	for _, w := range withdrawals {
		total += w.Amount
	}
	return total
}
