// services/aggregate.go
//
// Pure aggregation over ledger rows. Every function here is a fresh fold
// over the rows it is handed: no state is carried between calls, and stored
// snapshot values (subtotal, commission_amount) are summed as-is, never
// recomputed from live catalog or barber rates.
package services

import (
	"math"
	"sort"
	"time"

	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/google/uuid"
)

// BarberSummary is the commission reconciliation tuple for one barber over
// one window. Remaining may be negative when a barber is over-withdrawn.
type BarberSummary struct {
	ServiceRevenue    float64 `json:"serviceRevenue"`
	ProductRevenue    float64 `json:"productRevenue"`
	ServiceCommission float64 `json:"serviceCommission"`
	ProductCommission float64 `json:"productCommission"`
	TotalCommission   float64 `json:"totalCommission"`
	TotalWithdrawn    float64 `json:"totalWithdrawn"`
	Remaining         float64 `json:"remaining"`
}

type LeaderboardRow struct {
	BarberID        uuid.UUID `json:"barberId"`
	BarberName      string    `json:"barberName"`
	ServiceCount    int       `json:"serviceCount"`
	TotalRevenue    float64   `json:"totalRevenue"`
	TotalCommission float64   `json:"totalCommission"`
}

type PaymentBreakdownRow struct {
	Method     string  `json:"method"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ExpenseCategoryRow struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

type TrendBucket struct {
	Label            string  `json:"label"`
	Revenue          float64 `json:"revenue"`
	TransactionCount int     `json:"transactionCount"`
}

type ItemSummary struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// CommissionAmount computes the snapshot value written onto a transaction
// item at sale time: round(subtotal * rate / 100).
func CommissionAmount(subtotal, ratePercent float64) float64 {
	return math.Round(subtotal * ratePercent / 100)
}

// SummarizeBarber folds one barber's items and withdrawals into the
// reconciliation tuple. Empty input yields the all-zero summary.
func SummarizeBarber(items []models.TransactionItem, withdrawals []models.Withdrawal) BarberSummary {
	var s BarberSummary
	for _, item := range items {
		switch item.ItemType {
		case models.ItemTypeService:
			s.ServiceRevenue += item.Subtotal
			s.ServiceCommission += item.CommissionAmount
		case models.ItemTypeProduct:
			s.ProductRevenue += item.Subtotal
			s.ProductCommission += item.CommissionAmount
		}
	}
	s.TotalCommission = s.ServiceCommission + s.ProductCommission
	for _, w := range withdrawals {
		s.TotalWithdrawn += w.Amount
	}
	s.Remaining = s.TotalCommission - s.TotalWithdrawn
	return s
}

// BuildLeaderboard groups service items by barber. Barbers with no service
// activity in the window do not appear; ties in revenue break by name.
func BuildLeaderboard(items []models.TransactionItem) []LeaderboardRow {
	byBarber := make(map[uuid.UUID]*LeaderboardRow)
	for _, item := range items {
		if item.ItemType != models.ItemTypeService || item.BarberID == nil {
			continue
		}
		row, ok := byBarber[*item.BarberID]
		if !ok {
			row = &LeaderboardRow{BarberID: *item.BarberID, BarberName: item.BarberName}
			byBarber[*item.BarberID] = row
		}
		row.ServiceCount += item.Quantity
		row.TotalRevenue += item.Subtotal
		row.TotalCommission += item.CommissionAmount
	}

	rows := make([]LeaderboardRow, 0, len(byBarber))
	for _, row := range byBarber {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalRevenue != rows[j].TotalRevenue {
			return rows[i].TotalRevenue > rows[j].TotalRevenue
		}
		return rows[i].BarberName < rows[j].BarberName
	})
	return rows
}

// BreakdownPayments groups completed transactions by tender type and adds
// each method's share of the grand total.
func BreakdownPayments(transactions []models.Transaction) []PaymentBreakdownRow {
	byMethod := make(map[string]*PaymentBreakdownRow)
	var grand float64
	for _, tx := range transactions {
		if tx.PaymentStatus != models.PaymentCompleted {
			continue
		}
		row, ok := byMethod[tx.PaymentMethod]
		if !ok {
			row = &PaymentBreakdownRow{Method: tx.PaymentMethod}
			byMethod[tx.PaymentMethod] = row
		}
		row.Total += tx.TotalAmount
		row.Count++
		grand += tx.TotalAmount
	}

	rows := make([]PaymentBreakdownRow, 0, len(byMethod))
	for _, row := range byMethod {
		if grand > 0 {
			row.Percentage = row.Total / grand * 100
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Method < rows[j].Method
	})
	return rows
}

// GroupExpensesByCategory totals expenses per category, largest first.
func GroupExpensesByCategory(expenses []models.Expense) []ExpenseCategoryRow {
	byCategory := make(map[string]*ExpenseCategoryRow)
	for _, e := range expenses {
		row, ok := byCategory[e.Category]
		if !ok {
			row = &ExpenseCategoryRow{Category: e.Category}
			byCategory[e.Category] = row
		}
		row.Total += e.Amount
		row.Count++
	}

	rows := make([]ExpenseCategoryRow, 0, len(byCategory))
	for _, row := range byCategory {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// BuildDailyTrend buckets completed-transaction revenue into `days`
// consecutive calendar days ending at now. The series is dense: days with
// no activity report zero rather than being omitted.
func BuildDailyTrend(transactions []models.Transaction, days int, now time.Time) []TrendBucket {
	buckets := make([]TrendBucket, days)
	for i := 0; i < days; i++ {
		day := utils.BeginningOfDay(now).AddDate(0, 0, i-days+1)
		window := utils.Window{From: day, To: utils.EndOfDay(day)}
		bucket := TrendBucket{Label: day.Format("2006-01-02")}
		for _, tx := range transactions {
			if tx.PaymentStatus != models.PaymentCompleted || !window.Contains(tx.CreatedAt) {
				continue
			}
			bucket.Revenue += tx.TotalAmount
			bucket.TransactionCount++
		}
		buckets[i] = bucket
	}
	return buckets
}

// BuildMonthlyTrend is the month-granularity variant of BuildDailyTrend.
func BuildMonthlyTrend(transactions []models.Transaction, months int, now time.Time) []TrendBucket {
	buckets := make([]TrendBucket, months)
	for i := 0; i < months; i++ {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, i-months+1, 0)
		window := utils.Window{From: first, To: first.AddDate(0, 1, 0).Add(-time.Nanosecond)}
		bucket := TrendBucket{Label: first.Format("2006-01")}
		for _, tx := range transactions {
			if tx.PaymentStatus != models.PaymentCompleted || !window.Contains(tx.CreatedAt) {
				continue
			}
			bucket.Revenue += tx.TotalAmount
			bucket.TransactionCount++
		}
		buckets[i] = bucket
	}
	return buckets
}

// TopItems ranks items of one type by quantity sold, truncated to limit.
func TopItems(items []models.TransactionItem, itemType string, limit int) []ItemSummary {
	byName := make(map[string]*ItemSummary)
	for _, item := range items {
		if item.ItemType != itemType {
			continue
		}
		row, ok := byName[item.ItemName]
		if !ok {
			row = &ItemSummary{Name: item.ItemName}
			byName[item.ItemName] = row
		}
		row.Count += item.Quantity
		row.Revenue += item.Subtotal
	}

	rows := make([]ItemSummary, 0, len(byName))
	for _, row := range byName {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// NetProfit is completed revenue minus expenses minus withdrawals for the
// window. A negative result is a valid operational state.
func NetProfit(transactions []models.Transaction, expenses []models.Expense, withdrawals []models.Withdrawal) float64 {
	var revenue, spent, withdrawn float64
	for _, tx := range transactions {
		if tx.PaymentStatus == models.PaymentCompleted {
			revenue += tx.TotalAmount
		}
	}
	for _, e := range expenses {
		spent += e.Amount
	}
	for _, w := range withdrawals {
		withdrawn += w.Amount
	}
	return revenue - spent - withdrawn
}
