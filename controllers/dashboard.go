// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/services"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview composes today's headline numbers with a 14-day
// revenue trend. Everything is recomputed from today's rows on each call.
func GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	today := utils.Window{From: utils.BeginningOfDay(now), To: utils.EndOfDay(now)}

	reports := services.NewReportService(config.DB)

	report, err := reports.FullReport(today)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	trend, err := reports.DailyTrend(14, now)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	var shop models.ShopStatus
	if err := config.DB.First(&shop).Error; err != nil {
		// No row yet means the register was never opened; report closed.
		shop = models.ShopStatus{IsOpen: false}
	}

	var deposit models.InitialDeposit
	var openingFloat float64
	if err := config.DB.Where("date = ?", now.Format("2006-01-02")).
		First(&deposit).Error; err == nil {
		openingFloat = deposit.Amount
	}

	var lowStockCount int64
	config.DB.Model(&models.Product{}).
		Where("is_active = true AND stock <= min_stock").
		Count(&lowStockCount)

	c.JSON(http.StatusOK, gin.H{
		"shopOpen":         shop.IsOpen,
		"openingFloat":     openingFloat,
		"todayRevenue":     report.TotalRevenue,
		"todayCount":       report.TransactionCount,
		"todayExpenses":    report.TotalExpenses,
		"todayNetProfit":   report.NetProfit,
		"paymentBreakdown": report.PaymentBreakdown,
		"leaderboard":      report.Leaderboard,
		"trend":            trend,
		"lowStockCount":    lowStockCount,
	})
}
