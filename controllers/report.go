// controllers/report.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"barberpos-backend/config"
	"barberpos-backend/services"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetPeriodReport returns the full reporting-engine output for a window
// (?from=YYYY-MM-DD&to=YYYY-MM-DD, defaults to today)
func GetPeriodReport(c *gin.Context) {
	window, err := utils.ParseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	report, err := services.NewReportService(config.DB).FullReport(window)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetBarberCommission returns the commission reconciliation tuple for one
// barber and window. An unknown barber yields the all-zero summary.
func GetBarberCommission(c *gin.Context) {
	barberUUID, err := uuid.Parse(c.Param("barberId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	window, err := utils.ParseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := services.NewCommissionService(config.DB).Summarize(barberUUID, window)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute commission summary")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barberId": barberUUID,
		"from":     window.From,
		"to":       window.To,
		"summary":  summary,
	})
}

// GetTrend returns a dense revenue series (?granularity=daily|monthly,
// ?n=bucket count, default 14 days / 6 months)
func GetTrend(c *gin.Context) {
	reports := services.NewReportService(config.DB)
	now := time.Now()

	granularity := c.DefaultQuery("granularity", "daily")
	switch granularity {
	case "daily":
		days := 14
		if v, err := strconv.Atoi(c.Query("n")); err == nil && v > 0 {
			days = v
		}
		buckets, err := reports.DailyTrend(days, now)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build trend")
			return
		}
		c.JSON(http.StatusOK, buckets)

	case "monthly":
		months := 6
		if v, err := strconv.Atoi(c.Query("n")); err == nil && v > 0 {
			months = v
		}
		buckets, err := reports.MonthlyTrend(months, now)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build trend")
			return
		}
		c.JSON(http.StatusOK, buckets)

	default:
		utils.RespondWithError(c, http.StatusBadRequest, "granularity must be daily or monthly")
	}
}
