// controllers/withdrawal.go
package controllers

import (
	"errors"
	"net/http"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateWithdrawalInput struct {
	BarberID      uuid.UUID `json:"barberId" binding:"required"`
	Amount        float64   `json:"amount" binding:"required,gt=0"`
	PaymentMethod string    `json:"paymentMethod" binding:"required,oneof=cash transfer qris"`
	Notes         string    `json:"notes"`
}

// CreateWithdrawal records a commission payout. Over-withdrawing is allowed;
// the balance simply goes negative on reports.
func CreateWithdrawal(c *gin.Context) {
	var input CreateWithdrawalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var barber models.Barber
	if err := config.DB.Where("id = ?", input.BarberID).First(&barber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Barber not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	withdrawal := models.Withdrawal{
		BarberID:      input.BarberID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}

	if err := config.DB.Create(&withdrawal).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record withdrawal")
		return
	}

	c.JSON(http.StatusCreated, withdrawal)
}

// GetWithdrawals lists payouts for a window, optionally per barber
func GetWithdrawals(c *gin.Context) {
	window, err := utils.ParseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	query := config.DB.
		Where("created_at BETWEEN ? AND ?", window.From, window.To).
		Order("created_at DESC")
	if barberID := c.Query("barberId"); barberID != "" {
		barberUUID, err := uuid.Parse(barberID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
			return
		}
		query = query.Where("barber_id = ?", barberUUID)
	}

	var withdrawals []models.Withdrawal
	if err := query.Find(&withdrawals).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve withdrawals")
		return
	}

	c.JSON(http.StatusOK, withdrawals)
}

// DeleteWithdrawal removes a payout entry (owner only)
func DeleteWithdrawal(c *gin.Context) {
	withdrawalUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid withdrawal ID format")
		return
	}

	result := config.DB.Where("id = ?", withdrawalUUID).Delete(&models.Withdrawal{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete withdrawal")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Withdrawal not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Withdrawal deleted successfully"})
}
