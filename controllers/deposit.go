// controllers/deposit.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpsertDepositInput struct {
	Date   string  `json:"date" binding:"required"` // YYYY-MM-DD, defaults validated below
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Notes  string  `json:"notes"`
}

// UpsertDeposit sets the day's opening cash float. A second write for the
// same date updates the existing row instead of duplicating it.
func UpsertDeposit(c *gin.Context) {
	var input UpsertDepositInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var deposit models.InitialDeposit
	err := config.DB.Where("date = ?", input.Date).First(&deposit).Error
	switch {
	case err == nil:
		deposit.Amount = input.Amount
		deposit.Notes = input.Notes
		if err := config.DB.Save(&deposit).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update deposit")
			return
		}
		c.JSON(http.StatusOK, deposit)

	case errors.Is(err, gorm.ErrRecordNotFound):
		deposit = models.InitialDeposit{
			Date:   input.Date,
			Amount: input.Amount,
			Notes:  input.Notes,
		}
		if err := config.DB.Create(&deposit).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record deposit")
			return
		}
		c.JSON(http.StatusCreated, deposit)

	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

// GetDeposits lists opening floats for a window
func GetDeposits(c *gin.Context) {
	window, err := utils.ParseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var deposits []models.InitialDeposit
	if err := config.DB.
		Where("date BETWEEN ? AND ?", window.From.Format("2006-01-02"), window.To.Format("2006-01-02")).
		Order("date DESC").
		Find(&deposits).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve deposits")
		return
	}

	c.JSON(http.StatusOK, deposits)
}

// DeleteDeposit removes a day's opening float (owner only)
func DeleteDeposit(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	result := config.DB.Where("date = ?", date).Delete(&models.InitialDeposit{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete deposit")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "No deposit recorded for that date")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deposit deleted successfully"})
}
