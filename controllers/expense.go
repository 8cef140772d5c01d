// controllers/expense.go
package controllers

import (
	"net/http"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateExpenseInput struct {
	Description   string  `json:"description" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Category      string  `json:"category" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required,oneof=cash transfer qris"`
}

// CreateExpense records an operating expense
func CreateExpense(c *gin.Context) {
	var input CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	expense := models.Expense{
		Description:   input.Description,
		Amount:        input.Amount,
		Category:      input.Category,
		PaymentMethod: input.PaymentMethod,
	}

	if err := config.DB.Create(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record expense")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses lists expenses for a window, optionally per category
func GetExpenses(c *gin.Context) {
	window, err := utils.ParseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	query := config.DB.
		Where("created_at BETWEEN ? AND ?", window.From, window.To).
		Order("created_at DESC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// DeleteExpense removes an expense entry (owner only)
func DeleteExpense(c *gin.Context) {
	expenseUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	result := config.DB.Where("id = ?", expenseUUID).Delete(&models.Expense{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete expense")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
