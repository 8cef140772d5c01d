// controllers/barber.go
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

// CreateBarberInput defines the expected JSON structure for adding a barber
type CreateBarberInput struct {
	Name              string  `json:"name" binding:"required"`
	Phone             string  `json:"phone"`
	CommissionService float64 `json:"commissionService" binding:"min=0,max=100"`
	CommissionProduct float64 `json:"commissionProduct" binding:"min=0,max=100"`
}

// UpdateBarberInput defines the expected JSON structure for editing a barber.
// Rate changes only affect future sales; past items keep their snapshots.
type UpdateBarberInput struct {
	Name              *string  `json:"name"`
	Phone             *string  `json:"phone"`
	CommissionService *float64 `json:"commissionService" binding:"omitempty,min=0,max=100"`
	CommissionProduct *float64 `json:"commissionProduct" binding:"omitempty,min=0,max=100"`
	IsActive          *bool    `json:"isActive"`
}

// CreateBarber adds a barber to the roster
func CreateBarber(c *gin.Context) {
	var input CreateBarberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	barber := models.Barber{
		Name:              input.Name,
		Phone:             input.Phone,
		CommissionService: input.CommissionService,
		CommissionProduct: input.CommissionProduct,
		IsActive:          true,
	}

	if err := config.DB.Create(&barber).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create barber")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

// GetBarbers lists barbers; ?active=true narrows to the working roster
func GetBarbers(c *gin.Context) {
	query := config.DB.Order("name ASC")
	if c.Query("active") == "true" {
		query = query.Where("is_active = true")
	}

	var barbers []models.Barber
	if err := query.Find(&barbers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve barbers")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

// GetBarber retrieves a specific barber by ID
func GetBarber(c *gin.Context) {
	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	var barber models.Barber
	if err := config.DB.Where("id = ?", barberUUID).First(&barber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, barber)
}

// UpdateBarber edits a barber's details or rates
func UpdateBarber(c *gin.Context) {
	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	var input UpdateBarberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var barber models.Barber
	if err := config.DB.Where("id = ?", barberUUID).First(&barber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		barber.Name = *input.Name
	}
	if input.Phone != nil {
		barber.Phone = *input.Phone
	}
	if input.CommissionService != nil {
		barber.CommissionService = *input.CommissionService
	}
	if input.CommissionProduct != nil {
		barber.CommissionProduct = *input.CommissionProduct
	}
	if input.IsActive != nil {
		barber.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&barber).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update barber")
		return
	}

	c.JSON(http.StatusOK, barber)
}

// DeleteBarber deactivates a barber. Barbers are never hard-deleted so
// historical items and withdrawals keep resolving.
func DeleteBarber(c *gin.Context) {
	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	result := config.DB.Model(&models.Barber{}).
		Where("id = ?", barberUUID).
		Update("is_active", false)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate barber")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Barber deactivated"})
}
