// controllers/shop.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/services"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShopStatus returns the open/closed gate
func GetShopStatus(c *gin.Context) {
	shop, err := loadShopStatus()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isOpen":   shop.IsOpen,
		"openedAt": shop.OpenedAt,
		"closedAt": shop.ClosedAt,
	})
}

// OpenShop opens the register for the day
func OpenShop(c *gin.Context) {
	shop, err := loadShopStatus()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if shop.IsOpen {
		utils.RespondWithError(c, http.StatusConflict, "Shop is already open")
		return
	}

	now := time.Now()
	shop.IsOpen = true
	shop.OpenedAt = &now
	shop.ClosedAt = nil
	if userID, exists := c.Get("userId"); exists {
		if id, err := uuid.Parse(userID.(string)); err == nil {
			shop.OpenedBy = &id
		}
	}

	if err := config.DB.Save(shop).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to open shop")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shop opened", "openedAt": shop.OpenedAt})
}

// CloseShop closes the register and relays the day's summary to the owner
func CloseShop(c *gin.Context) {
	shop, err := loadShopStatus()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if !shop.IsOpen {
		utils.RespondWithError(c, http.StatusConflict, "Shop is already closed")
		return
	}

	now := time.Now()
	shop.IsOpen = false
	shop.ClosedAt = &now

	if err := config.DB.Save(shop).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to close shop")
		return
	}

	if notifier != nil {
		notifier.SendDailySummary(services.NewReportService(config.DB))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shop closed", "closedAt": shop.ClosedAt})
}

// loadShopStatus fetches the singleton row, creating it on first use.
func loadShopStatus() (*models.ShopStatus, error) {
	var shop models.ShopStatus
	err := config.DB.First(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		shop = models.ShopStatus{IsOpen: false}
		if err := config.DB.Create(&shop).Error; err != nil {
			return nil, err
		}
		return &shop, nil
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}
