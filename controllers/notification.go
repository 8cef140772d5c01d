// controllers/notification.go
package controllers

import (
	"net/http"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetNotifications lists relay attempts for a window (owner only)
func GetNotifications(c *gin.Context) {
	window, err := utils.ParseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	query := config.DB.
		Where("sent_at BETWEEN ? AND ?", window.From, window.To).
		Order("sent_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var logs []models.NotificationLog
	if err := query.Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notifications")
		return
	}

	c.JSON(http.StatusOK, logs)
}
