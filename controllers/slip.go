// controllers/slip.go
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

// GetSalarySlip renders the printable slip for one barber and window. The
// figures come straight from the commission summary; the renderer does no
// arithmetic of its own.
func GetSalarySlip(c *gin.Context) {
	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	window, err := utils.ParseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
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

	summary, items, withdrawals, err := services.NewCommissionService(config.DB).
		SummarizeWithDetail(barberUUID, window)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute commission summary")
		return
	}

	slip := services.BuildSalarySlip(barber.Name, window, summary, items, withdrawals, time.Now())

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, slip)
}
