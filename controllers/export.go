// controllers/export.go
package controllers

import (
	"errors"
	"net/http"

	"barberpos-backend/config"
	"barberpos-backend/services"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
)

// ExportWorkbook streams an xlsx export (owner only). Kind is one of
// transaksi, pengeluaran, penarikan or laporan_lengkap.
func ExportWorkbook(c *gin.Context) {
	kind := c.Param("kind")

	window, err := utils.ParseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	file, filename, err := services.NewExportService(config.DB).Workbook(kind, window)
	switch {
	case errors.Is(err, services.ErrUnknownExportKind):
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown export kind: "+kind)
		return
	case errors.Is(err, services.ErrNoExportData):
		utils.RespondWithError(c, http.StatusNotFound, "No data for period")
		return
	case err != nil:
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build export")
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := file.Write(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to write export")
	}
}
