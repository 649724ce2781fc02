package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"phka/internal/services"
	"phka/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SheetController struct {
	sheetService services.SheetServiceInterface
}

func NewSheetController(sheetService services.SheetServiceInterface) *SheetController {
	return &SheetController{sheetService: sheetService}
}

func respondXlsx(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// ExportGuests godoc
// @Summary Export the guest list as a spreadsheet
// @Tags Sheets
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Event ID"
// @Success 200 {file} binary
// @Failure 403 {object} utils.APIResponse
// @Router /events/{id}/guests/export [get]
func (s *SheetController) ExportGuests(c *gin.Context) {
	data, filename, err := s.sheetService.ExportGuests(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	respondXlsx(c, data, filename)
}

func (s *SheetController) ExportGifts(c *gin.Context) {
	data, filename, err := s.sheetService.ExportGifts(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	respondXlsx(c, data, filename)
}

// ImportGuests godoc
// @Summary Import guests from a spreadsheet
// @Description Best-effort import; returns imported, skipped and per-row errors
// @Tags Sheets
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Event ID"
// @Param file formData file true "xlsx file"
// @Success 200 {object} utils.APIResponse
// @Router /events/{id}/guests/import [post]
func (s *SheetController) ImportGuests(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing file")
		return
	}

	// Reject wrong file types before touching the content.
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		utils.RespondError(c, http.StatusBadRequest, "Only .xlsx files are accepted")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read file")
		return
	}
	defer file.Close()

	result, err := s.sheetService.ImportGuests(c.Request.Context(), c.GetString("user_id"), c.Param("id"), file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Import finished")
}

// ImportTemplate serves the blank spreadsheet users fill in before
// importing. Public, no auth.
func (s *SheetController) ImportTemplate(c *gin.Context) {
	data, filename, err := s.sheetService.ImportTemplate()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	respondXlsx(c, data, filename)
}
