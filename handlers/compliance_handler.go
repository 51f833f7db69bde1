package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pmhours/pmhours-go/dto"
	"github.com/pmhours/pmhours-go/response"
	"github.com/pmhours/pmhours-go/services"
	"github.com/pmhours/pmhours-go/utils"
)

type ComplianceHandler struct {
	svc *services.ComplianceService
}

func NewComplianceHandler(svc *services.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{svc: svc}
}

// GetReport godoc
// @Summary Compliance report for one date
// @Tags compliance
// @Security BearerAuth
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.ComplianceReport
// @Failure 400 {object} response.ErrorResponse "Missing or malformed date"
// @Router /compliance/report [get]
func (h *ComplianceHandler) GetReport(c *gin.Context) {
	date, err := utils.ParseDateQuery(c, "date")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "date must be YYYY-MM-DD"})
		return
	}
	report, err := h.svc.GetReport(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetSettings godoc
// @Summary Current compliance settings
// @Tags compliance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ComplianceSettings
// @Router /compliance/settings [get]
func (h *ComplianceHandler) GetSettings(c *gin.Context) {
	settings, err := h.svc.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Replace compliance settings
// @Tags compliance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.UpdateComplianceSettingsDTO true "New settings"
// @Success 200 {object} models.ComplianceSettings
// @Failure 400 {object} response.FieldErrorResponse "Which field failed"
// @Router /compliance/settings [put]
func (h *ComplianceHandler) UpdateSettings(c *gin.Context) {
	var input dto.UpdateComplianceSettingsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	settings, err := h.svc.UpdateSettings(input)
	if err != nil {
		var fieldErr *services.FieldValidationError
		if errors.As(err, &fieldErr) {
			c.JSON(http.StatusBadRequest, response.FieldErrorResponse{Error: fieldErr.Message, Field: fieldErr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
