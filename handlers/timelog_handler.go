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

type TimeLogHandler struct {
	svc *services.TimeLogService
}

func NewTimeLogHandler(svc *services.TimeLogService) *TimeLogHandler {
	return &TimeLogHandler{svc: svc}
}

// Create godoc
// @Summary Log hours for the authenticated user
// @Tags timelogs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateTimeLogDTO true "Entry"
// @Success 201 {object} models.TimeLogEntry
// @Failure 400 {object} response.ErrorResponse
// @Router /timelogs [post]
func (h *TimeLogHandler) Create(c *gin.Context) {
	var input dto.CreateTimeLogDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.svc.LogTime(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidLogDate), errors.Is(err, services.ErrInvalidLogHours):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListMine godoc
// @Summary The authenticated user's entries for one date
// @Tags timelogs
// @Security BearerAuth
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} models.TimeLogEntry
// @Router /timelogs [get]
func (h *TimeLogHandler) ListMine(c *gin.Context) {
	date, err := utils.ParseDateQuery(c, "date")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "date must be YYYY-MM-DD"})
		return
	}
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.svc.ListByUserAndDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
