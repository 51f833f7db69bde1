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

type AllocationHandler struct {
	svc *services.AllocationService
}

func NewAllocationHandler(svc *services.AllocationService) *AllocationHandler {
	return &AllocationHandler{svc: svc}
}

// GetProjects godoc
// @Summary List active projects for the bulk-edit screen
// @Tags allocations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Project
// @Failure 500 {object} response.ErrorResponse
// @Router /projects [get]
func (h *AllocationHandler) GetProjects(c *gin.Context) {
	projects, err := h.svc.ListActiveProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListByProject godoc
// @Summary List allocations of a project with utilized and remaining hours
// @Tags allocations
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} models.AllocationRow
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /allocations/project/{id} [get]
func (h *AllocationHandler) ListByProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	rows, err := h.svc.ListProjectAllocations(id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Validate godoc
// @Summary Check one proposed allocation value without applying it
// @Tags allocations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.ValidateAllocationDTO true "Proposed value"
// @Success 200 {object} dto.AllocationValidation
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /allocations/validate [post]
func (h *AllocationHandler) Validate(c *gin.Context) {
	var input dto.ValidateAllocationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	validation, err := h.svc.ValidateProposed(input.AllocationID, input.ProposedHours)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidHours):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrAllocationNotFound), errors.Is(err, services.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, validation)
}

// BulkUpdate godoc
// @Summary Apply a batch of independent allocation edits
// @Description Rows are validated and committed one by one; the response
// @Description always carries applied/rejected counts plus per-row outcomes.
// @Tags allocations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.BulkUpdateDTO true "Edits and reason"
// @Success 200 {object} dto.BulkUpdateResult
// @Failure 400 {object} response.ErrorResponse "Missing reason or oversized batch"
// @Router /allocations/bulk [put]
func (h *AllocationHandler) BulkUpdate(c *gin.Context) {
	var input dto.BulkUpdateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.svc.ApplyBulkUpdate(c, input, actorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
