package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_response_coordinator/internal/models"
)

// @Summary Start response workflow
// @Description Start (or restart) the step-by-step response procedure for an incident. An empty category uses the incident's category. Requires API key.
// @Tags Workflow
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body StartWorkflowRequest false "Category override"
// @Success 201 {object} models.WorkflowState
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/workflow [post]
func (h *Handler) startWorkflow(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "startWorkflow").WithField("id", id)

	var input StartWorkflowRequest
	if !h.bindOptional(c, log, &input) {
		return
	}

	category := models.IncidentCategory(strings.ToUpper(strings.TrimSpace(input.Category)))
	state, err := h.workflowService.StartWorkflow(c.Request.Context(), id, category)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

// @Summary Get workflow state
// @Description Steps, completion progress and overdue flags evaluated now. Requires API key.
// @Tags Workflow
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} models.WorkflowState
// @Failure 404 {object} map[string]string "Workflow not started"
// @Router /incidents/{id}/workflow [get]
func (h *Handler) getWorkflow(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getWorkflow").WithField("id", id)

	state, err := h.workflowService.GetWorkflow(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary Toggle workflow step
// @Description Complete or un-complete a step. Completing requires all prerequisites to be completed. Requires API key.
// @Tags Workflow
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param index path int true "Step index"
// @Success 200 {object} models.WorkflowState
// @Failure 400 {object} map[string]string "Invalid step index"
// @Failure 404 {object} map[string]string "Workflow not started"
// @Failure 422 {object} PrerequisiteErrorResponse "Prerequisites not met"
// @Router /incidents/{id}/workflow/steps/{index}/toggle [post]
func (h *Handler) toggleStep(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "toggleStep").WithField("id", id)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid step index"})
		return
	}

	state, err := h.workflowService.ToggleStep(c.Request.Context(), id, index)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
