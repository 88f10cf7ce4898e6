package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_response_coordinator/internal/models"
)

// @Summary List ERT roster
// @Description Current emergency response team members with their dispatch status. Requires API key.
// @Tags ERT
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.ERTStaffMember
// @Router /ert/staff [get]
func (h *Handler) listStaff(c *gin.Context) {
	c.JSON(http.StatusOK, h.dispatchService.ListRoster(c.Request.Context()))
}

// @Summary Add or update an ERT member
// @Description Upsert a roster member. Status defaults to AVAILABLE. Requires API key.
// @Tags ERT
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param staff body StaffRequest true "Staff member"
// @Success 200 {object} models.ERTStaffMember
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /ert/staff [post]
func (h *Handler) upsertStaff(c *gin.Context) {
	var input StaffRequest
	log := h.logger.WithField("method", "upsertStaff")

	if !h.bind(c, log, &input) {
		return
	}

	member, err := h.dispatchService.UpsertStaff(c.Request.Context(), DTOToStaffModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// @Summary Confirm dispatch status
// @Description Callback for the dispatch system to reflect a confirmed staff status into the roster. Requires API key.
// @Tags ERT
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Staff ID"
// @Param request body ConfirmDispatchRequest true "Confirmed status"
// @Success 200 {object} models.ERTStaffMember
// @Failure 404 {object} map[string]string "Staff member not found"
// @Router /ert/staff/{id}/confirm [post]
func (h *Handler) confirmDispatch(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "confirmDispatch").WithField("staff_id", id)

	var input ConfirmDispatchRequest
	if !h.bind(c, log, &input) {
		return
	}

	member, err := h.dispatchService.ConfirmDispatch(c.Request.Context(), id, models.StaffStatus(input.Status))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// @Summary Recommend ERT members for a category
// @Description Rank the roster for a category: AVAILABLE first, then by skill relevance. Requires API key.
// @Tags ERT
// @Produce json
// @Security ApiKeyAuth
// @Param category query string true "Incident category"
// @Success 200 {array} models.Recommendation
// @Failure 400 {object} map[string]string "Missing category"
// @Router /ert/recommendations [get]
func (h *Handler) recommendForCategory(c *gin.Context) {
	category := strings.ToUpper(strings.TrimSpace(c.Query("category")))
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}
	c.JSON(http.StatusOK, h.dispatchService.RecommendForCategory(models.IncidentCategory(category)))
}

// @Summary Recommend ERT members for an incident
// @Description Rank the roster for the incident's category. Requires API key.
// @Tags ERT
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} models.Recommendation
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/recommendations [get]
func (h *Handler) recommendForIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "recommendForIncident").WithField("id", id)

	recs, err := h.dispatchService.Recommend(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// @Summary Request dispatch
// @Description Send the selected AVAILABLE staff to the dispatch system. Roster status changes only after confirmation. Requires API key.
// @Tags ERT
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body DispatchRequestDTO true "Selected staff"
// @Success 202 {object} models.DispatchRequest
// @Failure 404 {object} map[string]string "Incident or staff member not found"
// @Failure 422 {object} map[string]string "Staff member not selectable"
// @Router /incidents/{id}/dispatch [post]
func (h *Handler) requestDispatch(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "requestDispatch").WithField("id", id)

	var input DispatchRequestDTO
	if !h.bind(c, log, &input) {
		return
	}

	request, err := h.dispatchService.RequestDispatch(c.Request.Context(), id, input.StaffIDs)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, request)
}
