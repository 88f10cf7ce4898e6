package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/safety_response_coordinator/internal/config"
	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/shenikar/safety_response_coordinator/internal/query"
	"github.com/shenikar/safety_response_coordinator/internal/service"
	"github.com/sirupsen/logrus"
)

// LiveFeed - агрегатор ленты живых событий
type LiveFeed interface {
	Snapshot() models.LiveSnapshot
	Clear()
}

// LiveStream отдает ленту по websocket
type LiveStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request, snapshot func() models.LiveSnapshot)
}

type Handler struct {
	incidentService service.IncidentService
	workflowService service.WorkflowService
	dispatchService service.DispatchService
	events          service.EventPublisher
	feed            LiveFeed
	stream          LiveStream
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

// Services - зависимости обработчиков
type Services struct {
	Incidents service.IncidentService
	Workflows service.WorkflowService
	Dispatch  service.DispatchService
	Events    service.EventPublisher
	Feed      LiveFeed
	Stream    LiveStream
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: services.Incidents,
		workflowService: services.Workflows,
		dispatchService: services.Dispatch,
		events:          services.Events,
		feed:            services.Feed,
		stream:          services.Stream,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// bind разбирает и валидирует тело запроса; при ошибке ответ уже отправлен
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	return h.bindBody(c, log, input, false)
}

// bindOptional - как bind, но пустое тело (в том числе chunked без данных) допустимо
func (h *Handler) bindOptional(c *gin.Context, log *logrus.Entry, input any) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return true
	}
	return h.bindBody(c, log, input, true)
}

func (h *Handler) bindBody(c *gin.Context, log *logrus.Entry, input any, allowEmpty bool) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит доменные ошибки в HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var transitionErr *models.TransitionError
	var prereqErr *models.PrerequisiteError

	switch {
	case errors.As(err, &transitionErr):
		log.WithError(err).Warn("Rejected status transition")
		c.JSON(http.StatusConflict, TransitionErrorResponse{
			Error:         transitionErr.Error(),
			CurrentStatus: string(transitionErr.Current),
		})
	case errors.As(err, &prereqErr):
		log.WithError(err).Warn("Workflow prerequisites not met")
		c.JSON(http.StatusUnprocessableEntity, PrerequisiteErrorResponse{
			Error:   prereqErr.Error(),
			StepID:  prereqErr.StepID,
			Missing: prereqErr.Missing,
		})
	case errors.Is(err, models.ErrIncidentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, models.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
	case errors.Is(err, models.ErrWorkflowNotStarted):
		c.JSON(http.StatusNotFound, gin.H{"error": "workflow not started"})
	case errors.Is(err, models.ErrVersionConflict):
		log.WithError(err).Warn("Version conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "incident was modified concurrently, reload and retry"})
	case errors.Is(err, models.ErrStaffNotSelectable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrStepOutOfRange), errors.Is(err, models.ErrUnknownCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Register a new incident
// @Description Register a safety incident. Status starts ACTIVE, the response deadline follows the category SLA. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident registration request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary List incidents
// @Description List incidents matching all given filters. ALL or an empty value disables a filter. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Status filter" default(ALL)
// @Param category query string false "Category filter" default(ALL)
// @Param priority query string false "Priority filter" default(ALL)
// @Param search query string false "Case-insensitive search in id, description, passenger and driver names"
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	criteria := query.Criteria{
		Status:     c.DefaultQuery("status", query.All),
		Category:   c.DefaultQuery("category", query.All),
		Priority:   c.DefaultQuery("priority", query.All),
		SearchTerm: c.Query("search"),
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), criteria)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Transition incident status
// @Description Move an incident along ACTIVE -> INVESTIGATING -> RESOLVED/ESCALATED. The write is conditioned on expected_version. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body TransitionStatusRequest true "Target status and expected version"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} TransitionErrorResponse "Invalid transition or version conflict"
// @Router /incidents/{id}/status [post]
func (h *Handler) transitionStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "transitionStatus").WithField("id", id)

	var input TransitionStatusRequest
	if !h.bind(c, log, &input) {
		return
	}

	incident, err := h.incidentService.TransitionStatus(c.Request.Context(), id, models.IncidentStatus(input.Status), input.ExpectedVersion)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Append a message
// @Description Append a message to the incident conversation. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body AppendMessageRequest true "Message"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Version conflict"
// @Router /incidents/{id}/messages [post]
func (h *Handler) appendMessage(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "appendMessage").WithField("id", id)

	var input AppendMessageRequest
	if !h.bind(c, log, &input) {
		return
	}

	message := models.Message{
		Sender:  input.Sender,
		Type:    models.MessageType(input.Type),
		Content: input.Content,
	}
	incident, err := h.incidentService.AppendMessage(c.Request.Context(), id, message, input.ExpectedVersion)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update current location
// @Description Replace the current location of the incident. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body UpdateLocationRequest true "Location"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Version conflict"
// @Router /incidents/{id}/location [put]
func (h *Handler) updateLocation(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateLocation").WithField("id", id)

	var input UpdateLocationRequest
	if !h.bind(c, log, &input) {
		return
	}

	incident, err := h.incidentService.UpdateLocation(c.Request.Context(), id, dtoToLocation(input.Location), input.ExpectedVersion)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Attach risk intelligence
// @Description Store externally computed risk attributes. The score is clamped to 0-100. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body AttachIntelligenceRequest true "Risk attributes"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/intelligence [put]
func (h *Handler) attachIntelligence(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "attachIntelligence").WithField("id", id)

	var input AttachIntelligenceRequest
	if !h.bind(c, log, &input) {
		return
	}

	intelligence := models.Intelligence{
		RiskScore:        input.RiskScore,
		PredictedOutcome: input.PredictedOutcome,
		PatternFlags:     input.PatternFlags,
		Recurring:        input.Recurring,
	}
	incident, err := h.incidentService.AttachIntelligence(c.Request.Context(), id, intelligence, input.ExpectedVersion)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
