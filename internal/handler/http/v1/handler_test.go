package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safety_response_coordinator/internal/config"
	"github.com/shenikar/safety_response_coordinator/internal/liveevents"
	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/shenikar/safety_response_coordinator/internal/query"
	"github.com/shenikar/safety_response_coordinator/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	incidents *mocks.MockIncidentService
	workflows *mocks.MockWorkflowService
	dispatch  *mocks.MockDispatchService
	events    *mocks.MockEventPublisher
	feed      *liveevents.Aggregator
}

var authHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testDeps, *gin.Engine) {
	ctrl := gomock.NewController(t)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	deps := testDeps{
		incidents: mocks.NewMockIncidentService(ctrl),
		workflows: mocks.NewMockWorkflowService(ctrl),
		dispatch:  mocks.NewMockDispatchService(ctrl),
		events:    mocks.NewMockEventPublisher(ctrl),
		feed:      liveevents.NewAggregator(10, nil, logger),
	}

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(Services{
		Incidents: deps.incidents,
		Workflows: deps.workflows,
		Dispatch:  deps.dispatch,
		Events:    deps.events,
		Feed:      deps.feed,
		Stream:    liveevents.NewHub(logger),
	}, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, deps, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func TestCreateIncident_Success(t *testing.T) {
	_, deps, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Category:    "SOS",
		Severity:    5,
		Description: "Passenger pressed SOS",
		Passenger:   PartyDTO{ID: "p-1", Name: "Anna"},
	}
	createdAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	deps.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, models.CategorySOS, inc.Category)
			assert.Equal(t, "Anna", inc.Passenger.Name)
			inc.ID = "INC-1"
			inc.Status = models.StatusActive
			inc.Priority = models.PriorityCritical
			inc.CreatedAt = createdAt
			inc.ResponseDeadline = createdAt.Add(5 * time.Minute)
			inc.Version = 1
			return nil
		}).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INC-1", resp.ID)
	assert.Equal(t, "ACTIVE", resp.Status)
	assert.Equal(t, int64(1), resp.Version)
	assert.Equal(t, createdAt.Add(5*time.Minute), resp.ResponseDeadline)
	assert.NotNil(t, resp.Timeline)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString("{invalid"), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, _, router := newTestHandler(t)
	tests := []struct {
		name string
		body CreateIncidentRequest
	}{
		{"unknown category", CreateIncidentRequest{Category: "EARTHQUAKE", Severity: 3}},
		{"severity out of range", CreateIncidentRequest{Category: "SOS", Severity: 7}},
		{"missing severity", CreateIncidentRequest{Category: "SOS"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, tt.body), authHeader)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateIncident_ServiceError(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(errors.New("db is down")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, CreateIncidentRequest{Category: "FRAUD", Severity: 2}), authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_NotFound(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.incidents.EXPECT().
		GetIncident(gomock.Any(), "INC-404").
		Return(nil, fmt.Errorf("service: could not get incident: %w", models.ErrIncidentNotFound))

	w := makeRequest(router, "GET", "/api/v1/incidents/INC-404", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestListIncidents_PassesFilters(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.incidents.EXPECT().
		ListIncidents(gomock.Any(), query.Criteria{
			Status:     "ACTIVE",
			Category:   query.All,
			Priority:   "HIGH",
			SearchTerm: "anna",
		}).
		Return([]*models.Incident{{ID: "INC-1"}, {ID: "INC-2"}}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents?status=ACTIVE&priority=HIGH&search=anna", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestListIncidents_EmptyResultIsArray(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.incidents.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return([]*models.Incident{}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestTransitionStatus_Success(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.incidents.EXPECT().
		TransitionStatus(gomock.Any(), "INC-1", models.StatusInvestigating, int64(1)).
		Return(&models.Incident{ID: "INC-1", Status: models.StatusInvestigating, Version: 2}, nil)

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/status",
		jsonBody(t, TransitionStatusRequest{Status: "INVESTIGATING", ExpectedVersion: 1}), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":2`)
}

func TestTransitionStatus_InvalidTransition(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.incidents.EXPECT().
		TransitionStatus(gomock.Any(), "INC-1", models.StatusActive, int64(3)).
		Return(&models.Incident{ID: "INC-1", Status: models.StatusInvestigating}, &models.TransitionError{
			Current:   models.StatusInvestigating,
			Requested: models.StatusActive,
		})

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/status",
		jsonBody(t, TransitionStatusRequest{Status: "ACTIVE", ExpectedVersion: 3}), authHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp TransitionErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVESTIGATING", resp.CurrentStatus)
}

func TestTransitionStatus_VersionConflict(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.incidents.EXPECT().
		TransitionStatus(gomock.Any(), "INC-1", models.StatusEscalated, int64(1)).
		Return(nil, fmt.Errorf("service: %w", models.ErrVersionConflict))

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/status",
		jsonBody(t, TransitionStatusRequest{Status: "ESCALATED", ExpectedVersion: 1}), authHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "modified concurrently")
}

func TestTransitionStatus_RequiresExpectedVersion(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/status",
		bytes.NewBufferString(`{"status":"RESOLVED"}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAppendMessage_Success(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.incidents.EXPECT().
		AppendMessage(gomock.Any(), "INC-1", models.Message{Sender: "ops", Type: models.MessageText, Content: "On our way"}, int64(0)).
		Return(&models.Incident{ID: "INC-1", Messages: []models.Message{{Content: "On our way"}}}, nil)

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/messages",
		jsonBody(t, AppendMessageRequest{Sender: "ops", Type: "TEXT", Content: "On our way"}), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "On our way")
}

func TestUpdateLocation_InvalidLatitude(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "PUT", "/api/v1/incidents/INC-1/location",
		jsonBody(t, UpdateLocationRequest{Location: LocationDTO{Latitude: 123, Longitude: 10}}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttachIntelligence_Success(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.incidents.EXPECT().
		AttachIntelligence(gomock.Any(), "INC-1", gomock.Any(), int64(2)).
		DoAndReturn(func(_ context.Context, _ string, intel models.Intelligence, _ int64) (*models.Incident, error) {
			assert.Equal(t, 140, intel.RiskScore)
			intel.RiskScore = 100
			return &models.Incident{ID: "INC-1", Intelligence: intel}, nil
		})

	w := makeRequest(router, "PUT", "/api/v1/incidents/INC-1/intelligence",
		jsonBody(t, AttachIntelligenceRequest{RiskScore: 140, ExpectedVersion: 2}), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"risk_score":100`)
}

func TestStartWorkflow_DefaultsToIncidentCategory(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.workflows.EXPECT().
		StartWorkflow(gomock.Any(), "INC-1", models.IncidentCategory("")).
		Return(&models.WorkflowState{IncidentID: "INC-1", Category: models.CategorySOS, Total: 4}, nil)

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/workflow", nil, authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"total":4`)
}

func TestStartWorkflow_ChunkedBodyOverridesCategory(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.workflows.EXPECT().
		StartWorkflow(gomock.Any(), "INC-1", models.CategoryMedical).
		Return(&models.WorkflowState{IncidentID: "INC-1", Category: models.CategoryMedical, Total: 3}, nil)

	// MultiReader скрывает длину: запрос уходит с ContentLength -1, как chunked
	body := io.MultiReader(bytes.NewBufferString(`{"category":"medical"}`))
	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/workflow", body, authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"MEDICAL"`)
}

func TestStartWorkflow_EmptyChunkedBody(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.workflows.EXPECT().
		StartWorkflow(gomock.Any(), "INC-1", models.IncidentCategory("")).
		Return(&models.WorkflowState{IncidentID: "INC-1", Category: models.CategorySOS, Total: 4}, nil)

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/workflow", io.MultiReader(), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestStartWorkflow_MalformedBody(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/workflow", bytes.NewBufferString("{oops"), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleStep_PrerequisiteNotMet(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.workflows.EXPECT().
		ToggleStep(gomock.Any(), "INC-1", 1).
		Return(nil, fmt.Errorf("service: could not toggle step: %w", &models.PrerequisiteError{
			StepID:  "sos-location",
			Missing: []string{"sos-contact"},
		}))

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/workflow/steps/1/toggle", nil, authHeader)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp PrerequisiteErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sos-location", resp.StepID)
	assert.Equal(t, []string{"sos-contact"}, resp.Missing)
}

func TestToggleStep_InvalidIndex(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/workflow/steps/first/toggle", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWorkflow_NotStarted(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.workflows.EXPECT().GetWorkflow(gomock.Any(), "INC-1").Return(nil, models.ErrWorkflowNotStarted)

	w := makeRequest(router, "GET", "/api/v1/incidents/INC-1/workflow", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestDispatch_NotSelectable(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.dispatch.EXPECT().
		RequestDispatch(gomock.Any(), "INC-1", []string{"ert-busy"}).
		Return(nil, fmt.Errorf("service: staff ert-busy is BUSY: %w", models.ErrStaffNotSelectable))

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/dispatch",
		jsonBody(t, DispatchRequestDTO{StaffIDs: []string{"ert-busy"}}), authHeader)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRequestDispatch_Accepted(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.dispatch.EXPECT().
		RequestDispatch(gomock.Any(), "INC-1", []string{"ert-a"}).
		Return(&models.DispatchRequest{ID: "d-1", IncidentID: "INC-1", StaffIDs: []string{"ert-a"}}, nil)

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/dispatch",
		jsonBody(t, DispatchRequestDTO{StaffIDs: []string{"ert-a"}}), authHeader)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"d-1"`)
}

func TestRequestDispatch_EmptySelection(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/incidents/INC-1/dispatch",
		jsonBody(t, DispatchRequestDTO{StaffIDs: []string{}}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendForCategory(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.dispatch.EXPECT().
		RecommendForCategory(models.CategorySOS).
		Return([]models.Recommendation{{Staff: models.ERTStaffMember{ID: "ert-a"}, Selectable: true}})

	w := makeRequest(router, "GET", "/api/v1/ert/recommendations?category=sos", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"selectable":true`)

	w = makeRequest(router, "GET", "/api/v1/ert/recommendations", nil, authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmDispatch_StaffNotFound(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.dispatch.EXPECT().
		ConfirmDispatch(gomock.Any(), "ghost", models.StaffDispatched).
		Return(models.ERTStaffMember{}, models.ErrStaffNotFound)

	w := makeRequest(router, "POST", "/api/v1/ert/staff/ghost/confirm",
		jsonBody(t, ConfirmDispatchRequest{Status: "DISPATCHED"}), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpsertStaff_Success(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.dispatch.EXPECT().
		UpsertStaff(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m models.ERTStaffMember) (models.ERTStaffMember, error) {
			m.ID = "ert-new"
			m.Status = models.StaffAvailable
			return m, nil
		})

	w := makeRequest(router, "POST", "/api/v1/ert/staff",
		jsonBody(t, StaffRequest{Name: "Responder", Skills: []string{"First Aid"}}), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"ert-new"`)
}

func TestLiveFeed_IngestSnapshotClear(t *testing.T) {
	_, deps, router := newTestHandler(t)

	// Публикация уходит в транспорт, который доставляет событие в агрегатор
	deps.events.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev models.LiveEvent) error {
			assert.Equal(t, models.SeverityInfo, ev.Severity)
			deps.feed.Ingest(ev)
			return nil
		})

	w := makeRequest(router, "POST", "/api/v1/live/events",
		jsonBody(t, LiveEventRequest{Type: "NEW_INCIDENT", Message: "New SOS"}), authHeader)
	require.Equal(t, http.StatusAccepted, w.Code)

	w = makeRequest(router, "GET", "/api/v1/live", nil, authHeader)
	require.Equal(t, http.StatusOK, w.Code)
	var snapshot models.LiveSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	require.Len(t, snapshot.Events, 1)
	assert.Equal(t, 1, snapshot.Stats.ActiveIncidents)

	w = makeRequest(router, "DELETE", "/api/v1/live", nil, authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)
	after := deps.feed.Snapshot()
	assert.Empty(t, after.Events)
	assert.Equal(t, 1, after.Stats.ActiveIncidents)
}

func TestLiveFeed_IngestValidation(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/live/events",
		jsonBody(t, LiveEventRequest{Type: "UNKNOWN", Message: "x"}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestProtectedRoutes_RequireAPIKey(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, "GET", "/api/v1/live", nil, map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAPIKeyAuthMiddleware_QueryKeyOnlyForLiveStream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"first-key", "valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/api/v1/live/stream", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/api/v1/incidents", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/api/v1/live/stream?api_key=valid-key", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "GET", "/api/v1/incidents?api_key=valid-key", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}
