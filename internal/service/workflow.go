package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/shenikar/safety_response_coordinator/internal/workflow"
	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"
)

//go:generate mockgen -source=workflow.go -destination=mocks/workflow.go -package=mocks

// TemplateRegistry отдает шаблон процедуры для категории, с подстановкой запасной категории
type TemplateRegistry interface {
	TemplatesFor(category models.IncidentCategory) []models.WorkflowStepTemplate
}

// WorkflowService управляет процедурами реагирования по инцидентам
type WorkflowService interface {
	StartWorkflow(ctx context.Context, incidentID string, category models.IncidentCategory) (*models.WorkflowState, error)
	ToggleStep(ctx context.Context, incidentID string, stepIndex int) (*models.WorkflowState, error)
	GetWorkflow(ctx context.Context, incidentID string) (*models.WorkflowState, error)
}

type workflowService struct {
	repo     IncidentRepository
	registry TemplateRegistry
	clock    clockz.Clock
	logger   *logrus.Logger

	mu       sync.Mutex
	trackers map[string]*workflow.Tracker
}

func NewWorkflowService(repo IncidentRepository, registry TemplateRegistry, clock clockz.Clock, logger *logrus.Logger) WorkflowService {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &workflowService{
		repo:     repo,
		registry: registry,
		clock:    clock,
		logger:   logger,
		trackers: make(map[string]*workflow.Tracker),
	}
}

// StartWorkflow создает трекер по шаблону категории. Пустая категория означает категорию инцидента.
// Повторный запуск заменяет трекер, прогресс сбрасывается.
func (s *workflowService) StartWorkflow(ctx context.Context, incidentID string, category models.IncidentCategory) (*models.WorkflowState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "workflow",
		"method":      "StartWorkflow",
		"incident_id": incidentID,
	})

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Attempted to start workflow for a non-existent incident")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if category == "" {
		category = incident.Category
	}

	now := s.clock.Now()
	tracker := workflow.NewTracker(incidentID, category, s.registry.TemplatesFor(category), now)

	s.mu.Lock()
	s.trackers[incidentID] = tracker
	state := buildState(tracker, now)
	s.mu.Unlock()

	log.WithFields(logrus.Fields{
		"category": category,
		"steps":    state.Total,
	}).Info("Workflow started")
	return state, nil
}

// ToggleStep переключает выполнение шага по индексу
func (s *workflowService) ToggleStep(_ context.Context, incidentID string, stepIndex int) (*models.WorkflowState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "workflow",
		"method":      "ToggleStep",
		"incident_id": incidentID,
		"step_index":  stepIndex,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	tracker, ok := s.trackers[incidentID]
	if !ok {
		return nil, fmt.Errorf("service: incident %s: %w", incidentID, models.ErrWorkflowNotStarted)
	}

	now := s.clock.Now()
	if err := tracker.ToggleCompletion(stepIndex, now); err != nil {
		log.WithError(err).Warn("Failed to toggle workflow step")
		return nil, fmt.Errorf("service: could not toggle step: %w", err)
	}

	state := buildState(tracker, now)
	log.WithFields(logrus.Fields{
		"completed": state.Completed,
		"total":     state.Total,
	}).Info("Workflow step toggled")
	return state, nil
}

// GetWorkflow возвращает состояние процедуры с флагами просрочки на текущий момент
func (s *workflowService) GetWorkflow(_ context.Context, incidentID string) (*models.WorkflowState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tracker, ok := s.trackers[incidentID]
	if !ok {
		return nil, fmt.Errorf("service: incident %s: %w", incidentID, models.ErrWorkflowNotStarted)
	}
	return buildState(tracker, s.clock.Now()), nil
}

func buildState(tracker *workflow.Tracker, now time.Time) *models.WorkflowState {
	templates := tracker.Templates()
	steps := tracker.Steps()
	completed, total := tracker.Progress()

	state := &models.WorkflowState{
		IncidentID: tracker.IncidentID(),
		Category:   tracker.Category(),
		Steps:      make([]models.StepState, len(steps)),
		Completed:  completed,
		Total:      total,
		Progress:   tracker.ProgressRatio(),
	}
	for i := range steps {
		state.Steps[i] = models.StepState{
			Template: templates[i],
			Instance: steps[i],
			Overdue:  tracker.IsStepOverdue(i, now),
		}
	}
	return state
}
