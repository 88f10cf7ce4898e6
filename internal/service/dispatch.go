package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/safety_response_coordinator/internal/metrics"
	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"
)

//go:generate mockgen -source=dispatch.go -destination=mocks/dispatch.go -package=mocks

// RosterStore - текущий состав группы реагирования
type RosterStore interface {
	Upsert(member models.ERTStaffMember)
	Get(id string) (models.ERTStaffMember, error)
	List() []models.ERTStaffMember
	SetStatus(id string, status models.StaffStatus) error
}

// Recommender ранжирует сотрудников под категорию инцидента
type Recommender interface {
	Recommend(category models.IncidentCategory, roster []models.ERTStaffMember) []models.Recommendation
}

// DispatchQueue передает запросы на выезд во внешнюю систему диспетчеризации
type DispatchQueue interface {
	Publish(ctx context.Context, request models.DispatchRequest) error
}

// DispatchService подбирает сотрудников и отправляет запросы на выезд.
// Статус сотрудника меняется только через ConfirmDispatch от системы диспетчеризации.
type DispatchService interface {
	Recommend(ctx context.Context, incidentID string) ([]models.Recommendation, error)
	RecommendForCategory(category models.IncidentCategory) []models.Recommendation
	RequestDispatch(ctx context.Context, incidentID string, staffIDs []string) (*models.DispatchRequest, error)
	ConfirmDispatch(ctx context.Context, staffID string, status models.StaffStatus) (models.ERTStaffMember, error)
	UpsertStaff(ctx context.Context, member models.ERTStaffMember) (models.ERTStaffMember, error)
	ListRoster(ctx context.Context) []models.ERTStaffMember
}

type dispatchService struct {
	repo        IncidentRepository
	roster      RosterStore
	recommender Recommender
	queue       DispatchQueue
	clock       clockz.Clock
	logger      *logrus.Logger
}

func NewDispatchService(repo IncidentRepository, roster RosterStore, recommender Recommender, queue DispatchQueue, clock clockz.Clock, logger *logrus.Logger) DispatchService {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &dispatchService{
		repo:        repo,
		roster:      roster,
		recommender: recommender,
		queue:       queue,
		clock:       clock,
		logger:      logger,
	}
}

// Recommend ранжирует состав под категорию инцидента
func (s *dispatchService) Recommend(ctx context.Context, incidentID string) ([]models.Recommendation, error) {
	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":     "dispatch",
			"method":      "Recommend",
			"incident_id": incidentID,
		}).WithError(err).Warn("Attempted to recommend staff for a non-existent incident")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return s.RecommendForCategory(incident.Category), nil
}

func (s *dispatchService) RecommendForCategory(category models.IncidentCategory) []models.Recommendation {
	return s.recommender.Recommend(category, s.roster.List())
}

// RequestDispatch ставит запрос в очередь. Выбирать можно только AVAILABLE сотрудников.
func (s *dispatchService) RequestDispatch(ctx context.Context, incidentID string, staffIDs []string) (*models.DispatchRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "RequestDispatch",
		"incident_id": incidentID,
		"staff_ids":   staffIDs,
	})
	log.Info("Attempting to request dispatch")

	if _, err := s.repo.GetByID(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Attempted to dispatch to a non-existent incident")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if len(staffIDs) == 0 {
		return nil, fmt.Errorf("service: no staff selected: %w", models.ErrStaffNotSelectable)
	}

	seen := make(map[string]bool, len(staffIDs))
	selected := make([]string, 0, len(staffIDs))
	for _, id := range staffIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		member, err := s.roster.Get(id)
		if err != nil {
			metrics.DispatchRequests.WithLabelValues("rejected").Inc()
			log.WithError(err).Warn("Dispatch requested for unknown staff member")
			return nil, fmt.Errorf("service: %w", err)
		}
		if member.Status != models.StaffAvailable {
			metrics.DispatchRequests.WithLabelValues("rejected").Inc()
			log.WithFields(logrus.Fields{"staff_id": id, "status": member.Status}).Warn("Staff member is not selectable")
			return nil, fmt.Errorf("service: staff %s is %s: %w", id, member.Status, models.ErrStaffNotSelectable)
		}
		selected = append(selected, id)
	}

	request := &models.DispatchRequest{
		ID:          uuid.New().String(),
		IncidentID:  incidentID,
		StaffIDs:    selected,
		RequestedAt: s.clock.Now(),
	}
	if err := s.queue.Publish(ctx, *request); err != nil {
		metrics.DispatchRequests.WithLabelValues("enqueue_failed").Inc()
		log.WithError(err).Error("Failed to enqueue dispatch request")
		return nil, fmt.Errorf("service: could not enqueue dispatch request: %w", err)
	}
	metrics.DispatchRequests.WithLabelValues("enqueued").Inc()

	log.WithField("request_id", request.ID).Info("Dispatch request enqueued")
	return request, nil
}

// ConfirmDispatch отражает в составе статус, подтвержденный системой диспетчеризации
func (s *dispatchService) ConfirmDispatch(_ context.Context, staffID string, status models.StaffStatus) (models.ERTStaffMember, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "dispatch",
		"method":   "ConfirmDispatch",
		"staff_id": staffID,
		"status":   status,
	})

	if !status.Valid() {
		return models.ERTStaffMember{}, fmt.Errorf("service: unknown staff status %q", status)
	}
	if err := s.roster.SetStatus(staffID, status); err != nil {
		log.WithError(err).Warn("Failed to apply dispatch confirmation")
		return models.ERTStaffMember{}, fmt.Errorf("service: %w", err)
	}

	member, err := s.roster.Get(staffID)
	if err != nil {
		return models.ERTStaffMember{}, fmt.Errorf("service: %w", err)
	}
	log.Info("Dispatch confirmation applied")
	return member, nil
}

func (s *dispatchService) UpsertStaff(_ context.Context, member models.ERTStaffMember) (models.ERTStaffMember, error) {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.Status == "" {
		member.Status = models.StaffAvailable
	}
	if !member.Status.Valid() {
		return models.ERTStaffMember{}, fmt.Errorf("service: unknown staff status %q", member.Status)
	}
	s.roster.Upsert(member)

	s.logger.WithFields(logrus.Fields{
		"service":  "dispatch",
		"method":   "UpsertStaff",
		"staff_id": member.ID,
	}).Info("Staff member saved")
	return member.Clone(), nil
}

func (s *dispatchService) ListRoster(_ context.Context) []models.ERTStaffMember {
	return s.roster.List()
}
