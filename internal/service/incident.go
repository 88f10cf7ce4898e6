package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_response_coordinator/internal/metrics"
	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/shenikar/safety_response_coordinator/internal/query"
	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"
)

//go:generate mockgen -source=incident.go -destination=mocks/incident.go -package=mocks

// IncidentRepository определяет контракт каталога инцидентов.
// Update выполняется только если хранимая версия равна expectedVersion.
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id string) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident, expectedVersion int64) error
	List(ctx context.Context) ([]*models.Incident, error)
}

// EventPublisher доставляет события в ленту живых событий
type EventPublisher interface {
	Publish(ctx context.Context, event models.LiveEvent) error
}

// IncidentService определяет контракт бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	ListIncidents(ctx context.Context, criteria query.Criteria) ([]*models.Incident, error)
	TransitionStatus(ctx context.Context, id string, target models.IncidentStatus, expectedVersion int64) (*models.Incident, error)
	AppendMessage(ctx context.Context, id string, message models.Message, expectedVersion int64) (*models.Incident, error)
	UpdateLocation(ctx context.Context, id string, location models.Location, expectedVersion int64) (*models.Incident, error)
	AttachIntelligence(ctx context.Context, id string, intelligence models.Intelligence, expectedVersion int64) (*models.Incident, error)
}

type incidentService struct {
	repo      IncidentRepository
	publisher EventPublisher
	query     *query.Service
	clock     clockz.Clock
	logger    *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, publisher EventPublisher, clock clockz.Clock, logger *logrus.Logger) IncidentService {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &incidentService{
		repo:      repo,
		publisher: publisher,
		query:     query.NewService(repo),
		clock:     clock,
		logger:    logger,
	}
}

// CreateIncident регистрирует инцидент: статус ACTIVE, дедлайн реакции по SLA категории, версия 1
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "CreateIncident",
		"category": incident.Category,
	})
	log.Info("Attempting to create a new incident")

	if !incident.Category.Valid() {
		log.Warn("Rejected incident with unknown category")
		return fmt.Errorf("service: category %q: %w", incident.Category, models.ErrUnknownCategory)
	}

	now := s.clock.Now()
	if incident.ID == "" {
		incident.ID = uuid.New().String()
	}
	if !incident.Priority.Valid() {
		incident.Priority = models.PriorityForSeverity(incident.Severity)
	}
	incident.Status = models.StatusActive
	incident.CreatedAt = now
	incident.UpdatedAt = now
	incident.ResponseDeadline = now.Add(incident.Category.SLA())
	incident.Version = 1
	incident.Timeline = append(incident.Timeline, models.TimelineEntry{
		Event:       "INCIDENT_REPORTED",
		Description: incident.Description,
		Timestamp:   now,
	})

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	s.publish(ctx, log, models.LiveEvent{
		Type:       models.EventNewIncident,
		Message:    fmt.Sprintf("New %s incident %s", incident.Category, incident.ID),
		Severity:   severityForPriority(incident.Priority),
		IncidentID: incident.ID,
		Status:     incident.Status,
	})

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Debug("Fetching incident by ID")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает инциденты, удовлетворяющие всем заданным критериям
func (s *incidentService) ListIncidents(ctx context.Context, criteria query.Criteria) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "ListIncidents",
		"status":   criteria.Status,
		"category": criteria.Category,
		"priority": criteria.Priority,
	})

	incidents, err := s.query.Filter(ctx, criteria)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents")
		return nil, fmt.Errorf("service: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// TransitionStatus переводит инцидент в новый статус. Запись всегда условна по версии.
// При недопустимом переходе возвращается неизмененный инцидент и *models.TransitionError.
func (s *incidentService) TransitionStatus(ctx context.Context, id string, target models.IncidentStatus, expectedVersion int64) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":          "incident",
		"method":           "TransitionStatus",
		"incident_id":      id,
		"target":           target,
		"expected_version": expectedVersion,
	})
	log.Info("Attempting to transition incident status")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to transition a non-existent incident")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	current := incident.Status
	if !target.Valid() || !models.CanTransition(current, target) {
		metrics.StatusTransitions.WithLabelValues(string(current), string(target), "rejected").Inc()
		log.WithField("current", current).Warn("Rejected invalid status transition")
		return incident, &models.TransitionError{Current: current, Requested: target}
	}
	if incident.Version != expectedVersion {
		metrics.StatusTransitions.WithLabelValues(string(current), string(target), "conflict").Inc()
		log.WithField("version", incident.Version).Warn("Stale version for status transition")
		return incident, fmt.Errorf("service: incident %s is at version %d: %w", id, incident.Version, models.ErrVersionConflict)
	}

	now := s.clock.Now()
	incident.Status = target
	incident.UpdatedAt = now
	incident.Timeline = append(incident.Timeline, models.TimelineEntry{
		Event:       "STATUS_" + string(target),
		Description: fmt.Sprintf("Status changed from %s to %s", current, target),
		Timestamp:   now,
	})

	if err := s.repo.Update(ctx, incident, expectedVersion); err != nil {
		result := "error"
		if errors.Is(err, models.ErrVersionConflict) {
			result = "conflict"
		}
		metrics.StatusTransitions.WithLabelValues(string(current), string(target), result).Inc()
		log.WithError(err).Error("Failed to update incident status in repository")
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}
	metrics.StatusTransitions.WithLabelValues(string(current), string(target), "applied").Inc()

	event := models.LiveEvent{
		Type:       models.EventStatusUpdate,
		Message:    fmt.Sprintf("Incident %s moved to %s", id, target),
		Severity:   severityForStatus(target),
		IncidentID: id,
		Status:     target,
	}
	if current == models.StatusActive && target == models.StatusInvestigating {
		event.ResponseTimeSeconds = now.Sub(incident.CreatedAt).Seconds()
	}
	s.publish(ctx, log, event)

	log.WithField("version", incident.Version).Info("Incident status transitioned successfully")
	return incident, nil
}

// AppendMessage добавляет сообщение в переписку по инциденту
func (s *incidentService) AppendMessage(ctx context.Context, id string, message models.Message, expectedVersion int64) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AppendMessage",
		"incident_id": id,
		"sender":      message.Sender,
	})

	incident, err := s.mutate(ctx, log, id, expectedVersion, func(incident *models.Incident, now time.Time) {
		if message.ID == "" {
			message.ID = uuid.New().String()
		}
		if message.Type == "" {
			message.Type = models.MessageText
		}
		message.Status = models.DeliverySent
		message.Timestamp = now
		incident.Messages = append(incident.Messages, message)
	})
	if err != nil {
		return nil, err
	}

	severity := models.SeverityInfo
	if message.Type == models.MessageAlert {
		severity = models.SeverityWarning
	}
	s.publish(ctx, log, models.LiveEvent{
		Type:       models.EventMessageReceived,
		Message:    fmt.Sprintf("Message from %s on incident %s", message.Sender, id),
		Severity:   severity,
		IncidentID: id,
	})
	return incident, nil
}

// UpdateLocation заменяет текущую позицию инцидента
func (s *incidentService) UpdateLocation(ctx context.Context, id string, location models.Location, expectedVersion int64) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateLocation",
		"incident_id": id,
	})

	incident, err := s.mutate(ctx, log, id, expectedVersion, func(incident *models.Incident, now time.Time) {
		if location.Timestamp.IsZero() {
			location.Timestamp = now
		}
		incident.CurrentLocation = location
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, log, models.LiveEvent{
		Type:       models.EventLocationUpdate,
		Message:    fmt.Sprintf("Location updated for incident %s", id),
		Severity:   models.SeverityInfo,
		IncidentID: id,
	})
	return incident, nil
}

// AttachIntelligence сохраняет внешнюю оценку риска как есть, только ограничивая score диапазоном 0-100
func (s *incidentService) AttachIntelligence(ctx context.Context, id string, intelligence models.Intelligence, expectedVersion int64) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AttachIntelligence",
		"incident_id": id,
	})

	return s.mutate(ctx, log, id, expectedVersion, func(incident *models.Incident, _ time.Time) {
		intelligence.RiskScore = clampRiskScore(intelligence.RiskScore)
		intelligence.PatternFlags = append([]string(nil), intelligence.PatternFlags...)
		incident.Intelligence = intelligence
	})
}

// mutate читает инцидент, применяет изменение и сохраняет с проверкой версии.
// expectedVersion == 0 означает запись поверх текущей версии.
func (s *incidentService) mutate(ctx context.Context, log *logrus.Entry, id string, expectedVersion int64, apply func(*models.Incident, time.Time)) (*models.Incident, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if expectedVersion == 0 {
		expectedVersion = incident.Version
	}
	if incident.Version != expectedVersion {
		log.WithField("version", incident.Version).Warn("Stale version for incident update")
		return nil, fmt.Errorf("service: incident %s is at version %d: %w", id, incident.Version, models.ErrVersionConflict)
	}

	now := s.clock.Now()
	apply(incident, now)
	incident.UpdatedAt = now

	if err := s.repo.Update(ctx, incident, expectedVersion); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	log.WithField("version", incident.Version).Info("Incident updated successfully")
	return incident, nil
}

// publish не прерывает операцию: инцидент уже сохранен, лента вторична
func (s *incidentService) publish(ctx context.Context, log *logrus.Entry, event models.LiveEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event_type", event.Type).Warn("Failed to publish live event")
	}
}

func severityForPriority(p models.Priority) models.EventSeverity {
	switch p {
	case models.PriorityCritical:
		return models.SeverityCritical
	case models.PriorityHigh:
		return models.SeverityWarning
	default:
		return models.SeverityInfo
	}
}

func severityForStatus(status models.IncidentStatus) models.EventSeverity {
	if status == models.StatusEscalated {
		return models.SeverityCritical
	}
	return models.SeverityInfo
}

func clampRiskScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
