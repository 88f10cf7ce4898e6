package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/safety_response_coordinator/internal/models"
)

// All - значение критерия "без ограничения"
const All = "ALL"

// Criteria - независимые необязательные условия, объединяемые через И.
// Пустое значение, All или неизвестное значение означают отсутствие ограничения.
type Criteria struct {
	Status     string
	Category   string
	Priority   string
	SearchTerm string
}

type compiled struct {
	status   models.IncidentStatus
	category models.IncidentCategory
	priority models.Priority
	term     string
}

func compile(c Criteria) compiled {
	var out compiled
	if s := models.IncidentStatus(normalizeEnum(c.Status)); s.Valid() {
		out.status = s
	}
	if cat := models.IncidentCategory(normalizeEnum(c.Category)); cat.Valid() {
		out.category = cat
	}
	if p := models.Priority(normalizeEnum(c.Priority)); p.Valid() {
		out.priority = p
	}
	// регистр приводится один раз на запрос
	out.term = strings.ToLower(strings.TrimSpace(c.SearchTerm))
	return out
}

func normalizeEnum(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}

func (c compiled) match(incident *models.Incident) bool {
	if c.status != "" && incident.Status != c.status {
		return false
	}
	if c.category != "" && incident.Category != c.category {
		return false
	}
	if c.priority != "" && incident.Priority != c.priority {
		return false
	}
	if c.term == "" {
		return true
	}
	return containsFold(incident.ID, c.term) ||
		containsFold(incident.Description, c.term) ||
		containsFold(incident.Passenger.Name, c.term) ||
		containsFold(incident.Driver.Name, c.term)
}

func containsFold(field, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(field), lowerTerm)
}

// Filter возвращает подходящие инциденты в исходном порядке. Никогда не возвращает nil.
func Filter(incidents []*models.Incident, criteria Criteria) []*models.Incident {
	c := compile(criteria)
	out := make([]*models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		if incident != nil && c.match(incident) {
			out = append(out, incident)
		}
	}
	return out
}

// Catalog - источник инцидентов для поиска
type Catalog interface {
	List(ctx context.Context) ([]*models.Incident, error)
}

// Service - поиск поверх каталога инцидентов
type Service struct {
	catalog Catalog
}

func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) Filter(ctx context.Context, criteria Criteria) ([]*models.Incident, error) {
	incidents, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query: could not list incidents: %w", err)
	}
	return Filter(incidents, criteria), nil
}
