package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/safety_response_coordinator/internal/models"
)

// MemoryCatalog - каталог инцидентов в памяти, используется без DATABASE_URL и в тестах
type MemoryCatalog struct {
	mu        sync.RWMutex
	incidents map[string]*models.Incident
	order     []string
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{incidents: make(map[string]*models.Incident)}
}

func (c *MemoryCatalog) Create(_ context.Context, incident *models.Incident) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.incidents[incident.ID]; ok {
		return fmt.Errorf("incident with id %s already exists", incident.ID)
	}
	c.incidents[incident.ID] = incident.Clone()
	c.order = append(c.order, incident.ID)
	return nil
}

func (c *MemoryCatalog) GetByID(_ context.Context, id string) (*models.Incident, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	incident, ok := c.incidents[id]
	if !ok {
		return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrIncidentNotFound)
	}
	return incident.Clone(), nil
}

// Update сохраняет инцидент, только если хранимая версия равна expectedVersion
func (c *MemoryCatalog) Update(_ context.Context, incident *models.Incident, expectedVersion int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, ok := c.incidents[incident.ID]
	if !ok {
		return fmt.Errorf("incident with id %s: %w", incident.ID, models.ErrIncidentNotFound)
	}
	if stored.Version != expectedVersion {
		return fmt.Errorf("incident with id %s at version %d, expected %d: %w", incident.ID, stored.Version, expectedVersion, models.ErrVersionConflict)
	}

	next := incident.Clone()
	next.Version = expectedVersion + 1
	c.incidents[incident.ID] = next
	incident.Version = next.Version
	return nil
}

// List возвращает копии инцидентов в порядке создания
func (c *MemoryCatalog) List(_ context.Context) ([]*models.Incident, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*models.Incident, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.incidents[id].Clone())
	}
	return out, nil
}
