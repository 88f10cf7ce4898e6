package liveevents

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_response_coordinator/internal/metrics"
	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"
)

// DefaultCapacity - размер окна последних событий
const DefaultCapacity = 10

// Aggregator хранит ограниченный журнал событий (новые первыми) и скользящие счетчики.
// Ingest безопасен для вызова из нескольких горутин; события применяются в порядке вызова.
type Aggregator struct {
	mu         sync.Mutex
	capacity   int
	events     []models.LiveEvent
	stats      models.LiveStats
	responses  int
	lastUpdate time.Time

	subMu       sync.RWMutex
	subscribers map[int]chan models.LiveEvent
	nextSubID   int

	clock  clockz.Clock
	logger *logrus.Logger
}

func NewAggregator(capacity int, clock clockz.Clock, logger *logrus.Logger) *Aggregator {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if clock == nil {
		clock = clockz.RealClock
	}
	return &Aggregator{
		capacity:    capacity,
		events:      make([]models.LiveEvent, 0, capacity+1),
		subscribers: make(map[int]chan models.LiveEvent),
		clock:       clock,
		logger:      logger,
	}
}

// Ingest добавляет событие в начало журнала и вытесняет самое старое при переполнении
func (a *Aggregator) Ingest(event models.LiveEvent) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = a.clock.Now()
	}

	a.mu.Lock()
	a.events = append(a.events, models.LiveEvent{})
	copy(a.events[1:], a.events)
	a.events[0] = event
	if len(a.events) > a.capacity {
		a.events = a.events[:a.capacity]
	}
	a.applyStats(event)
	a.lastUpdate = a.clock.Now()
	// рассылка под a.mu, чтобы подписчики видели тот же порядок, что и журнал
	a.fanOut(event)
	a.mu.Unlock()

	metrics.LiveEventsIngested.WithLabelValues(string(event.Type), string(event.Severity)).Inc()
	a.logger.WithFields(logrus.Fields{
		"component": "live_aggregator",
		"event_id":  event.ID,
		"type":      event.Type,
		"severity":  event.Severity,
	}).Debug("Live event ingested")
}

// applyStats вызывается под a.mu
func (a *Aggregator) applyStats(event models.LiveEvent) {
	switch event.Type {
	case models.EventNewIncident:
		a.stats.ActiveIncidents++
		if event.Severity == models.SeverityCritical {
			a.stats.CriticalAlerts++
		}
	case models.EventStatusUpdate:
		switch event.Status {
		case models.StatusResolved:
			a.decrementActive()
			a.stats.ResolvedToday++
		case models.StatusEscalated:
			a.decrementActive()
		}
		if event.ResponseTimeSeconds > 0 {
			a.responses++
			a.stats.AvgResponseTimeSeconds += (event.ResponseTimeSeconds - a.stats.AvgResponseTimeSeconds) / float64(a.responses)
		}
	}
}

func (a *Aggregator) decrementActive() {
	if a.stats.ActiveIncidents > 0 {
		a.stats.ActiveIncidents--
	}
}

// Clear очищает журнал, счетчики не трогает
func (a *Aggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = a.events[:0]
	a.lastUpdate = a.clock.Now()
}

// ResetDaily обнуляет счетчик решенных за сутки
func (a *Aggregator) ResetDaily() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.ResolvedToday = 0
}

// RunDailyReset обнуляет resolvedToday в каждую полночь по часам агрегатора, пока не отменен ctx
func (a *Aggregator) RunDailyReset(ctx context.Context) {
	for {
		now := a.clock.Now()
		midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
		select {
		case <-ctx.Done():
			return
		case <-a.clock.After(midnight.Sub(now)):
			a.ResetDaily()
			a.logger.WithField("component", "live_aggregator").Info("Daily live counters reset")
		}
	}
}

// Snapshot возвращает независимую копию журнала и счетчиков
func (a *Aggregator) Snapshot() models.LiveSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	events := make([]models.LiveEvent, len(a.events))
	copy(events, a.events)
	return models.LiveSnapshot{
		Events:     events,
		Stats:      a.stats,
		LastUpdate: a.lastUpdate,
	}
}

// Subscribe возвращает канал событий и функцию отписки.
// Медленный подписчик теряет события, Ingest никогда не блокируется.
func (a *Aggregator) Subscribe(buffer int) (<-chan models.LiveEvent, func()) {
	ch := make(chan models.LiveEvent, buffer)

	a.subMu.Lock()
	id := a.nextSubID
	a.nextSubID++
	a.subscribers[id] = ch
	a.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			a.subMu.Lock()
			delete(a.subscribers, id)
			a.subMu.Unlock()
			close(ch)
		})
	}
}

func (a *Aggregator) fanOut(event models.LiveEvent) {
	a.subMu.RLock()
	defer a.subMu.RUnlock()
	for _, ch := range a.subscribers {
		select {
		case ch <- event:
		default:
			metrics.LiveEventsDropped.Inc()
		}
	}
}
