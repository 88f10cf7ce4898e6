package models

import "time"

type EventType string

const (
	EventNewIncident     EventType = "NEW_INCIDENT"
	EventStatusUpdate    EventType = "STATUS_UPDATE"
	EventLocationUpdate  EventType = "LOCATION_UPDATE"
	EventMessageReceived EventType = "MESSAGE_RECEIVED"
)

func (t EventType) Valid() bool {
	switch t {
	case EventNewIncident, EventStatusUpdate, EventLocationUpdate, EventMessageReceived:
		return true
	}
	return false
}

type EventSeverity string

const (
	SeverityInfo     EventSeverity = "INFO"
	SeverityWarning  EventSeverity = "WARNING"
	SeverityCritical EventSeverity = "CRITICAL"
)

func (s EventSeverity) Valid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityCritical:
		return true
	}
	return false
}

// LiveEvent - уведомление о статусе для ленты событий.
// Timestamp носит информационный характер, порядок определяется порядком поступления.
type LiveEvent struct {
	ID                  string         `json:"id"`
	Type                EventType      `json:"type"`
	Message             string         `json:"message"`
	Timestamp           time.Time      `json:"timestamp"`
	Severity            EventSeverity  `json:"severity"`
	IncidentID          string         `json:"incident_id,omitempty"`
	Status              IncidentStatus `json:"status,omitempty"`
	ResponseTimeSeconds float64        `json:"response_time_seconds,omitempty"`
}

// LiveStats - скользящие счетчики для дашбордов
type LiveStats struct {
	ActiveIncidents        int     `json:"active_incidents"`
	AvgResponseTimeSeconds float64 `json:"avg_response_time_seconds"`
	CriticalAlerts         int     `json:"critical_alerts"`
	ResolvedToday          int     `json:"resolved_today"`
}

type LiveSnapshot struct {
	Events     []LiveEvent `json:"events"`
	Stats      LiveStats   `json:"stats"`
	LastUpdate time.Time   `json:"last_update"`
}
