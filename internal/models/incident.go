package models

import (
	"time"
)

// IncidentCategory - категория инцидента безопасности
type IncidentCategory string

const (
	CategorySOS                IncidentCategory = "SOS"
	CategoryHarassment         IncidentCategory = "HARASSMENT"
	CategoryAccident           IncidentCategory = "ACCIDENT"
	CategoryRouteDeviation     IncidentCategory = "ROUTE_DEVIATION"
	CategoryMedical            IncidentCategory = "MEDICAL"
	CategoryViolence           IncidentCategory = "VIOLENCE"
	CategoryFraud              IncidentCategory = "FRAUD"
	CategoryPanic              IncidentCategory = "PANIC"
	CategorySuspiciousBehavior IncidentCategory = "SUSPICIOUS_BEHAVIOR"
)

// Categories перечисляет все известные категории в порядке отображения
var Categories = []IncidentCategory{
	CategorySOS,
	CategoryHarassment,
	CategoryAccident,
	CategoryRouteDeviation,
	CategoryMedical,
	CategoryViolence,
	CategoryFraud,
	CategoryPanic,
	CategorySuspiciousBehavior,
}

func (c IncidentCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// categorySLA - время реакции, в течение которого оператор обязан взять инцидент в работу
var categorySLA = map[IncidentCategory]time.Duration{
	CategorySOS:                5 * time.Minute,
	CategoryPanic:              5 * time.Minute,
	CategoryViolence:           5 * time.Minute,
	CategoryMedical:            5 * time.Minute,
	CategoryAccident:           10 * time.Minute,
	CategoryHarassment:         15 * time.Minute,
	CategoryRouteDeviation:     15 * time.Minute,
	CategorySuspiciousBehavior: 30 * time.Minute,
	CategoryFraud:              60 * time.Minute,
}

// DefaultSLA применяется к категориям без записи в таблице SLA
const DefaultSLA = 15 * time.Minute

// SLA возвращает норматив времени реакции для категории
func (c IncidentCategory) SLA() time.Duration {
	if sla, ok := categorySLA[c]; ok {
		return sla
	}
	return DefaultSLA
}

// Priority - приоритет инцидента
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// PriorityForSeverity выводит приоритет из тяжести (1-5), если источник алерта его не передал
func PriorityForSeverity(severity int) Priority {
	switch {
	case severity >= 5:
		return PriorityCritical
	case severity == 4:
		return PriorityHigh
	case severity == 3:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// IncidentStatus - статус расследования инцидента
type IncidentStatus string

const (
	StatusActive        IncidentStatus = "ACTIVE"
	StatusInvestigating IncidentStatus = "INVESTIGATING"
	StatusResolved      IncidentStatus = "RESOLVED"
	StatusEscalated     IncidentStatus = "ESCALATED"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInvestigating, StatusResolved, StatusEscalated:
		return true
	}
	return false
}

// IsTerminal - RESOLVED и ESCALATED не допускают дальнейших переходов
func (s IncidentStatus) IsTerminal() bool {
	return s == StatusResolved || s == StatusEscalated
}

var allowedTransitions = map[IncidentStatus]map[IncidentStatus]bool{
	StatusActive: {
		StatusInvestigating: true,
		StatusResolved:      true,
		StatusEscalated:     true,
	},
	StatusInvestigating: {
		StatusResolved:  true,
		StatusEscalated: true,
	},
	StatusResolved:  {},
	StatusEscalated: {},
}

// CanTransition проверяет, разрешен ли переход статуса
func CanTransition(from, to IncidentStatus) bool {
	transitions, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return transitions[to]
}

// Location - точка на карте с телеметрией
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address,omitempty"`
	Speed     float64   `json:"speed"`
	Heading   float64   `json:"heading"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

// Party - пассажир или водитель
type Party struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone,omitempty"`
	Email     string  `json:"email,omitempty"`
	Rating    float64 `json:"rating"`
	TripCount int     `json:"trip_count"`
}

type Vehicle struct {
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
	Color string `json:"color,omitempty"`
	Plate string `json:"plate,omitempty"`
}

// TimelineEntry - событие поездки или расследования
type TimelineEntry struct {
	Event       string    `json:"event"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type MessageType string

const (
	MessageText   MessageType = "TEXT"
	MessageAlert  MessageType = "ALERT"
	MessageSystem MessageType = "SYSTEM"
)

type DeliveryStatus string

const (
	DeliverySent      DeliveryStatus = "SENT"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryRead      DeliveryStatus = "READ"
	DeliveryFailed    DeliveryStatus = "FAILED"
)

type Message struct {
	ID        string         `json:"id"`
	Sender    string         `json:"sender"`
	Type      MessageType    `json:"type"`
	Content   string         `json:"content"`
	Status    DeliveryStatus `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
}

// Intelligence - атрибуты, которые присылает внешний сервис оценки риска.
// Здесь они только хранятся, без интерпретации.
type Intelligence struct {
	RiskScore        int      `json:"risk_score"`
	PredictedOutcome string   `json:"predicted_outcome,omitempty"`
	PatternFlags     []string `json:"pattern_flags,omitempty"`
	Recurring        bool     `json:"recurring"`
}

type Incident struct {
	ID               string           `json:"id"`
	Category         IncidentCategory `json:"category"`
	Severity         int              `json:"severity"`
	Priority         Priority         `json:"priority"`
	Status           IncidentStatus   `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	ResponseDeadline time.Time        `json:"response_deadline"`
	Passenger        Party            `json:"passenger"`
	Driver           Party            `json:"driver"`
	Vehicle          Vehicle          `json:"vehicle"`
	CurrentLocation  Location         `json:"current_location"`
	Pickup           Location         `json:"pickup"`
	Dropoff          Location         `json:"dropoff"`
	Description      string           `json:"description"`
	Timeline         []TimelineEntry  `json:"timeline"`
	Messages         []Message        `json:"messages"`
	Intelligence     Intelligence     `json:"intelligence"`
	Version          int64            `json:"version"`
}

// Clone возвращает глубокую копию, чтобы хранилища не раздавали общие срезы
func (i *Incident) Clone() *Incident {
	if i == nil {
		return nil
	}
	c := *i
	c.Timeline = append([]TimelineEntry(nil), i.Timeline...)
	c.Messages = append([]Message(nil), i.Messages...)
	c.Intelligence.PatternFlags = append([]string(nil), i.Intelligence.PatternFlags...)
	return &c
}
