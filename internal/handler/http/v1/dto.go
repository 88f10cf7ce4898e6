package v1

import (
	"time"

	"github.com/shenikar/safety_response_coordinator/internal/models"
)

// PartyDTO - пассажир или водитель
// @Description Участник поездки
type PartyDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" validate:"max=255"`
	Phone     string  `json:"phone,omitempty"`
	Email     string  `json:"email,omitempty" validate:"omitempty,email"`
	Rating    float64 `json:"rating" validate:"gte=0,lte=5"`
	TripCount int     `json:"trip_count" validate:"gte=0"`
}

// VehicleDTO - транспортное средство
type VehicleDTO struct {
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
	Color string `json:"color,omitempty"`
	Plate string `json:"plate,omitempty"`
}

// LocationDTO - точка с телеметрией
// @Description Координаты и телеметрия
type LocationDTO struct {
	Latitude  float64   `json:"latitude" validate:"latitude"`
	Longitude float64   `json:"longitude" validate:"longitude"`
	Address   string    `json:"address,omitempty"`
	Speed     float64   `json:"speed" validate:"gte=0"`
	Heading   float64   `json:"heading" validate:"gte=0,lt=360"`
	Accuracy  float64   `json:"accuracy" validate:"gte=0"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// CreateIncidentRequest DTO для регистрации инцидента
// @Description DTO для регистрации инцидента
type CreateIncidentRequest struct {
	Category        string      `json:"category" validate:"required,oneof=SOS HARASSMENT ACCIDENT ROUTE_DEVIATION MEDICAL VIOLENCE FRAUD PANIC SUSPICIOUS_BEHAVIOR"`
	Severity        int         `json:"severity" validate:"required,min=1,max=5"`
	Priority        string      `json:"priority,omitempty" validate:"omitempty,oneof=CRITICAL HIGH MEDIUM LOW"`
	Description     string      `json:"description" validate:"max=4000"`
	Passenger       PartyDTO    `json:"passenger"`
	Driver          PartyDTO    `json:"driver"`
	Vehicle         VehicleDTO  `json:"vehicle"`
	CurrentLocation LocationDTO `json:"current_location"`
	Pickup          LocationDTO `json:"pickup"`
	Dropoff         LocationDTO `json:"dropoff"`
}

// TransitionStatusRequest DTO для смены статуса
// @Description Смена статуса с проверкой версии
type TransitionStatusRequest struct {
	Status          string `json:"status" validate:"required,oneof=ACTIVE INVESTIGATING RESOLVED ESCALATED"`
	ExpectedVersion int64  `json:"expected_version" validate:"required,gt=0"`
}

// AppendMessageRequest DTO для сообщения по инциденту
type AppendMessageRequest struct {
	Sender          string `json:"sender" validate:"required,max=255"`
	Type            string `json:"type,omitempty" validate:"omitempty,oneof=TEXT ALERT SYSTEM"`
	Content         string `json:"content" validate:"required,max=4000"`
	ExpectedVersion int64  `json:"expected_version" validate:"gte=0"`
}

// UpdateLocationRequest DTO для обновления позиции
type UpdateLocationRequest struct {
	Location        LocationDTO `json:"location"`
	ExpectedVersion int64       `json:"expected_version" validate:"gte=0"`
}

// AttachIntelligenceRequest DTO с оценкой риска от внешнего сервиса
type AttachIntelligenceRequest struct {
	RiskScore        int      `json:"risk_score"`
	PredictedOutcome string   `json:"predicted_outcome,omitempty"`
	PatternFlags     []string `json:"pattern_flags,omitempty"`
	Recurring        bool     `json:"recurring"`
	ExpectedVersion  int64    `json:"expected_version" validate:"gte=0"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID               string                 `json:"id"`
	Category         string                 `json:"category"`
	Severity         int                    `json:"severity"`
	Priority         string                 `json:"priority"`
	Status           string                 `json:"status"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
	ResponseDeadline time.Time              `json:"response_deadline"`
	Passenger        PartyDTO               `json:"passenger"`
	Driver           PartyDTO               `json:"driver"`
	Vehicle          VehicleDTO             `json:"vehicle"`
	CurrentLocation  LocationDTO            `json:"current_location"`
	Pickup           LocationDTO            `json:"pickup"`
	Dropoff          LocationDTO            `json:"dropoff"`
	Description      string                 `json:"description"`
	Timeline         []models.TimelineEntry `json:"timeline"`
	Messages         []models.Message       `json:"messages"`
	Intelligence     models.Intelligence    `json:"intelligence"`
	Version          int64                  `json:"version"`
}

// TransitionErrorResponse возвращает неизменившийся текущий статус
type TransitionErrorResponse struct {
	Error         string `json:"error"`
	CurrentStatus string `json:"current_status"`
}

// PrerequisiteErrorResponse перечисляет невыполненные предварительные шаги
type PrerequisiteErrorResponse struct {
	Error   string   `json:"error"`
	StepID  string   `json:"step_id"`
	Missing []string `json:"missing"`
}

// StartWorkflowRequest - категория опциональна, по умолчанию берется категория инцидента
type StartWorkflowRequest struct {
	Category string `json:"category,omitempty" validate:"omitempty,max=64"`
}

// DispatchRequestDTO - выбранные оператором сотрудники
type DispatchRequestDTO struct {
	StaffIDs []string `json:"staff_ids" validate:"required,min=1,dive,required"`
}

// StaffRequest DTO для добавления или обновления сотрудника ERT
type StaffRequest struct {
	ID             string      `json:"id,omitempty"`
	Name           string      `json:"name" validate:"required,max=255"`
	Role           string      `json:"role" validate:"max=255"`
	Status         string      `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE DISPATCHED BUSY"`
	ETAMinutes     int         `json:"eta_minutes" validate:"gte=0"`
	Location       LocationDTO `json:"location"`
	Skills         []string    `json:"skills"`
	Certifications []string    `json:"certifications"`
}

// ConfirmDispatchRequest - статус, подтвержденный системой диспетчеризации
type ConfirmDispatchRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE DISPATCHED BUSY"`
}

// LiveEventRequest - событие от внешнего источника для ленты
type LiveEventRequest struct {
	Type                string  `json:"type" validate:"required,oneof=NEW_INCIDENT STATUS_UPDATE LOCATION_UPDATE MESSAGE_RECEIVED"`
	Message             string  `json:"message" validate:"required,max=1000"`
	Severity            string  `json:"severity,omitempty" validate:"omitempty,oneof=INFO WARNING CRITICAL"`
	IncidentID          string  `json:"incident_id,omitempty"`
	Status              string  `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INVESTIGATING RESOLVED ESCALATED"`
	ResponseTimeSeconds float64 `json:"response_time_seconds,omitempty" validate:"gte=0"`
}
