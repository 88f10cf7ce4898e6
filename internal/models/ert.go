package models

import "time"

// StaffStatus - статус сотрудника группы экстренного реагирования
type StaffStatus string

const (
	StaffAvailable  StaffStatus = "AVAILABLE"
	StaffDispatched StaffStatus = "DISPATCHED"
	StaffBusy       StaffStatus = "BUSY"
)

func (s StaffStatus) Valid() bool {
	switch s {
	case StaffAvailable, StaffDispatched, StaffBusy:
		return true
	}
	return false
}

type ERTStaffMember struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Role           string      `json:"role"`
	Status         StaffStatus `json:"status"`
	ETAMinutes     int         `json:"eta_minutes"`
	Location       Location    `json:"location"`
	Skills         []string    `json:"skills"`
	Certifications []string    `json:"certifications"`
}

// Clone копирует срезы навыков и сертификатов
func (m ERTStaffMember) Clone() ERTStaffMember {
	m.Skills = append([]string(nil), m.Skills...)
	m.Certifications = append([]string(nil), m.Certifications...)
	return m
}

// Recommendation - кандидат в ранжированном списке
type Recommendation struct {
	Staff          ERTStaffMember `json:"staff"`
	MatchingSkills int            `json:"matching_skills"`
	RelevanceScore float64        `json:"relevance_score"`
	IsRelevant     bool           `json:"is_relevant"`
	Selectable     bool           `json:"selectable"`
}

// DispatchRequest - запрос во внешнюю систему диспетчеризации
type DispatchRequest struct {
	ID          string    `json:"id"`
	IncidentID  string    `json:"incident_id"`
	StaffIDs    []string  `json:"staff_ids"`
	RequestedAt time.Time `json:"requested_at"`
}
