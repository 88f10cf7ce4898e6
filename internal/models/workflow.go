package models

import "time"

// StepGuidance - рекомендации оператору для шага процедуры
type StepGuidance struct {
	Priority         Priority `json:"priority"`
	TimeLimitMinutes int      `json:"time_limit_minutes,omitempty"`
	Prerequisites    []string `json:"prerequisites,omitempty"`
	Tips             []string `json:"tips"`
	Warnings         []string `json:"warnings"`
	ExpectedOutcome  string   `json:"expected_outcome"`
	NextSteps        []string `json:"next_steps,omitempty"`
}

// TimeLimit возвращает лимит времени шага; ноль означает отсутствие лимита
func (g StepGuidance) TimeLimit() time.Duration {
	return time.Duration(g.TimeLimitMinutes) * time.Minute
}

// WorkflowStepTemplate - неизменяемый шаг шаблона для категории
type WorkflowStepTemplate struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Guidance    StepGuidance `json:"guidance"`
}

// WorkflowStepInstance - изменяемое состояние шага для конкретного инцидента
type WorkflowStepInstance struct {
	StepID      string     `json:"step_id"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// StepState - шаг процедуры вместе с состоянием выполнения
type StepState struct {
	Template WorkflowStepTemplate `json:"template"`
	Instance WorkflowStepInstance `json:"instance"`
	Overdue  bool                 `json:"overdue"`
}

// WorkflowState - снимок процедуры реагирования на момент запроса
type WorkflowState struct {
	IncidentID string           `json:"incident_id"`
	Category   IncidentCategory `json:"category"`
	Steps      []StepState      `json:"steps"`
	Completed  int              `json:"completed"`
	Total      int              `json:"total"`
	Progress   float64          `json:"progress"`
}
