package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPrerequisiteNotMet - попытка завершить шаг раньше его предварительных шагов
	ErrPrerequisiteNotMet = errors.New("prerequisite not met")
	// ErrInvalidTransition - переход статуса нарушает машину состояний инцидента
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrUnknownCategory - нет шаблона и нет запасной категории; ошибка конфигурации
	ErrUnknownCategory = errors.New("unknown category")

	ErrIncidentNotFound   = errors.New("incident not found")
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrVersionConflict    = errors.New("version conflict")
	ErrStaffNotSelectable = errors.New("staff member is not available for dispatch")
	ErrStepOutOfRange     = errors.New("workflow step index out of range")
	ErrWorkflowNotStarted = errors.New("workflow not started")
)

// PrerequisiteError описывает, каких шагов не хватает для завершения StepID
type PrerequisiteError struct {
	StepID  string
	Missing []string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("step %q requires [%s] to be completed first", e.StepID, strings.Join(e.Missing, ", "))
}

func (e *PrerequisiteError) Unwrap() error {
	return ErrPrerequisiteNotMet
}

// TransitionError содержит неизменившийся текущий статус
type TransitionError struct {
	Current   IncidentStatus
	Requested IncidentStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move incident from %s to %s", e.Current, e.Requested)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
