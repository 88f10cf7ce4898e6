package workflow

import (
	"fmt"
	"time"

	"github.com/shenikar/safety_response_coordinator/internal/models"
)

// Tracker хранит состояние выполнения шагов процедуры одного инцидента.
// Не потокобезопасен: у инцидента в каждый момент один оператор.
type Tracker struct {
	incidentID string
	category   models.IncidentCategory
	templates  []models.WorkflowStepTemplate
	steps      []models.WorkflowStepInstance
	index      map[string]int
}

// NewTracker создает по одному незавершенному экземпляру на каждый шаг шаблона
func NewTracker(incidentID string, category models.IncidentCategory, templates []models.WorkflowStepTemplate, createdAt time.Time) *Tracker {
	t := &Tracker{
		incidentID: incidentID,
		category:   category,
		templates:  cloneTemplates(templates),
		steps:      make([]models.WorkflowStepInstance, len(templates)),
		index:      make(map[string]int, len(templates)),
	}
	for i, tpl := range templates {
		t.steps[i] = models.WorkflowStepInstance{
			StepID:    tpl.ID,
			CreatedAt: createdAt,
		}
		t.index[tpl.ID] = i
	}
	return t
}

func (t *Tracker) IncidentID() string {
	return t.incidentID
}

func (t *Tracker) Category() models.IncidentCategory {
	return t.category
}

// ToggleCompletion переключает шаг. Завершение требует выполненных prerequisites,
// отмена завершения разрешена всегда и очищает время завершения.
func (t *Tracker) ToggleCompletion(stepIndex int, now time.Time) error {
	if stepIndex < 0 || stepIndex >= len(t.steps) {
		return fmt.Errorf("step %d of %d: %w", stepIndex, len(t.steps), models.ErrStepOutOfRange)
	}

	step := &t.steps[stepIndex]
	if step.Completed {
		step.Completed = false
		step.CompletedAt = nil
		return nil
	}

	var missing []string
	for _, prereq := range t.templates[stepIndex].Guidance.Prerequisites {
		i, ok := t.index[prereq]
		if !ok || !t.steps[i].Completed {
			missing = append(missing, prereq)
		}
	}
	if len(missing) > 0 {
		return &models.PrerequisiteError{StepID: step.StepID, Missing: missing}
	}

	completedAt := now
	step.Completed = true
	step.CompletedAt = &completedAt
	return nil
}

// Progress возвращает число завершенных шагов и общее число шагов
func (t *Tracker) Progress() (completed, total int) {
	for _, step := range t.steps {
		if step.Completed {
			completed++
		}
	}
	return completed, len(t.steps)
}

// ProgressRatio - доля завершенных шагов для прогресс-бара
func (t *Tracker) ProgressRatio() float64 {
	completed, total := t.Progress()
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

// IsStepOverdue - у шага есть лимит, он не завершен и now позже createdAt + лимит
func (t *Tracker) IsStepOverdue(stepIndex int, now time.Time) bool {
	if stepIndex < 0 || stepIndex >= len(t.steps) {
		return false
	}
	limit := t.templates[stepIndex].Guidance.TimeLimit()
	step := t.steps[stepIndex]
	if limit <= 0 || step.Completed {
		return false
	}
	return now.After(step.CreatedAt.Add(limit))
}

// Steps возвращает копию состояния шагов
func (t *Tracker) Steps() []models.WorkflowStepInstance {
	out := make([]models.WorkflowStepInstance, len(t.steps))
	for i, step := range t.steps {
		if step.CompletedAt != nil {
			at := *step.CompletedAt
			step.CompletedAt = &at
		}
		out[i] = step
	}
	return out
}

func (t *Tracker) Templates() []models.WorkflowStepTemplate {
	return cloneTemplates(t.templates)
}
