package workflow

import (
	"fmt"
	"sort"

	"github.com/shenikar/safety_response_coordinator/internal/metrics"
	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/sirupsen/logrus"
)

// Registry - неизменяемая таблица шаблонов процедур по категориям
type Registry struct {
	templates map[models.IncidentCategory][]models.WorkflowStepTemplate
	fallback  models.IncidentCategory
	logger    *logrus.Logger
}

// NewRegistry проверяет шаблоны и создает реестр.
// Ошибка здесь - ошибка конфигурации, процесс не должен стартовать.
func NewRegistry(templates map[models.IncidentCategory][]models.WorkflowStepTemplate, fallback models.IncidentCategory, logger *logrus.Logger) (*Registry, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("workflow registry: no templates configured: %w", models.ErrUnknownCategory)
	}
	if _, ok := templates[fallback]; !ok {
		return nil, fmt.Errorf("workflow registry: fallback category %q has no template: %w", fallback, models.ErrUnknownCategory)
	}

	copied := make(map[models.IncidentCategory][]models.WorkflowStepTemplate, len(templates))
	for category, steps := range templates {
		if err := validateTemplate(category, steps); err != nil {
			return nil, err
		}
		copied[category] = cloneTemplates(steps)
	}

	return &Registry{
		templates: copied,
		fallback:  fallback,
		logger:    logger,
	}, nil
}

// validateTemplate требует уникальные id и чтобы каждый prerequisite стоял раньше шага,
// тогда выполнение шагов по порядку никогда не упирается в ErrPrerequisiteNotMet
func validateTemplate(category models.IncidentCategory, steps []models.WorkflowStepTemplate) error {
	if len(steps) == 0 {
		return fmt.Errorf("workflow registry: category %q has an empty template", category)
	}
	seen := make(map[string]bool, len(steps))
	for _, step := range steps {
		if step.ID == "" {
			return fmt.Errorf("workflow registry: category %q has a step without id", category)
		}
		if seen[step.ID] {
			return fmt.Errorf("workflow registry: category %q has duplicate step id %q", category, step.ID)
		}
		for _, prereq := range step.Guidance.Prerequisites {
			if !seen[prereq] {
				return fmt.Errorf("workflow registry: step %q of %q requires %q which is not an earlier step", step.ID, category, prereq)
			}
		}
		seen[step.ID] = true
	}
	return nil
}

// TemplatesFor возвращает шаги для категории.
// Категория без шаблона получает шаблон запасной категории, и это пишется в лог.
func (r *Registry) TemplatesFor(category models.IncidentCategory) []models.WorkflowStepTemplate {
	if steps, ok := r.templates[category]; ok {
		return cloneTemplates(steps)
	}

	r.logger.WithFields(logrus.Fields{
		"component": "workflow_registry",
		"requested": category,
		"fallback":  r.fallback,
	}).Warn("No workflow template for category, using fallback template")
	metrics.WorkflowFallbacks.WithLabelValues(string(category)).Inc()

	return cloneTemplates(r.templates[r.fallback])
}

// HasTemplate сообщает, есть ли у категории собственный шаблон
func (r *Registry) HasTemplate(category models.IncidentCategory) bool {
	_, ok := r.templates[category]
	return ok
}

func (r *Registry) Fallback() models.IncidentCategory {
	return r.fallback
}

// Categories возвращает категории с собственными шаблонами, отсортированные по имени
func (r *Registry) Categories() []models.IncidentCategory {
	out := make([]models.IncidentCategory, 0, len(r.templates))
	for category := range r.templates {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func cloneTemplates(steps []models.WorkflowStepTemplate) []models.WorkflowStepTemplate {
	out := make([]models.WorkflowStepTemplate, len(steps))
	for i, step := range steps {
		g := step.Guidance
		g.Prerequisites = append([]string(nil), g.Prerequisites...)
		g.Tips = append([]string(nil), g.Tips...)
		g.Warnings = append([]string(nil), g.Warnings...)
		g.NextSteps = append([]string(nil), g.NextSteps...)
		step.Guidance = g
		out[i] = step
	}
	return out
}
