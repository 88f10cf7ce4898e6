package workflow

import (
	"bytes"
	"testing"

	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, buf
}

func TestNewRegistry_NoTemplates(t *testing.T) {
	logger, _ := newTestLogger()

	registry, err := NewRegistry(nil, models.CategorySOS, logger)

	require.Error(t, err)
	assert.Nil(t, registry)
	assert.ErrorIs(t, err, models.ErrUnknownCategory)
}

func TestNewRegistry_FallbackWithoutTemplate(t *testing.T) {
	logger, _ := newTestLogger()
	templates := map[models.IncidentCategory][]models.WorkflowStepTemplate{
		models.CategoryFraud: DefaultTemplates()[models.CategoryFraud],
	}

	_, err := NewRegistry(templates, models.CategorySOS, logger)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownCategory)
}

func TestNewRegistry_RejectsForwardPrerequisite(t *testing.T) {
	logger, _ := newTestLogger()
	templates := map[models.IncidentCategory][]models.WorkflowStepTemplate{
		models.CategorySOS: {
			{ID: "a", Guidance: models.StepGuidance{Prerequisites: []string{"b"}}},
			{ID: "b"},
		},
	}

	_, err := NewRegistry(templates, models.CategorySOS, logger)

	require.Error(t, err)
	assert.ErrorContains(t, err, "not an earlier step")
}

func TestNewRegistry_RejectsDuplicateIDs(t *testing.T) {
	logger, _ := newTestLogger()
	templates := map[models.IncidentCategory][]models.WorkflowStepTemplate{
		models.CategorySOS: {{ID: "a"}, {ID: "a"}},
	}

	_, err := NewRegistry(templates, models.CategorySOS, logger)

	require.Error(t, err)
	assert.ErrorContains(t, err, "duplicate step id")
}

func TestTemplatesFor_ExplicitTemplate(t *testing.T) {
	logger, buf := newTestLogger()
	registry, err := NewRegistry(DefaultTemplates(), models.CategorySOS, logger)
	require.NoError(t, err)

	steps := registry.TemplatesFor(models.CategoryAccident)

	require.NotEmpty(t, steps)
	assert.Equal(t, "acc-injuries", steps[0].ID)
	assert.Empty(t, buf.String())
}

func TestTemplatesFor_FallbackIsLogged(t *testing.T) {
	logger, buf := newTestLogger()
	registry, err := NewRegistry(DefaultTemplates(), models.CategorySOS, logger)
	require.NoError(t, err)

	steps := registry.TemplatesFor(models.CategoryViolence)

	assert.Equal(t, registry.TemplatesFor(models.CategorySOS), steps)
	assert.Contains(t, buf.String(), "fallback")
	assert.Contains(t, buf.String(), string(models.CategoryViolence))
	assert.False(t, registry.HasTemplate(models.CategoryViolence))
}

func TestTemplatesFor_ReturnsCopy(t *testing.T) {
	logger, _ := newTestLogger()
	registry, err := NewRegistry(DefaultTemplates(), models.CategorySOS, logger)
	require.NoError(t, err)

	steps := registry.TemplatesFor(models.CategorySOS)
	steps[0].Title = "changed"
	steps[1].Guidance.Prerequisites[0] = "changed"

	fresh := registry.TemplatesFor(models.CategorySOS)
	assert.NotEqual(t, "changed", fresh[0].Title)
	assert.Equal(t, "sos-contact", fresh[1].Guidance.Prerequisites[0])
}

func TestDefaultTemplates_InOrderCompletionNeverBlocks(t *testing.T) {
	logger, _ := newTestLogger()
	registry, err := NewRegistry(DefaultTemplates(), models.CategorySOS, logger)
	require.NoError(t, err)

	for _, category := range models.Categories {
		steps := registry.TemplatesFor(category)
		tracker := NewTracker("inc-1", category, steps, testStart)
		for i := range steps {
			require.NoError(t, tracker.ToggleCompletion(i, testStart), "category %s step %d", category, i)
		}
		completed, total := tracker.Progress()
		assert.Equal(t, total, completed)
	}
}
