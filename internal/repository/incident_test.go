package repository

import (
	"encoding/json"
	"testing"

	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cachedIncident(t *testing.T, version int64) []byte {
	t.Helper()
	raw, err := json.Marshal(&models.Incident{ID: "INC-1", Version: version})
	require.NoError(t, err)
	return raw
}

func TestShouldReplaceCached(t *testing.T) {
	tests := []struct {
		name     string
		cached   []byte
		incoming int64
		want     bool
	}{
		{"empty cache", nil, 1, true},
		{"older cached version", cachedIncident(t, 1), 2, true},
		// Читатель со старой строкой не должен затереть версию, записанную Update
		{"stale read after update", cachedIncident(t, 2), 1, false},
		{"same version", cachedIncident(t, 2), 2, false},
		{"corrupted entry", []byte("{not json"), 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldReplaceCached(tt.cached, tt.incoming))
		})
	}
}

func TestIncidentRepository_CacheDisabledWithoutRedis(t *testing.T) {
	repo := NewIncidentRepository(nil, nil, 0)

	assert.NoError(t, repo.setCache(t.Context(), &models.Incident{ID: "INC-1", Version: 3}))
	cached, err := repo.getFromCache(t.Context(), "INC-1")
	assert.NoError(t, err)
	assert.Nil(t, cached)
	assert.NoError(t, repo.invalidateCache(t.Context(), "INC-1"))
}
