package liveevents

import (
	"bytes"
	"context"
	"testing"

	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingIngester struct {
	events []models.LiveEvent
}

func (r *recordingIngester) Ingest(event models.LiveEvent) {
	r.events = append(r.events, event)
}

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
		want    models.LiveEvent
	}{
		{
			name:    "valid",
			payload: `{"id":"e1","type":"NEW_INCIDENT","message":"SOS","severity":"CRITICAL","incident_id":"i1"}`,
			want:    models.LiveEvent{ID: "e1", Type: models.EventNewIncident, Message: "SOS", Severity: models.SeverityCritical, IncidentID: "i1"},
		},
		{
			name:    "default severity",
			payload: `{"type":"LOCATION_UPDATE"}`,
			want:    models.LiveEvent{Type: models.EventLocationUpdate, Severity: models.SeverityInfo},
		},
		{name: "malformed json", payload: `{"type":`, wantErr: "unmarshal"},
		{name: "unknown type", payload: `{"type":"REBOOT"}`, wantErr: "unknown live event type"},
		{name: "unknown severity", payload: `{"type":"NEW_INCIDENT","severity":"LOUD"}`, wantErr: "unknown live event severity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeEvent([]byte(tt.payload))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRedisSubscriber_HandlePayload(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	ingester := &recordingIngester{}
	sub := NewRedisSubscriber(nil, "live_events", ingester, logger)

	sub.handlePayload(`{"id":"1","type":"NEW_INCIDENT","severity":"CRITICAL"}`)
	sub.handlePayload(`not json`)
	sub.handlePayload(`{"id":"2","type":"STATUS_UPDATE","status":"RESOLVED"}`)

	require.Len(t, ingester.events, 2)
	assert.Equal(t, "1", ingester.events[0].ID)
	assert.Equal(t, "2", ingester.events[1].ID)
	assert.Equal(t, models.StatusResolved, ingester.events[1].Status)
}

func TestDirectPublisher(t *testing.T) {
	ingester := &recordingIngester{}
	pub := NewDirectPublisher(ingester)

	err := pub.Publish(context.Background(), models.LiveEvent{ID: "x", Type: models.EventMessageReceived})

	require.NoError(t, err)
	require.Len(t, ingester.events, 1)
	assert.Equal(t, "x", ingester.events[0].ID)
}
