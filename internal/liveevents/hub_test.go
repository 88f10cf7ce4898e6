package liveevents

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_StreamsSnapshotThenEvents(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	agg, _ := newTestAggregator()
	agg.Ingest(event("before", models.EventNewIncident, models.SeverityWarning))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub(logger)
	hub.Run(ctx, agg)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, agg.Snapshot)
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var snapshot models.LiveSnapshot
	require.NoError(t, conn.ReadJSON(&snapshot))
	require.Len(t, snapshot.Events, 1)
	assert.Equal(t, "before", snapshot.Events[0].ID)
	assert.Equal(t, 1, snapshot.Stats.ActiveIncidents)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	agg.Ingest(event("after", models.EventStatusUpdate, models.SeverityInfo))

	var received models.LiveEvent
	require.NoError(t, conn.ReadJSON(&received))
	assert.Equal(t, "after", received.ID)
}

// dialHub поднимает сервер с ServeWS и возвращает соединение и снимок, пришедший первым
func dialHub(t *testing.T, hub *Hub, snapshot func() models.LiveSnapshot) (*websocket.Conn, models.LiveSnapshot) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, snapshot)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var snap models.LiveSnapshot
	require.NoError(t, conn.ReadJSON(&snap))
	return conn, snap
}

func TestHub_EventAfterSnapshotIsStreamed(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	agg, _ := newTestAggregator()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub(logger)
	hub.Run(ctx, agg)

	// Событие приходит сразу после снятия снимка, до отправки его клиенту
	conn, snap := dialHub(t, hub, func() models.LiveSnapshot {
		s := agg.Snapshot()
		agg.Ingest(event("in-window", models.EventNewIncident, models.SeverityCritical))
		return s
	})
	assert.Empty(t, snap.Events)

	var received models.LiveEvent
	require.NoError(t, conn.ReadJSON(&received))
	assert.Equal(t, "in-window", received.ID)
}

func TestHub_EventInSnapshotIsNotRepeated(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	agg, _ := newTestAggregator()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub(logger)
	hub.Run(ctx, agg)

	// Событие приходит после регистрации клиента, но до снятия снимка
	conn, snap := dialHub(t, hub, func() models.LiveSnapshot {
		agg.Ingest(event("in-snapshot", models.EventNewIncident, models.SeverityWarning))
		return agg.Snapshot()
	})
	require.Len(t, snap.Events, 1)
	assert.Equal(t, "in-snapshot", snap.Events[0].ID)

	agg.Ingest(event("after", models.EventStatusUpdate, models.SeverityInfo))

	var received models.LiveEvent
	require.NoError(t, conn.ReadJSON(&received))
	assert.Equal(t, "after", received.ID)
}
