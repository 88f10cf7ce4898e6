package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/safety_response_coordinator/internal/config"
	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

// newTestWorker создает воркер без Redis на фейковых часах
func newTestWorker(url string) (*Worker, *clockz.FakeClock) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DispatchURL:        url,
		DispatchSecret:     "s3cret",
		DispatchTimeout:    time.Second,
		DispatchMaxRetries: 3,
		DispatchBaseDelay:  100 * time.Millisecond,
	}
	clock := clockz.NewFakeClock()
	return NewWorker(nil, clock, logger, cfg), clock
}

// deliverAsync запускает Deliver и прокручивает часы на каждую ожидаемую паузу
func deliverAsync(t *testing.T, worker *Worker, clock *clockz.FakeClock, delays ...time.Duration) error {
	t.Helper()
	req, payload := testRequest()

	done := make(chan error, 1)
	go func() {
		done <- worker.Deliver(context.Background(), req, payload)
	}()

	for _, d := range delays {
		require.Eventually(t, clock.HasWaiters, time.Second, time.Millisecond)
		clock.Advance(d)
		clock.BlockUntilReady()
	}

	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("delivery did not finish")
		return nil
	}
}

func testRequest() (models.DispatchRequest, []byte) {
	req := models.DispatchRequest{ID: "d-1", IncidentID: "INC-1", StaffIDs: []string{"ert-1", "ert-2"}}
	payload, _ := json.Marshal(req)
	return req, payload
}

func TestDeliver_SignedPayload(t *testing.T) {
	var gotSignature string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Dispatch-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	worker, clock := newTestWorker(server.URL)
	started := clock.Now()

	err := deliverAsync(t, worker, clock)

	_, payload := testRequest()
	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, Sign(payload, "s3cret"), gotSignature)
	assert.Equal(t, time.Duration(0), clock.Since(started))
	assert.False(t, clock.HasWaiters())
}

func TestDeliver_RetriesWithExponentialBackoff(t *testing.T) {
	var mu sync.Mutex
	var attempts []time.Time
	var clock *clockz.FakeClock
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts = append(attempts, clock.Now())
		n := len(attempts)
		mu.Unlock()
		if n < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker, fake := newTestWorker(server.URL)
	clock = fake
	started := clock.Now()

	err := deliverAsync(t, worker, clock, 100*time.Millisecond, 200*time.Millisecond)

	require.NoError(t, err)
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, attempts, 3)
	// Попытки в 0, 100ms и 300ms: пауза удваивается
	assert.Equal(t, time.Duration(0), attempts[0].Sub(started))
	assert.Equal(t, 100*time.Millisecond, attempts[1].Sub(started))
	assert.Equal(t, 300*time.Millisecond, attempts[2].Sub(started))
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker, clock := newTestWorker(server.URL)

	err := deliverAsync(t, worker, clock, 100*time.Millisecond, 200*time.Millisecond)

	require.Error(t, err)
	assert.ErrorContains(t, err, "status 500")
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDeliver_NoURLConfigured(t *testing.T) {
	worker, _ := newTestWorker("")
	req, payload := testRequest()

	err := worker.Deliver(context.Background(), req, payload)

	assert.ErrorContains(t, err, "not configured")
}

func TestSign_IsDeterministic(t *testing.T) {
	a := Sign([]byte("payload"), "key")
	b := Sign([]byte("payload"), "key")
	c := Sign([]byte("payload"), "other")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestDeliver_CancelledDuringBackoff(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	worker, clock := newTestWorker(server.URL)
	req, payload := testRequest()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- worker.Deliver(ctx, req, payload)
	}()

	// Первая попытка провалилась, воркер ждет паузу по часам
	require.Eventually(t, clock.HasWaiters, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("delivery did not stop after cancel")
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
