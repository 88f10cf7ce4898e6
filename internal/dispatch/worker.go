package dispatch

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_response_coordinator/internal/config"
	"github.com/shenikar/safety_response_coordinator/internal/metrics"
	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"
)

// Worker забирает запросы из очереди и доставляет их в систему диспетчеризации
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	clock       clockz.Clock
}

// NewWorker создает новый Worker; паузы между попытками отсчитываются по clock
func NewWorker(redisClient *redis.Client, clock clockz.Clock, logger *logrus.Logger, cfg *config.Config) *Worker {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.DispatchTimeout,
		},
		clock: clock,
	}
}

// sleep ждет d по часам воркера или отмены ctx
func (w *Worker) sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-w.clock.After(d):
	}
}

// Start запускает горутину для обработки очереди
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting dispatch worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping dispatch worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из хвоста списка, 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, dispatchQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop dispatch request from Redis")
					w.sleep(ctx, w.cfg.DispatchTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var request models.DispatchRequest
				if err := json.Unmarshal([]byte(payload), &request); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal dispatch request from Redis")
					continue
				}

				w.process(ctx, request, []byte(payload))
			}
		}
	}()
}

func (w *Worker) process(ctx context.Context, request models.DispatchRequest, payload []byte) {
	if err := w.Deliver(ctx, request, payload); err != nil {
		metrics.DispatchRequests.WithLabelValues("delivery_failed").Inc()
		return
	}
	metrics.DispatchRequests.WithLabelValues("delivered").Inc()
}

// Deliver отправляет запрос с HMAC-подписью, повторяя с экспоненциальной задержкой
func (w *Worker) Deliver(ctx context.Context, request models.DispatchRequest, rawPayload []byte) error {
	log := w.logger.WithFields(logrus.Fields{
		"request_id":  request.ID,
		"incident_id": request.IncidentID,
		"staff_count": len(request.StaffIDs),
	})
	log.Debug("Delivering dispatch request...")

	if w.cfg.DispatchURL == "" {
		log.Warn("Dispatch URL is not configured. Skipping dispatch delivery.")
		return errors.New("dispatch url is not configured")
	}

	started := w.clock.Now()
	maxRetries := w.cfg.DispatchMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.DispatchBaseDelay

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			log.WithError(lastErr).Warnf("Retrying dispatch delivery in %v. Retries left: %d", delay, maxRetries-i)
			w.sleep(ctx, delay)
			delay *= 2
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = w.send(ctx, rawPayload)
		if lastErr == nil {
			metrics.DispatchDeliveryDuration.Observe(w.clock.Since(started).Seconds())
			log.Info("Dispatch request delivered successfully.")
			return nil
		}
	}

	log.WithError(lastErr).Errorf("Failed to deliver dispatch request after %d attempts.", maxRetries)
	return fmt.Errorf("dispatch delivery failed: %w", lastErr)
}

func (w *Worker) send(ctx context.Context, rawPayload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.DispatchURL, bytes.NewReader(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create dispatch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если DISPATCH_SECRET задан
	if w.cfg.DispatchSecret != "" {
		req.Header.Set("X-Dispatch-Signature", Sign(rawPayload, w.cfg.DispatchSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("dispatch system responded with status %d", resp.StatusCode)
	}
	return nil
}

// Sign генерирует HMAC-SHA256 подпись для данных
func Sign(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
