package liveevents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/sirupsen/logrus"
)

// Ingester - получатель событий, обычно Aggregator
type Ingester interface {
	Ingest(event models.LiveEvent)
}

// RedisPublisher публикует события в канал Redis pub/sub
type RedisPublisher struct {
	redisClient *redis.Client
	channel     string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
		channel:     channel,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, event models.LiveEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal live event: %w", err)
	}
	if err := p.redisClient.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish live event to Redis: %w", err)
	}
	return nil
}

// DirectPublisher передает события агрегатору в процессе, без Redis
type DirectPublisher struct {
	ingester Ingester
}

func NewDirectPublisher(ingester Ingester) *DirectPublisher {
	return &DirectPublisher{ingester: ingester}
}

func (p *DirectPublisher) Publish(_ context.Context, event models.LiveEvent) error {
	p.ingester.Ingest(event)
	return nil
}

// RedisSubscriber читает события из канала Redis и передает их агрегатору в порядке поступления
type RedisSubscriber struct {
	redisClient *redis.Client
	channel     string
	ingester    Ingester
	logger      *logrus.Logger
}

func NewRedisSubscriber(client *redis.Client, channel string, ingester Ingester, logger *logrus.Logger) *RedisSubscriber {
	return &RedisSubscriber{
		redisClient: client,
		channel:     channel,
		ingester:    ingester,
		logger:      logger,
	}
}

// Start запускает горутину подписки; она завершается при отмене ctx
func (s *RedisSubscriber) Start(ctx context.Context) {
	s.logger.WithField("channel", s.channel).Info("Starting live event subscriber...")
	pubsub := s.redisClient.Subscribe(ctx, s.channel)

	go func() {
		defer pubsub.Close()
		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping live event subscriber.")
				return
			case msg, ok := <-messages:
				if !ok {
					s.logger.Warn("Live event channel closed")
					return
				}
				s.handlePayload(msg.Payload)
			}
		}
	}()
}

// handlePayload декодирует и валидирует событие; некорректные события пропускаются
func (s *RedisSubscriber) handlePayload(payload string) {
	event, err := DecodeEvent([]byte(payload))
	if err != nil {
		s.logger.WithError(err).Warn("Dropping malformed live event")
		return
	}
	s.ingester.Ingest(event)
}

// DecodeEvent разбирает JSON события и проверяет тип и уровень важности
func DecodeEvent(payload []byte) (models.LiveEvent, error) {
	var event models.LiveEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return models.LiveEvent{}, fmt.Errorf("failed to unmarshal live event: %w", err)
	}
	if !event.Type.Valid() {
		return models.LiveEvent{}, fmt.Errorf("unknown live event type %q", event.Type)
	}
	if event.Severity == "" {
		event.Severity = models.SeverityInfo
	}
	if !event.Severity.Valid() {
		return models.LiveEvent{}, fmt.Errorf("unknown live event severity %q", event.Severity)
	}
	return event, nil
}
