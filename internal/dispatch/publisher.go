package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_response_coordinator/internal/models"
)

const (
	dispatchQueueKey = "dispatch_requests"
)

// RedisQueue - очередь запросов на выезд в Redis
type RedisQueue struct {
	redisClient *redis.Client
}

// NewRedisQueue создает новый RedisQueue
func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{
		redisClient: client,
	}
}

// Publish кладет запрос в очередь
func (q *RedisQueue) Publish(ctx context.Context, request models.DispatchRequest) error {
	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch request: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP: FIFO
	if err := q.redisClient.LPush(ctx, dispatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch request to Redis: %w", err)
	}
	return nil
}

// InlineQueue доставляет запросы без Redis: каждый запрос уходит воркеру в отдельной горутине.
// Запросы, не доставленные до остановки процесса, теряются.
type InlineQueue struct {
	ctx    context.Context
	worker *Worker
}

// NewInlineQueue создает InlineQueue; ctx ограничивает время жизни доставок
func NewInlineQueue(ctx context.Context, worker *Worker) *InlineQueue {
	return &InlineQueue{
		ctx:    ctx,
		worker: worker,
	}
}

func (q *InlineQueue) Publish(_ context.Context, request models.DispatchRequest) error {
	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch request: %w", err)
	}
	go q.worker.process(q.ctx, request, payload)
	return nil
}
