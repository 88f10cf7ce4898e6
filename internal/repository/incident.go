package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_response_coordinator/internal/models"
)

// IncidentRepository - каталог инцидентов в PostgreSQL с кешем чтения в Redis.
// Запись инцидента хранится в jsonb, индексируемые поля дублируются в колонках.
type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) *IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	data, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident: %w", err)
	}

	query := `
		INSERT INTO incidents (id, category, severity, priority, status, created_at, updated_at, response_deadline, version, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = r.db.Exec(ctx, query,
		incident.ID,
		incident.Category,
		incident.Severity,
		incident.Priority,
		incident.Status,
		incident.CreatedAt,
		incident.UpdatedAt,
		incident.ResponseDeadline,
		incident.Version,
		data,
	)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по id, сначала из кеша
func (r *IncidentRepository) GetByID(ctx context.Context, id string) (*models.Incident, error) {
	if cached, err := r.getFromCache(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	var data []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM incidents WHERE id = $1;`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(data, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident: %w", err)
	}

	// Ошибка кеша не должна ломать чтение
	_ = r.setCache(ctx, incident)
	return incident, nil
}

// Update сохраняет инцидент, только если версия в базе равна expectedVersion
func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident, expectedVersion int64) error {
	next := incident.Clone()
	next.Version = expectedVersion + 1
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to marshal incident: %w", err)
	}

	query := `
		UPDATE incidents SET
			priority = $1,
			status = $2,
			updated_at = $3,
			version = $4,
			data = $5
		WHERE id = $6 AND version = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		next.Priority,
		next.Status,
		next.UpdatedAt,
		next.Version,
		data,
		next.ID,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}

	// RowsAffected() == 0: либо инцидента нет, либо версия устарела
	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM incidents WHERE id = $1);`, incident.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check incident existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("incident with id %s: %w", incident.ID, models.ErrIncidentNotFound)
		}
		return fmt.Errorf("incident with id %s at version %d: %w", incident.ID, expectedVersion, models.ErrVersionConflict)
	}

	incident.Version = next.Version
	// Кладем новую версию сразу: иначе параллельное чтение старой строки вернуло бы ее в кеш
	if err := r.setCache(ctx, next); err != nil {
		_ = r.invalidateCache(ctx, incident.ID)
	}
	return nil
}

// List возвращает все инциденты в порядке создания
func (r *IncidentRepository) List(ctx context.Context) ([]*models.Incident, error) {
	rows, err := r.db.Query(ctx, `SELECT data FROM incidents ORDER BY created_at ASC, id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incident := &models.Incident{}
		if err := json.Unmarshal(data, incident); err != nil {
			return nil, fmt.Errorf("failed to unmarshal incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

func cacheKey(id string) string {
	return fmt.Sprintf("incident:%s", id)
}

// getFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) getFromCache(ctx context.Context, id string) (*models.Incident, error) {
	if r.redisClient == nil {
		return nil, nil
	}
	val, err := r.redisClient.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

const cacheWriteAttempts = 3

// setCache сохраняет инцидент в Redis, если в кеше нет версии новее.
// WATCH срывает запись, если ключ изменили между GET и SET; тогда сравнение повторяется.
func (r *IncidentRepository) setCache(ctx context.Context, incident *models.Incident) error {
	if r.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}

	key := cacheKey(incident.ID)
	write := func(tx *redis.Tx) error {
		cached, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if !shouldReplaceCached(cached, incident.Version) {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, val, r.cacheTTL)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < cacheWriteAttempts; attempt++ {
		err = r.redisClient.Watch(ctx, write, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// shouldReplaceCached - кеш пуст, поврежден или хранит версию старше incoming
func shouldReplaceCached(cached []byte, incoming int64) bool {
	if len(cached) == 0 {
		return true
	}
	var current struct {
		Version int64 `json:"version"`
	}
	if err := json.Unmarshal(cached, &current); err != nil {
		return true
	}
	return current.Version < incoming
}

// invalidateCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) invalidateCache(ctx context.Context, id string) error {
	if r.redisClient == nil {
		return nil
	}
	if err := r.redisClient.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
