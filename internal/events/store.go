// Package events keeps an append-only activity log in a Redis sorted set.
// Each member is a JSON event scored by its id, which comes from an INCR
// sequence, so score order is insertion order.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Raymond9734/linkpager/internal/config"
	"github.com/Raymond9734/linkpager/internal/models"
	"github.com/Raymond9734/linkpager/internal/pagination"
)

// Store defines the operations on the event log
type Store interface {
	// Append assigns the next id to the event and stores it
	Append(ctx context.Context, req *models.NewEventRequest) (*models.Event, error)

	// Keyset reads events ordered by id relative to q's position
	Keyset(ctx context.Context, q pagination.KeysetQuery) ([]*models.Event, error)

	// Health checks if Redis is reachable
	Health(ctx context.Context) error

	// Close closes the Redis connection
	Close() error
}

// redisClient is the subset of *redis.Client the store uses
type redisClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	ZAddNX(ctx context.Context, key string, members ...redis.Z) *redis.IntCmd
	ZRangeArgs(ctx context.Context, z redis.ZRangeArgs) *redis.StringSliceCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// redisStore implements Store using a sorted set
type redisStore struct {
	client redisClient
	key    string
	seqKey string
	now    func() time.Time
	logger *slog.Logger
}

// NewRedisStore connects to Redis and returns the event store
func NewRedisStore(cfg config.RedisConfig, logger *slog.Logger) (Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to Redis",
		slog.String("addr", opts.Addr),
		slog.String("events_key", cfg.EventsKey),
	)

	return newStore(client, cfg.EventsKey, logger), nil
}

func newStore(client redisClient, key string, logger *slog.Logger) *redisStore {
	return &redisStore{
		client: client,
		key:    key,
		seqKey: key + ":seq",
		now:    time.Now,
		logger: logger,
	}
}

// Append stores a new event
func (s *redisStore) Append(ctx context.Context, req *models.NewEventRequest) (*models.Event, error) {
	id, err := s.client.Incr(ctx, s.seqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate event id: %w", err)
	}

	event := &models.Event{
		ID:         id,
		Type:       req.Type,
		CampaignID: req.CampaignID,
		Payload:    req.Payload,
		CreatedAt:  s.now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	added, err := s.client.ZAddNX(ctx, s.key, redis.Z{Score: float64(id), Member: data}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to store event: %w", err)
	}
	if added == 0 {
		return nil, models.ErrConflictWithMsg(fmt.Sprintf("event %d already exists", id))
	}

	s.logger.Debug("event appended",
		slog.Int64("event_id", id),
		slog.String("type", event.Type),
	)

	return event, nil
}

// Keyset reads one window of events. Positions are exclusive score bounds.
func (s *redisStore) Keyset(ctx context.Context, q pagination.KeysetQuery) ([]*models.Event, error) {
	lo, hi := "-inf", "+inf"
	if q.Position != nil {
		if _, err := strconv.ParseInt(*q.Position, 10, 64); err != nil {
			return nil, pagination.ErrInvalidCursor
		}
		if q.Before {
			hi = "(" + *q.Position
		} else {
			lo = "(" + *q.Position
		}
	}

	// go-redis swaps Start and Stop itself for REV BYSCORE
	members, err := s.client.ZRangeArgs(ctx, redis.ZRangeArgs{
		Key:     s.key,
		Start:   lo,
		Stop:    hi,
		ByScore: true,
		Rev:     q.Descending,
		Offset:  int64(q.Offset),
		Count:   int64(q.Limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	events := make([]*models.Event, 0, len(members))
	for _, member := range members {
		event := &models.Event{}
		if err := json.Unmarshal([]byte(member), event); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

// Health checks if Redis is healthy
func (s *redisStore) Health(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis health check failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (s *redisStore) Close() error {
	s.logger.Info("closing Redis connection")
	return s.client.Close()
}
