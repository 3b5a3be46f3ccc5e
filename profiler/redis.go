package profiler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	gobreaker "github.com/sony/gobreaker/v2"
	gobreakerredis "github.com/sony/gobreaker/v2/redis"
)

const (
	defaultRedisPrefix     = "sentinel:profiler:"
	defaultRedisTTL        = 24 * time.Hour
	defaultRedisMaxEntries = 5000
)

// RedisStorage stores profiles in Redis so that results can be read from any
// instance of a service. Each profile lives under its own key with a TTL, and
// a sorted set indexes IDs by start time.
//
// Calls go through a circuit breaker: when Redis keeps failing, Save and Load
// fail fast with gobreaker.ErrOpenState instead of stalling requests. The
// breaker is local unless WithRedisSharedBreaker shares its state.
type RedisStorage struct {
	client     redis.UniversalClient
	prefix     string
	ttl        time.Duration
	maxEntries int64

	settings    gobreaker.Settings
	sharedStore gobreaker.SharedDataStore
	breaker     breaker
}

// breaker is satisfied by both gobreaker.CircuitBreaker and
// gobreaker.DistributedCircuitBreaker.
type breaker interface {
	Execute(req func() (any, error)) (any, error)
}

// RedisOption configures a RedisStorage.
type RedisOption func(*RedisStorage)

// WithRedisPrefix sets the key prefix. Default: "sentinel:profiler:".
func WithRedisPrefix(prefix string) RedisOption {
	return func(s *RedisStorage) {
		s.prefix = prefix
	}
}

// WithRedisTTL sets how long a profile is kept. Default: 24h.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStorage) {
		s.ttl = ttl
	}
}

// WithRedisMaxEntries bounds the index size. Default: 5000.
func WithRedisMaxEntries(n int64) RedisOption {
	return func(s *RedisStorage) {
		s.maxEntries = n
	}
}

// WithRedisBreaker replaces the circuit breaker settings.
func WithRedisBreaker(st gobreaker.Settings) RedisOption {
	return func(s *RedisStorage) {
		s.settings = st
	}
}

// WithRedisSharedBreaker keeps the breaker state in store, so every instance
// using the same store and breaker name trips and recovers together. When
// the shared breaker cannot be set up, the storage falls back to a local one.
//
// Example:
//
//	store := profiler.NewRedisStorage(rdb,
//	    profiler.WithRedisSharedBreaker(profiler.NewBreakerStore(rdb)),
//	)
func WithRedisSharedBreaker(store gobreaker.SharedDataStore) RedisOption {
	return func(s *RedisStorage) {
		s.sharedStore = store
	}
}

// NewBreakerStore returns a gobreaker.SharedDataStore backed by Redis.
func NewBreakerStore(client redis.UniversalClient) gobreaker.SharedDataStore {
	return gobreakerredis.NewStoreFromClient(client)
}

func defaultBreakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:        "profiler-redis",
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
	}
}

// NewRedisStorage creates a Redis-backed Storage.
//
// Example:
//
//	rdb := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{"localhost:6379"}})
//	store := profiler.NewRedisStorage(rdb, profiler.WithRedisTTL(time.Hour))
func NewRedisStorage(client redis.UniversalClient, opts ...RedisOption) *RedisStorage {
	s := &RedisStorage{
		client:     client,
		prefix:     defaultRedisPrefix,
		ttl:        defaultRedisTTL,
		maxEntries: defaultRedisMaxEntries,
		settings:   defaultBreakerSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.breaker = gobreaker.NewCircuitBreaker[any](s.settings)
	if s.sharedStore != nil {
		if dcb, err := gobreaker.NewDistributedCircuitBreaker[any](s.sharedStore, s.settings); err == nil {
			s.breaker = dcb
		}
	}
	return s
}

func (s *RedisStorage) key(id uuid.UUID) string {
	return s.prefix + id.String()
}

func (s *RedisStorage) indexKey() string {
	return s.prefix + "index"
}

// Save implements Storage.
func (s *RedisStorage) Save(ctx context.Context, p *Profiler) error {
	data, err := encode(p)
	if err != nil {
		return err
	}

	_, err = s.breaker.Execute(func() (any, error) {
		_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key(p.ID), data, s.ttl)
			pipe.ZAdd(ctx, s.indexKey(), redis.Z{
				Score:  float64(p.Started.UnixMicro()),
				Member: p.ID.String(),
			})
			if s.maxEntries > 0 {
				pipe.ZRemRangeByRank(ctx, s.indexKey(), 0, -s.maxEntries-1)
			}
			return nil
		})
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("profiler: save %s: %w", p.ID, err)
	}
	return nil
}

// Load implements Storage.
func (s *RedisStorage) Load(ctx context.Context, id uuid.UUID) (*Profiler, error) {
	res, err := s.breaker.Execute(func() (any, error) {
		data, err := s.client.Get(ctx, s.key(id)).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return data, err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("profiler: load %s: %w", id, err)
	}
	return decode(res.([]byte))
}

// List implements Storage. Listed IDs may belong to profiles whose TTL has
// already expired; Load reports those as ErrNotFound.
func (s *RedisStorage) List(ctx context.Context, limit int) ([]uuid.UUID, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	res, err := s.breaker.Execute(func() (any, error) {
		return s.client.ZRevRange(ctx, s.indexKey(), 0, stop).Result()
	})
	if err != nil {
		return nil, fmt.Errorf("profiler: list: %w", err)
	}

	members := res.([]string)
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
