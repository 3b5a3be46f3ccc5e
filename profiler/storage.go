package profiler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ErrNotFound is returned by Storage.Load when no profile has the given ID.
var ErrNotFound = errors.New("profiler: profile not found")

// Storage persists finished profiling sessions.
type Storage interface {
	// Save stores a stopped profiler.
	Save(ctx context.Context, p *Profiler) error

	// Load returns the profiler with the given ID or ErrNotFound.
	Load(ctx context.Context, id uuid.UUID) (*Profiler, error)

	// List returns up to limit profile IDs, most recent first.
	List(ctx context.Context, limit int) ([]uuid.UUID, error)
}

// encode serializes a profiler while holding its lock.
func encode(p *Profiler) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("profiler: encode %s: %w", p.ID, err)
	}
	return data, nil
}

func decode(data []byte) (*Profiler, error) {
	p := &Profiler{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("profiler: decode: %w", err)
	}
	p.stopped = true
	return p, nil
}

// DefaultMemoryCapacity is the number of profiles kept by NewMemoryStorage
// when no capacity is given.
const DefaultMemoryCapacity = 500

// MemoryStorage keeps encoded profiles in process memory. Once capacity is
// reached the oldest profile is evicted.
type MemoryStorage struct {
	mu       sync.RWMutex
	capacity int
	order    []uuid.UUID
	entries  map[uuid.UUID][]byte
}

// NewMemoryStorage creates a bounded in-memory storage.
// A capacity <= 0 uses DefaultMemoryCapacity.
func NewMemoryStorage(capacity int) *MemoryStorage {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryStorage{
		capacity: capacity,
		entries:  make(map[uuid.UUID][]byte),
	}
}

// Save implements Storage.
func (s *MemoryStorage) Save(_ context.Context, p *Profiler) error {
	data, err := encode(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.entries[p.ID] = data

	for len(s.order) > s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.entries, oldest)
	}
	return nil
}

// Load implements Storage.
func (s *MemoryStorage) Load(_ context.Context, id uuid.UUID) (*Profiler, error) {
	s.mu.RLock()
	data, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return decode(data)
}

// List implements Storage.
func (s *MemoryStorage) List(_ context.Context, limit int) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}
	ids := make([]uuid.UUID, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(ids) < limit; i-- {
		ids = append(ids, s.order[i])
	}
	return ids, nil
}
