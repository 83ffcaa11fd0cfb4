// internal/domain/cart/snapshot.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Snapshot is the cart content saved aside by "buy now"
type Snapshot struct {
	UserID  uint      `json:"userId"`
	Lines   []Line    `json:"lines"`
	SavedAt time.Time `json:"savedAt"`
}

// SnapshotStore keeps at most one snapshot per user, each with its own expiry
type SnapshotStore interface {
	Save(ctx context.Context, snapshot *Snapshot, ttl time.Duration) error
	// Load returns ErrSnapshotNotFound when nothing (or nothing unexpired) is saved
	Load(ctx context.Context, userID uint) (*Snapshot, error)
	Delete(ctx context.Context, userID uint) error
}

// RedisSnapshotStore stores snapshots as JSON values with a Redis TTL
type RedisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore creates a snapshot store on client
func NewRedisSnapshotStore(client *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client}
}

func snapshotKey(userID uint) string {
	return fmt.Sprintf("cart:snapshot:%d", userID)
}

func (s *RedisSnapshotStore) Save(ctx context.Context, snapshot *Snapshot, ttl time.Duration) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal cart snapshot: %w", err)
	}
	if err := s.client.Set(ctx, snapshotKey(snapshot.UserID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Load(ctx context.Context, userID uint) (*Snapshot, error) {
	data, err := s.client.Get(ctx, snapshotKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *RedisSnapshotStore) Delete(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, snapshotKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}

// MemorySnapshotStore is an in-process SnapshotStore. Expired entries are dropped lazily.
type MemorySnapshotStore struct {
	mu      sync.Mutex
	entries map[uint]memorySnapshot
	now     func() time.Time
}

type memorySnapshot struct {
	snapshot  Snapshot
	expiresAt time.Time
}

// NewMemorySnapshotStore creates an empty store. now defaults to time.Now.
func NewMemorySnapshotStore(now func() time.Time) *MemorySnapshotStore {
	if now == nil {
		now = time.Now
	}
	return &MemorySnapshotStore{
		entries: make(map[uint]memorySnapshot),
		now:     now,
	}
}

func (s *MemorySnapshotStore) Save(_ context.Context, snapshot *Snapshot, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *snapshot
	copied.Lines = append([]Line(nil), snapshot.Lines...)
	s.entries[snapshot.UserID] = memorySnapshot{snapshot: copied, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemorySnapshotStore) Load(_ context.Context, userID uint) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID]
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, userID)
		return nil, ErrSnapshotNotFound
	}

	snapshot := entry.snapshot
	snapshot.Lines = append([]Line(nil), entry.snapshot.Lines...)
	return &snapshot, nil
}

func (s *MemorySnapshotStore) Delete(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, userID)
	return nil
}
