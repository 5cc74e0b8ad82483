package locker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotAcquired is returned when another holder owns the key.
var ErrLockNotAcquired = errors.New("lock is held by another process")

// Unlock releases a lock obtained from Locker.Lock.
type Unlock func(ctx context.Context) error

type Locker interface {
	// Lock makes a single attempt to acquire key for ttl.
	Lock(ctx context.Context, key string, ttl time.Duration) (Unlock, error)
}

type RedisLocker struct {
	rs *redsync.Redsync
}

func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	pool := goredis.NewPool(client)
	return &RedisLocker{rs: redsync.New(pool)}
}

func (r *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (Unlock, error) {
	mutex := r.rs.NewMutex(key, redsync.WithExpiry(ttl), redsync.WithTries(1))

	err := mutex.LockContext(ctx)
	if err != nil {
		var taken *redsync.ErrTaken
		if errors.As(err, &taken) || errors.Is(err, redsync.ErrFailed) {
			return nil, ErrLockNotAcquired
		}
		return nil, err
	}

	return func(ctx context.Context) error {
		ok, err := mutex.UnlockContext(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("lock expired before release")
		}
		return nil
	}, nil
}

type held struct {
	token     string
	expiresAt time.Time
}

// MemoryLocker is a process-local Locker for the in-memory mode.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]held
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]held)}
}

func (m *MemoryLocker) Lock(_ context.Context, key string, ttl time.Duration) (Unlock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if h, ok := m.locks[key]; ok && now.Before(h.expiresAt) {
		return nil, ErrLockNotAcquired
	}

	token := ulid.Make().String()
	m.locks[key] = held{token: token, expiresAt: now.Add(ttl)}

	return func(context.Context) error {
		m.mu.Lock()
		defer m.mu.Unlock()

		if h, ok := m.locks[key]; ok && h.token == token {
			delete(m.locks, key)
		}
		return nil
	}, nil
}
