package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	gameLockKeyPrefix = "game_lock:"
	gameLockTTL       = 10 * time.Second
	lockRetryInterval = 20 * time.Millisecond
)

// Locker serializes access to a single game.
type Locker interface {
	// Lock blocks until the game is locked or ctx is done.
	Lock(ctx context.Context, id string) (unlock func(), err error)
}

// MemoryLocker locks games within one process.
type MemoryLocker struct {
	mutex sync.Mutex
	locks map[string]*gameLock
}

type gameLock struct {
	sem     chan struct{}
	waiters int
}

// NewMemoryLocker creates a new MemoryLocker.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		locks: make(map[string]*gameLock),
	}
}

// Lock implements Locker.
func (l *MemoryLocker) Lock(ctx context.Context, id string) (func(), error) {
	l.mutex.Lock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &gameLock{sem: make(chan struct{}, 1)}
		l.locks[id] = lock
	}
	lock.waiters++
	l.mutex.Unlock()

	select {
	case lock.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(id, lock)
		return nil, fmt.Errorf("error locking game %s: %w", id, ctx.Err())
	}

	var once sync.Once
	unlock := func() {
		once.Do(func() {
			<-lock.sem
			l.release(id, lock)
		})
	}

	return unlock, nil
}

// release drops a waiter and forgets the lock once nobody uses it.
func (l *MemoryLocker) release(id string, lock *gameLock) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	lock.waiters--
	if lock.waiters == 0 {
		delete(l.locks, id)
	}
}

// releaseLockScript deletes the lock only if it still holds the caller's token,
// so a holder whose lock expired cannot release the next holder's lock.
var releaseLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker locks games across processes sharing one Redis.
type RedisLocker struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisLocker creates a new RedisLocker.
func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{redis: client, ttl: gameLockTTL}
}

// Lock implements Locker. The lock expires after its TTL in case the holder
// dies without unlocking.
func (l *RedisLocker) Lock(ctx context.Context, id string) (func(), error) {
	key := gameLockKeyPrefix + id
	token := uuid.New().String()

	for {
		acquired, err := l.redis.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("error acquiring lock for game %s: %w", id, err)
		}

		if acquired {
			break
		}

		select {
		case <-time.After(lockRetryInterval):
		case <-ctx.Done():
			return nil, fmt.Errorf("error locking game %s: %w", id, ctx.Err())
		}
	}

	var once sync.Once
	unlock := func() {
		once.Do(func() {
			// Use a fresh context, the caller's may already be cancelled.
			err := releaseLockScript.Run(context.Background(), l.redis, []string{key}, token).Err()
			if err != nil {
				slog.Error("Failed to release game lock", "id", id, "error", err)
			}
		})
	}

	return unlock, nil
}
