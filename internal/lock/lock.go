// Package lock serializes bookings and cancellations per room.
package lock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotAcquired is returned when the lock could not be taken before the context ended.
var ErrNotAcquired = errors.New("room is locked by another booking")

// Locker grants exclusive access to a key until the returned release func runs.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

// Local is an in-process Locker for the single-process shell. A key's slot
// is dropped once no caller holds or waits for it.
type Local struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int // holders plus waiters
}

// NewLocal returns an empty Local locker.
func NewLocal() *Local {
	return &Local{slots: make(map[string]*slot)}
}

func (l *Local) acquire(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()
	sl, ok := l.slots[key]
	if !ok {
		sl = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = sl
	}
	sl.refs++
	return sl
}

func (l *Local) drop(key string, sl *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if sl.refs--; sl.refs == 0 {
		delete(l.slots, key)
	}
}

// Lock blocks until key is free or ctx is done.
func (l *Local) Lock(ctx context.Context, key string) (func(), error) {
	sl := l.acquire(key)
	select {
	case sl.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-sl.ch
				l.drop(key, sl)
			})
		}, nil
	case <-ctx.Done():
		l.drop(key, sl)
		return nil, errors.Join(ErrNotAcquired, ctx.Err())
	}
}

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a Locker shared by every process pointed at the same redis server.
type Redis struct {
	rdb   *redis.Client
	ttl   time.Duration
	retry time.Duration
	wait  time.Duration
}

// NewRedis returns a Redis locker. Keys expire after ttl in case the holder dies.
func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl, retry: 50 * time.Millisecond, wait: 5 * time.Second}
}

// Lock retries SET NX until it succeeds, the wait budget is spent or ctx is done.
func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	key = "lock:" + key
	token := uuid.NewString()
	ctx, cancel := context.WithTimeout(ctx, r.wait)
	defer cancel()
	for {
		ok, err := r.rdb.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if ok {
			return func() {
				_ = releaseScript.Run(context.Background(), r.rdb, []string{key}, token).Err()
			}, nil
		}
		select {
		case <-time.After(r.retry):
		case <-ctx.Done():
			return nil, ErrNotAcquired
		}
	}
}
