package repository

import (
	"context"
	"errors"
	"fmt"
	"portal_electro/internal/usecase/interfaces"
	"strconv"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"go.uber.org/zap"
)

const editLockPrefix = "portal:process-edit:"

// RedisEditLocker serializes process edits across BFF replicas.
type RedisEditLocker struct {
	locker *redislock.Client
	ttl    time.Duration
	wait   time.Duration
	logger *zap.Logger
}

var _ interfaces.IProcessEditLocker = (*RedisEditLocker)(nil)

func NewRedisEditLocker(locker *redislock.Client, ttl time.Duration, logger *zap.Logger) *RedisEditLocker {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisEditLocker{locker: locker, ttl: ttl, wait: 2 * time.Second, logger: logger.Named("edit_lock")}
}

func (l *RedisEditLocker) Lock(ctx context.Context, processID int64) (func(), error) {
	key := editLockPrefix + strconv.FormatInt(processID, 10)
	backoff := 100 * time.Millisecond
	lock, err := l.locker.Obtain(ctx, key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(backoff), int(l.wait/backoff)),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("%w: process %d", interfaces.ErrProcessLocked, processID)
	}
	if err != nil {
		return nil, err
	}
	return func() {
		// Background context: the request may already be cancelled.
		if err := lock.Release(context.Background()); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			l.logger.Warn("releasing edit lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

// LocalEditLocker serializes edits within one process. Used when redis is not configured.
type LocalEditLocker struct {
	mu    sync.Mutex
	locks map[int64]chan struct{}
}

var _ interfaces.IProcessEditLocker = (*LocalEditLocker)(nil)

func NewLocalEditLocker() *LocalEditLocker {
	return &LocalEditLocker{locks: map[int64]chan struct{}{}}
}

func (l *LocalEditLocker) Lock(ctx context.Context, processID int64) (func(), error) {
	l.mu.Lock()
	ch, ok := l.locks[processID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.locks[processID] = ch
	}
	l.mu.Unlock()

	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-ch }) }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: process %d: %w", interfaces.ErrProcessLocked, processID, ctx.Err())
	}
}
