// Package lock implements service.KeyLocker for a single process and for Redis.
package lock

import (
	"context"
	"sync"

	"shopscore/internal/domain/service"
	"shopscore/internal/errors"
)

type keyLock struct {
	held chan struct{}
	refs int
}

// memoryLocker hands out one buffered channel per active key.
// Entries are dropped once no goroutine holds or waits on them.
type memoryLocker struct {
	mu   sync.Mutex
	keys map[string]*keyLock
}

// NewMemoryLocker creates an in-process KeyLocker.
func NewMemoryLocker() service.KeyLocker {
	return &memoryLocker{
		keys: make(map[string]*keyLock),
	}
}

// Lock acquires key or returns ctx.Err() once ctx is done.
func (l *memoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	kl, ok := l.keys[key]
	if !ok {
		kl = &keyLock{held: make(chan struct{}, 1)}
		l.keys[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.held <- struct{}{}:
		var once sync.Once

		return func() {
			once.Do(func() {
				<-kl.held
				l.release(key, kl)
			})
		}, nil
	case <-ctx.Done():
		l.release(key, kl)

		return nil, errors.WithStack(ctx.Err())
	}
}

func (l *memoryLocker) release(key string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl.refs--
	if kl.refs == 0 {
		delete(l.keys, key)
	}
}

// size reports how many keys are tracked.
func (l *memoryLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.keys)
}
