package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"shopscore/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker_MutualExclusion(t *testing.T) {
	t.Parallel()

	locker := NewMemoryLocker()
	ctx := context.Background()

	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock, err := locker.Lock(ctx, "alice|shop_1")
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			n := inside.Add(1)
			for {
				cur := maxInside.Load()
				if n <= cur || maxInside.CompareAndSwap(cur, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
	assert.Equal(t, 0, locker.(*memoryLocker).size())
}

func TestMemoryLocker_IndependentKeys(t *testing.T) {
	t.Parallel()

	locker := NewMemoryLocker()
	ctx := context.Background()

	unlockA, err := locker.Lock(ctx, "a")
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()

	unlockB, err := locker.Lock(ctx, "b")
	require.NoError(t, err)
	unlockB()
}

func TestMemoryLocker_TimeoutWhileHeld(t *testing.T) {
	t.Parallel()

	locker := NewMemoryLocker()

	unlock, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(ctx, "k")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	unlock()
	unlock() // idempotent

	unlock2, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)
	unlock2()
	assert.Equal(t, 0, locker.(*memoryLocker).size())
}
