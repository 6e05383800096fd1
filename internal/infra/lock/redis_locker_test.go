package lock

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	client, err := Connect("redis://:secret@cache.internal:6380/2")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	assert.Equal(t, "cache.internal:6380", client.Options().Addr)
	assert.Equal(t, "secret", client.Options().Password)
	assert.Equal(t, 2, client.Options().DB)

	plain, err := Connect("localhost:6379")
	require.NoError(t, err)
	t.Cleanup(func() { _ = plain.Close() })
	assert.Equal(t, "localhost:6379", plain.Options().Addr)

	_, err = Connect("redis://host:notaport/x")
	assert.Error(t, err)
}

func TestNewRedisLocker_DefaultTTL(t *testing.T) {
	client, err := Connect("localhost:6379")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	l := NewRedisLocker(client, 0, logger).(*redisLocker)
	assert.Equal(t, defaultLockTTL, l.ttl)

	l = NewRedisLocker(client, 3*time.Second, logger).(*redisLocker)
	assert.Equal(t, 3*time.Second, l.ttl)
}
