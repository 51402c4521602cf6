package cache

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableAddr возвращает адрес, на котором гарантированно никто не слушает.
func unreachableAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestRedisCache_UnavailableIsMiss(t *testing.T) {
	c := NewRedisCache(slog.New(slog.NewTextHandler(io.Discard, nil)), RedisOptions{
		Addr: unreachableAddr(t),
		TTL:  time.Minute,
	})
	defer c.Close()

	c.Set("o-1", []byte("result"))
	_, ok := c.Get("o-1")
	assert.False(t, ok)

	assert.Error(t, c.Start(context.Background()))
}
