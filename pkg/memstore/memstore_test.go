package memstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fahadturjmi/GPA-Calculator/config"
)

func newTestClient(ttl time.Duration) *Client {
	return NewClient(&config.SessionConfig{TTL: ttl, CleanupInterval: time.Minute}, zap.NewNop())
}

func TestClient_SetGetDelete(t *testing.T) {
	s := newTestClient(time.Hour)

	s.Set("ws:1", "value")
	v, ok := s.Get("ws:1")
	require.True(t, ok)
	assert.Equal(t, "value", v)
	assert.Equal(t, 1, s.Count())

	s.Delete("ws:1")
	_, ok = s.Get("ws:1")
	assert.False(t, ok)
}

func TestClient_Expiry(t *testing.T) {
	s := newTestClient(30 * time.Millisecond)

	s.Set("ws:1", 1)
	time.Sleep(60 * time.Millisecond)

	_, ok := s.Get("ws:1")
	assert.False(t, ok)
}

func TestClient_GetDoesNotRefresh(t *testing.T) {
	s := newTestClient(60 * time.Millisecond)

	s.Set("ws:1", 1)
	time.Sleep(40 * time.Millisecond)
	_, ok := s.Get("ws:1")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = s.Get("ws:1")
	assert.False(t, ok, "读取不应续期")
}

func TestClient_CheckRateLimit(t *testing.T) {
	s := newTestClient(time.Hour)

	for i := 0; i < 3; i++ {
		allowed, err := s.CheckRateLimit("1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "第 %d 次应放行", i+1)
	}

	allowed, err := s.CheckRateLimit("1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	// 不同 key 互不影响
	allowed, err = s.CheckRateLimit("5.6.7.8", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestClient_CheckRateLimit_WindowReset(t *testing.T) {
	s := newTestClient(time.Hour)

	allowed, _ := s.CheckRateLimit("k", 1, 30*time.Millisecond)
	assert.True(t, allowed)
	allowed, _ = s.CheckRateLimit("k", 1, 30*time.Millisecond)
	assert.False(t, allowed)

	time.Sleep(60 * time.Millisecond)

	allowed, _ = s.CheckRateLimit("k", 1, 30*time.Millisecond)
	assert.True(t, allowed)
}
