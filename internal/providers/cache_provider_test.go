package providers

import (
	"sdn/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nopLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (nopLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (nopLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nopLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nopLogger) Close()                                        {}

func cacheConfig(enabled bool, sizeMB int) *structures.Config {
	return &structures.Config{
		Steam: structures.SteamConfig{PollSeconds: 60},
		Cache: structures.CacheConfig{Enabled: enabled, Size: sizeMB},
	}
}

func TestNewCacheProvider_DisabledIsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(false, 1), nopLogger{})
	_, ok := c.(*noopCache)
	assert.True(t, ok)

	c.Set("k", []byte("v"))
	_, hit := c.Get("k")
	assert.False(t, hit)
}

func TestNewCacheProvider_ZeroSizeIsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 0), nopLogger{})
	_, ok := c.(*noopCache)
	assert.True(t, ok)
}

func TestCacheProvider_SetGet(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1), nopLogger{})

	_, hit := c.Get("status")
	assert.False(t, hit)

	c.Set("status", []byte(`{"watching":"x"}`))
	val, hit := c.Get("status")
	require.True(t, hit)
	assert.Equal(t, []byte(`{"watching":"x"}`), val)
}

func TestCacheProvider_TTLFollowsPollInterval(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1), nopLogger{}).(*CacheProvider)
	assert.Equal(t, 61, c.ttl)

	zeroPoll := cacheConfig(true, 1)
	zeroPoll.Steam.PollSeconds = 0
	c = NewCacheProvider(zeroPoll, nopLogger{}).(*CacheProvider)
	assert.Equal(t, 2, c.ttl)
}

func TestUnsafeStringToBytes(t *testing.T) {
	assert.Nil(t, unsafeStringToBytes(""))
	assert.Equal(t, []byte("abc"), unsafeStringToBytes("abc"))
}
