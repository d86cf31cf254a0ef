// internal/common/database/redis_test.go
package database

import (
	"context"
	"testing"

	"platform-finder/internal/common/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis_Ping(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))
	assert.NotNil(t, client.GetClient())
}

func TestNewRedis_PingFailsWhenServerGone(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	client, err := NewRedis(config.RedisConfig{Address: addr})
	require.NoError(t, err)
	defer client.Close()

	err = client.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}

func TestNewRedis_RequiresAddress(t *testing.T) {
	_, err := NewRedis(config.RedisConfig{})
	assert.Error(t, err)
}

func TestOptions_PoolDefaults(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.RedisConfig
		wantPool int
		wantIdle int
	}{
		{name: "zero values", cfg: config.RedisConfig{Address: "x"}, wantPool: 10, wantIdle: 2},
		{name: "explicit", cfg: config.RedisConfig{Address: "x", PoolSize: 20, MinIdleConns: 4}, wantPool: 20, wantIdle: 4},
		{name: "idle above pool", cfg: config.RedisConfig{Address: "x", PoolSize: 1, MinIdleConns: 8}, wantPool: 1, wantIdle: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options(tt.cfg)
			assert.Equal(t, tt.wantPool, opts.PoolSize)
			assert.Equal(t, tt.wantIdle, opts.MinIdleConns)
		})
	}
}
