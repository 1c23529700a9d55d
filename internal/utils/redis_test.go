package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_NilWithoutHost(t *testing.T) {
	assert.Nil(t, NewRedisClient(Config{}))
	assert.True(t, RedisReady(context.Background(), nil))
}

func TestRedisReady(t *testing.T) {
	mrs, err := miniredis.Run()
	require.NoError(t, err)

	var cfg Config
	cfg.Cache.RedisHost = mrs.Addr()
	rdb := NewRedisClient(cfg)
	require.NotNil(t, rdb)
	defer rdb.Close()

	assert.True(t, RedisReady(context.Background(), rdb))

	mrs.Close()
	assert.False(t, RedisReady(context.Background(), rdb))
}
