package database

import (
	"context"
	"testing"

	"venueplan/internal/shared/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRedis_Disabled(t *testing.T) {
	rdb, err := initRedis(context.Background(), config.RedisConfig{Enabled: false, Addr: "localhost:1"})
	require.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestInitRedis_Connects(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := initRedis(context.Background(), config.RedisConfig{Enabled: true, Addr: mr.Addr(), PoolSize: 2})
	require.NoError(t, err)
	require.NotNil(t, rdb)

	db := &DB{Redis: rdb}
	assert.Same(t, rdb, db.GetRedisClient())
	assert.NoError(t, db.HealthCheck(context.Background()))

	mr.Close()
	assert.Error(t, db.HealthCheck(context.Background()))
	assert.NoError(t, db.Close())
}

func TestInitRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := initRedis(context.Background(), config.RedisConfig{Enabled: true, Addr: addr})
	assert.Error(t, err)
}
