package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startRedis(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })
	_ = resource.Expire(120)

	url := fmt.Sprintf("redis://%s/0", resource.GetHostPort("6379/tcp"))
	pool.MaxWait = 30 * time.Second
	require.NoError(t, pool.Retry(func() error {
		c, err := NewRedisCache(context.Background(), url)
		if err != nil {
			return err
		}
		return c.Close()
	}))

	return url
}

func TestRedisCache(t *testing.T) {
	url := startRedis(t)
	ctx := context.Background()

	c, err := NewRedisCache(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	_, err = c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	n, err := c.Del(ctx, "k", "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = c.Del(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, c.Ping(ctx))
}
