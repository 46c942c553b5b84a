package redis

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNewOptions_KeepsCommandTimeouts(t *testing.T) {
	client := redis.NewClient(newOptions("localhost:6379", "secret", 2))
	defer client.Close()

	opts := client.Options()
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 10, opts.PoolSize)
	// Кэш на пути запроса не должен ждать бесконечно
	assert.Equal(t, 3*time.Second, opts.ReadTimeout)
	assert.Equal(t, 3*time.Second, opts.WriteTimeout)
}
