package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// newOptions - настройки клиента. Таймауты чтения остаются по умолчанию:
// для блокирующего BRPOP go-redis сам продлевает дедлайн.
func newOptions(addr, password string, db int) *redis.Options {
	return &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 10,
	}
}

// NewRedisClient создает клиент для кэша коллекции и очереди уведомлений
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(newOptions(addr, password, db))

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}
