package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/facility_gis/internal/models"
)

const (
	webhookQueueKey = "facility_events"
)

// WebhookPublisher - интерфейс для публикации изменений объектов
type WebhookPublisher interface {
	Publish(ctx context.Context, event models.FacilityEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event models.FacilityEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal facility event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish facility event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда WEBHOOK_URL не задан
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.FacilityEvent) error { return nil }
