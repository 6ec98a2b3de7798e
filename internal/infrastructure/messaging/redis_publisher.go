package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"oficina_xpto/internal/domain/events"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// publisherClient is the slice of *redis.Client the publisher needs.
type publisherClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisEventPublisher sends every domain event as JSON to one pub/sub channel.
type RedisEventPublisher struct {
	client  publisherClient
	channel string
	logger  *zap.Logger
}

var _ interfaces.IEventPublisher = (*RedisEventPublisher)(nil)

func NewRedisEventPublisher(client publisherClient, channel string, logger *zap.Logger) *RedisEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisEventPublisher{
		client:  client,
		channel: channel,
		logger:  logger.With(zap.String("area", "events"), zap.String("layer", "messaging")),
	}
}

func (p *RedisEventPublisher) Publish(ctx context.Context, e events.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", e.Name, err)
	}
	receivers, err := p.client.Publish(ctx, p.channel, body).Result()
	if err != nil {
		return fmt.Errorf("publish event %s: %w", e.Name, err)
	}
	p.logger.Debug("event published",
		zap.String("event", e.Name),
		zap.String("aggregate_id", e.AggregateID),
		zap.Int64("receivers", receivers),
	)
	return nil
}

// LogEventPublisher only logs events; used when Redis is not configured.
type LogEventPublisher struct {
	logger *zap.Logger
}

var _ interfaces.IEventPublisher = (*LogEventPublisher)(nil)

func NewLogEventPublisher(logger *zap.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger}
}

func (p *LogEventPublisher) Publish(_ context.Context, e events.Event) error {
	p.logger.Info("domain event",
		zap.String("event", e.Name),
		zap.String("aggregate_id", e.AggregateID),
		zap.Time("occurred_at", e.OccurredAt),
		zap.Any("payload", e.Payload),
	)
	return nil
}
