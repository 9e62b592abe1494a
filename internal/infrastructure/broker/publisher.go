package broker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"citystore/internal/domain/entity"
)

// Publisher emits city events on a redis stream. Events are advisory:
// callers treat publish failures as non-fatal.
type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entity.CityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.client.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{"event": payload},
	}).Err()
}

// NopPublisher is used when the broker is disabled by configuration.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, entity.CityEvent) error {
	return nil
}
