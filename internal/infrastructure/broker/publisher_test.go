package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"citystore/internal/domain/entity"
)

const (
	redisImage = "redis:7-alpine"
	streamName = "city-events-test"
	groupName  = "citystore-test"
)

func setupRedis(t *testing.T) string {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        redisImage,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start Redis container: %v", err)
	}
	t.Cleanup(func() {
		if err := redisC.Terminate(context.Background()); err != nil {
			t.Errorf("failed to terminate Redis container: %v", err)
		}
	})

	host, err := redisC.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get Redis container host: %v", err)
	}
	port, err := redisC.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("failed to get Redis container port: %v", err)
	}

	return fmt.Sprintf("redis://%s", net.JoinHostPort(host, port.Port()))
}

func TestPublish_Integration(t *testing.T) {
	uri := setupRedis(t)

	client, err := NewClient(Config{
		URI:        uri,
		StreamName: streamName,
		GroupName:  groupName,
	})
	require.NoError(t, err)
	defer client.Close()

	publisher := NewPublisher(client, PublisherConfig{Timeout: 1000})

	event := entity.CityEvent{
		ID:     uuid.NewString(),
		Action: entity.ActionCreated,
		CityID: "65f000000000000000000001",
		At:     time.Now().UTC(),
	}
	require.NoError(t, publisher.Publish(context.Background(), event))

	opt, err := redis.ParseURL(uri)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)
	defer rdb.Close()

	messages, err := rdb.XRange(context.Background(), streamName, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)

	payload, ok := messages[0].Values["event"].(string)
	require.True(t, ok)

	var got entity.CityEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &got))
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, entity.ActionCreated, got.Action)
	assert.Equal(t, event.CityID, got.CityID)
}

func TestClientRejectsBadURI(t *testing.T) {
	_, err := NewClient(Config{URI: "not-a-redis-uri"})
	require.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), entity.CityEvent{}))
}
