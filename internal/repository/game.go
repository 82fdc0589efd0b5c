package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const DefaultEventChannel = "tictactoe:events"

var ErrEmptyChannel = errors.New("event channel name is empty")

// GameEventRepository broadcasts round events. Nothing is stored: subscribers
// that are not listening when an event is published never see it.
type GameEventRepository interface {
	Publish(ctx context.Context, event *entity.RoundEvent) error
}

type redisGameEvents struct {
	client  *redis.Client
	channel string
}

func NewGameEventRepository(client *redis.Client, channel string) (GameEventRepository, error) {
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	return &redisGameEvents{
		client:  client,
		channel: channel,
	}, nil
}

func (that *redisGameEvents) Publish(ctx context.Context, event *entity.RoundEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal round event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish round event: %w", err)
	}

	return nil
}

type nopGameEvents struct{}

// NewNopGameEventRepository is used when the event feed is disabled.
func NewNopGameEventRepository() GameEventRepository {
	return nopGameEvents{}
}

func (nopGameEvents) Publish(context.Context, *entity.RoundEvent) error {
	return nil
}
