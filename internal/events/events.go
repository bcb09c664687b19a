package events

import (
	"context"
	"encoding/json"
	"fmt"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/models"

	"github.com/go-redis/redis/v8"
)

// EventsChannel is the Redis pub/sub channel shared by all server instances.
const EventsChannel = "events:scoreboard"

const TypeScoreUpdated = "score_updated"

// Event is a generic wrapper for scoreboard events.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ScoreUpdatedPayload carries a player's row after one counter changed.
type ScoreUpdatedPayload struct {
	Counter models.Counter     `json:"counter"`
	Stats   models.PlayerStats `json:"stats"`
}

// Publisher delivers events to whoever is listening.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NewScoreUpdated builds a score_updated event.
func NewScoreUpdated(stats models.PlayerStats, counter models.Counter) (Event, error) {
	payload, err := json.Marshal(ScoreUpdatedPayload{Counter: counter, Stats: stats})
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal score_updated payload: %w", err)
	}
	return Event{Type: TypeScoreUpdated, Payload: payload}, nil
}

type redisPublisher struct {
	rdb *redis.Client
}

// NewRedisPublisher publishes events on EventsChannel.
func NewRedisPublisher(rdb *redis.Client) Publisher {
	return &redisPublisher{rdb: rdb}
}

func (p *redisPublisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.rdb.Publish(ctx, EventsChannel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}
