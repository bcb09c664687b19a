package feed

import (
	"context"
	"encoding/json"
	"log/slog"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/events"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RunRelay forwards events published on the shared Redis channel to the hub
// until ctx is cancelled.
func RunRelay(ctx context.Context, rdb *redis.Client, h *Hub) {
	slog.InfoContext(ctx, "Event relay started", "channel", events.EventsChannel)
	pubsub := rdb.Subscribe(ctx, events.EventsChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Event relay stopped")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			relay(ctx, h, msg.Payload)
		}
	}
}

func relay(ctx context.Context, h *Hub, payload string) {
	ctx, span := tracer.Start(ctx, "feed.relay", trace.WithAttributes(
		attribute.String("event.channel", events.EventsChannel),
	))
	defer span.End()

	var event events.Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		slog.ErrorContext(ctx, "Could not unmarshal scoreboard event", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not unmarshal scoreboard event")
		return
	}
	span.SetAttributes(attribute.String("event.type", event.Type))

	if err := h.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Could not relay scoreboard event", "event.type", event.Type, "error", err)
	}
}
