package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/events"
	"ctchen222/Tic-Tac-Toe-Scoreboard/pkg/proto"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("feed")

var ErrHubClosed = errors.New("feed hub is not running")

// Hub owns the set of feed subscribers. All state changes happen in Run.
type Hub struct {
	subscribers map[*Subscriber]struct{}
	register    chan *Subscriber
	unregister  chan *Subscriber
	broadcast   chan []byte
	count       chan chan int
	done        chan struct{}
}

// NewHub creates a new hub. Call Run before registering subscribers.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]struct{}),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		broadcast:   make(chan []byte, 64),
		count:       make(chan chan int),
		done:        make(chan struct{}),
	}
}

// Run starts the hub and blocks until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	slog.InfoContext(ctx, "Feed hub started")
	defer func() {
		for s := range h.subscribers {
			close(s.send)
			delete(h.subscribers, s)
		}
		close(h.done)
		slog.InfoContext(ctx, "Feed hub stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case s := <-h.register:
			h.subscribers[s] = struct{}{}
			slog.DebugContext(ctx, "Feed subscriber registered", "subscriber.id", s.ID, "feed.subscribers", len(h.subscribers))

		case s := <-h.unregister:
			if _, ok := h.subscribers[s]; ok {
				delete(h.subscribers, s)
				close(s.send)
				slog.DebugContext(ctx, "Feed subscriber unregistered", "subscriber.id", s.ID, "feed.subscribers", len(h.subscribers))
			}

		case msg := <-h.broadcast:
			for s := range h.subscribers {
				select {
				case s.send <- msg:
				default:
					// Slow consumer.
					delete(h.subscribers, s)
					close(s.send)
					slog.WarnContext(ctx, "Dropped slow feed subscriber", "subscriber.id", s.ID)
				}
			}

		case reply := <-h.count:
			reply <- len(h.subscribers)
		}
	}
}

// Register adds s to the hub. It returns ErrHubClosed once Run has returned.
func (h *Hub) Register(s *Subscriber) error {
	select {
	case h.register <- s:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

// Unregister removes s from the hub. Unknown subscribers are ignored.
func (h *Hub) Unregister(s *Subscriber) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// Subscribers returns the number of registered subscribers.
func (h *Hub) Subscribers() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

// Broadcast sends msg to every subscriber.
func (h *Hub) Broadcast(ctx context.Context, msg *proto.ServerToClientMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal %s message: %w", msg.Type, err)
	}

	select {
	case h.broadcast <- data:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Publish implements events.Publisher by fanning score_updated events out to
// local subscribers. Other event types are ignored.
func (h *Hub) Publish(ctx context.Context, event events.Event) error {
	ctx, span := tracer.Start(ctx, "Hub.Publish", trace.WithAttributes(
		attribute.String("event.type", event.Type),
	))
	defer span.End()

	if event.Type != events.TypeScoreUpdated {
		return nil
	}

	var payload events.ScoreUpdatedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not unmarshal score_updated payload")
		return fmt.Errorf("failed to unmarshal score_updated payload: %w", err)
	}

	if err := h.Broadcast(ctx, &proto.ServerToClientMessage{
		Type:    proto.TypeScoreUpdated,
		Counter: payload.Counter,
		Stats:   &payload.Stats,
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to broadcast score update")
		return err
	}
	return nil
}
