package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

// Connection is an interface that abstracts the websocket connection.
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Subscriber is one websocket client of the scoreboard feed.
type Subscriber struct {
	ID   string
	conn Connection
	send chan []byte
}

// NewSubscriber wraps conn. The hub owns the send channel once registered.
func NewSubscriber(id string, conn Connection) *Subscriber {
	return &Subscriber{
		ID:   id,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

// writePump writes first, when set, then drains the send channel into the
// connection until the hub closes it.
func (s *Subscriber) writePump(ctx context.Context, first []byte) {
	defer s.conn.Close()

	if first != nil && !s.write(ctx, first) {
		return
	}
	for msg := range s.send {
		if !s.write(ctx, msg) {
			return
		}
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (s *Subscriber) write(ctx context.Context, msg []byte) bool {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		slog.WarnContext(ctx, "Failed to write to feed subscriber", "subscriber.id", s.ID, "error", err)
		return false
	}
	return true
}

// readPump discards client frames and unregisters the subscriber when the
// connection fails.
func (s *Subscriber) readPump(ctx context.Context, h *Hub) {
	defer h.Unregister(s)

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.WarnContext(ctx, "Feed subscriber connection error", "subscriber.id", s.ID, "error", err)
			}
			return
		}
	}
}
