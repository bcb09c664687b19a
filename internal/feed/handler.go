package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/models"
	"ctchen222/Tic-Tac-Toe-Scoreboard/pkg/proto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StatsLister provides the snapshot sent to new subscribers.
type StatsLister interface {
	ListStats(ctx context.Context) ([]models.PlayerStats, error)
}

// Handler upgrades HTTP requests to feed subscriptions.
type Handler struct {
	hub      *Hub
	stats    StatsLister
	upgrader websocket.Upgrader
}

// NewHandler creates a Handler.
func NewHandler(hub *Hub, stats StatsLister) *Handler {
	return &Handler{
		hub:   hub,
		stats: stats,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// ServeWS upgrades the connection, registers the subscriber for score updates
// and sends it a snapshot of every row first.
func (h *Handler) ServeWS(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "feed.ServeWS", trace.WithAttributes(
		attribute.String("http.url", c.Request.URL.String()),
	))
	defer span.End()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.WarnContext(ctx, "Failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}

	s := NewSubscriber(uuid.NewString(), conn)
	span.SetAttributes(attribute.String("subscriber.id", s.ID))

	// Updates queued while the snapshot loads are written after it.
	if err := h.hub.Register(s); err != nil {
		_ = conn.Close()
		return
	}

	snapshot, err := h.snapshot(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Could not load feed snapshot", "subscriber.id", s.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not load feed snapshot")
		h.hub.Unregister(s)
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "snapshot unavailable"))
		_ = conn.Close()
		return
	}

	// The pumps outlive the request.
	pumpCtx := context.WithoutCancel(ctx)
	go s.writePump(pumpCtx, snapshot)
	go s.readPump(pumpCtx, h.hub)
}

func (h *Handler) snapshot(ctx context.Context) ([]byte, error) {
	stats, err := h.stats.ListStats(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&proto.ServerToClientMessage{Type: proto.TypeSnapshot, Players: stats})
}
