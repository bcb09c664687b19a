package scoreclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/models"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultServer  = "http://localhost:3000"
	defaultTimeout = 5 * time.Second
	readRetries    = 2
)

var tracer = otel.Tracer("scoreclient")

// StatusError reports a non-2xx reply from the score server.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("An error has occurred: %d", e.StatusCode)
}

// Client talks to the scoreboard REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retries    uint64
}

type Option func(*Client)

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.timeout = d }
}

// WithReadRetries sets how often a failed read is retried. Updates are never retried.
func WithReadRetries(n uint64) Option {
	return func(cl *Client) { cl.retries = n }
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: defaultTimeout,
		retries: readRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient = &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   c.timeout,
	}
	return c
}

func (c *Client) playerURL(player string) string {
	return c.baseURL + "/data/" + url.PathEscape(player)
}

// GetPlayerStats fetches one player's row. Transport errors and 5xx replies are
// retried with exponential backoff.
func (c *Client) GetPlayerStats(ctx context.Context, player string) (*models.PlayerStats, error) {
	ctx, span := tracer.Start(ctx, "ScoreClient.GetPlayerStats", trace.WithAttributes(
		attribute.String("player.id", player),
	))
	defer span.End()

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = 50 * time.Millisecond
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, c.retries), ctx)
	stats, err := backoff.RetryWithData(func() (*models.PlayerStats, error) {
		return c.getPlayerStats(ctx, player)
	}, policy)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch player stats")
		return nil, err
	}
	return stats, nil
}

func (c *Client) getPlayerStats(ctx context.Context, player string) (*models.PlayerStats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.playerURL(player), nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to build request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats for %s: %w", player, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		if resp.StatusCode < http.StatusInternalServerError {
			return nil, backoff.Permanent(statusErr)
		}
		return nil, statusErr
	}

	var stats models.PlayerStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to decode stats for %s: %w", player, err))
	}
	return &stats, nil
}

// UpdatePlayerScore increments the counter selected by req for player.
func (c *Client) UpdatePlayerScore(ctx context.Context, player string, req models.UpdateRequest) (*models.StatusResponse, error) {
	ctx, span := tracer.Start(ctx, "ScoreClient.UpdatePlayerScore", trace.WithAttributes(
		attribute.String("player.id", player),
	))
	defer span.End()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.playerURL(player), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Update request failed")
		return nil, fmt.Errorf("failed to update score for %s: %w", player, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		span.RecordError(statusErr)
		span.SetStatus(codes.Error, "Update rejected")
		return nil, statusErr
	}

	var status models.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode update reply: %w", err)
	}
	return &status, nil
}

// Message renders err the way the game banner shows it.
func Message(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	return "An error has occurred: " + err.Error()
}
