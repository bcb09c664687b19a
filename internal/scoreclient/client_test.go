package scoreclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/models"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/server/servertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AgainstServer(t *testing.T) {
	sb := servertest.Start(t, "")
	client := New(sb.URL)
	ctx := context.Background()

	t.Run("Fetch seeded player", func(t *testing.T) {
		stats, err := client.GetPlayerStats(ctx, "X")
		require.NoError(t, err)
		assert.Equal(t, "X", stats.Player)
		assert.Zero(t, stats.Wins)
	})

	t.Run("Update then fetch", func(t *testing.T) {
		status, err := client.UpdatePlayerScore(ctx, "O", models.UpdateRequest{Draw: true})
		require.NoError(t, err)
		assert.Equal(t, "success", status.Status)
		assert.Equal(t, "Updated draws", status.Message)

		stats, err := client.GetPlayerStats(ctx, "O")
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Draws)
		assert.Zero(t, stats.Wins)
		assert.Zero(t, stats.Losses)
	})

	t.Run("Unknown player is a status error", func(t *testing.T) {
		_, err := client.GetPlayerStats(ctx, "Z")

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
		assert.Equal(t, "An error has occurred: 400", err.Error())
	})

	t.Run("Empty update is a status error", func(t *testing.T) {
		_, err := client.UpdatePlayerScore(ctx, "X", models.UpdateRequest{})

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	})
}

func TestClient_RetriesServerErrorsOnRead(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"player":"X","wins":2,"losses":0,"draws":0}`))
	}))
	defer ts.Close()

	stats, err := New(ts.URL, WithReadRetries(2)).GetPlayerStats(context.Background(), "X")

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Wins)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := New(ts.URL, WithReadRetries(1)).GetPlayerStats(context.Background(), "X")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_DoesNotRetryClientErrorsOrUpdates(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()
	client := New(ts.URL, WithReadRetries(3))

	_, err := client.GetPlayerStats(context.Background(), "Z")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	_, err = client.UpdatePlayerScore(context.Background(), "X", models.UpdateRequest{Win: true})
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNew_Options(t *testing.T) {
	defaultTimeoutBefore := http.DefaultClient.Timeout

	// Given: the same options in both orders
	a := New("http://scores.local/", WithTimeout(time.Millisecond), WithReadRetries(4))
	b := New("http://scores.local/", WithReadRetries(4), WithTimeout(time.Millisecond))

	// Then: both clients end up configured alike
	for _, c := range []*Client{a, b} {
		assert.Equal(t, "http://scores.local", c.baseURL)
		assert.Equal(t, time.Millisecond, c.httpClient.Timeout)
		assert.Equal(t, uint64(4), c.retries)
		assert.NotSame(t, http.DefaultClient, c.httpClient)
	}
	assert.NotSame(t, a.httpClient, b.httpClient)
	assert.Equal(t, defaultTimeoutBefore, http.DefaultClient.Timeout)

	// And: defaults apply without options
	assert.Equal(t, defaultTimeout, New("http://scores.local").httpClient.Timeout)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "An error has occurred: 500", Message(&StatusError{StatusCode: 500}))
	assert.Equal(t, "An error has occurred: 404", Message(errors.Join(errors.New("ctx"), &StatusError{StatusCode: 404})))
	assert.Equal(t, "An error has occurred: connection refused", Message(errors.New("connection refused")))
}
