package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/mocks"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/models"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/repository"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func newService(t *testing.T, publisher events.Publisher) (*mocks.MockStatsRepository, StatsService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStatsRepository(ctrl)

	svc, err := NewStatsService(repo, publisher)
	require.NoError(t, err)
	return repo, svc
}

func TestStatsService_RecordResult(t *testing.T) {
	ctx := context.Background()

	t.Run("Increments the selected counter and publishes new totals", func(t *testing.T) {
		publisher := &recordingPublisher{}
		repo, svc := newService(t, publisher)

		updated := &models.PlayerStats{ID: 1, Player: "X", Wins: 4}
		gomock.InOrder(
			repo.EXPECT().Increment(gomock.Any(), "X", models.CounterWins).Return(nil),
			repo.EXPECT().FindByPlayer(gomock.Any(), "X").Return(updated, nil),
		)

		counter, err := svc.RecordResult(ctx, "X", &models.UpdateRequest{Win: true})

		require.NoError(t, err)
		assert.Equal(t, models.CounterWins, counter)
		require.Len(t, publisher.events, 1)
		assert.Equal(t, events.TypeScoreUpdated, publisher.events[0].Type)

		var payload events.ScoreUpdatedPayload
		require.NoError(t, json.Unmarshal(publisher.events[0].Payload, &payload))
		assert.Equal(t, *updated, payload.Stats)
		assert.Equal(t, models.CounterWins, payload.Counter)
	})

	t.Run("Win takes precedence over loss and draw", func(t *testing.T) {
		repo, svc := newService(t, nil)
		repo.EXPECT().Increment(gomock.Any(), "O", models.CounterWins).Return(nil)

		counter, err := svc.RecordResult(ctx, "O", &models.UpdateRequest{Win: true, Loss: true, Draw: true})

		require.NoError(t, err)
		assert.Equal(t, models.CounterWins, counter)
	})

	t.Run("Loss takes precedence over draw", func(t *testing.T) {
		repo, svc := newService(t, nil)
		repo.EXPECT().Increment(gomock.Any(), "O", models.CounterLosses).Return(nil)

		counter, err := svc.RecordResult(ctx, "O", &models.UpdateRequest{Loss: true, Draw: true})

		require.NoError(t, err)
		assert.Equal(t, models.CounterLosses, counter)
	})

	t.Run("Empty request is rejected without touching the store", func(t *testing.T) {
		_, svc := newService(t, nil)

		_, err := svc.RecordResult(ctx, "X", &models.UpdateRequest{})

		require.ErrorIs(t, err, ErrNoCounter)
	})

	t.Run("Unknown player is passed through", func(t *testing.T) {
		publisher := &recordingPublisher{}
		repo, svc := newService(t, publisher)
		repo.EXPECT().Increment(gomock.Any(), "Z", models.CounterDraws).Return(repository.ErrPlayerNotFound)

		_, err := svc.RecordResult(ctx, "Z", &models.UpdateRequest{Draw: true})

		require.ErrorIs(t, err, repository.ErrPlayerNotFound)
		assert.Empty(t, publisher.events)
	})

	t.Run("Publish failure does not fail the update", func(t *testing.T) {
		publisher := &recordingPublisher{err: errors.New("redis down")}
		repo, svc := newService(t, publisher)
		repo.EXPECT().Increment(gomock.Any(), "X", models.CounterDraws).Return(nil)
		repo.EXPECT().FindByPlayer(gomock.Any(), "X").Return(&models.PlayerStats{Player: "X", Draws: 1}, nil)

		counter, err := svc.RecordResult(ctx, "X", &models.UpdateRequest{Draw: true})

		require.NoError(t, err)
		assert.Equal(t, models.CounterDraws, counter)
	})
}

func TestStatsService_Reads(t *testing.T) {
	ctx := context.Background()
	repo, svc := newService(t, nil)

	all := []models.PlayerStats{{ID: 1, Player: "X"}, {ID: 2, Player: "O"}}
	repo.EXPECT().List(gomock.Any()).Return(all, nil)
	repo.EXPECT().FindByPlayer(gomock.Any(), "O").Return(&all[1], nil)

	got, err := svc.ListStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, got)

	one, err := svc.GetStats(ctx, "O")
	require.NoError(t, err)
	assert.Equal(t, "O", one.Player)
}
