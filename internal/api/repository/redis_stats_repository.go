package repository

import (
	"context"
	"fmt"
	"strconv"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/models"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	statsPlayersKey = "stats:players"
	statsNextIDKey  = "stats:next_id"

	fieldID     = "id"
	fieldPlayer = "player"
)

// incrementScript bumps a counter only when the player's hash already exists.
var incrementScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
return redis.call('HINCRBY', KEYS[1], ARGV[1], 1)
`)

// seedScript allocates an id and creates a zeroed hash for a new player.
var seedScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
local id = redis.call('INCR', KEYS[2])
redis.call('HSET', KEYS[1], 'id', id, 'player', ARGV[1], 'wins', 0, 'losses', 0, 'draws', 0)
redis.call('ZADD', KEYS[3], id, ARGV[1])
return id
`)

type redisStatsRepository struct {
	rdb *redis.Client
}

// NewRedisStatsRepository creates a new Redis-based StatsRepository.
func NewRedisStatsRepository(rdb *redis.Client) StatsRepository {
	return &redisStatsRepository{rdb: rdb}
}

func statsKey(player string) string {
	return fmt.Sprintf("stats:%s", player)
}

// List retrieves all players in id order.
func (r *redisStatsRepository) List(ctx context.Context) ([]models.PlayerStats, error) {
	ctx, span := tracer.Start(ctx, "StatsRepository.List")
	defer span.End()

	players, err := r.rdb.ZRange(ctx, statsPlayersKey, 0, -1).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list players from redis: %w", err)
	}

	pipe := r.rdb.Pipeline()
	cmds := make([]*redis.StringStringMapCmd, len(players))
	for i, player := range players {
		cmds[i] = pipe.HGetAll(ctx, statsKey(player))
	}
	if len(players) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to get player stats from redis: %w", err)
		}
	}

	stats := make([]models.PlayerStats, 0, len(players))
	for _, cmd := range cmds {
		s, err := parseStats(cmd.Val())
		if err != nil {
			return nil, err
		}
		stats = append(stats, *s)
	}
	return stats, nil
}

// FindByPlayer retrieves a single player's hash.
func (r *redisStatsRepository) FindByPlayer(ctx context.Context, player string) (*models.PlayerStats, error) {
	ctx, span := tracer.Start(ctx, "StatsRepository.FindByPlayer", trace.WithAttributes(
		attribute.String("player.id", player),
	))
	defer span.End()

	data, err := r.rdb.HGetAll(ctx, statsKey(player)).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get player stats from redis: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrPlayerNotFound
	}
	return parseStats(data)
}

// Increment bumps one counter atomically.
func (r *redisStatsRepository) Increment(ctx context.Context, player string, counter models.Counter) error {
	ctx, span := tracer.Start(ctx, "StatsRepository.Increment", trace.WithAttributes(
		attribute.String("player.id", player),
		attribute.String("stats.counter", string(counter)),
	))
	defer span.End()

	if !counter.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCounter, counter)
	}

	n, err := incrementScript.Run(ctx, r.rdb, []string{statsKey(player)}, string(counter)).Int64()
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to increment %s in redis: %w", counter, err)
	}
	if n < 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// Seed creates zeroed hashes for players that do not exist yet.
func (r *redisStatsRepository) Seed(ctx context.Context, players ...string) error {
	ctx, span := tracer.Start(ctx, "StatsRepository.Seed")
	defer span.End()

	for _, player := range players {
		keys := []string{statsKey(player), statsNextIDKey, statsPlayersKey}
		if err := seedScript.Run(ctx, r.rdb, keys, player).Err(); err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to seed player %s in redis: %w", player, err)
		}
	}
	return nil
}

func parseStats(data map[string]string) (*models.PlayerStats, error) {
	stats := &models.PlayerStats{Player: data[fieldPlayer]}

	fields := []struct {
		name string
		dst  *int64
	}{
		{fieldID, &stats.ID},
		{string(models.CounterWins), &stats.Wins},
		{string(models.CounterLosses), &stats.Losses},
		{string(models.CounterDraws), &stats.Draws},
	}
	for _, f := range fields {
		v, err := strconv.ParseInt(data[f.name], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s for player %s: %w", f.name, stats.Player, err)
		}
		*f.dst = v
	}
	return stats, nil
}
