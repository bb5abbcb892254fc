package archive

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/entity-arena/internal/redis"
)

const (
	// Key pattern: archive:player:{player_id} -> {entity_id: status}
	statusKeyPrefix = "archive:player:"
	// Key pattern: archive:first_seen:{player_id} -> {entity_id: unix millis}
	firstSeenKeyPrefix = "archive:first_seen:"

	errPlayerIDEmpty = "player ID cannot be empty"
)

// advanceScript writes the new status only when it ranks above the stored one.
// KEYS[1] status hash, KEYS[2] first seen hash
// ARGV[1] entity id, ARGV[2] status, ARGV[3] first seen millis
var advanceScript = redis.NewScript(`
local rank = {none = 0, close = 1, open = 2}
local current = redis.call('HGET', KEYS[1], ARGV[1])
if current and rank[current] and rank[current] >= rank[ARGV[2]] then
	return 0
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
redis.call('HSETNX', KEYS[2], ARGV[1], ARGV[3])
return 1
`)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis archive repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed archive repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.EntityID <= 0 {
		return nil, errors.InvalidArgumentf("entity id must be positive, got %d", input.EntityID)
	}
	if !input.Status.Valid() || input.Status.Rank() == 0 {
		return nil, errors.InvalidArgumentf("cannot record archive status %q", input.Status)
	}

	field := strconv.Itoa(input.EntityID)
	keys := []string{statusKeyPrefix + input.PlayerID, firstSeenKeyPrefix + input.PlayerID}

	changed, err := advanceScript.Run(ctx, r.client, keys,
		field, string(input.Status), r.clock.Now().UnixMilli()).Int()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upsert archive entry")
	}

	if changed == 0 {
		slog.DebugContext(ctx, "ignored non advancing archive write",
			"player_id", input.PlayerID,
			"entity_id", input.EntityID,
			"status", input.Status)
	}

	out, err := r.Get(ctx, GetInput{PlayerID: input.PlayerID, EntityID: input.EntityID})
	if err != nil {
		return nil, err
	}

	return &UpsertOutput{Entry: out.Entry, Changed: changed == 1}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	field := strconv.Itoa(input.EntityID)

	pipe := r.client.Pipeline()
	statusCmd := pipe.HGet(ctx, statusKeyPrefix+input.PlayerID, field)
	seenCmd := pipe.HGet(ctx, firstSeenKeyPrefix+input.PlayerID, field)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to get archive entry")
	}

	entry := &entities.ArchiveEntry{
		PlayerID: input.PlayerID,
		EntityID: input.EntityID,
		Status:   entities.ArchiveNone,
	}
	if status, err := statusCmd.Result(); err == nil {
		entry.Status = entities.ArchiveStatus(status)
	}
	if millis, err := seenCmd.Int64(); err == nil {
		entry.FirstSeenAt = time.UnixMilli(millis).UTC()
	}

	return &GetOutput{Entry: entry}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	pipe := r.client.Pipeline()
	statusCmd := pipe.HGetAll(ctx, statusKeyPrefix+input.PlayerID)
	seenCmd := pipe.HGetAll(ctx, firstSeenKeyPrefix+input.PlayerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to list archive")
	}

	seen := seenCmd.Val()
	entries := make([]*entities.ArchiveEntry, 0, len(statusCmd.Val()))
	for field, status := range statusCmd.Val() {
		id, err := strconv.Atoi(field)
		if err != nil {
			slog.WarnContext(ctx, "skipping malformed archive field",
				"player_id", input.PlayerID,
				"field", field)
			continue
		}

		entry := &entities.ArchiveEntry{
			PlayerID: input.PlayerID,
			EntityID: id,
			Status:   entities.ArchiveStatus(status),
		}
		if millis, err := strconv.ParseInt(seen[field], 10, 64); err == nil {
			entry.FirstSeenAt = time.UnixMilli(millis).UTC()
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].EntityID < entries[j].EntityID })

	return &ListByPlayerIDOutput{Entries: entries}, nil
}
