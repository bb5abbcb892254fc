package roster

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	redisclient "github.com/KirkDiggler/entity-arena/internal/redis"
)

const (
	rosterKey = "roster:entities"

	errMasterNil = "entity master cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis roster repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed roster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if len(input.Masters) == 0 {
		return &UpsertOutput{}, nil
	}

	fields := make(map[string]interface{}, len(input.Masters))
	for _, m := range input.Masters {
		if m == nil {
			return nil, errors.InvalidArgument(errMasterNil)
		}
		if m.ID <= 0 {
			return nil, errors.InvalidArgumentf("entity master id must be positive, got %d", m.ID)
		}

		data, err := json.Marshal(m)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal entity master %d", m.ID)
		}
		fields[strconv.Itoa(m.ID)] = data
	}

	if err := r.client.HSet(ctx, rosterKey, fields).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to write roster")
	}

	slog.DebugContext(ctx, "upserted roster entries",
		"count", len(fields))

	return &UpsertOutput{Count: len(fields)}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	raw, err := r.client.HGetAll(ctx, rosterKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read roster")
	}

	masters := make([]*entities.EntityMaster, 0, len(raw))
	for field, value := range raw {
		var m entities.EntityMaster
		if err := json.Unmarshal([]byte(value), &m); err != nil {
			slog.ErrorContext(ctx, "skipping unreadable roster entry",
				"field", field,
				"error", err.Error())
			continue
		}
		masters = append(masters, &m)
	}

	sort.Slice(masters, func(i, j int) bool { return masters[i].ID < masters[j].ID })

	return &ListOutput{Masters: masters}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	value, err := r.client.HGet(ctx, rosterKey, strconv.Itoa(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("entity master %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get entity master")
	}

	var m entities.EntityMaster
	if err := json.Unmarshal([]byte(value), &m); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal entity master %d", input.ID)
	}

	return &GetOutput{Master: &m}, nil
}
