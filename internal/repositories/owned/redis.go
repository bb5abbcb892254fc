package owned

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/entity-arena/internal/redis"
)

const (
	ownedKeyPrefix    = "owned:"
	playerIndexPrefix = "owned:player:"
	creditsKeyPrefix  = "owned:credits:"

	// maxCreditAttempts bounds optimistic retries when the entity changes mid-credit
	maxCreditAttempts = 5

	// Error messages
	errEntityNil     = "owned entity cannot be nil"
	errEntityIDEmpty = "owned entity ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis owned entity repository.
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

// NewRedis creates a new Redis-backed owned entity repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateEntity(input.Entity); err != nil {
		return nil, err
	}

	entity := input.Entity.Clone()
	if entity.AcquiredAt.IsZero() {
		entity.AcquiredAt = r.clock.Now()
	}

	key := ownedKeyPrefix + entity.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("owned entity with ID %s already exists", entity.ID)
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal owned entity")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, playerIndexPrefix+entity.PlayerID, redis.Z{
		Score:  float64(entity.AcquiredAt.UnixMilli()),
		Member: entity.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create owned entity")
	}

	slog.DebugContext(ctx, "created owned entity",
		"owned_id", entity.ID,
		"player_id", entity.PlayerID,
		"entity_id", entity.EntityID)

	return &CreateOutput{Entity: entity}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	result, err := r.client.Get(ctx, ownedKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("owned entity with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get owned entity")
	}

	var entity entities.OwnedEntity
	if err := json.Unmarshal([]byte(result), &entity); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal owned entity")
	}

	return &GetOutput{Entity: &entity}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateEntity(input.Entity); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Entity.ID})
	if err != nil {
		return nil, err
	}
	if existing.Entity.PlayerID != input.Entity.PlayerID {
		return nil, errors.PermissionDeniedf("owned entity %s belongs to another player", input.Entity.ID)
	}

	data, err := json.Marshal(input.Entity)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal owned entity")
	}

	if err := r.client.Set(ctx, ownedKeyPrefix+input.Entity.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update owned entity")
	}

	return &UpdateOutput{Entity: input.Entity}, nil
}

func (r *redisRepository) CreditXP(ctx context.Context, input CreditXPInput) (*CreditXPOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}
	if input.Reference == "" {
		return nil, errors.InvalidArgument("credit reference cannot be empty")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgumentf("xp amount cannot be negative: %d", input.Amount)
	}

	key := ownedKeyPrefix + input.ID
	creditsKey := creditsKeyPrefix + input.ID

	var result *CreditXPOutput
	credit := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return errors.NotFoundf("owned entity with ID %s not found", input.ID)
		}
		if err != nil {
			return err
		}

		var entity entities.OwnedEntity
		if err := json.Unmarshal([]byte(raw), &entity); err != nil {
			return errors.Wrapf(err, "failed to unmarshal owned entity")
		}

		seen, err := tx.SIsMember(ctx, creditsKey, input.Reference).Result()
		if err != nil {
			return err
		}
		if seen {
			result = &CreditXPOutput{Entity: &entity, Applied: false}
			return nil
		}

		entity.XP += input.Amount
		data, err := json.Marshal(&entity)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal owned entity")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.SAdd(ctx, creditsKey, input.Reference)
			return nil
		})
		if err != nil {
			return err
		}

		result = &CreditXPOutput{Entity: &entity, Applied: true}
		return nil
	}

	for attempt := 1; attempt <= maxCreditAttempts; attempt++ {
		err := r.client.Watch(ctx, credit, key, creditsKey)
		if err == nil {
			if result.Applied {
				slog.DebugContext(ctx, "credited xp",
					"owned_id", input.ID,
					"amount", input.Amount,
					"reference", input.Reference)
			}
			return result, nil
		}
		if err != redis.TxFailedErr {
			return nil, errors.Wrapf(err, "failed to credit xp to %s", input.ID)
		}

		slog.DebugContext(ctx, "xp credit raced with a write, retrying",
			"owned_id", input.ID,
			"attempt", attempt)
	}

	return nil, errors.Abortedf("xp credit for %s kept conflicting", input.ID)
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	slog.DebugContext(ctx, "listing owned entities by player index",
		"player_id", input.PlayerID,
		"index_key", indexKey)

	ids, err := r.client.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read owned index %s", indexKey)
	}

	result := make([]*entities.OwnedEntity, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// If the entity doesn't exist, clean up the index
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "owned entity not found, cleaning up index",
					"owned_id", id,
					"index_key", indexKey)
				r.client.ZRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		result = append(result, out.Entity)
	}

	slog.DebugContext(ctx, "listed owned entities",
		"player_id", input.PlayerID,
		"count", len(result))

	return &ListByPlayerIDOutput{Entities: result}, nil
}

func validateEntity(entity *entities.OwnedEntity) error {
	if entity == nil {
		return errors.InvalidArgument(errEntityNil)
	}
	if entity.ID == "" {
		return errors.InvalidArgument(errEntityIDEmpty)
	}
	if entity.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	return nil
}
