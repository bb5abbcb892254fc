package startersession

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/entity-arena/internal/redis"
)

const (
	// Key pattern: starter_session:{player_id}
	sessionKeyPrefix = "starter_session:"
	// DefaultTTL is how long offers stay pending when no TTL is configured
	DefaultTTL = 30 * time.Minute

	errSessionNil    = "starter session cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

// RedisConfig contains configuration for the Redis starter session repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed starter session repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	session := *input.Session
	session.Choices = append([]entities.StarterChoice(nil), input.Session.Choices...)
	if session.CreatedAt.IsZero() {
		session.CreatedAt = r.clock.Now()
	}

	data, err := json.Marshal(&session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal starter session")
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	if err := r.client.Set(ctx, sessionKeyPrefix+session.PlayerID, data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store starter session")
	}

	return &SaveOutput{Session: &session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data, err := r.client.Get(ctx, sessionKeyPrefix+input.PlayerID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no pending starters for player %s", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get starter session")
	}

	var session entities.StarterSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal starter session")
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	if err := r.client.Del(ctx, sessionKeyPrefix+input.PlayerID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete starter session")
	}

	return &DeleteOutput{}, nil
}
