// Package growth implements the progression actions: leveling with XP, the stat
// point shop and the training loop that earns points
package growth

//go:generate mockgen -destination=mock/mock_service.go -package=growthmock github.com/KirkDiggler/entity-arena/internal/orchestrators/growth Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/entity-arena/internal/content"
	"github.com/KirkDiggler/entity-arena/internal/engine"
	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/pkg/clock"
	"github.com/KirkDiggler/entity-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/entity-arena/internal/pkg/keylock"
	"github.com/KirkDiggler/entity-arena/internal/repositories/owned"
	"github.com/KirkDiggler/entity-arena/internal/repositories/player"
)

// Service defines the interface for progression operations
type Service interface {
	// LevelUp spends XP for one level
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)

	// UpgradeStat spends points on a single stat
	UpgradeStat(ctx context.Context, input *UpgradeStatInput) (*UpgradeStatOutput, error)

	// Train earns points and may spawn a short lived bonus target
	Train(ctx context.Context, input *TrainInput) (*TrainOutput, error)

	// ClaimBonus collects a bonus target before it expires
	ClaimBonus(ctx context.Context, input *ClaimBonusInput) (*ClaimBonusOutput, error)
}

// Config holds the dependencies for the growth orchestrator
type Config struct {
	Engine      engine.Engine
	Economy     content.Economy
	OwnedRepo   owned.Repository
	PlayerRepo  player.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	EventBus    events.EventBus
	// Locks serializes writes per player; share it with the combat orchestrator
	Locks *keylock.Mutex
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.OwnedRepo == nil {
		vb.RequiredField("OwnedRepo")
	}
	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Economy.TrainPoints < 0 {
		vb.InvalidField("Economy.TrainPoints", "cannot be negative")
	}
	if c.Economy.BonusPoints < 0 {
		vb.InvalidField("Economy.BonusPoints", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	engine     engine.Engine
	economy    content.Economy
	ownedRepo  owned.Repository
	playerRepo player.Repository
	idGen      idgen.Generator
	clock      clock.Clock
	eventBus   events.EventBus
	locks      *keylock.Mutex
}

// NewOrchestrator creates a new growth orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	locks := cfg.Locks
	if locks == nil {
		locks = keylock.New()
	}

	return &orchestrator{
		engine:     cfg.Engine,
		economy:    cfg.Economy,
		ownedRepo:  cfg.OwnedRepo,
		playerRepo: cfg.PlayerRepo,
		idGen:      cfg.IDGenerator,
		clock:      c,
		eventBus:   cfg.EventBus,
		locks:      locks,
	}, nil
}

// LevelUp gains exactly one level when the entity has enough XP
func (o *orchestrator) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.locks.Lock(keylock.Player(input.PlayerID))
	defer unlock()

	entity, err := o.loadOwned(ctx, input.PlayerID, input.OwnedID)
	if err != nil {
		return nil, err
	}

	leveled, err := engine.LevelUp(entity)
	if err != nil {
		return nil, err
	}

	updated, err := o.ownedRepo.Update(ctx, owned.UpdateInput{Entity: leveled})
	if err != nil {
		return nil, errors.SyncFailed(err, "failed to save level up")
	}

	engine.Publish(ctx, o.eventBus, engine.EventEntityLeveled,
		&engine.PlayerEntity{ID: input.PlayerID}, updated.Entity,
		map[string]any{"level": updated.Entity.Level, "xp": updated.Entity.XP})

	slog.InfoContext(ctx, "entity leveled up",
		"player_id", input.PlayerID,
		"owned_id", updated.Entity.ID,
		"level", updated.Entity.Level)

	return &LevelUpOutput{
		Entity:         updated.Entity,
		NextRequiredXP: engine.RequiredXP(updated.Entity.Level),
	}, nil
}

// UpgradeStat buys +1 on one stat with the player's points. The entity is written
// first; if the balance cannot be saved the entity is put back.
func (o *orchestrator) UpgradeStat(ctx context.Context, input *UpgradeStatInput) (*UpgradeStatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Stat.Valid() {
		return nil, errors.InvalidArgumentf("unknown stat %q", input.Stat)
	}

	unlock := o.locks.Lock(keylock.Player(input.PlayerID))
	defer unlock()

	entity, err := o.loadOwned(ctx, input.PlayerID, input.OwnedID)
	if err != nil {
		return nil, err
	}

	session, err := player.LoadOrNew(ctx, o.playerRepo, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load player")
	}

	upgraded, remaining, err := engine.UpgradeStat(entity, input.Stat, session.Points)
	if err != nil {
		return nil, err
	}

	updated, err := o.ownedRepo.Update(ctx, owned.UpdateInput{Entity: upgraded})
	if err != nil {
		return nil, errors.SyncFailed(err, "failed to save stat upgrade")
	}

	staged := session.Clone()
	staged.Points = remaining

	saved, err := o.playerRepo.Save(ctx, player.SaveInput{Player: staged})
	if err != nil {
		if _, revertErr := o.ownedRepo.Update(ctx, owned.UpdateInput{Entity: entity}); revertErr != nil {
			slog.ErrorContext(ctx, "failed to revert stat upgrade",
				"player_id", input.PlayerID,
				"owned_id", entity.ID,
				"error", revertErr)
		}
		return nil, errors.SyncFailed(err, "failed to save point balance")
	}

	cost := session.Points - remaining

	engine.Publish(ctx, o.eventBus, engine.EventStatUpgraded,
		&engine.PlayerEntity{ID: input.PlayerID}, updated.Entity,
		map[string]any{"stat": string(input.Stat), "cost": cost})

	return &UpgradeStatOutput{
		Entity: updated.Entity,
		Player: saved.Player,
		Cost:   cost,
	}, nil
}

// Train grants the training points and, while no bonus is live, rolls for a new one
func (o *orchestrator) Train(ctx context.Context, input *TrainInput) (*TrainOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.locks.Lock(keylock.Player(input.PlayerID))
	defer unlock()

	session, err := player.LoadOrNew(ctx, o.playerRepo, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load player")
	}

	now := o.clock.Now()
	staged := session.Clone()
	staged.Points += o.economy.TrainPoints

	var spawned *entities.BonusTarget
	if !staged.Bonus.Alive(now) {
		staged.Bonus = nil

		hit, err := o.engine.RollBonusSpawn(o.economy.BonusOneIn)
		if err != nil {
			return nil, err
		}
		if hit {
			spawned = &entities.BonusTarget{
				ID:        o.idGen.Generate(),
				Points:    o.economy.BonusPoints,
				SpawnedAt: now,
				ExpiresAt: now.Add(o.economy.BonusLifetime),
			}
			staged.Bonus = spawned
		}
	}

	saved, err := o.playerRepo.Save(ctx, player.SaveInput{Player: staged})
	if err != nil {
		return nil, errors.SyncFailed(err, "failed to save training")
	}

	if spawned != nil {
		engine.Publish(ctx, o.eventBus, engine.EventBonusSpawned,
			&engine.PlayerEntity{ID: input.PlayerID}, nil,
			map[string]any{"bonus_id": spawned.ID, "points": spawned.Points})
	}

	return &TrainOutput{
		Player:  saved.Player,
		Spawned: spawned,
	}, nil
}

// ClaimBonus awards a live bonus target once
func (o *orchestrator) ClaimBonus(ctx context.Context, input *ClaimBonusInput) (*ClaimBonusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("bonus_id", input.BonusID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	unlock := o.locks.Lock(keylock.Player(input.PlayerID))
	defer unlock()

	session, err := player.LoadOrNew(ctx, o.playerRepo, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load player")
	}

	if session.Bonus == nil || session.Bonus.ID != input.BonusID {
		return nil, errors.NotFoundf("bonus %s not found", input.BonusID)
	}
	if !session.Bonus.Alive(o.clock.Now()) {
		return nil, errors.FailedPreconditionf("bonus %s expired", input.BonusID).
			WithMeta("expired_at", session.Bonus.ExpiresAt)
	}

	awarded := session.Bonus.Points
	staged := session.Clone()
	staged.Points += awarded
	staged.Bonus = nil

	saved, err := o.playerRepo.Save(ctx, player.SaveInput{Player: staged})
	if err != nil {
		return nil, errors.SyncFailed(err, "failed to save bonus")
	}

	return &ClaimBonusOutput{
		Player:  saved.Player,
		Awarded: awarded,
	}, nil
}

func (o *orchestrator) loadOwned(ctx context.Context, playerID, ownedID string) (*entities.OwnedEntity, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", playerID, vb)
	errors.ValidateRequired("owned_id", ownedID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.ownedRepo.Get(ctx, owned.GetInput{ID: ownedID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load entity")
	}
	if out.Entity.PlayerID != playerID {
		return nil, errors.PermissionDeniedf("entity %s belongs to another player", ownedID)
	}

	return out.Entity, nil
}
