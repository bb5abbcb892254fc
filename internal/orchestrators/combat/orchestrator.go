// Package combat runs battles for players: starting them on unlocked maps, applying
// turns and committing victories, captures and XP once they are persisted
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/entity-arena/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/entity-arena/internal/battle"
	"github.com/KirkDiggler/entity-arena/internal/engine"
	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/pkg/clock"
	"github.com/KirkDiggler/entity-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/entity-arena/internal/pkg/keylock"
	"github.com/KirkDiggler/entity-arena/internal/repositories/archive"
	"github.com/KirkDiggler/entity-arena/internal/repositories/battles"
	"github.com/KirkDiggler/entity-arena/internal/repositories/owned"
	"github.com/KirkDiggler/entity-arena/internal/repositories/player"
	"github.com/KirkDiggler/entity-arena/internal/repositories/roster"
)

// Service defines the interface for battle operations
type Service interface {
	// StartBattle generates a wild enemy on the map and records it as encountered
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// Attack applies the player's attack and, unless the battle ended, the enemy's reply
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	// Escape ends the battle on the player's turn
	Escape(ctx context.Context, input *EscapeInput) (*EscapeOutput, error)

	// GetBattle returns the battle, resolving an enemy turn that is already due
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Engine      engine.Engine
	Maps        []*entities.Map
	RosterRepo  roster.Repository
	OwnedRepo   owned.Repository
	ArchiveRepo archive.Repository
	PlayerRepo  player.Repository
	BattleRepo  battles.Repository
	// BattleIDs names new battles; OwnedIDs names captured entities
	BattleIDs idgen.Generator
	OwnedIDs  idgen.Generator
	Clock     clock.Clock
	EventBus  events.EventBus

	// EnemyTurnDelay defers the enemy's reply. Zero resolves it inside the attack.
	EnemyTurnDelay time.Duration
	// Scheduler runs deferred enemy turns; defaults to battle.Timer
	Scheduler battle.Scheduler
	// Locks is shared with the other orchestrators that rewrite player state
	Locks *keylock.Mutex
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if len(c.Maps) == 0 {
		vb.RequiredField("Maps")
	}
	if c.RosterRepo == nil {
		vb.RequiredField("RosterRepo")
	}
	if c.OwnedRepo == nil {
		vb.RequiredField("OwnedRepo")
	}
	if c.ArchiveRepo == nil {
		vb.RequiredField("ArchiveRepo")
	}
	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.BattleRepo == nil {
		vb.RequiredField("BattleRepo")
	}
	if c.BattleIDs == nil {
		vb.RequiredField("BattleIDs")
	}
	if c.OwnedIDs == nil {
		vb.RequiredField("OwnedIDs")
	}
	if c.EnemyTurnDelay < 0 {
		vb.InvalidField("EnemyTurnDelay", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	engine      engine.Engine
	maps        []*entities.Map
	rosterRepo  roster.Repository
	ownedRepo   owned.Repository
	archiveRepo archive.Repository
	playerRepo  player.Repository
	battleRepo  battles.Repository
	battleIDs   idgen.Generator
	ownedIDs    idgen.Generator
	clock       clock.Clock
	eventBus    events.EventBus
	delay       time.Duration
	scheduler   battle.Scheduler
	locks       *keylock.Mutex
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
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
	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = battle.Timer{}
	}
	locks := cfg.Locks
	if locks == nil {
		locks = keylock.New()
	}

	return &orchestrator{
		engine:      cfg.Engine,
		maps:        cfg.Maps,
		rosterRepo:  cfg.RosterRepo,
		ownedRepo:   cfg.OwnedRepo,
		archiveRepo: cfg.ArchiveRepo,
		playerRepo:  cfg.PlayerRepo,
		battleRepo:  cfg.BattleRepo,
		battleIDs:   cfg.BattleIDs,
		ownedIDs:    cfg.OwnedIDs,
		clock:       c,
		eventBus:    cfg.EventBus,
		delay:       cfg.EnemyTurnDelay,
		scheduler:   scheduler,
		locks:       locks,
	}, nil
}

// StartBattle opens a battle against a wild enemy on an unlocked map
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("map_id", input.MapID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	unlock := o.locks.Lock(keylock.Player(input.PlayerID))
	defer unlock()

	session, err := player.LoadOrNew(ctx, o.playerRepo, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load player")
	}
	if !session.HasStarter || session.ActiveEntityID == "" {
		return nil, errors.FailedPrecondition("choose a starter before battling")
	}
	if err := o.requireNoLiveBattle(ctx, session); err != nil {
		return nil, err
	}

	m, err := o.unlockedMap(ctx, input.PlayerID, input.MapID)
	if err != nil {
		return nil, err
	}

	active, err := o.ownedRepo.Get(ctx, owned.GetInput{ID: session.ActiveEntityID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active entity")
	}

	rosterOut, err := o.rosterRepo.List(ctx, roster.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roster")
	}

	b, err := battle.Start(ctx, &battle.StartInput{
		ID:        o.battleIDs.Generate(),
		Player:    active.Entity,
		Roster:    rosterOut.Masters,
		Map:       m,
		Generator: o.engine,
		Now:       o.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	// The first encounter is recorded whatever the battle's outcome
	if err := o.advanceArchive(ctx, input.PlayerID, b.Enemy.EntityID, entities.ArchiveClose); err != nil {
		return nil, err
	}

	saved, err := o.battleRepo.Save(ctx, battles.SaveInput{Battle: b})
	if err != nil {
		return nil, errors.SyncFailed(err, "failed to save battle")
	}

	staged := session.Clone()
	staged.ActiveBattleID = saved.Battle.ID
	if _, err := o.playerRepo.Save(ctx, player.SaveInput{Player: staged}); err != nil {
		return nil, errors.SyncFailed(err, "failed to save player")
	}

	engine.Publish(ctx, o.eventBus, engine.EventBattleStarted,
		&engine.PlayerEntity{ID: input.PlayerID}, active.Entity,
		map[string]any{
			"battle_id": saved.Battle.ID,
			"map_id":    m.ID,
			"enemy_id":  saved.Battle.Enemy.EntityID,
		})

	slog.InfoContext(ctx, "battle started",
		"player_id", input.PlayerID,
		"battle_id", saved.Battle.ID,
		"map_id", m.ID,
		"enemy_id", saved.Battle.Enemy.EntityID,
		"enemy_rarity", saved.Battle.Enemy.Rarity)

	return &StartBattleOutput{Battle: saved.Battle}, nil
}

// Attack applies the player's attack and follows it with the enemy's reply
func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateAction(input.PlayerID, input.BattleID); err != nil {
		return nil, err
	}

	unlock := o.locks.Lock(keylock.Battle(input.BattleID))
	defer unlock()

	current, err := o.loadBattle(ctx, input.PlayerID, input.BattleID)
	if err != nil {
		return nil, err
	}
	if current.OwesPayout() {
		paid, err := o.payout(ctx, current)
		if err != nil {
			return nil, err
		}
		return &AttackOutput{Battle: paid.battle, Applied: false, Captured: paid.captured}, nil
	}

	staged := current.Clone()
	settled := o.settle(staged, false)

	m := o.mapByID(staged.MapID)
	applied, err := staged.PlayerAttack(func() (bool, error) {
		return o.rollCapture(ctx, staged.Enemy.EntityID, m)
	})
	if err != nil {
		return nil, err
	}

	if !applied {
		if !settled {
			return &AttackOutput{Battle: current, Applied: false}, nil
		}
		saved, err := o.commit(ctx, current, staged)
		if err != nil {
			return nil, err
		}
		return &AttackOutput{Battle: saved.battle, Applied: false}, nil
	}

	deferred := false
	if staged.State == battle.StateEnemyTurn {
		if o.delay == 0 {
			staged.EnemyAttack()
		} else {
			staged.EnemyTurnAt = o.clock.Now().Add(o.delay)
			deferred = true
		}
	}

	saved, err := o.commit(ctx, current, staged)
	if err != nil {
		return nil, err
	}

	if deferred {
		battleID := staged.ID
		bg := context.WithoutCancel(ctx)
		o.scheduler.Schedule(o.delay, func() {
			o.resolveEnemyTurn(bg, battleID)
		})
	}

	return &AttackOutput{
		Battle:   saved.battle,
		Applied:  true,
		Captured: saved.captured,
	}, nil
}

// Escape ends the battle with no reward
func (o *orchestrator) Escape(ctx context.Context, input *EscapeInput) (*EscapeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateAction(input.PlayerID, input.BattleID); err != nil {
		return nil, err
	}

	unlock := o.locks.Lock(keylock.Battle(input.BattleID))
	defer unlock()

	current, err := o.loadBattle(ctx, input.PlayerID, input.BattleID)
	if err != nil {
		return nil, err
	}
	if current.OwesPayout() {
		paid, err := o.payout(ctx, current)
		if err != nil {
			return nil, err
		}
		return &EscapeOutput{Battle: paid.battle, Applied: false}, nil
	}

	staged := current.Clone()
	settled := o.settle(staged, false)
	applied := staged.Escape()
	if !applied && !settled {
		return &EscapeOutput{Battle: current, Applied: false}, nil
	}

	saved, err := o.commit(ctx, current, staged)
	if err != nil {
		return nil, err
	}

	return &EscapeOutput{Battle: saved.battle, Applied: applied}, nil
}

// GetBattle reads a battle and resolves an overdue enemy turn
func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateAction(input.PlayerID, input.BattleID); err != nil {
		return nil, err
	}

	unlock := o.locks.Lock(keylock.Battle(input.BattleID))
	defer unlock()

	current, err := o.loadBattle(ctx, input.PlayerID, input.BattleID)
	if err != nil {
		return nil, err
	}
	if current.OwesPayout() {
		paid, err := o.payout(ctx, current)
		if err != nil {
			return nil, err
		}
		return &GetBattleOutput{Battle: paid.battle}, nil
	}

	staged := current.Clone()
	if !o.settle(staged, false) {
		return &GetBattleOutput{Battle: current}, nil
	}

	saved, err := o.commit(ctx, current, staged)
	if err != nil {
		return nil, err
	}

	return &GetBattleOutput{Battle: saved.battle}, nil
}

// resolveEnemyTurn is the scheduled continuation after a deferred player attack
func (o *orchestrator) resolveEnemyTurn(ctx context.Context, battleID string) {
	unlock := o.locks.Lock(keylock.Battle(battleID))
	defer unlock()

	out, err := o.battleRepo.Get(ctx, battles.GetInput{BattleID: battleID})
	if err != nil {
		slog.WarnContext(ctx, "scheduled enemy turn could not load battle",
			"battle_id", battleID,
			"error", err)
		return
	}

	staged := out.Battle.Clone()
	if !o.settle(staged, true) {
		return
	}

	if _, err := o.commit(ctx, out.Battle, staged); err != nil {
		slog.ErrorContext(ctx, "failed to commit scheduled enemy turn",
			"battle_id", battleID,
			"error", err)
	}
}

// settle runs a pending enemy turn once it is due, or immediately when forced
func (o *orchestrator) settle(b *battle.Battle, force bool) bool {
	if b.State != battle.StateEnemyTurn {
		return false
	}
	if !force && !b.EnemyTurnAt.IsZero() && o.clock.Now().Before(b.EnemyTurnAt) {
		return false
	}
	return b.EnemyAttack()
}

type committed struct {
	battle   *battle.Battle
	captured *entities.OwnedEntity
}

// commit persists a staged battle. A win is stored first with its payout pending and
// the captured entity's id reserved, then the rewards are written. A failure after the
// first save leaves the battle owing its payout, and the next action on it finishes
// the job without rolling anything again.
func (o *orchestrator) commit(ctx context.Context, before, staged *battle.Battle) (*committed, error) {
	finished := staged.State.Terminal() && !before.State.Terminal()

	if finished && staged.State == battle.StateWon && staged.Outcome != nil {
		if staged.Outcome.Captured && staged.Outcome.CapturedOwnedID == "" {
			staged.Outcome.CapturedOwnedID = o.ownedIDs.Generate()
		}
		staged.Outcome.PayoutPending = true
	}

	saved, err := o.battleRepo.Save(ctx, battles.SaveInput{Battle: staged})
	if err != nil {
		return nil, errors.SyncFailed(err, "failed to save battle")
	}

	if saved.Battle.OwesPayout() {
		return o.payout(ctx, saved.Battle)
	}

	if finished {
		o.finish(ctx, saved.Battle)
	}

	return &committed{battle: saved.Battle}, nil
}

// payout writes the rewards of a won battle. Each step can be repeated safely: the
// captured entity has a reserved id, the archive only moves forward and XP is
// credited once per battle.
func (o *orchestrator) payout(ctx context.Context, b *battle.Battle) (*committed, error) {
	captured, err := o.payRewards(ctx, b)
	if err != nil {
		return nil, err
	}

	settled := b.Clone()
	settled.Outcome.PayoutPending = false

	saved, err := o.battleRepo.Save(ctx, battles.SaveInput{Battle: settled})
	if err != nil {
		return nil, errors.SyncFailed(err, "failed to settle battle")
	}

	o.finish(ctx, saved.Battle)

	return &committed{battle: saved.Battle, captured: captured}, nil
}

func (o *orchestrator) payRewards(ctx context.Context, b *battle.Battle) (*entities.OwnedEntity, error) {
	unlock := o.locks.Lock(keylock.Player(b.PlayerID))
	defer unlock()

	var captured *entities.OwnedEntity
	if b.Outcome.Captured {
		entity, err := o.createCaptured(ctx, b)
		if err != nil {
			return nil, err
		}
		captured = entity
	}

	if err := o.creditXP(ctx, b); err != nil {
		return nil, err
	}

	return captured, nil
}

func (o *orchestrator) createCaptured(ctx context.Context, b *battle.Battle) (*entities.OwnedEntity, error) {
	if b.Outcome.CapturedOwnedID == "" {
		return nil, errors.Internalf("battle %s captured without a reserved id", b.ID)
	}

	entity := &entities.OwnedEntity{
		ID:         b.Outcome.CapturedOwnedID,
		PlayerID:   b.PlayerID,
		EntityID:   b.Enemy.EntityID,
		Level:      1,
		Stats:      b.Enemy.Stats,
		CurrentHP:  b.Enemy.Stats.HP,
		AcquiredAt: o.clock.Now(),
	}

	created, err := o.ownedRepo.Create(ctx, owned.CreateInput{Entity: entity})
	switch {
	case err == nil:
		entity = created.Entity
	case errors.IsAlreadyExists(err):
		// an earlier attempt stored it before failing later on
		existing, getErr := o.ownedRepo.Get(ctx, owned.GetInput{ID: entity.ID})
		if getErr != nil {
			return nil, errors.SyncFailed(getErr, "failed to load captured entity")
		}
		entity = existing.Entity
	default:
		return nil, errors.SyncFailed(err, "failed to save captured entity")
	}

	if err := o.advanceArchive(ctx, b.PlayerID, b.Enemy.EntityID, entities.ArchiveOpen); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "entity captured",
		"player_id", b.PlayerID,
		"battle_id", b.ID,
		"entity_id", b.Enemy.EntityID,
		"owned_id", entity.ID)

	return entity, nil
}

func (o *orchestrator) creditXP(ctx context.Context, b *battle.Battle) error {
	if b.Outcome.XPAwarded <= 0 || b.Player.OwnedID == "" {
		return nil
	}

	out, err := o.ownedRepo.CreditXP(ctx, owned.CreditXPInput{
		ID:        b.Player.OwnedID,
		Amount:    b.Outcome.XPAwarded,
		Reference: b.ID,
	})
	if err != nil {
		return errors.SyncFailed(err, "failed to save xp")
	}
	if !out.Applied {
		slog.DebugContext(ctx, "xp already credited",
			"battle_id", b.ID,
			"owned_id", b.Player.OwnedID)
	}

	return nil
}

// finish clears the player's active battle pointer and announces the result.
// The battle is already committed, so failures here are only logged.
func (o *orchestrator) finish(ctx context.Context, b *battle.Battle) {
	o.clearActiveBattle(ctx, b)

	data := map[string]any{
		"battle_id": b.ID,
		"state":     string(b.State),
		"rounds":    b.Round,
	}
	if b.Outcome != nil {
		data["xp_awarded"] = b.Outcome.XPAwarded
		data["captured"] = b.Outcome.Captured
	}
	engine.Publish(ctx, o.eventBus, engine.EventBattleFinished,
		&engine.PlayerEntity{ID: b.PlayerID}, nil, data)

	slog.InfoContext(ctx, "battle finished",
		"player_id", b.PlayerID,
		"battle_id", b.ID,
		"state", b.State,
		"rounds", b.Round)
}

func (o *orchestrator) clearActiveBattle(ctx context.Context, b *battle.Battle) {
	unlock := o.locks.Lock(keylock.Player(b.PlayerID))
	defer unlock()

	session, err := player.LoadOrNew(ctx, o.playerRepo, b.PlayerID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load player after battle",
			"player_id", b.PlayerID,
			"battle_id", b.ID,
			"error", err)
		return
	}
	if session.ActiveBattleID != b.ID {
		return
	}

	staged := session.Clone()
	staged.ActiveBattleID = ""
	if _, err := o.playerRepo.Save(ctx, player.SaveInput{Player: staged}); err != nil {
		slog.WarnContext(ctx, "failed to clear active battle",
			"player_id", b.PlayerID,
			"battle_id", b.ID,
			"error", err)
	}
}

// requireNoLiveBattle rejects a new battle while the player's current one is still
// being fought or still owes its rewards. A pointer to an ended or expired battle
// is left over from a best effort clear and does not block.
func (o *orchestrator) requireNoLiveBattle(ctx context.Context, session *entities.PlayerSession) error {
	if session.ActiveBattleID == "" {
		return nil
	}

	out, err := o.battleRepo.Get(ctx, battles.GetInput{BattleID: session.ActiveBattleID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil
		}
		return errors.Wrap(err, "failed to load active battle")
	}

	b := out.Battle
	switch {
	case b.OwesPayout():
		return errors.FailedPreconditionf("battle %s is still paying out its rewards", b.ID).
			WithMeta("battle_id", b.ID)
	case !b.State.Terminal():
		return errors.FailedPreconditionf("battle %s is still in progress", b.ID).
			WithMeta("battle_id", b.ID)
	}

	return nil
}

func (o *orchestrator) rollCapture(ctx context.Context, entityID int, m *entities.Map) (bool, error) {
	master, err := o.rosterRepo.Get(ctx, roster.GetInput{ID: entityID})
	if err != nil {
		return false, errors.Wrapf(err, "failed to load species %d", entityID)
	}

	out, err := o.engine.AttemptCapture(ctx, &engine.AttemptCaptureInput{
		Master: master.Master,
		Map:    m,
	})
	if err != nil {
		return false, err
	}

	return out.Captured, nil
}

func (o *orchestrator) advanceArchive(
	ctx context.Context,
	playerID string,
	entityID int,
	status entities.ArchiveStatus,
) error {
	out, err := o.archiveRepo.Upsert(ctx, archive.UpsertInput{
		PlayerID: playerID,
		EntityID: entityID,
		Status:   status,
	})
	if err != nil {
		return errors.SyncFailed(err, "failed to update archive")
	}

	if out.Changed {
		engine.Publish(ctx, o.eventBus, engine.EventArchiveAdvanced,
			&engine.PlayerEntity{ID: playerID}, nil,
			map[string]any{"entity_id": entityID, "status": string(out.Entry.Status)})
	}

	return nil
}

func (o *orchestrator) unlockedMap(ctx context.Context, playerID, mapID string) (*entities.Map, error) {
	archiveOut, err := o.archiveRepo.ListByPlayerID(ctx, archive.ListByPlayerIDInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load archive")
	}

	for _, progress := range engine.MapProgression(o.maps, archiveOut.Entries) {
		if progress.Map.ID != mapID {
			continue
		}
		if !progress.Unlocked {
			return nil, errors.FailedPreconditionf("map %s is locked", mapID).
				WithMeta("map_id", mapID).
				WithMeta("unlock_requirement", progress.Map.UnlockRequirement)
		}
		return progress.Map, nil
	}

	return nil, errors.NotFoundf("map %s not found", mapID)
}

func (o *orchestrator) mapByID(id string) *entities.Map {
	for _, m := range o.maps {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (o *orchestrator) loadBattle(ctx context.Context, playerID, battleID string) (*battle.Battle, error) {
	out, err := o.battleRepo.Get(ctx, battles.GetInput{BattleID: battleID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load battle")
	}
	if out.Battle.PlayerID != playerID {
		return nil, errors.PermissionDeniedf("battle %s belongs to another player", battleID)
	}
	if out.Battle.State.Terminal() {
		return out.Battle, nil
	}

	// an unfinished battle only accepts actions while it is the player's active one
	session, err := player.LoadOrNew(ctx, o.playerRepo, playerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load player")
	}
	if session.ActiveBattleID != battleID {
		return nil, errors.FailedPreconditionf("battle %s is not the active battle", battleID).
			WithMeta("battle_id", battleID)
	}

	return out.Battle, nil
}

func validateAction(playerID, battleID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", playerID, vb)
	errors.ValidateRequired("battle_id", battleID, vb)
	return vb.Build()
}
