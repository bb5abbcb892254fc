// Package starter implements starter selection: rolling offers, the single reroll and
// turning the chosen offer into the player's first owned entity
package starter

//go:generate mockgen -destination=mock/mock_service.go -package=startermock github.com/KirkDiggler/entity-arena/internal/orchestrators/starter Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/entity-arena/internal/engine"
	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/pkg/clock"
	"github.com/KirkDiggler/entity-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/entity-arena/internal/pkg/keylock"
	"github.com/KirkDiggler/entity-arena/internal/repositories/archive"
	"github.com/KirkDiggler/entity-arena/internal/repositories/owned"
	"github.com/KirkDiggler/entity-arena/internal/repositories/player"
	"github.com/KirkDiggler/entity-arena/internal/repositories/roster"
	"github.com/KirkDiggler/entity-arena/internal/repositories/startersession"
)

// MaxRerolls is how many times a player may replace the offers before choosing
const MaxRerolls = 1

// Service defines the interface for starter selection
type Service interface {
	// GenerateStarters returns the pending offers, rolling them on first call.
	// Calling it again returns the same offers so the reroll budget cannot be bypassed.
	GenerateStarters(ctx context.Context, input *GenerateStartersInput) (*GenerateStartersOutput, error)

	// RerollStarters discards the offers and rolls new ones while budget remains
	RerollStarters(ctx context.Context, input *RerollStartersInput) (*RerollStartersOutput, error)

	// SelectStarter creates the owned entity for one of the offers
	SelectStarter(ctx context.Context, input *SelectStarterInput) (*SelectStarterOutput, error)
}

// Config holds the dependencies for the starter orchestrator
type Config struct {
	Engine             engine.Engine
	RosterRepo         roster.Repository
	OwnedRepo          owned.Repository
	ArchiveRepo        archive.Repository
	PlayerRepo         player.Repository
	StarterSessionRepo startersession.Repository
	IDGenerator        idgen.Generator
	Clock              clock.Clock
	EventBus           events.EventBus
	// Locks serializes offers and the player save per player
	Locks *keylock.Mutex
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
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
	if c.StarterSessionRepo == nil {
		vb.RequiredField("StarterSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine      engine.Engine
	rosterRepo  roster.Repository
	ownedRepo   owned.Repository
	archiveRepo archive.Repository
	playerRepo  player.Repository
	sessionRepo startersession.Repository
	idGen       idgen.Generator
	clock       clock.Clock
	eventBus    events.EventBus
	locks       *keylock.Mutex
}

// NewOrchestrator creates a new starter orchestrator with the provided dependencies
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
		engine:      cfg.Engine,
		rosterRepo:  cfg.RosterRepo,
		ownedRepo:   cfg.OwnedRepo,
		archiveRepo: cfg.ArchiveRepo,
		playerRepo:  cfg.PlayerRepo,
		sessionRepo: cfg.StarterSessionRepo,
		idGen:       cfg.IDGenerator,
		clock:       c,
		eventBus:    cfg.EventBus,
		locks:       locks,
	}, nil
}

// GenerateStarters returns the pending offers or rolls the first set
func (o *orchestrator) GenerateStarters(
	ctx context.Context,
	input *GenerateStartersInput,
) (*GenerateStartersOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.locks.Lock(keylock.Player(input.PlayerID))
	defer unlock()

	if err := o.requireNoStarter(ctx, input.PlayerID); err != nil {
		return nil, err
	}

	existing, err := o.sessionRepo.Get(ctx, startersession.GetInput{PlayerID: input.PlayerID})
	if err == nil {
		return &GenerateStartersOutput{
			Session:     existing.Session,
			RerollsLeft: rerollsLeft(existing.Session),
		}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to get starter session")
	}

	session, err := o.roll(ctx, input.PlayerID, 0)
	if err != nil {
		return nil, err
	}

	return &GenerateStartersOutput{
		Session:     session,
		RerollsLeft: rerollsLeft(session),
	}, nil
}

// RerollStarters replaces the offers once per selection session
func (o *orchestrator) RerollStarters(
	ctx context.Context,
	input *RerollStartersInput,
) (*RerollStartersOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.locks.Lock(keylock.Player(input.PlayerID))
	defer unlock()

	existing, err := o.sessionRepo.Get(ctx, startersession.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPrecondition("no starters to reroll, generate them first")
		}
		return nil, errors.Wrap(err, "failed to get starter session")
	}

	if existing.Session.RerollsUsed >= MaxRerolls {
		return nil, errors.FailedPreconditionf("reroll budget of %d already used", MaxRerolls).
			WithMeta("rerolls_used", existing.Session.RerollsUsed)
	}

	session, err := o.roll(ctx, input.PlayerID, existing.Session.RerollsUsed+1)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "starters rerolled",
		"player_id", input.PlayerID,
		"rerolls_used", session.RerollsUsed)

	return &RerollStartersOutput{
		Session:     session,
		RerollsLeft: rerollsLeft(session),
	}, nil
}

// SelectStarter turns one offer into the player's first owned entity
func (o *orchestrator) SelectStarter(
	ctx context.Context,
	input *SelectStarterInput,
) (*SelectStarterOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.locks.Lock(keylock.Player(input.PlayerID))
	defer unlock()

	existing, err := o.sessionRepo.Get(ctx, startersession.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPrecondition("no pending starters to choose from")
		}
		return nil, errors.Wrap(err, "failed to get starter session")
	}

	var choice *entities.StarterChoice
	for i := range existing.Session.Choices {
		if existing.Session.Choices[i].EntityID == input.EntityID {
			choice = &existing.Session.Choices[i]
			break
		}
	}
	if choice == nil {
		return nil, errors.InvalidArgumentf("entity %d is not one of the offered starters", input.EntityID)
	}

	session, err := player.LoadOrNew(ctx, o.playerRepo, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load player")
	}
	if session.HasStarter {
		return nil, errors.FailedPrecondition("player already has a starter")
	}

	now := o.clock.Now()
	entity := &entities.OwnedEntity{
		ID:         o.idGen.Generate(),
		PlayerID:   input.PlayerID,
		EntityID:   choice.EntityID,
		Level:      1,
		Stats:      choice.Stats,
		CurrentHP:  choice.Stats.HP,
		AcquiredAt: now,
	}

	created, err := o.ownedRepo.Create(ctx, owned.CreateInput{Entity: entity})
	if err != nil {
		return nil, errors.SyncFailed(err, "failed to save starter")
	}

	advanced, err := o.archiveRepo.Upsert(ctx, archive.UpsertInput{
		PlayerID: input.PlayerID,
		EntityID: choice.EntityID,
		Status:   entities.ArchiveOpen,
	})
	if err != nil {
		return nil, errors.SyncFailed(err, "failed to record starter in archive")
	}

	staged := session.Clone()
	staged.HasStarter = true
	staged.ActiveEntityID = created.Entity.ID

	saved, err := o.playerRepo.Save(ctx, player.SaveInput{Player: staged})
	if err != nil {
		return nil, errors.SyncFailed(err, "failed to save player")
	}

	if _, err := o.sessionRepo.Delete(ctx, startersession.DeleteInput{PlayerID: input.PlayerID}); err != nil {
		// Offers expire on their own and HasStarter already blocks reuse
		slog.WarnContext(ctx, "failed to delete starter session",
			"player_id", input.PlayerID,
			"error", err)
	}

	if advanced.Changed {
		engine.Publish(ctx, o.eventBus, engine.EventArchiveAdvanced,
			&engine.PlayerEntity{ID: input.PlayerID}, created.Entity,
			map[string]any{"entity_id": choice.EntityID, "status": string(entities.ArchiveOpen)})
	}

	slog.InfoContext(ctx, "starter selected",
		"player_id", input.PlayerID,
		"entity_id", choice.EntityID,
		"owned_id", created.Entity.ID)

	return &SelectStarterOutput{
		Entity: created.Entity,
		Player: saved.Player,
	}, nil
}

func (o *orchestrator) requireNoStarter(ctx context.Context, playerID string) error {
	session, err := player.LoadOrNew(ctx, o.playerRepo, playerID)
	if err != nil {
		return errors.Wrap(err, "failed to load player")
	}
	if session.HasStarter {
		return errors.FailedPrecondition("player already has a starter")
	}
	return nil
}

// roll generates a full set of offers and stores them as the pending session
func (o *orchestrator) roll(ctx context.Context, playerID string, rerollsUsed int) (*entities.StarterSession, error) {
	rosterOut, err := o.rosterRepo.List(ctx, roster.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roster")
	}

	generated, err := o.engine.GenerateStarters(ctx, &engine.GenerateStartersInput{
		Roster: rosterOut.Masters,
		Count:  engine.StarterCount,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate starters")
	}
	if len(generated.Starters) == 0 {
		return nil, errors.Internal("no starters could be generated from the roster")
	}

	session := &entities.StarterSession{
		PlayerID:    playerID,
		Choices:     make([]entities.StarterChoice, 0, len(generated.Starters)),
		RerollsUsed: rerollsUsed,
		CreatedAt:   o.clock.Now(),
	}
	for _, s := range generated.Starters {
		session.Choices = append(session.Choices, entities.StarterChoice{
			EntityID: s.Master.ID,
			Stats:    s.Stats,
		})
	}

	saved, err := o.sessionRepo.Save(ctx, startersession.SaveInput{Session: session})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save starter session")
	}

	if generated.Dropped > 0 {
		slog.WarnContext(ctx, "starter slots dropped",
			"player_id", playerID,
			"dropped", generated.Dropped)
	}

	return saved.Session, nil
}

func rerollsLeft(session *entities.StarterSession) int {
	return max(0, MaxRerolls-session.RerollsUsed)
}
