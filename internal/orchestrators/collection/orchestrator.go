// Package collection serves what a player has: the session, owned entities, the
// archive and map progress
package collection

//go:generate mockgen -destination=mock/mock_service.go -package=collectionmock github.com/KirkDiggler/entity-arena/internal/orchestrators/collection Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/entity-arena/internal/engine"
	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/pkg/keylock"
	"github.com/KirkDiggler/entity-arena/internal/repositories/archive"
	"github.com/KirkDiggler/entity-arena/internal/repositories/owned"
	"github.com/KirkDiggler/entity-arena/internal/repositories/player"
	"github.com/KirkDiggler/entity-arena/internal/repositories/roster"
)

// Service defines the interface for collection queries and the active entity choice
type Service interface {
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)
	ListOwnedEntities(ctx context.Context, input *ListOwnedEntitiesInput) (*ListOwnedEntitiesOutput, error)
	SetActiveEntity(ctx context.Context, input *SetActiveEntityInput) (*SetActiveEntityOutput, error)
	GetArchive(ctx context.Context, input *GetArchiveInput) (*GetArchiveOutput, error)
	ListMaps(ctx context.Context, input *ListMapsInput) (*ListMapsOutput, error)
}

// Config holds the dependencies for the collection orchestrator
type Config struct {
	Maps        []*entities.Map
	RosterRepo  roster.Repository
	OwnedRepo   owned.Repository
	ArchiveRepo archive.Repository
	PlayerRepo  player.Repository
	// Locks serializes session writes per player; share it with the other orchestrators
	Locks *keylock.Mutex
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

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

	return vb.Build()
}

type orchestrator struct {
	maps        []*entities.Map
	rosterRepo  roster.Repository
	ownedRepo   owned.Repository
	archiveRepo archive.Repository
	playerRepo  player.Repository
	locks       *keylock.Mutex
}

// NewOrchestrator creates a new collection orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	locks := cfg.Locks
	if locks == nil {
		locks = keylock.New()
	}

	return &orchestrator{
		maps:        cfg.Maps,
		rosterRepo:  cfg.RosterRepo,
		ownedRepo:   cfg.OwnedRepo,
		archiveRepo: cfg.ArchiveRepo,
		playerRepo:  cfg.PlayerRepo,
		locks:       locks,
	}, nil
}

func (o *orchestrator) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	session, err := player.LoadOrNew(ctx, o.playerRepo, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load player")
	}

	return &GetPlayerOutput{Player: session}, nil
}

func (o *orchestrator) ListOwnedEntities(
	ctx context.Context,
	input *ListOwnedEntitiesInput,
) (*ListOwnedEntitiesOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	list, err := o.ownedRepo.ListByPlayerID(ctx, owned.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned entities")
	}

	session, err := player.LoadOrNew(ctx, o.playerRepo, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load player")
	}

	return &ListOwnedEntitiesOutput{
		Entities:       list.Entities,
		ActiveEntityID: session.ActiveEntityID,
	}, nil
}

// SetActiveEntity switches the entity sent into the next battle
func (o *orchestrator) SetActiveEntity(
	ctx context.Context,
	input *SetActiveEntityInput,
) (*SetActiveEntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("owned_id", input.OwnedID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	unlock := o.locks.Lock(keylock.Player(input.PlayerID))
	defer unlock()

	entity, err := o.ownedRepo.Get(ctx, owned.GetInput{ID: input.OwnedID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load entity")
	}
	if entity.Entity.PlayerID != input.PlayerID {
		return nil, errors.PermissionDeniedf("entity %s belongs to another player", input.OwnedID)
	}

	session, err := player.LoadOrNew(ctx, o.playerRepo, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load player")
	}
	if session.ActiveBattleID != "" {
		return nil, errors.FailedPrecondition("cannot switch entities during a battle").
			WithMeta("battle_id", session.ActiveBattleID)
	}

	staged := session.Clone()
	staged.ActiveEntityID = input.OwnedID

	saved, err := o.playerRepo.Save(ctx, player.SaveInput{Player: staged})
	if err != nil {
		return nil, errors.SyncFailed(err, "failed to save active entity")
	}

	slog.InfoContext(ctx, "active entity changed",
		"player_id", input.PlayerID,
		"owned_id", input.OwnedID)

	return &SetActiveEntityOutput{Player: saved.Player}, nil
}

// GetArchive joins the roster with the player's discovery records
func (o *orchestrator) GetArchive(ctx context.Context, input *GetArchiveInput) (*GetArchiveOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.Element != "" && !input.Element.Valid() {
		return nil, errors.InvalidArgumentf("unknown element %q", input.Element)
	}
	if input.Rarity != "" && !input.Rarity.Valid() {
		return nil, errors.InvalidArgumentf("unknown rarity %q", input.Rarity)
	}

	rosterOut, err := o.rosterRepo.List(ctx, roster.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roster")
	}

	archiveOut, err := o.archiveRepo.ListByPlayerID(ctx, archive.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load archive")
	}

	statuses := make(map[int]entities.ArchiveStatus, len(archiveOut.Entries))
	for _, entry := range archiveOut.Entries {
		statuses[entry.EntityID] = statuses[entry.EntityID].Max(entry.Status)
	}

	out := &GetArchiveOutput{}
	for _, master := range rosterOut.Masters {
		if input.Element != "" && master.Element != input.Element {
			continue
		}
		if input.Rarity != "" && master.Rarity != input.Rarity {
			continue
		}

		status := entities.ArchiveNone.Max(statuses[master.ID])
		out.Entries = append(out.Entries, &ArchiveView{Master: master, Status: status})
		out.Total++

		switch status {
		case entities.ArchiveOpen:
			out.Discovered++
			out.Encountered++
		case entities.ArchiveClose:
			out.Encountered++
		}
	}

	return out, nil
}

// ListMaps reports completion and unlock state for every map
func (o *orchestrator) ListMaps(ctx context.Context, input *ListMapsInput) (*ListMapsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	archiveOut, err := o.archiveRepo.ListByPlayerID(ctx, archive.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load archive")
	}

	return &ListMapsOutput{
		Maps: engine.MapProgression(o.maps, archiveOut.Entries),
	}, nil
}
