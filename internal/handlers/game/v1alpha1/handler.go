package v1alpha1

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/orchestrators/collection"
	"github.com/KirkDiggler/entity-arena/internal/orchestrators/combat"
	"github.com/KirkDiggler/entity-arena/internal/orchestrators/growth"
	"github.com/KirkDiggler/entity-arena/internal/orchestrators/starter"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	StarterService    starter.Service
	CombatService     combat.Service
	GrowthService     growth.Service
	CollectionService collection.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.StarterService == nil {
		vb.RequiredField("StarterService")
	}
	if c.CombatService == nil {
		vb.RequiredField("CombatService")
	}
	if c.GrowthService == nil {
		vb.RequiredField("GrowthService")
	}
	if c.CollectionService == nil {
		vb.RequiredField("CollectionService")
	}

	return vb.Build()
}

// Handler implements the game gRPC service
type Handler struct {
	starterService    starter.Service
	combatService     combat.Service
	growthService     growth.Service
	collectionService collection.Service
}

var _ GameServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		starterService:    cfg.StarterService,
		combatService:     cfg.CombatService,
		growthService:     cfg.GrowthService,
		collectionService: cfg.CollectionService,
	}, nil
}

func requirePlayer(playerID string) error {
	if strings.TrimSpace(playerID) == "" {
		return status.Error(codes.InvalidArgument, "player_id is required")
	}
	return nil
}

func toOffers(session *entities.StarterSession, rerollsLeft int) *StarterOffers {
	if session == nil {
		return nil
	}
	return &StarterOffers{
		Choices:     session.Choices,
		RerollsUsed: session.RerollsUsed,
		RerollsLeft: rerollsLeft,
	}
}

// GenerateStarters returns the pending starter offers
func (h *Handler) GenerateStarters(
	ctx context.Context,
	req *GenerateStartersRequest,
) (*GenerateStartersResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	output, err := h.starterService.GenerateStarters(ctx, &starter.GenerateStartersInput{
		PlayerID: req.PlayerID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GenerateStartersResponse{
		Offers: toOffers(output.Session, output.RerollsLeft),
	}, nil
}

// RerollStarters replaces the starter offers once
func (h *Handler) RerollStarters(
	ctx context.Context,
	req *RerollStartersRequest,
) (*RerollStartersResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	output, err := h.starterService.RerollStarters(ctx, &starter.RerollStartersInput{
		PlayerID: req.PlayerID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RerollStartersResponse{
		Offers: toOffers(output.Session, output.RerollsLeft),
	}, nil
}

// SelectStarter turns one offer into the player's first entity
func (h *Handler) SelectStarter(
	ctx context.Context,
	req *SelectStarterRequest,
) (*SelectStarterResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.EntityID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "entity_id is required")
	}

	output, err := h.starterService.SelectStarter(ctx, &starter.SelectStarterInput{
		PlayerID: req.PlayerID,
		EntityID: req.EntityID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SelectStarterResponse{
		Entity: output.Entity,
		Player: output.Player,
	}, nil
}

// ListMaps lists maps with the player's completion
func (h *Handler) ListMaps(
	ctx context.Context,
	req *ListMapsRequest,
) (*ListMapsResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	output, err := h.collectionService.ListMaps(ctx, &collection.ListMapsInput{
		PlayerID: req.PlayerID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	maps := make([]*MapProgress, 0, len(output.Maps))
	for _, mp := range output.Maps {
		maps = append(maps, &MapProgress{
			Map:        mp.Map,
			Completion: mp.Completion,
			Unlocked:   mp.Unlocked,
		})
	}

	return &ListMapsResponse{Maps: maps}, nil
}

// StartBattle starts a battle on a map
func (h *Handler) StartBattle(
	ctx context.Context,
	req *StartBattleRequest,
) (*StartBattleResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.MapID == "" {
		return nil, status.Error(codes.InvalidArgument, "map_id is required")
	}

	output, err := h.combatService.StartBattle(ctx, &combat.StartBattleInput{
		PlayerID: req.PlayerID,
		MapID:    req.MapID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &StartBattleResponse{Battle: output.Battle}, nil
}

// Attack performs the player's attack
func (h *Handler) Attack(
	ctx context.Context,
	req *AttackRequest,
) (*AttackResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.BattleID == "" {
		return nil, status.Error(codes.InvalidArgument, "battle_id is required")
	}

	output, err := h.combatService.Attack(ctx, &combat.AttackInput{
		PlayerID: req.PlayerID,
		BattleID: req.BattleID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AttackResponse{
		Battle:   output.Battle,
		Applied:  output.Applied,
		Captured: output.Captured,
	}, nil
}

// Escape performs the player's escape
func (h *Handler) Escape(
	ctx context.Context,
	req *EscapeRequest,
) (*EscapeResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.BattleID == "" {
		return nil, status.Error(codes.InvalidArgument, "battle_id is required")
	}

	output, err := h.combatService.Escape(ctx, &combat.EscapeInput{
		PlayerID: req.PlayerID,
		BattleID: req.BattleID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EscapeResponse{
		Battle:  output.Battle,
		Applied: output.Applied,
	}, nil
}

// GetBattle reads a battle, resolving any enemy turn that is due
func (h *Handler) GetBattle(
	ctx context.Context,
	req *GetBattleRequest,
) (*GetBattleResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.BattleID == "" {
		return nil, status.Error(codes.InvalidArgument, "battle_id is required")
	}

	output, err := h.combatService.GetBattle(ctx, &combat.GetBattleInput{
		PlayerID: req.PlayerID,
		BattleID: req.BattleID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetBattleResponse{Battle: output.Battle}, nil
}

// LevelUp spends XP on one level
func (h *Handler) LevelUp(
	ctx context.Context,
	req *LevelUpRequest,
) (*LevelUpResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.OwnedID == "" {
		return nil, status.Error(codes.InvalidArgument, "owned_id is required")
	}

	output, err := h.growthService.LevelUp(ctx, &growth.LevelUpInput{
		PlayerID: req.PlayerID,
		OwnedID:  req.OwnedID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LevelUpResponse{
		Entity:         output.Entity,
		NextRequiredXP: output.NextRequiredXP,
	}, nil
}

// UpgradeStat buys one stat point
func (h *Handler) UpgradeStat(
	ctx context.Context,
	req *UpgradeStatRequest,
) (*UpgradeStatResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.OwnedID == "" {
		return nil, status.Error(codes.InvalidArgument, "owned_id is required")
	}
	stat := entities.StatName(strings.ToLower(req.Stat))
	if !stat.Valid() {
		return nil, status.Errorf(codes.InvalidArgument, "unknown stat %q", req.Stat)
	}

	output, err := h.growthService.UpgradeStat(ctx, &growth.UpgradeStatInput{
		PlayerID: req.PlayerID,
		OwnedID:  req.OwnedID,
		Stat:     stat,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpgradeStatResponse{
		Entity: output.Entity,
		Player: output.Player,
		Cost:   output.Cost,
	}, nil
}

// Train earns training points
func (h *Handler) Train(
	ctx context.Context,
	req *TrainRequest,
) (*TrainResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	output, err := h.growthService.Train(ctx, &growth.TrainInput{
		PlayerID: req.PlayerID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &TrainResponse{
		Player:  output.Player,
		Spawned: output.Spawned,
	}, nil
}

// ClaimBonus claims a live bonus target
func (h *Handler) ClaimBonus(
	ctx context.Context,
	req *ClaimBonusRequest,
) (*ClaimBonusResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.BonusID == "" {
		return nil, status.Error(codes.InvalidArgument, "bonus_id is required")
	}

	output, err := h.growthService.ClaimBonus(ctx, &growth.ClaimBonusInput{
		PlayerID: req.PlayerID,
		BonusID:  req.BonusID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClaimBonusResponse{
		Player:  output.Player,
		Awarded: output.Awarded,
	}, nil
}

// ListOwnedEntities lists the player's entities
func (h *Handler) ListOwnedEntities(
	ctx context.Context,
	req *ListOwnedEntitiesRequest,
) (*ListOwnedEntitiesResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	output, err := h.collectionService.ListOwnedEntities(ctx, &collection.ListOwnedEntitiesInput{
		PlayerID: req.PlayerID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListOwnedEntitiesResponse{
		Entities:       output.Entities,
		ActiveEntityID: output.ActiveEntityID,
	}, nil
}

// SetActiveEntity picks the entity used in battle
func (h *Handler) SetActiveEntity(
	ctx context.Context,
	req *SetActiveEntityRequest,
) (*SetActiveEntityResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.OwnedID == "" {
		return nil, status.Error(codes.InvalidArgument, "owned_id is required")
	}

	output, err := h.collectionService.SetActiveEntity(ctx, &collection.SetActiveEntityInput{
		PlayerID: req.PlayerID,
		OwnedID:  req.OwnedID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetActiveEntityResponse{Player: output.Player}, nil
}

// GetArchive lists every species with the player's discovery status
func (h *Handler) GetArchive(
	ctx context.Context,
	req *GetArchiveRequest,
) (*GetArchiveResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	element := entities.Element(strings.ToLower(req.Element))
	if element != "" && !element.Valid() {
		return nil, status.Errorf(codes.InvalidArgument, "unknown element %q", req.Element)
	}
	rarity := entities.Rarity(strings.ToLower(req.Rarity))
	if rarity != "" && !rarity.Valid() {
		return nil, status.Errorf(codes.InvalidArgument, "unknown rarity %q", req.Rarity)
	}

	output, err := h.collectionService.GetArchive(ctx, &collection.GetArchiveInput{
		PlayerID: req.PlayerID,
		Element:  element,
		Rarity:   rarity,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	entries := make([]*ArchiveEntry, 0, len(output.Entries))
	for _, view := range output.Entries {
		entries = append(entries, convertArchiveView(view))
	}

	return &GetArchiveResponse{
		Entries:     entries,
		Discovered:  output.Discovered,
		Encountered: output.Encountered,
		Total:       output.Total,
	}, nil
}

// convertArchiveView hides what the player has not discovered yet
func convertArchiveView(view *collection.ArchiveView) *ArchiveEntry {
	entry := &ArchiveEntry{Status: view.Status}
	if view.Master == nil {
		return entry
	}
	entry.EntityID = view.Master.ID

	switch view.Status {
	case entities.ArchiveOpen:
		entry.Element = view.Master.Element
		entry.ImageID = view.Master.ImageID
		entry.Master = view.Master
	case entities.ArchiveClose:
		entry.Element = view.Master.Element
		entry.ImageID = view.Master.ImageID
	}

	return entry
}

// GetPlayer reads the player's session
func (h *Handler) GetPlayer(
	ctx context.Context,
	req *GetPlayerRequest,
) (*GetPlayerResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	output, err := h.collectionService.GetPlayer(ctx, &collection.GetPlayerInput{
		PlayerID: req.PlayerID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetPlayerResponse{Player: output.Player}, nil
}
