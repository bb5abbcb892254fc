package v1alpha1

import (
	"github.com/KirkDiggler/entity-arena/internal/battle"
	"github.com/KirkDiggler/entity-arena/internal/entities"
)

// StarterOffers are the pending starter choices
type StarterOffers struct {
	Choices     []entities.StarterChoice `json:"choices"`
	RerollsUsed int                      `json:"rerolls_used"`
	RerollsLeft int                      `json:"rerolls_left"`
}

// GenerateStartersRequest asks for the starter offers
type GenerateStartersRequest struct {
	PlayerID string `json:"player_id"`
}

// GenerateStartersResponse carries the starter offers
type GenerateStartersResponse struct {
	Offers *StarterOffers `json:"offers"`
}

// RerollStartersRequest replaces the starter offers
type RerollStartersRequest struct {
	PlayerID string `json:"player_id"`
}

// RerollStartersResponse carries the new offers
type RerollStartersResponse struct {
	Offers *StarterOffers `json:"offers"`
}

// SelectStarterRequest picks one offer
type SelectStarterRequest struct {
	PlayerID string `json:"player_id"`
	EntityID int    `json:"entity_id"`
}

// SelectStarterResponse carries the first owned entity
type SelectStarterResponse struct {
	Entity *entities.OwnedEntity   `json:"entity"`
	Player *entities.PlayerSession `json:"player"`
}

// MapProgress is a map with the player's completion
type MapProgress struct {
	Map        *entities.Map `json:"map"`
	Completion int           `json:"completion"`
	Unlocked   bool          `json:"unlocked"`
}

// ListMapsRequest lists maps
type ListMapsRequest struct {
	PlayerID string `json:"player_id"`
}

// ListMapsResponse holds maps in unlock order
type ListMapsResponse struct {
	Maps []*MapProgress `json:"maps"`
}

// StartBattleRequest starts a battle on a map
type StartBattleRequest struct {
	PlayerID string `json:"player_id"`
	MapID    string `json:"map_id"`
}

// StartBattleResponse carries the new battle
type StartBattleResponse struct {
	Battle *battle.Battle `json:"battle"`
}

// AttackRequest is the attack action
type AttackRequest struct {
	PlayerID string `json:"player_id"`
	BattleID string `json:"battle_id"`
}

// AttackResponse reports the battle after the attack
type AttackResponse struct {
	Battle   *battle.Battle        `json:"battle"`
	Applied  bool                  `json:"applied"`
	Captured *entities.OwnedEntity `json:"captured,omitempty"`
}

// EscapeRequest is the escape action
type EscapeRequest struct {
	PlayerID string `json:"player_id"`
	BattleID string `json:"battle_id"`
}

// EscapeResponse reports the battle after the escape
type EscapeResponse struct {
	Battle  *battle.Battle `json:"battle"`
	Applied bool           `json:"applied"`
}

// GetBattleRequest reads a battle
type GetBattleRequest struct {
	PlayerID string `json:"player_id"`
	BattleID string `json:"battle_id"`
}

// GetBattleResponse carries the battle
type GetBattleResponse struct {
	Battle *battle.Battle `json:"battle"`
}

// LevelUpRequest levels an owned entity
type LevelUpRequest struct {
	PlayerID string `json:"player_id"`
	OwnedID  string `json:"owned_id"`
}

// LevelUpResponse carries the leveled entity
type LevelUpResponse struct {
	Entity         *entities.OwnedEntity `json:"entity"`
	NextRequiredXP int                   `json:"next_required_xp"`
}

// UpgradeStatRequest buys a stat point
type UpgradeStatRequest struct {
	PlayerID string `json:"player_id"`
	OwnedID  string `json:"owned_id"`
	Stat     string `json:"stat"`
}

// UpgradeStatResponse carries the upgraded entity and balance
type UpgradeStatResponse struct {
	Entity *entities.OwnedEntity   `json:"entity"`
	Player *entities.PlayerSession `json:"player"`
	Cost   int                     `json:"cost"`
}

// TrainRequest is one training action
type TrainRequest struct {
	PlayerID string `json:"player_id"`
}

// TrainResponse carries the balance and any spawned bonus
type TrainResponse struct {
	Player  *entities.PlayerSession `json:"player"`
	Spawned *entities.BonusTarget   `json:"spawned,omitempty"`
}

// ClaimBonusRequest claims a bonus target
type ClaimBonusRequest struct {
	PlayerID string `json:"player_id"`
	BonusID  string `json:"bonus_id"`
}

// ClaimBonusResponse carries the balance
type ClaimBonusResponse struct {
	Player  *entities.PlayerSession `json:"player"`
	Awarded int                     `json:"awarded"`
}

// ListOwnedEntitiesRequest lists owned entities
type ListOwnedEntitiesRequest struct {
	PlayerID string `json:"player_id"`
}

// ListOwnedEntitiesResponse holds entities newest first
type ListOwnedEntitiesResponse struct {
	Entities       []*entities.OwnedEntity `json:"entities"`
	ActiveEntityID string                  `json:"active_entity_id"`
}

// SetActiveEntityRequest picks the battle entity
type SetActiveEntityRequest struct {
	PlayerID string `json:"player_id"`
	OwnedID  string `json:"owned_id"`
}

// SetActiveEntityResponse carries the player
type SetActiveEntityResponse struct {
	Player *entities.PlayerSession `json:"player"`
}

// ArchiveEntry is one species in the archive. Only open entries reveal the species;
// close entries show a silhouette.
type ArchiveEntry struct {
	EntityID int                    `json:"entity_id"`
	Status   entities.ArchiveStatus `json:"status"`
	Element  entities.Element       `json:"element,omitempty"`
	ImageID  int                    `json:"image_id,omitempty"`
	Master   *entities.EntityMaster `json:"master,omitempty"`
}

// GetArchiveRequest filters the archive
type GetArchiveRequest struct {
	PlayerID string `json:"player_id"`
	Element  string `json:"element,omitempty"`
	Rarity   string `json:"rarity,omitempty"`
}

// GetArchiveResponse lists species with counts
type GetArchiveResponse struct {
	Entries     []*ArchiveEntry `json:"entries"`
	Discovered  int             `json:"discovered"`
	Encountered int             `json:"encountered"`
	Total       int             `json:"total"`
}

// GetPlayerRequest reads a player
type GetPlayerRequest struct {
	PlayerID string `json:"player_id"`
}

// GetPlayerResponse carries the player
type GetPlayerResponse struct {
	Player *entities.PlayerSession `json:"player"`
}
