package collection

import (
	"github.com/KirkDiggler/entity-arena/internal/engine"
	"github.com/KirkDiggler/entity-arena/internal/entities"
)

// GetPlayerInput reads a player's session
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayerOutput carries the session; a new player gets an empty unsaved one
type GetPlayerOutput struct {
	Player *entities.PlayerSession
}

// ListOwnedEntitiesInput lists a player's entities
type ListOwnedEntitiesInput struct {
	PlayerID string
}

// ListOwnedEntitiesOutput holds entities newest first
type ListOwnedEntitiesOutput struct {
	Entities       []*entities.OwnedEntity
	ActiveEntityID string
}

// SetActiveEntityInput picks the entity used in battle
type SetActiveEntityInput struct {
	PlayerID string
	OwnedID  string
}

// SetActiveEntityOutput carries the updated player
type SetActiveEntityOutput struct {
	Player *entities.PlayerSession
}

// GetArchiveInput filters the archive view. Empty filters match everything.
type GetArchiveInput struct {
	PlayerID string
	Element  entities.Element
	Rarity   entities.Rarity
}

// ArchiveView is one species as the player sees it
type ArchiveView struct {
	Master *entities.EntityMaster
	Status entities.ArchiveStatus
}

// GetArchiveOutput lists every matching species with discovery counts
type GetArchiveOutput struct {
	Entries []*ArchiveView
	// Discovered counts open entries
	Discovered int
	// Encountered counts close and open entries
	Encountered int
	Total       int
}

// ListMapsInput lists maps with the player's progress
type ListMapsInput struct {
	PlayerID string
}

// ListMapsOutput holds maps in unlock order
type ListMapsOutput struct {
	Maps []*engine.MapProgress
}
