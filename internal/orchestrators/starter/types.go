package starter

import (
	"github.com/KirkDiggler/entity-arena/internal/entities"
)

// GenerateStartersInput requests the starter offers for a player
type GenerateStartersInput struct {
	PlayerID string
}

// GenerateStartersOutput carries the pending offers
type GenerateStartersOutput struct {
	Session *entities.StarterSession
	// RerollsLeft is how many more times the offers can be replaced
	RerollsLeft int
}

// RerollStartersInput replaces the pending offers
type RerollStartersInput struct {
	PlayerID string
}

// RerollStartersOutput carries the new offers
type RerollStartersOutput struct {
	Session     *entities.StarterSession
	RerollsLeft int
}

// SelectStarterInput picks one of the pending offers
type SelectStarterInput struct {
	PlayerID string
	EntityID int
}

// SelectStarterOutput carries the new owned entity and the updated player
type SelectStarterOutput struct {
	Entity *entities.OwnedEntity
	Player *entities.PlayerSession
}
