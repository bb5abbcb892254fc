package combat

import (
	"github.com/KirkDiggler/entity-arena/internal/battle"
	"github.com/KirkDiggler/entity-arena/internal/entities"
)

// StartBattleInput starts a battle on a map with the player's active entity
type StartBattleInput struct {
	PlayerID string
	MapID    string
}

// StartBattleOutput carries the new battle
type StartBattleOutput struct {
	Battle *battle.Battle
}

// AttackInput is the player's attack action
type AttackInput struct {
	PlayerID string
	BattleID string
}

// AttackOutput reports the battle after the action
type AttackOutput struct {
	Battle *battle.Battle
	// Applied is false when the battle was not on the player's turn
	Applied bool
	// Captured is the new owned entity when the win ended in a capture
	Captured *entities.OwnedEntity
}

// EscapeInput is the player's escape action
type EscapeInput struct {
	PlayerID string
	BattleID string
}

// EscapeOutput reports the battle after the action
type EscapeOutput struct {
	Battle  *battle.Battle
	Applied bool
}

// GetBattleInput reads a battle
type GetBattleInput struct {
	PlayerID string
	BattleID string
}

// GetBattleOutput carries the battle with any due enemy turn resolved
type GetBattleOutput struct {
	Battle *battle.Battle
}
