package growth

import (
	"github.com/KirkDiggler/entity-arena/internal/entities"
)

// LevelUpInput levels one owned entity
type LevelUpInput struct {
	PlayerID string
	OwnedID  string
}

// LevelUpOutput carries the leveled entity
type LevelUpOutput struct {
	Entity *entities.OwnedEntity
	// NextRequiredXP is the XP needed for the following level
	NextRequiredXP int
}

// UpgradeStatInput buys one point of a stat
type UpgradeStatInput struct {
	PlayerID string
	OwnedID  string
	Stat     entities.StatName
}

// UpgradeStatOutput carries the upgraded entity and the remaining balance
type UpgradeStatOutput struct {
	Entity *entities.OwnedEntity
	Player *entities.PlayerSession
	// Cost is what the upgrade charged
	Cost int
}

// TrainInput is one training action
type TrainInput struct {
	PlayerID string
}

// TrainOutput carries the new balance and any bonus target that spawned
type TrainOutput struct {
	Player *entities.PlayerSession
	// Spawned is the bonus target created by this action, if any
	Spawned *entities.BonusTarget
}

// ClaimBonusInput claims a live bonus target
type ClaimBonusInput struct {
	PlayerID string
	BonusID  string
}

// ClaimBonusOutput carries the new balance
type ClaimBonusOutput struct {
	Player  *entities.PlayerSession
	Awarded int
}
