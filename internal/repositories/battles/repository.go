// Package battles provides storage for battles in progress and recently finished
package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesmock github.com/KirkDiggler/entity-arena/internal/repositories/battles Repository

import (
	"context"

	"github.com/KirkDiggler/entity-arena/internal/battle"
)

// Repository defines the interface for battle persistence
type Repository interface {
	// Save writes the battle and refreshes its expiry
	// Returns errors.InvalidArgument for nil battles or empty IDs
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a battle
	// Returns errors.NotFound if the battle does not exist or has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// SaveInput defines the input for saving a battle
type SaveInput struct {
	Battle *battle.Battle
}

// SaveOutput defines the output for saving a battle
type SaveOutput struct {
	Battle *battle.Battle
}

// GetInput defines the input for getting a battle
type GetInput struct {
	BattleID string
}

// GetOutput defines the output for getting a battle
type GetOutput struct {
	Battle *battle.Battle
}
