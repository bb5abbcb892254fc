// Package player provides the interface for player session persistence
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/KirkDiggler/entity-arena/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/entity-arena/internal/entities"
)

// Repository defines the interface for player session persistence
type Repository interface {
	// Get retrieves a player session
	// Returns errors.NotFound if the player has never been saved
	// Returns errors.InvalidArgument for empty IDs
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save writes the whole session, creating it on first write
	// Returns errors.InvalidArgument for nil sessions or empty IDs
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput defines the input for getting a player session
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a player session
type GetOutput struct {
	Player *entities.PlayerSession
}

// SaveInput defines the input for saving a player session
type SaveInput struct {
	Player *entities.PlayerSession
}

// SaveOutput defines the output for saving a player session
type SaveOutput struct {
	Player *entities.PlayerSession
}
