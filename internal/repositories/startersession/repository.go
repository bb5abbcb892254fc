// Package startersession provides storage for pending starter offers
package startersession

//go:generate mockgen -destination=mock/mock_repository.go -package=startersessionmock github.com/KirkDiggler/entity-arena/internal/repositories/startersession Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/entity-arena/internal/entities"
)

// Repository defines the interface for starter session persistence.
// Sessions expire on their own so abandoned offers do not linger.
type Repository interface {
	// Save stores the offers for a player, replacing any previous ones
	// Returns errors.InvalidArgument for nil sessions or empty IDs
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the pending offers
	// Returns errors.NotFound if none are pending or they expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the pending offers; deleting a missing session is not an error
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a starter session
type SaveInput struct {
	Session *entities.StarterSession
	// TTL overrides the repository default when non zero
	TTL time.Duration
}

// SaveOutput defines the output for saving a starter session
type SaveOutput struct {
	Session *entities.StarterSession
}

// GetInput defines the input for getting a starter session
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a starter session
type GetOutput struct {
	Session *entities.StarterSession
}

// DeleteInput defines the input for deleting a starter session
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput defines the output for deleting a starter session
type DeleteOutput struct{}
