// Package owned provides the interface for owned entity persistence
package owned

//go:generate mockgen -destination=mock/mock_repository.go -package=ownedmock github.com/KirkDiggler/entity-arena/internal/repositories/owned Repository

import (
	"context"

	"github.com/KirkDiggler/entity-arena/internal/entities"
)

// Repository defines the interface for owned entity persistence
type Repository interface {
	// Create persists a freshly captured or selected entity
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if an entity with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an owned entity by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the entity doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing owned entity. Ownership cannot change.
	// Returns errors.NotFound if the entity doesn't exist
	// Returns errors.PermissionDenied if the player differs from the stored owner
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// CreditXP adds XP once per reference. Crediting the same reference again leaves
	// the entity unchanged and reports Applied as false.
	// Returns errors.InvalidArgument for empty IDs or references and negative amounts
	// Returns errors.NotFound if the entity doesn't exist
	CreditXP(ctx context.Context, input CreditXPInput) (*CreditXPOutput, error)

	// ListByPlayerID returns a player's entities, most recently acquired first
	// Returns errors.InvalidArgument for empty player IDs
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating an owned entity
type CreateInput struct {
	Entity *entities.OwnedEntity
}

// CreateOutput defines the output for creating an owned entity
type CreateOutput struct {
	Entity *entities.OwnedEntity
}

// GetInput defines the input for getting an owned entity
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an owned entity
type GetOutput struct {
	Entity *entities.OwnedEntity
}

// UpdateInput defines the input for updating an owned entity
type UpdateInput struct {
	Entity *entities.OwnedEntity
}

// UpdateOutput defines the output for updating an owned entity
type UpdateOutput struct {
	Entity *entities.OwnedEntity
}

// CreditXPInput defines the input for crediting XP
type CreditXPInput struct {
	ID string
	// Amount is the XP to add
	Amount int
	// Reference identifies the award, such as the battle that paid it
	Reference string
}

// CreditXPOutput defines the output for crediting XP
type CreditXPOutput struct {
	Entity *entities.OwnedEntity
	// Applied is false when the reference was already credited
	Applied bool
}

// ListByPlayerIDInput defines the input for listing a player's entities
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's entities
type ListByPlayerIDOutput struct {
	Entities []*entities.OwnedEntity
}
