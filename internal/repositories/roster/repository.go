// Package roster provides the interface for species master data persistence
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rostermock github.com/KirkDiggler/entity-arena/internal/repositories/roster Repository

import (
	"context"

	"github.com/KirkDiggler/entity-arena/internal/entities"
)

// Repository defines the interface for roster persistence
type Repository interface {
	// Upsert writes species records, replacing any with the same id
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)

	// List returns every species ordered by id
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get retrieves one species
	// Returns errors.NotFound if the species doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// UpsertInput defines the input for writing species
type UpsertInput struct {
	Masters []*entities.EntityMaster
}

// UpsertOutput defines the output for writing species
type UpsertOutput struct {
	Count int
}

// ListInput defines the input for listing the roster
type ListInput struct{}

// ListOutput defines the output for listing the roster
type ListOutput struct {
	Masters []*entities.EntityMaster
}

// GetInput defines the input for getting a species
type GetInput struct {
	ID int
}

// GetOutput defines the output for getting a species
type GetOutput struct {
	Master *entities.EntityMaster
}
