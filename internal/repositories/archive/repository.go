// Package archive provides the interface for per-player discovery records
package archive

//go:generate mockgen -destination=mock/mock_repository.go -package=archivemock github.com/KirkDiggler/entity-arena/internal/repositories/archive Repository

import (
	"context"

	"github.com/KirkDiggler/entity-arena/internal/entities"
)

// Repository defines the interface for archive persistence
type Repository interface {
	// Upsert advances a (player, species) entry. A write that would not move the status
	// forward is accepted and ignored, so an open entry is never downgraded.
	// Returns errors.InvalidArgument for an empty player, a non positive id or an
	// unknown or none status
	// Returns errors.Internal for storage failures
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)

	// Get returns the entry for one species; a species never seen reports status none
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByPlayerID returns every persisted entry for a player ordered by species id
	// Returns errors.InvalidArgument for empty player IDs
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// UpsertInput defines the input for advancing an archive entry
type UpsertInput struct {
	PlayerID string
	EntityID int
	Status   entities.ArchiveStatus
}

// UpsertOutput reports the stored entry and whether this write changed it
type UpsertOutput struct {
	Entry   *entities.ArchiveEntry
	Changed bool
}

// GetInput defines the input for getting an archive entry
type GetInput struct {
	PlayerID string
	EntityID int
}

// GetOutput defines the output for getting an archive entry
type GetOutput struct {
	Entry *entities.ArchiveEntry
}

// ListByPlayerIDInput defines the input for listing a player's archive
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's archive
type ListByPlayerIDOutput struct {
	Entries []*entities.ArchiveEntry
}
