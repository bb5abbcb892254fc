// Package engine defines the game rules: the randomized generators behind the Engine
// interface and the deterministic battle and progression formulas.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/entity-arena/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/entity-arena/internal/entities"
)

// Engine provides every randomized rule. Implementations own the random source.
type Engine interface {
	// Stat generation
	RollStats(min, max entities.Stats) (entities.Stats, error)

	// Rarity selection
	PickRarity(variant entities.TableVariant) (entities.Rarity, error)
	PickEntityOfRarity(
		roster []*entities.EntityMaster,
		tier entities.Rarity,
	) (*entities.EntityMaster, bool, error)

	// Encounters and starters
	GenerateEncounter(ctx context.Context, input *GenerateEncounterInput) (*GenerateEncounterOutput, error)
	GenerateStarters(ctx context.Context, input *GenerateStartersInput) (*GenerateStartersOutput, error)

	// Capture
	AttemptCapture(ctx context.Context, input *AttemptCaptureInput) (*AttemptCaptureOutput, error)

	// Training
	RollBonusSpawn(oneIn int) (bool, error)
}
