package engine

import (
	"github.com/KirkDiggler/entity-arena/internal/entities"
)

const (
	// MaxEncounterAttempts bounds how many entity picks a single encounter may try
	MaxEncounterAttempts = 50
	// MaxStarterAttempts bounds the duplicate rejections allowed per starter slot
	MaxStarterAttempts = 50
	// StarterCount is how many starters are offered per generation
	StarterCount = 3
	// BasisPoints is the resolution of every weight and rate table (100.00%)
	BasisPoints = 10000
)

// DefaultRarityWeights reproduce 80/19/0.99/0.01 and 50/30/15/5
var DefaultRarityWeights = entities.RarityWeights{
	Standard: entities.RarityTable{Normal: 8000, Rare: 1900, Unique: 99, Legend: 1},
	Chaos:    entities.RarityTable{Normal: 5000, Rare: 3000, Unique: 1500, Legend: 500},
}

// DefaultCaptureRates are the capture tables in basis points
var DefaultCaptureRates = entities.CaptureRates{
	Standard: entities.RarityTable{Normal: 8000, Rare: 5000, Unique: 2500, Legend: 500},
	Chaos:    entities.RarityTable{Normal: 9000, Rare: 6500, Unique: 4000, Legend: 1500},
}

// Encounter is a species paired with one concrete stat roll
type Encounter struct {
	Master *entities.EntityMaster
	Stats  entities.Stats
}

// GenerateEncounterInput selects the roster and map to draw from
type GenerateEncounterInput struct {
	Roster []*entities.EntityMaster
	Map    *entities.Map
}

// GenerateEncounterOutput carries the wild encounter and how many picks it took
type GenerateEncounterOutput struct {
	Encounter *Encounter
	Rarity    entities.Rarity
	Attempts  int
}

// GenerateStartersInput selects the roster and the number of offers
type GenerateStartersInput struct {
	Roster []*entities.EntityMaster
	Count  int
}

// GenerateStartersOutput may hold fewer than Count starters
type GenerateStartersOutput struct {
	Starters []*Encounter
	Dropped  int
}

// AttemptCaptureInput identifies the defeated species and where it was fought
type AttemptCaptureInput struct {
	Master *entities.EntityMaster
	Map    *entities.Map
}

// AttemptCaptureOutput reports the roll against the applied rate
type AttemptCaptureOutput struct {
	Captured bool
	// RateBP is the success rate used, in basis points
	RateBP int
	// Roll is the 0-based draw compared against RateBP
	Roll int
}

// MapProgress is a map with the player's completion and unlock state
type MapProgress struct {
	Map        *entities.Map
	Completion int
	Unlocked   bool
}
