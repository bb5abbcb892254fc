package testutils

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/entity-arena/internal/entities"
)

// Fixture ids shared across package tests
const (
	TestPlayerID      = "player-test-001"
	TestOwnedEntityID = "owned-test-001"
	TestBattleID      = "battle_test_001"
)

// TestTime is the fixed instant fixtures are stamped with
var TestTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// CreateTestEntityMaster creates a species with fixed bounds
func CreateTestEntityMaster(id int, rarity entities.Rarity) *entities.EntityMaster {
	return &entities.EntityMaster{
		ID:          id,
		Name:        fmt.Sprintf("test_entity_%d", id),
		DisplayName: fmt.Sprintf("Test Entity %d", id),
		Element:     entities.ElementWater,
		AttackType:  entities.AttackPhysical,
		Rarity:      rarity,
		MinStats:    entities.Stats{HP: 20, Atk: 5, Def: 2, MAtk: 0, MDef: 0},
		MaxStats:    entities.Stats{HP: 30, Atk: 8, Def: 4, MAtk: 2, MDef: 2},
		ImageID:     id,
	}
}

// CreateTestRoster creates ids first..last where every fifth id is rare and the last is unique
func CreateTestRoster(first, last int) []*entities.EntityMaster {
	roster := make([]*entities.EntityMaster, 0, last-first+1)
	for id := first; id <= last; id++ {
		rarity := entities.RarityNormal
		switch {
		case id == last:
			rarity = entities.RarityUnique
		case id%5 == 0:
			rarity = entities.RarityRare
		}
		roster = append(roster, CreateTestEntityMaster(id, rarity))
	}
	return roster
}

// CreateTestMaps creates a two map chain plus a chaos map
func CreateTestMaps() []*entities.Map {
	return []*entities.Map{
		{
			ID:          "water",
			DisplayName: "Water",
			Range:       entities.IDRange{Min: 1, Max: 10},
			Variant:     entities.VariantStandard,
		},
		{
			ID:                "fire",
			DisplayName:       "Fire",
			Range:             entities.IDRange{Min: 11, Max: 20},
			Variant:           entities.VariantStandard,
			UnlockRequirement: 80,
		},
		{
			ID:                "chaos",
			DisplayName:       "Chaos",
			Range:             entities.IDRange{Min: 1, Max: 20},
			Variant:           entities.VariantChaos,
			UnlockRequirement: 80,
		},
	}
}

// CreateTestOwnedEntity creates a level 1 owned entity with the scenario player stats
func CreateTestOwnedEntity(playerID string) *entities.OwnedEntity {
	stats := entities.Stats{HP: 50, Atk: 15, Def: 5, MAtk: 0, MDef: 0}
	return &entities.OwnedEntity{
		ID:         TestOwnedEntityID,
		PlayerID:   playerID,
		EntityID:   1,
		Level:      1,
		Stats:      stats,
		XP:         0,
		CurrentHP:  stats.HP,
		AcquiredAt: TestTime,
	}
}

// CreateTestPlayerSession creates a session that already owns the test entity
func CreateTestPlayerSession(playerID string) *entities.PlayerSession {
	return &entities.PlayerSession{
		PlayerID:       playerID,
		ActiveEntityID: TestOwnedEntityID,
		HasStarter:     true,
		CreatedAt:      TestTime,
		UpdatedAt:      TestTime,
	}
}
