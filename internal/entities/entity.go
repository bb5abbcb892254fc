// Package entities holds the domain model shared by the engine, the battle state machine,
// the repositories and the gRPC surface.
package entities

import (
	"strconv"
	"time"
)

// Rarity is a spawn and capture tier
type Rarity string

// Rarity tiers, most common first
const (
	RarityNormal Rarity = "normal"
	RarityRare   Rarity = "rare"
	RarityUnique Rarity = "unique"
	RarityLegend Rarity = "legend"
)

// Rarities lists the tiers from most common to rarest
var Rarities = []Rarity{RarityNormal, RarityRare, RarityUnique, RarityLegend}

// Valid reports whether r is a known tier
func (r Rarity) Valid() bool {
	switch r {
	case RarityNormal, RarityRare, RarityUnique, RarityLegend:
		return true
	default:
		return false
	}
}

// Element is an entity's elemental tag
type Element string

// Elements, one per map
const (
	ElementWater    Element = "water"
	ElementFire     Element = "fire"
	ElementForest   Element = "forest"
	ElementElectric Element = "electric"
	ElementStone    Element = "stone"
	ElementChaos    Element = "chaos"
)

// Valid reports whether e is a known element
func (e Element) Valid() bool {
	switch e {
	case ElementWater, ElementFire, ElementForest, ElementElectric, ElementStone, ElementChaos:
		return true
	default:
		return false
	}
}

// AttackType is flavor for how an entity attacks. Damage always uses both channels.
type AttackType string

// Attack types
const (
	AttackPhysical AttackType = "physical"
	AttackMagic    AttackType = "magic"
)

// Entity type identifiers reported through core.Entity
const (
	EntityTypeMaster = "entity_master"
	EntityTypeOwned  = "owned_entity"
)

// EntityMaster is an immutable species record from the content store
type EntityMaster struct {
	ID          int        `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	DisplayName string     `json:"display_name" yaml:"display_name"`
	Element     Element    `json:"element" yaml:"element"`
	AttackType  AttackType `json:"attack_type" yaml:"attack_type"`
	Rarity      Rarity     `json:"rarity" yaml:"rarity"`
	MinStats    Stats      `json:"min_stats" yaml:"min_stats"`
	MaxStats    Stats      `json:"max_stats" yaml:"max_stats"`
	ImageID     int        `json:"image_id" yaml:"image_id"`
}

// GetID implements core.Entity
func (e *EntityMaster) GetID() string {
	return strconv.Itoa(e.ID)
}

// GetType implements core.Entity
func (e *EntityMaster) GetType() string {
	return EntityTypeMaster
}

// OwnedEntity is a player's individual instance of a species
type OwnedEntity struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"player_id"`
	EntityID   int       `json:"entity_id"`
	Level      int       `json:"current_level"`
	Stats      Stats     `json:"current_stats"`
	XP         int       `json:"current_xp"`
	CurrentHP  int       `json:"current_hp"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// GetID implements core.Entity
func (e *OwnedEntity) GetID() string {
	return e.ID
}

// GetType implements core.Entity
func (e *OwnedEntity) GetType() string {
	return EntityTypeOwned
}

// Clone returns a copy that can be staged without touching the original
func (e *OwnedEntity) Clone() *OwnedEntity {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}
