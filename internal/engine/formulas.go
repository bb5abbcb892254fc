package engine

import (
	"math"

	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
)

// CalculateDamage is physical plus magical overflow, never below 1
func CalculateDamage(attacker, defender entities.Stats) int {
	physical := max(0, attacker.Atk-defender.Def)
	magical := max(0, attacker.MAtk-defender.MDef)

	if total := physical + magical; total > 0 {
		return total
	}
	return 1
}

// RequiredXP is floor(100 * 1.2^(level-1)). Levels below 1 cost the same as level 1.
func RequiredXP(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(100 * math.Pow(1.2, float64(level-1))))
}

// AwardXP is floor(50 * enemyLevel * 1.1)
func AwardXP(enemyLevel int) int {
	if enemyLevel < 1 {
		return 0
	}
	return 50 * enemyLevel * 11 / 10
}

// StatUpgradeCost is the point price of raising a stat currently at value by one
func StatUpgradeCost(value int) int {
	return value * 5
}

// LevelUp spends the XP for the entity's current level and raises every stat by one.
// Only one level is gained per call; leftover XP carries forward.
// The input is never modified.
func LevelUp(entity *entities.OwnedEntity) (*entities.OwnedEntity, error) {
	if entity == nil {
		return nil, errors.InvalidArgument("entity is required")
	}

	required := RequiredXP(entity.Level)
	if entity.XP < required {
		return nil, errors.Insufficient("xp", required, entity.XP).
			WithMeta("entity_id", entity.ID)
	}

	leveled := entity.Clone()
	leveled.Level++
	leveled.XP -= required
	leveled.Stats = leveled.Stats.AddAll(1)

	return leveled, nil
}

// UpgradeStat buys +1 on a single stat. It returns the upgraded copy and the remaining points.
func UpgradeStat(
	entity *entities.OwnedEntity,
	stat entities.StatName,
	points int,
) (*entities.OwnedEntity, int, error) {
	if entity == nil {
		return nil, points, errors.InvalidArgument("entity is required")
	}

	current, ok := entity.Stats.Get(stat)
	if !ok {
		return nil, points, errors.InvalidArgumentf("unknown stat %q", stat)
	}

	cost := StatUpgradeCost(current)
	if points < cost {
		return nil, points, errors.Insufficient("points", cost, points).
			WithMeta("stat", string(stat))
	}

	upgraded := entity.Clone()
	upgraded.Stats = upgraded.Stats.With(stat, current+1)

	return upgraded, points - cost, nil
}

// MapCompletion is the floored percent of a map's species the player has opened
func MapCompletion(m *entities.Map, archive []*entities.ArchiveEntry) int {
	if m == nil || m.Range.Size() == 0 {
		return 0
	}

	seen := make(map[int]struct{})
	for _, entry := range archive {
		if entry == nil || entry.Status != entities.ArchiveOpen || !m.Contains(entry.EntityID) {
			continue
		}
		seen[entry.EntityID] = struct{}{}
	}

	return len(seen) * 100 / m.Range.Size()
}

// MapProgression reports completion and unlock state for maps in order.
// A map unlocks when the previous map's completion reaches its requirement.
func MapProgression(maps []*entities.Map, archive []*entities.ArchiveEntry) []*MapProgress {
	result := make([]*MapProgress, 0, len(maps))

	previous := 0
	for i, m := range maps {
		completion := MapCompletion(m, archive)

		unlocked := m.UnlockRequirement <= 0
		if !unlocked && i > 0 {
			unlocked = previous >= m.UnlockRequirement
		}

		result = append(result, &MapProgress{
			Map:        m,
			Completion: completion,
			Unlocked:   unlocked,
		})
		previous = completion
	}

	return result
}
