package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/entity-arena/internal/entities"
)

func TestStatsGetAndWith(t *testing.T) {
	stats := entities.Stats{HP: 50, Atk: 15, Def: 5, MAtk: 2, MDef: 1}

	for _, name := range entities.StatNames {
		v, ok := stats.Get(name)
		assert.True(t, ok, name)

		updated := stats.With(name, v+1)
		got, _ := updated.Get(name)
		assert.Equal(t, v+1, got, name)
	}

	_, ok := stats.Get("luck")
	assert.False(t, ok)
	assert.Equal(t, stats, stats.With("luck", 99))
}

func TestStatsAddAll(t *testing.T) {
	stats := entities.Stats{HP: 50, Atk: 15, Def: 5, MAtk: 0, MDef: 0}

	assert.Equal(t, entities.Stats{HP: 51, Atk: 16, Def: 6, MAtk: 1, MDef: 1}, stats.AddAll(1))
}

func TestStatsWithin(t *testing.T) {
	lo := entities.Stats{HP: 10, Atk: 1, Def: 1, MAtk: 0, MDef: 0}
	hi := entities.Stats{HP: 20, Atk: 5, Def: 5, MAtk: 3, MDef: 3}

	assert.True(t, lo.Within(lo, hi))
	assert.True(t, hi.Within(lo, hi))
	assert.False(t, hi.With(entities.StatAtk, 6).Within(lo, hi))
	assert.False(t, lo.With(entities.StatHP, 9).Within(lo, hi))
}

func TestIDRange(t *testing.T) {
	r := entities.IDRange{Min: 11, Max: 20}

	assert.True(t, r.Contains(11))
	assert.True(t, r.Contains(20))
	assert.False(t, r.Contains(21))
	assert.Equal(t, 10, r.Size())
	assert.Equal(t, 0, entities.IDRange{Min: 5, Max: 4}.Size())
}

func TestRarityTable(t *testing.T) {
	table := entities.RarityTable{Normal: 8000, Rare: 1900, Unique: 99, Legend: 1}

	assert.Equal(t, 10000, table.Total())
	assert.Equal(t, 99, table.For(entities.RarityUnique))
	assert.Equal(t, 0, table.For("mythic"))
}
