package testutils

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

var (
	_ dice.Roller = (*ScriptedRoller)(nil)
	_ dice.Roller = (*SeededRoller)(nil)
)

// ScriptedRoller returns a fixed sequence of rolls and records the die sizes asked for.
// It errors when the script runs out or a scripted value does not fit the die.
type ScriptedRoller struct {
	mu     sync.Mutex
	rolls  []int
	next   int
	Sizes  []int
	Repeat bool
}

// NewScriptedRoller creates a roller that plays rolls in order
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sizes = append(r.Sizes, size)

	if r.next >= len(r.rolls) {
		if !r.Repeat || len(r.rolls) == 0 {
			return 0, fmt.Errorf("scripted roller exhausted after %d rolls", r.next)
		}
		r.next = 0
	}

	v := r.rolls[r.next]
	r.next++

	if v < 1 || v > size {
		return 0, fmt.Errorf("scripted roll %d does not fit d%d", v, size)
	}
	return v, nil
}

// RollN returns count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Remaining is how many scripted rolls are left
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rolls) - r.next
}

// SeededRoller is a reproducible pseudo-random roller for distribution tests
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRoller creates a roller from a fixed seed
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns a value in 1..size
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(size) + 1, nil
}

// RollN returns count values in 1..size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
