package battle

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/entity-arena/internal/engine"
	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
)

// State is a battle state
type State string

// Battle states
const (
	StateInitializing State = "initializing"
	StatePlayerTurn   State = "player_turn"
	StateEnemyTurn    State = "enemy_turn"
	StateWon          State = "won"
	StateLost         State = "lost"
	StateEscaped      State = "escaped"
)

// Terminal reports whether no further action is accepted
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost || s == StateEscaped
}

// WildEnemyLevel is the level every wild enemy fights at
const WildEnemyLevel = 1

// EncounterGenerator produces the enemy when a battle starts
type EncounterGenerator interface {
	GenerateEncounter(ctx context.Context, input *engine.GenerateEncounterInput) (*engine.GenerateEncounterOutput, error)
}

// CaptureRoll decides whether the defeated enemy is captured
type CaptureRoll func() (bool, error)

// Combatant is one side of a battle
type Combatant struct {
	Name      string          `json:"name"`
	EntityID  int             `json:"entity_id"`
	OwnedID   string          `json:"owned_id,omitempty"`
	Rarity    entities.Rarity `json:"rarity,omitempty"`
	Level     int             `json:"level"`
	Stats     entities.Stats  `json:"stats"`
	CurrentHP int             `json:"current_hp"`
}

// Outcome is reported once a battle reaches a terminal state
type Outcome struct {
	XPAwarded        int  `json:"xp_awarded"`
	CaptureAttempted bool `json:"capture_attempted"`
	Captured         bool `json:"captured"`
	// CapturedOwnedID is reserved for the captured entity before any reward is written
	CapturedOwnedID string `json:"captured_owned_id,omitempty"`
	// PayoutPending stays set until every reward of a won battle is stored
	PayoutPending bool `json:"payout_pending,omitempty"`
}

// Battle is a single fight between a player's entity and a wild enemy
type Battle struct {
	ID          string     `json:"id"`
	PlayerID    string     `json:"player_id"`
	MapID       string     `json:"map_id"`
	State       State      `json:"state"`
	Round       int        `json:"round"`
	Player      Combatant  `json:"player"`
	Enemy       Combatant  `json:"enemy"`
	Log         []LogEntry `json:"log"`
	Outcome     *Outcome   `json:"outcome,omitempty"`
	EnemyTurnAt time.Time  `json:"enemy_turn_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// StartInput describes a new battle
type StartInput struct {
	ID        string
	Player    *entities.OwnedEntity
	Roster    []*entities.EntityMaster
	Map       *entities.Map
	Generator EncounterGenerator
	Now       time.Time
}

// Validate checks the start input
func (i *StartInput) Validate() error {
	if i == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", i.ID, vb)
	if i.Player == nil {
		vb.RequiredField("player")
	}
	if i.Map == nil {
		vb.RequiredField("map")
	}
	if i.Generator == nil {
		vb.RequiredField("generator")
	}
	return vb.Build()
}

// Start runs the Initializing state: the enemy is generated for the map, both sides
// start at full HP and the battle opens on the player's turn.
func Start(ctx context.Context, input *StartInput) (*Battle, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b := &Battle{
		ID:        input.ID,
		PlayerID:  input.Player.PlayerID,
		MapID:     input.Map.ID,
		State:     StateInitializing,
		CreatedAt: input.Now,
		UpdatedAt: input.Now,
	}

	out, err := input.Generator.GenerateEncounter(ctx, &engine.GenerateEncounterInput{
		Roster: input.Roster,
		Map:    input.Map,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to generate enemy for map %s", input.Map.ID)
	}

	master := out.Encounter.Master
	b.Enemy = Combatant{
		Name:      master.DisplayName,
		EntityID:  master.ID,
		Rarity:    master.Rarity,
		Level:     WildEnemyLevel,
		Stats:     out.Encounter.Stats,
		CurrentHP: out.Encounter.Stats.HP,
	}
	b.Player = Combatant{
		Name:      fmt.Sprintf("Lv.%d #%d", input.Player.Level, input.Player.EntityID),
		EntityID:  input.Player.EntityID,
		OwnedID:   input.Player.ID,
		Level:     input.Player.Level,
		Stats:     input.Player.Stats,
		CurrentHP: input.Player.Stats.HP,
	}

	b.State = StatePlayerTurn
	b.Round = 1
	b.Log = appendLog(b.Log, LogEntry{
		Type:    LogBattleStart,
		Message: fmt.Sprintf("A wild %s appeared!", b.Enemy.Name),
	})

	return b, nil
}

// PlayerAttack resolves the player's attack. It returns false without changing anything
// unless the battle is on the player's turn. When the enemy falls the battle is won,
// XP is awarded and capture is rolled.
func (b *Battle) PlayerAttack(capture CaptureRoll) (bool, error) {
	if b.State != StatePlayerTurn {
		return false, nil
	}

	damage := engine.CalculateDamage(b.Player.Stats, b.Enemy.Stats)
	b.Enemy.CurrentHP = max(0, b.Enemy.CurrentHP-damage)
	b.Log = appendLog(b.Log, LogEntry{
		Type:    LogPlayerAttack,
		Message: fmt.Sprintf("You dealt %d damage to %s.", damage, b.Enemy.Name),
		Damage:  damage,
	})

	if b.Enemy.CurrentHP > 0 {
		b.State = StateEnemyTurn
		return true, nil
	}

	return true, b.win(capture)
}

func (b *Battle) win(capture CaptureRoll) error {
	b.State = StateWon
	b.Outcome = &Outcome{XPAwarded: engine.AwardXP(b.Enemy.Level)}
	b.Log = appendLog(b.Log, LogEntry{
		Type:    LogPlayerWin,
		Message: fmt.Sprintf("Victory! Gained %d XP.", b.Outcome.XPAwarded),
	})

	if capture == nil {
		return nil
	}

	captured, err := capture()
	if err != nil {
		return errors.Wrap(err, "failed to resolve capture")
	}

	b.Outcome.CaptureAttempted = true
	b.Outcome.Captured = captured

	message := fmt.Sprintf("%s got away.", b.Enemy.Name)
	if captured {
		message = fmt.Sprintf("Captured %s!", b.Enemy.Name)
	}
	b.Log = appendLog(b.Log, LogEntry{Type: LogCapture, Message: message})

	return nil
}

// EnemyAttack resolves the enemy's reply. It returns false unless the battle is on the
// enemy's turn.
func (b *Battle) EnemyAttack() bool {
	if b.State != StateEnemyTurn {
		return false
	}

	damage := engine.CalculateDamage(b.Enemy.Stats, b.Player.Stats)
	b.Player.CurrentHP = max(0, b.Player.CurrentHP-damage)
	b.Log = appendLog(b.Log, LogEntry{
		Type:    LogEnemyAttack,
		Message: fmt.Sprintf("%s dealt %d damage.", b.Enemy.Name, damage),
		Damage:  damage,
	})
	b.EnemyTurnAt = time.Time{}

	if b.Player.CurrentHP > 0 {
		b.State = StatePlayerTurn
		b.Round++
		return true
	}

	b.State = StateLost
	b.Outcome = &Outcome{}
	b.Log = appendLog(b.Log, LogEntry{Type: LogEnemyWin, Message: "Defeated..."})

	return true
}

// Escape ends the battle on the player's turn with no XP
func (b *Battle) Escape() bool {
	if b.State != StatePlayerTurn {
		return false
	}

	b.State = StateEscaped
	b.Outcome = &Outcome{}
	b.Log = appendLog(b.Log, LogEntry{Type: LogEscape, Message: "Got away safely!"})

	return true
}

// OwesPayout reports whether the battle was won but its rewards are not stored yet
func (b *Battle) OwesPayout() bool {
	return b.State == StateWon && b.Outcome != nil && b.Outcome.PayoutPending
}

// Clone returns a deep copy so a transition can be staged before it is committed
func (b *Battle) Clone() *Battle {
	if b == nil {
		return nil
	}

	c := *b
	c.Log = append([]LogEntry(nil), b.Log...)
	if b.Outcome != nil {
		o := *b.Outcome
		c.Outcome = &o
	}
	return &c
}
