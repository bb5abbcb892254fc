package entities

import "time"

// PlayerSession is the per-player state the game mutates between actions.
// It is loaded and saved explicitly; nothing holds it globally.
type PlayerSession struct {
	PlayerID       string       `json:"player_id"`
	Points         int          `json:"points"`
	ActiveEntityID string       `json:"active_entity_id,omitempty"`
	ActiveBattleID string       `json:"active_battle_id,omitempty"`
	HasStarter     bool         `json:"has_starter"`
	Bonus          *BonusTarget `json:"bonus,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Clone returns a deep copy for staging
func (p *PlayerSession) Clone() *PlayerSession {
	if p == nil {
		return nil
	}
	c := *p
	if p.Bonus != nil {
		b := *p.Bonus
		c.Bonus = &b
	}
	return &c
}

// BonusTarget is a short-lived training reward
type BonusTarget struct {
	ID        string    `json:"id"`
	Points    int       `json:"points"`
	SpawnedAt time.Time `json:"spawned_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Alive reports whether the target can still be claimed at now
func (b *BonusTarget) Alive(now time.Time) bool {
	return b != nil && now.Before(b.ExpiresAt)
}

// StarterChoice is one rolled starter offer
type StarterChoice struct {
	EntityID int   `json:"entity_id"`
	Stats    Stats `json:"stats"`
}

// StarterSession tracks the offers shown to a player who has not picked a starter yet
type StarterSession struct {
	PlayerID    string          `json:"player_id"`
	Choices     []StarterChoice `json:"choices"`
	RerollsUsed int             `json:"rerolls_used"`
	CreatedAt   time.Time       `json:"created_at"`
}
