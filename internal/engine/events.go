package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Domain event types published on the rpg-toolkit event bus
const (
	EventEncounterGenerated = "arena.encounter.generated"
	EventStartersGenerated  = "arena.starters.generated"
	EventCaptureAttempted   = "arena.capture.attempted"
	EventBattleStarted      = "arena.battle.started"
	EventBattleFinished     = "arena.battle.finished"
	EventArchiveAdvanced    = "arena.archive.advanced"
	EventEntityLeveled      = "arena.entity.leveled"
	EventStatUpgraded       = "arena.entity.stat_upgraded"
	EventBonusSpawned       = "arena.training.bonus_spawned"
)

// AllEventTypes lists every event type, used by subscribers that log everything
var AllEventTypes = []string{
	EventEncounterGenerated,
	EventStartersGenerated,
	EventCaptureAttempted,
	EventBattleStarted,
	EventBattleFinished,
	EventArchiveAdvanced,
	EventEntityLeveled,
	EventStatUpgraded,
	EventBonusSpawned,
}

// EntityTypePlayer identifies a player as an event source
const EntityTypePlayer = "player"

// PlayerEntity lets a player id act as a core.Entity
type PlayerEntity struct {
	ID string
}

// GetID returns the player id
func (p *PlayerEntity) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *PlayerEntity) GetType() string {
	return EntityTypePlayer
}

// Publish sends a domain event with the given context data.
// A nil bus is a no-op and publish failures are logged, never returned.
func Publish(
	ctx context.Context,
	bus events.EventBus,
	eventType string,
	source, target core.Entity,
	data map[string]any,
) {
	if bus == nil {
		return
	}

	event := events.NewGameEvent(eventType, source, target)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := bus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"event_type", eventType,
			"error", err)
	}
}
