package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/entity-arena/internal/content"
	"github.com/KirkDiggler/entity-arena/internal/engine"
	"github.com/KirkDiggler/entity-arena/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	v1alpha1 "github.com/KirkDiggler/entity-arena/internal/handlers/game/v1alpha1"
	"github.com/KirkDiggler/entity-arena/internal/orchestrators/collection"
	"github.com/KirkDiggler/entity-arena/internal/orchestrators/combat"
	"github.com/KirkDiggler/entity-arena/internal/orchestrators/growth"
	"github.com/KirkDiggler/entity-arena/internal/orchestrators/starter"
	"github.com/KirkDiggler/entity-arena/internal/pkg/clock"
	"github.com/KirkDiggler/entity-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/entity-arena/internal/pkg/keylock"
	"github.com/KirkDiggler/entity-arena/internal/redis"
	"github.com/KirkDiggler/entity-arena/internal/repositories/archive"
	"github.com/KirkDiggler/entity-arena/internal/repositories/battles"
	"github.com/KirkDiggler/entity-arena/internal/repositories/owned"
	"github.com/KirkDiggler/entity-arena/internal/repositories/player"
	"github.com/KirkDiggler/entity-arena/internal/repositories/roster"
	"github.com/KirkDiggler/entity-arena/internal/repositories/startersession"
)

// repositories is every Redis-backed store the services use
type repositories struct {
	roster         roster.Repository
	owned          owned.Repository
	archive        archive.Repository
	player         player.Repository
	starterSession startersession.Repository
	battles        battles.Repository
}

func newRepositories(client redis.Client, c clock.Clock) (*repositories, error) {
	rosterRepo, err := roster.NewRedis(&roster.RedisConfig{Client: client})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create roster repository")
	}
	ownedRepo, err := owned.NewRedis(&owned.RedisConfig{Client: client, Clock: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create owned repository")
	}
	archiveRepo, err := archive.NewRedis(&archive.RedisConfig{Client: client, Clock: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create archive repository")
	}
	playerRepo, err := player.NewRedis(&player.RedisConfig{Client: client, Clock: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create player repository")
	}
	sessionRepo, err := startersession.NewRedis(&startersession.RedisConfig{Client: client, Clock: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create starter session repository")
	}
	battleRepo, err := battles.NewRedis(&battles.RedisConfig{Client: client, Clock: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create battle repository")
	}

	return &repositories{
		roster:         rosterRepo,
		owned:          ownedRepo,
		archive:        archiveRepo,
		player:         playerRepo,
		starterSession: sessionRepo,
		battles:        battleRepo,
	}, nil
}

// seedRoster writes the content roster. With onlyIfEmpty it leaves an existing roster alone.
func seedRoster(ctx context.Context, repo roster.Repository, cnt *content.Content, onlyIfEmpty bool) (int, error) {
	if onlyIfEmpty {
		existing, err := repo.List(ctx, roster.ListInput{})
		if err != nil {
			return 0, err
		}
		if len(existing.Masters) > 0 {
			return 0, nil
		}
	}

	out, err := repo.Upsert(ctx, roster.UpsertInput{Masters: cnt.Roster})
	if err != nil {
		return 0, err
	}
	return out.Count, nil
}

// subscribeEventLogger logs every domain event at debug level
func subscribeEventLogger(bus events.EventBus) {
	for _, eventType := range engine.AllEventTypes {
		bus.SubscribeFunc(eventType, 0, func(ctx context.Context, event events.Event) error {
			attrs := []any{"event_type", event.Type()}
			if src := event.Source(); src != nil {
				attrs = append(attrs, "source_id", src.GetID(), "source_type", src.GetType())
			}
			slog.DebugContext(ctx, "domain event", attrs...)
			return nil
		})
	}
}

// services is the handler plus the pieces runServer needs to manage
type services struct {
	handler *v1alpha1.Handler
	repos   *repositories
}

func newServices(client redis.Client, cnt *content.Content, enemyTurnDelay time.Duration) (*services, error) {
	c := clock.New()

	repos, err := newRepositories(client, c)
	if err != nil {
		return nil, err
	}

	eventBus := events.NewBus()
	subscribeEventLogger(eventBus)

	weights := cnt.RarityWeights
	captureRates := cnt.CaptureRates
	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:     eventBus,
		DiceRoller:   dice.DefaultRoller,
		Weights:      &weights,
		CaptureRates: &captureRates,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	ownedIDs := idgen.NewUUID("owned")
	// one lock set so battle payouts and growth actions on a player never interleave
	locks := keylock.New()

	starterService, err := starter.NewOrchestrator(&starter.Config{
		Engine:             eng,
		RosterRepo:         repos.roster,
		OwnedRepo:          repos.owned,
		ArchiveRepo:        repos.archive,
		PlayerRepo:         repos.player,
		StarterSessionRepo: repos.starterSession,
		IDGenerator:        ownedIDs,
		Clock:              c,
		EventBus:           eventBus,
		Locks:              locks,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create starter orchestrator")
	}

	combatService, err := combat.NewOrchestrator(&combat.Config{
		Engine:         eng,
		Maps:           cnt.Maps,
		RosterRepo:     repos.roster,
		OwnedRepo:      repos.owned,
		ArchiveRepo:    repos.archive,
		PlayerRepo:     repos.player,
		BattleRepo:     repos.battles,
		BattleIDs:      idgen.NewPrefixed("battle"),
		OwnedIDs:       ownedIDs,
		Clock:          c,
		EventBus:       eventBus,
		EnemyTurnDelay: enemyTurnDelay,
		Locks:          locks,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat orchestrator")
	}

	growthService, err := growth.NewOrchestrator(&growth.Config{
		Engine:      eng,
		Economy:     cnt.Economy,
		OwnedRepo:   repos.owned,
		PlayerRepo:  repos.player,
		IDGenerator: idgen.NewPrefixed("bonus"),
		Clock:       c,
		EventBus:    eventBus,
		Locks:       locks,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create growth orchestrator")
	}

	collectionService, err := collection.NewOrchestrator(&collection.Config{
		Maps:        cnt.Maps,
		RosterRepo:  repos.roster,
		OwnedRepo:   repos.owned,
		ArchiveRepo: repos.archive,
		PlayerRepo:  repos.player,
		Locks:       locks,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create collection orchestrator")
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		StarterService:    starterService,
		CombatService:     combatService,
		GrowthService:     growthService,
		CollectionService: collectionService,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create game handler")
	}

	return &services{handler: handler, repos: repos}, nil
}
