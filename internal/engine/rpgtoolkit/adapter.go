// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/entity-arena/internal/engine"
	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
)

// rarestFirst is the order cumulative weight boundaries are built in
var rarestFirst = []entities.Rarity{
	entities.RarityLegend,
	entities.RarityUnique,
	entities.RarityRare,
	entities.RarityNormal,
}

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	eventBus     events.EventBus
	diceRoller   dice.Roller
	weights      entities.RarityWeights
	captureRates entities.CaptureRates
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
	// Weights defaults to engine.DefaultRarityWeights
	Weights *entities.RarityWeights
	// CaptureRates defaults to engine.DefaultCaptureRates
	CaptureRates *entities.CaptureRates
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Weights != nil {
		validateTable("weights.standard", c.Weights.Standard, 1, vb)
		validateTable("weights.chaos", c.Weights.Chaos, 1, vb)
	}
	if c.CaptureRates != nil {
		validateTable("capture_rates.standard", c.CaptureRates.Standard, 0, vb)
		validateTable("capture_rates.chaos", c.CaptureRates.Chaos, 0, vb)
	}
	return vb.Build()
}

func validateTable(field string, table entities.RarityTable, minValue int, vb *errors.ValidationBuilder) {
	for _, tier := range entities.Rarities {
		errors.ValidateRange(field+"."+string(tier), table.For(tier), minValue, engine.BasisPoints, vb)
	}
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Adapter{
		eventBus:     cfg.EventBus,
		diceRoller:   cfg.DiceRoller,
		weights:      engine.DefaultRarityWeights,
		captureRates: engine.DefaultCaptureRates,
	}
	if cfg.Weights != nil {
		a.weights = *cfg.Weights
	}
	if cfg.CaptureRates != nil {
		a.captureRates = *cfg.CaptureRates
	}

	return a, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// RollStats draws each stat uniformly in [min, max]
func (a *Adapter) RollStats(minStats, maxStats entities.Stats) (entities.Stats, error) {
	var rolled entities.Stats

	for _, name := range entities.StatNames {
		lo, _ := minStats.Get(name)
		hi, _ := maxStats.Get(name)

		v, err := a.between(name, lo, hi)
		if err != nil {
			return entities.Stats{}, err
		}
		rolled = rolled.With(name, v)
	}

	return rolled, nil
}

func (a *Adapter) between(name entities.StatName, lo, hi int) (int, error) {
	if lo < 0 {
		return 0, errors.ContentDataf("stat %s has negative min %d", name, lo)
	}
	if lo > hi {
		return 0, errors.ContentDataf("stat %s min %d is above max %d", name, lo, hi)
	}
	if lo == hi {
		return lo, nil
	}

	roll, err := a.diceRoller.Roll(hi - lo + 1)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll stat %s", name)
	}

	return lo + roll - 1, nil
}

// PickRarity draws a tier from the variant's weight table.
// The draw is in basis points and boundaries accumulate from the rarest tier,
// so the standard table yields legend < 0.01%, unique < 1.00%, rare < 20.00%.
func (a *Adapter) PickRarity(variant entities.TableVariant) (entities.Rarity, error) {
	table := a.weights.For(variant)

	total := table.Total()
	if total <= 0 {
		return "", errors.ContentDataf("rarity table %s has no weight", variant)
	}

	roll, err := a.diceRoller.Roll(total)
	if err != nil {
		return "", errors.Wrap(err, "failed to roll rarity")
	}
	draw := roll - 1

	bound := 0
	for _, tier := range rarestFirst {
		bound += table.For(tier)
		if draw < bound {
			return tier, nil
		}
	}

	return entities.RarityNormal, nil
}

// PickEntityOfRarity selects uniformly among roster members of the tier.
// ok is false when the roster has none.
func (a *Adapter) PickEntityOfRarity(
	roster []*entities.EntityMaster,
	tier entities.Rarity,
) (*entities.EntityMaster, bool, error) {
	candidates := ofRarity(roster, tier)
	if len(candidates) == 0 {
		return nil, false, nil
	}

	roll, err := a.diceRoller.Roll(len(candidates))
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to roll entity pick")
	}

	return candidates[roll-1], true, nil
}

// GenerateEncounter draws a tier once for the map, then retries the entity pick up to
// engine.MaxEncounterAttempts times while picked entities have broken stat bounds.
func (a *Adapter) GenerateEncounter(
	ctx context.Context,
	input *engine.GenerateEncounterInput,
) (*engine.GenerateEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Map == nil {
		return nil, errors.InvalidArgument("map is required")
	}

	m := input.Map
	pool := input.Roster
	if m.Variant != entities.VariantChaos {
		pool = inRange(input.Roster, m.Range)
	}

	tier, err := a.PickRarity(m.Variant)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= engine.MaxEncounterAttempts; attempt++ {
		master, ok, err := a.PickEntityOfRarity(pool, tier)
		if err != nil {
			return nil, err
		}
		if !ok {
			// an empty tier cannot be fixed by picking again
			break
		}

		stats, err := a.RollStats(master.MinStats, master.MaxStats)
		if err != nil {
			if errors.IsContentData(err) {
				slog.WarnContext(ctx, "skipping entity with invalid stat bounds",
					"entity_id", master.ID,
					"map_id", m.ID,
					"error", err)
				continue
			}
			return nil, err
		}

		engine.Publish(ctx, a.eventBus, engine.EventEncounterGenerated, nil, master, map[string]any{
			"map_id":   m.ID,
			"rarity":   string(tier),
			"attempts": attempt,
		})

		return &engine.GenerateEncounterOutput{
			Encounter: &engine.Encounter{Master: master, Stats: stats},
			Rarity:    tier,
			Attempts:  attempt,
		}, nil
	}

	return nil, errors.NotFoundf("no encounter: no usable %s entity on map %s", tier, m.ID).
		WithMeta("map_id", m.ID).
		WithMeta("rarity", string(tier))
}

// GenerateStarters offers up to Count distinct entities from the standard table.
// A slot that cannot find a new entity within engine.MaxStarterAttempts is dropped.
func (a *Adapter) GenerateStarters(
	ctx context.Context,
	input *engine.GenerateStartersInput,
) (*engine.GenerateStartersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	count := input.Count
	if count <= 0 {
		count = engine.StarterCount
	}

	output := &engine.GenerateStartersOutput{}
	used := make(map[int]struct{}, count)

	for slot := 0; slot < count; slot++ {
		starter, err := a.starterSlot(ctx, input.Roster, used)
		if err != nil {
			return nil, err
		}
		if starter == nil {
			output.Dropped++
			continue
		}

		used[starter.Master.ID] = struct{}{}
		output.Starters = append(output.Starters, starter)
	}

	if output.Dropped > 0 {
		slog.WarnContext(ctx, "dropped starter slots",
			"requested", count,
			"dropped", output.Dropped)
	}

	engine.Publish(ctx, a.eventBus, engine.EventStartersGenerated, nil, nil, map[string]any{
		"count":   len(output.Starters),
		"dropped": output.Dropped,
	})

	return output, nil
}

func (a *Adapter) starterSlot(
	ctx context.Context,
	roster []*entities.EntityMaster,
	used map[int]struct{},
) (*engine.Encounter, error) {
	for attempt := 0; attempt < engine.MaxStarterAttempts; attempt++ {
		tier, err := a.PickRarity(entities.VariantStandard)
		if err != nil {
			return nil, err
		}

		master, ok, err := a.PickEntityOfRarity(roster, tier)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if _, dup := used[master.ID]; dup {
			continue
		}

		stats, err := a.RollStats(master.MinStats, master.MaxStats)
		if err != nil {
			if errors.IsContentData(err) {
				slog.WarnContext(ctx, "skipping starter with invalid stat bounds",
					"entity_id", master.ID,
					"error", err)
				continue
			}
			return nil, err
		}

		return &engine.Encounter{Master: master, Stats: stats}, nil
	}

	return nil, nil
}

// AttemptCapture rolls against the rarity's capture rate. The chaos table applies on
// chaos maps and the standard table everywhere else.
func (a *Adapter) AttemptCapture(
	ctx context.Context,
	input *engine.AttemptCaptureInput,
) (*engine.AttemptCaptureOutput, error) {
	if input == nil || input.Master == nil {
		return nil, errors.InvalidArgument("entity is required")
	}

	variant := entities.VariantStandard
	mapID := ""
	if input.Map != nil {
		variant = input.Map.Variant
		mapID = input.Map.ID
	}

	rate := a.captureRates.For(variant).For(input.Master.Rarity)

	roll, err := a.diceRoller.Roll(engine.BasisPoints)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll capture")
	}
	draw := roll - 1
	captured := draw < rate

	engine.Publish(ctx, a.eventBus, engine.EventCaptureAttempted, nil, input.Master, map[string]any{
		"map_id":   mapID,
		"rate_bp":  rate,
		"captured": captured,
	})

	return &engine.AttemptCaptureOutput{
		Captured: captured,
		RateBP:   rate,
		Roll:     draw,
	}, nil
}

// RollBonusSpawn succeeds with probability 1/oneIn
func (a *Adapter) RollBonusSpawn(oneIn int) (bool, error) {
	if oneIn <= 0 {
		return false, nil
	}

	roll, err := a.diceRoller.Roll(oneIn)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll bonus spawn")
	}

	return roll == 1, nil
}

func ofRarity(roster []*entities.EntityMaster, tier entities.Rarity) []*entities.EntityMaster {
	var result []*entities.EntityMaster
	for _, e := range roster {
		if e != nil && e.Rarity == tier {
			result = append(result, e)
		}
	}
	return result
}

func inRange(roster []*entities.EntityMaster, r entities.IDRange) []*entities.EntityMaster {
	var result []*entities.EntityMaster
	for _, e := range roster {
		if e != nil && r.Contains(e.ID) {
			result = append(result, e)
		}
	}
	return result
}
