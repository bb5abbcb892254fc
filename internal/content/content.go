// Package content loads the static game content: maps, the species roster, rarity
// weights, capture rates and the training economy.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
)

//go:embed default.yaml
var defaultContent []byte

// basisPoints is 100.00%
const basisPoints = 10000

// Economy holds the training point rules
type Economy struct {
	// TrainPoints is granted per training action
	TrainPoints int `yaml:"train_points"`
	// BonusOneIn is the 1-in-N chance a training action spawns a bonus target
	BonusOneIn int `yaml:"bonus_one_in"`
	// BonusPoints is granted for claiming a live bonus target
	BonusPoints int `yaml:"bonus_points"`
	// BonusLifetime is how long a bonus target can be claimed
	BonusLifetime time.Duration `yaml:"bonus_lifetime"`
}

// Content is the full static content set
type Content struct {
	RarityWeights entities.RarityWeights   `yaml:"rarity_weights"`
	CaptureRates  entities.CaptureRates    `yaml:"capture_rates"`
	Economy       Economy                  `yaml:"economy"`
	Maps          []*entities.Map          `yaml:"maps"`
	Roster        []*entities.EntityMaster `yaml:"roster"`
}

// Default returns the embedded content
func Default() (*Content, error) {
	return Load(bytes.NewReader(defaultContent))
}

// LoadFile reads content from a YAML file
func LoadFile(path string) (*Content, error) {
	f, err := os.Open(path) // #nosec G304 -- operator supplied content path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open content file %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Load decodes and validates content. Unknown fields are rejected.
func Load(r io.Reader) (*Content, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode content")
	}

	sort.Slice(c.Roster, func(i, j int) bool { return c.Roster[i].ID < c.Roster[j].ID })

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks every content invariant the engine relies on
func (c *Content) Validate() error {
	vb := errors.NewValidationBuilder()

	for _, v := range []entities.TableVariant{entities.VariantStandard, entities.VariantChaos} {
		for _, tier := range entities.Rarities {
			field := fmt.Sprintf("rarity_weights.%s.%s", v, tier)
			errors.ValidateRange(field, c.RarityWeights.For(v).For(tier), 1, basisPoints, vb)

			field = fmt.Sprintf("capture_rates.%s.%s", v, tier)
			errors.ValidateRange(field, c.CaptureRates.For(v).For(tier), 0, basisPoints, vb)
		}
	}

	if c.Economy.TrainPoints < 0 {
		vb.Field("economy.train_points", "must not be negative")
	}
	if c.Economy.BonusOneIn < 0 {
		vb.Field("economy.bonus_one_in", "must not be negative")
	}
	if c.Economy.BonusPoints < 0 {
		vb.Field("economy.bonus_points", "must not be negative")
	}
	if c.Economy.BonusOneIn > 0 && c.Economy.BonusLifetime <= 0 {
		vb.Field("economy.bonus_lifetime", "must be positive when bonus targets spawn")
	}

	c.validateRoster(vb)
	c.validateMaps(vb)

	return vb.Build()
}

func (c *Content) validateRoster(vb *errors.ValidationBuilder) {
	if len(c.Roster) == 0 {
		vb.RequiredField("roster")
		return
	}

	seen := make(map[int]struct{}, len(c.Roster))
	for i, m := range c.Roster {
		field := fmt.Sprintf("roster[%d]", i)
		if m == nil {
			vb.RequiredField(field)
			continue
		}
		if _, dup := seen[m.ID]; dup {
			vb.Fieldf(field+".id", "duplicate id %d", m.ID)
		}
		seen[m.ID] = struct{}{}

		if m.ID <= 0 {
			vb.Field(field+".id", "must be positive")
		}
		if !m.Rarity.Valid() {
			vb.InvalidField(field+".rarity", string(m.Rarity))
		}
		if !m.Element.Valid() {
			vb.InvalidField(field+".element", string(m.Element))
		}
		for _, name := range entities.StatNames {
			lo, _ := m.MinStats.Get(name)
			hi, _ := m.MaxStats.Get(name)
			if lo < 0 || lo > hi {
				vb.Fieldf(fmt.Sprintf("%s.%s", field, name), "invalid bounds %d..%d", lo, hi)
			}
		}
	}
}

func (c *Content) validateMaps(vb *errors.ValidationBuilder) {
	if len(c.Maps) == 0 {
		vb.RequiredField("maps")
		return
	}

	seen := make(map[string]struct{}, len(c.Maps))
	for i, m := range c.Maps {
		field := fmt.Sprintf("maps[%d]", i)
		if m == nil {
			vb.RequiredField(field)
			continue
		}
		errors.ValidateRequired(field+".id", m.ID, vb)
		if _, dup := seen[m.ID]; dup {
			vb.Fieldf(field+".id", "duplicate id %q", m.ID)
		}
		seen[m.ID] = struct{}{}

		if !m.Variant.Valid() {
			vb.InvalidField(field+".variant", string(m.Variant))
		}
		if m.Range.Size() == 0 {
			vb.Field(field+".entity_id_range", "must contain at least one id")
		}
		errors.ValidateRange(field+".unlock_requirement", m.UnlockRequirement, 0, 100, vb)
	}
}

// MapByID finds a map
func (c *Content) MapByID(id string) (*entities.Map, bool) {
	for _, m := range c.Maps {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// MasterByID finds a species
func (c *Content) MasterByID(id int) (*entities.EntityMaster, bool) {
	i := sort.Search(len(c.Roster), func(i int) bool { return c.Roster[i].ID >= id })
	if i < len(c.Roster) && c.Roster[i].ID == id {
		return c.Roster[i], true
	}
	return nil, false
}
