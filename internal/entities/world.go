package entities

// TableVariant selects the rarity weight and capture rate tables
type TableVariant string

// Table variants
const (
	VariantStandard TableVariant = "standard"
	VariantChaos    TableVariant = "chaos"
)

// Valid reports whether v is a known variant
func (v TableVariant) Valid() bool {
	return v == VariantStandard || v == VariantChaos
}

// IDRange is an inclusive range of EntityMaster ids
type IDRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether id is inside the range
func (r IDRange) Contains(id int) bool {
	return id >= r.Min && id <= r.Max
}

// Size is the number of ids in the range
func (r IDRange) Size() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// Map is a static exploration area
type Map struct {
	ID          string       `json:"id" yaml:"id"`
	DisplayName string       `json:"display_name" yaml:"display_name"`
	Description string       `json:"description" yaml:"description"`
	Range       IDRange      `json:"entity_id_range" yaml:"entity_id_range"`
	Variant     TableVariant `json:"variant" yaml:"variant"`
	// UnlockRequirement is the completion percent of the previous map needed to enter
	UnlockRequirement int `json:"unlock_requirement" yaml:"unlock_requirement"`
}

// Contains reports whether the map draws from the given species id
func (m *Map) Contains(id int) bool {
	return m.Range.Contains(id)
}

// RarityTable holds one integer per rarity tier.
// Weights and capture rates are both expressed in basis points (1/100 of a percent).
type RarityTable struct {
	Normal int `json:"normal" yaml:"normal"`
	Rare   int `json:"rare" yaml:"rare"`
	Unique int `json:"unique" yaml:"unique"`
	Legend int `json:"legend" yaml:"legend"`
}

// For returns the value for tier r
func (t RarityTable) For(r Rarity) int {
	switch r {
	case RarityNormal:
		return t.Normal
	case RarityRare:
		return t.Rare
	case RarityUnique:
		return t.Unique
	case RarityLegend:
		return t.Legend
	default:
		return 0
	}
}

// Total sums all tiers
func (t RarityTable) Total() int {
	return t.Normal + t.Rare + t.Unique + t.Legend
}

// RarityWeights are the spawn weight tables per variant
type RarityWeights struct {
	Standard RarityTable `json:"standard" yaml:"standard"`
	Chaos    RarityTable `json:"chaos" yaml:"chaos"`
}

// For returns the table for variant v
func (w RarityWeights) For(v TableVariant) RarityTable {
	if v == VariantChaos {
		return w.Chaos
	}
	return w.Standard
}

// CaptureRates are the capture success rates per variant, in basis points
type CaptureRates struct {
	Standard RarityTable `json:"standard" yaml:"standard"`
	Chaos    RarityTable `json:"chaos" yaml:"chaos"`
}

// For returns the table for variant v
func (c CaptureRates) For(v TableVariant) RarityTable {
	if v == VariantChaos {
		return c.Chaos
	}
	return c.Standard
}
