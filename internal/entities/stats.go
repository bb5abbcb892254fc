package entities

// StatName names one of the five combat stats
type StatName string

// Stat names as they appear in content files and RPC requests
const (
	StatHP   StatName = "hp"
	StatAtk  StatName = "atk"
	StatDef  StatName = "def"
	StatMAtk StatName = "matk"
	StatMDef StatName = "mdef"
)

// StatNames lists every stat in display order
var StatNames = []StatName{StatHP, StatAtk, StatDef, StatMAtk, StatMDef}

// Valid reports whether n is one of the five stat names
func (n StatName) Valid() bool {
	switch n {
	case StatHP, StatAtk, StatDef, StatMAtk, StatMDef:
		return true
	default:
		return false
	}
}

// Stats is a five-field stat block
type Stats struct {
	HP   int `json:"hp" yaml:"hp"`
	Atk  int `json:"atk" yaml:"atk"`
	Def  int `json:"def" yaml:"def"`
	MAtk int `json:"matk" yaml:"matk"`
	MDef int `json:"mdef" yaml:"mdef"`
}

// Get returns the named stat. ok is false for an unknown name.
func (s Stats) Get(name StatName) (value int, ok bool) {
	switch name {
	case StatHP:
		return s.HP, true
	case StatAtk:
		return s.Atk, true
	case StatDef:
		return s.Def, true
	case StatMAtk:
		return s.MAtk, true
	case StatMDef:
		return s.MDef, true
	default:
		return 0, false
	}
}

// With returns a copy of s with the named stat replaced
func (s Stats) With(name StatName, value int) Stats {
	switch name {
	case StatHP:
		s.HP = value
	case StatAtk:
		s.Atk = value
	case StatDef:
		s.Def = value
	case StatMAtk:
		s.MAtk = value
	case StatMDef:
		s.MDef = value
	}
	return s
}

// AddAll returns a copy of s with n added to every stat
func (s Stats) AddAll(n int) Stats {
	return Stats{
		HP:   s.HP + n,
		Atk:  s.Atk + n,
		Def:  s.Def + n,
		MAtk: s.MAtk + n,
		MDef: s.MDef + n,
	}
}

// Within reports whether every stat of s lies in [lo, hi]
func (s Stats) Within(lo, hi Stats) bool {
	for _, name := range StatNames {
		v, _ := s.Get(name)
		l, _ := lo.Get(name)
		h, _ := hi.Get(name)
		if v < l || v > h {
			return false
		}
	}
	return true
}
