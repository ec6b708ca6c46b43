package domain

// ElementalCycle is the five-element bureau (五行局) of a chart. Its period is
// the day quantum used to place 紫微.
type ElementalCycle int

// The five cycles.
const (
	CycleWater ElementalCycle = iota // 水二局
	CycleWood                        // 木三局
	CycleMetal                       // 金四局
	CycleEarth                       // 土五局
	CycleFire                        // 火六局
)

var cycleNames = [...]string{"水二局", "木三局", "金四局", "土五局", "火六局"}

// AllCycles returns the cycles ordered by period.
func AllCycles() []ElementalCycle {
	return []ElementalCycle{CycleWater, CycleWood, CycleMetal, CycleEarth, CycleFire}
}

// IsValid returns true if the cycle is recognised.
func (c ElementalCycle) IsValid() bool {
	return c >= CycleWater && c <= CycleFire
}

// Period returns the day quantum of the cycle (2 through 6).
func (c ElementalCycle) Period() int {
	return int(c) + 2
}

// String returns the cycle name.
func (c ElementalCycle) String() string {
	if !c.IsValid() {
		return unknownDescription
	}
	return cycleNames[c]
}

// MarshalText encodes the cycle as its name.
func (c ElementalCycle) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a cycle name.
func (c *ElementalCycle) UnmarshalText(text []byte) error {
	for i, name := range cycleNames {
		if name == string(text) {
			*c = ElementalCycle(i)
			return nil
		}
	}
	return &InputError{Field: "cycle", Value: string(text), Err: ErrInvalidInput}
}
