package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// BirthInput holds the four normalised birth values a chart is built from.
type BirthInput struct {
	// YearStem and YearBranch form the sexagenary year pillar.
	YearStem   Stem   `json:"year_stem"`
	YearBranch Branch `json:"year_branch"`

	// Month is the lunar month expressed as a branch (month 1 is 寅).
	Month Branch `json:"month"`

	// Day is the lunar day ordinal, 1 to 30.
	Day int `json:"day"`

	// Hour is the double-hour branch (23:00-00:59 is 子).
	Hour Branch `json:"hour"`
}

// Validate checks every field against its alphabet.
func (in BirthInput) Validate() error {
	switch {
	case !in.YearStem.IsValid():
		return &InputError{Field: "year_stem", Value: strconv.Itoa(int(in.YearStem)), Err: ErrInvalidInput}
	case !in.YearBranch.IsValid():
		return &InputError{Field: "year_branch", Value: strconv.Itoa(int(in.YearBranch)), Err: ErrInvalidInput}
	case !in.Month.IsValid():
		return &InputError{Field: "month", Value: strconv.Itoa(int(in.Month)), Err: ErrInvalidInput}
	case in.Day < MinDay || in.Day > MaxDay:
		return &InputError{Field: "day", Value: strconv.Itoa(in.Day), Err: ErrInvalidInput}
	case !in.Hour.IsValid():
		return &InputError{Field: "hour", Value: strconv.Itoa(int(in.Hour)), Err: ErrInvalidInput}
	}
	return nil
}

// Pillar returns the year pillar as text, e.g. "癸卯".
func (in BirthInput) Pillar() string {
	return in.YearStem.String() + in.YearBranch.String()
}

// Day range accepted by charts.
const (
	MinDay = 1
	MaxDay = 30
)

// Position is the record for one of the twelve chart positions.
type Position struct {
	Branch  Branch       `json:"branch"`
	Stem    Stem         `json:"stem"`
	Palace  Palace       `json:"palace"`
	Body    bool         `json:"body"`
	Primary []PlacedStar `json:"primary"`
	Lucky   []PlacedStar `json:"lucky"`
	Unlucky []Star       `json:"unlucky"`
}

func (p Position) clone() Position {
	p.Primary = append([]PlacedStar{}, p.Primary...)
	p.Lucky = append([]PlacedStar{}, p.Lucky...)
	p.Unlucky = append([]Star{}, p.Unlucky...)
	return p
}

// HasStar reports whether the named star sits at this position in any family.
func (p Position) HasStar(name Star) bool {
	for _, s := range p.Primary {
		if s.Name == name {
			return true
		}
	}
	for _, s := range p.Lucky {
		if s.Name == name {
			return true
		}
	}
	for _, s := range p.Unlucky {
		if s == name {
			return true
		}
	}
	return false
}

// Chart is a complete natal chart. It is immutable: accessors return copies.
type Chart struct {
	input           BirthInput
	self            Branch
	body            Branch
	cycle           ElementalCycle
	anchor          Branch
	transformations [4]Transformation
	positions       [BranchCount]Position
}

// ChartParts carries the derived values a chart is frozen from.
type ChartParts struct {
	Input           BirthInput
	Self            Branch
	Body            Branch
	Cycle           ElementalCycle
	Anchor          Branch
	Transformations [4]Transformation
	Positions       [BranchCount]Position
}

// NewChart freezes the parts into a chart. Position slices are copied.
func NewChart(parts ChartParts) *Chart {
	c := &Chart{
		input:           parts.Input,
		self:            parts.Self,
		body:            parts.Body,
		cycle:           parts.Cycle,
		anchor:          parts.Anchor,
		transformations: parts.Transformations,
	}
	for i, pos := range parts.Positions {
		c.positions[i] = pos.clone()
	}
	return c
}

// Input returns the birth input the chart was built from.
func (c *Chart) Input() BirthInput { return c.input }

// SelfPalace returns the branch holding 命宮.
func (c *Chart) SelfPalace() Branch { return c.self }

// BodyPalace returns the branch marked as 身宮.
func (c *Chart) BodyPalace() Branch { return c.body }

// Cycle returns the elemental cycle.
func (c *Chart) Cycle() ElementalCycle { return c.cycle }

// Anchor returns the branch of 紫微.
func (c *Chart) Anchor() Branch { return c.anchor }

// Transformations returns the four tag bindings in tag order.
func (c *Chart) Transformations() [4]Transformation { return c.transformations }

// At returns the record for branch b.
func (c *Chart) At(b Branch) Position {
	return c.positions[b].clone()
}

// Positions returns all twelve records ordered from 子.
func (c *Chart) Positions() []Position {
	out := make([]Position, BranchCount)
	for i := range c.positions {
		out[i] = c.positions[i].clone()
	}
	return out
}

// Locate returns the branch holding the named star.
func (c *Chart) Locate(name Star) (Branch, bool) {
	for i := range c.positions {
		if c.positions[i].HasStar(name) {
			return Branch(i), true
		}
	}
	return 0, false
}

type chartJSON struct {
	Input           BirthInput        `json:"input"`
	SelfPalace      Branch            `json:"self_palace"`
	BodyPalace      Branch            `json:"body_palace"`
	Cycle           ElementalCycle    `json:"cycle"`
	Anchor          Branch            `json:"anchor"`
	Transformations [4]Transformation `json:"transformations"`
	Positions       []Position        `json:"positions"`
}

// MarshalJSON encodes the chart with all derived values.
func (c *Chart) MarshalJSON() ([]byte, error) {
	return json.Marshal(chartJSON{
		Input:           c.input,
		SelfPalace:      c.self,
		BodyPalace:      c.body,
		Cycle:           c.cycle,
		Anchor:          c.anchor,
		Transformations: c.transformations,
		Positions:       c.Positions(),
	})
}

// SavedChart is a chart recorded in the history store. Only the input is
// persisted; Chart is rebuilt on read.
type SavedChart struct {
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	Input     BirthInput `json:"input"`
	CreatedAt time.Time  `json:"created_at"`
	Chart     *Chart     `json:"chart,omitempty"`
}
