package natal

import "github.com/custodia-labs/ziwei/internal/core/domain"

// Derivation holds the intermediate results of the pipeline, each stage
// computed only from the input and earlier stages.
type Derivation struct {
	Stems           [domain.BranchCount]domain.Stem
	Palaces         [domain.BranchCount]domain.Palace
	Self            domain.Branch
	Body            domain.Branch
	BodyMarks       [domain.BranchCount]bool
	Cycle           domain.ElementalCycle
	Anchor          domain.Branch
	Primary         [domain.BranchCount][]domain.Star
	Lucky           [domain.BranchCount][]domain.Star
	Unlucky         [domain.BranchCount][]domain.Star
	Transformations [4]domain.Transformation
}

// Derive runs every stage for the input.
func Derive(in domain.BirthInput) Derivation {
	stems := AssignStems(in.YearStem)
	palaces, self := AssignPalaces(in.Month, in.Hour)
	cycle := ResolveCycle(stems[self], self)
	anchor := LocateAnchor(in.Day, cycle)

	return Derivation{
		Stems:           stems,
		Palaces:         palaces,
		Self:            self,
		Body:            BodyBranch(in.Month, in.Hour),
		BodyMarks:       MarkBody(in.Month, in.Hour),
		Cycle:           cycle,
		Anchor:          anchor,
		Primary:         PlacePrimary(anchor),
		Lucky:           PlaceLucky(in.YearStem, in.YearBranch, in.Month, in.Hour),
		Unlucky:         PlaceUnlucky(in.YearStem, in.YearBranch, in.Hour),
		Transformations: ResolveTransformations(in.YearStem),
	}
}

// Build computes the complete chart for the input.
func Build(in domain.BirthInput) *domain.Chart {
	return Assemble(in, Derive(in))
}

// Assemble merges a derivation into a chart and tags the transformed stars.
func Assemble(in domain.BirthInput, d Derivation) *domain.Chart {
	tags := make(map[domain.Star]domain.TransformationTag, len(d.Transformations))
	for _, t := range d.Transformations {
		tags[t.Star] = t.Tag
	}

	var positions [domain.BranchCount]domain.Position
	for _, b := range domain.AllBranches() {
		positions[b] = domain.Position{
			Branch:  b,
			Stem:    d.Stems[b],
			Palace:  d.Palaces[b],
			Body:    d.BodyMarks[b],
			Primary: annotate(d.Primary[b], tags),
			Lucky:   annotate(d.Lucky[b], tags),
			Unlucky: append([]domain.Star{}, d.Unlucky[b]...),
		}
	}

	return domain.NewChart(domain.ChartParts{
		Input:           in,
		Self:            d.Self,
		Body:            d.Body,
		Cycle:           d.Cycle,
		Anchor:          d.Anchor,
		Transformations: d.Transformations,
		Positions:       positions,
	})
}

func annotate(stars []domain.Star, tags map[domain.Star]domain.TransformationTag) []domain.PlacedStar {
	out := make([]domain.PlacedStar, len(stars))
	for i, s := range stars {
		out[i] = domain.PlacedStar{Name: s}
		if tag, ok := tags[s]; ok {
			out[i] = out[i].WithTag(tag)
		}
	}
	return out
}
