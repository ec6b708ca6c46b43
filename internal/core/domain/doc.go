// Package domain defines the core entities of a Zi Wei Dou Shu chart.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Stem, Branch, Palace: the cyclic alphabets every chart is indexed by
//   - ElementalCycle: the five-element bureau and its day period
//   - Star, TransformationTag: star names and the four transformations
//   - BirthInput: the normalised year pillar, month, day and hour
//   - Chart: the immutable twelve-position result
//
// It also carries the input normalisers (ParseStem, ParseHour, YearPillar...)
// that adapters use before handing a BirthInput to the core.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
