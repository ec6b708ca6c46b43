// Package natal builds Zi Wei Dou Shu charts.
//
// Every function here is pure and table driven. The stages are applied in
// dependency order by Build:
//
//	stems, palaces, body           (independent, from year stem / month / hour)
//	self palace -> elemental cycle -> 紫微 anchor -> primary stars
//	lucky stars, unlucky stars     (independent, from year / month / hour)
//	transformations                (from year stem, matched against placed stars)
//
// Inputs are assumed to be inside their alphabets. Callers validate with
// domain.BirthInput.Validate first; out-of-range values panic with an index
// error.
package natal
