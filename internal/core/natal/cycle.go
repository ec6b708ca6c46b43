package natal

import "github.com/custodia-labs/ziwei/internal/core/domain"

// cycleOrder is indexed by the combined stem and branch household of the
// self palace (納音). Index 0 covers 甲子/乙丑, which is 金.
var cycleOrder = [5]domain.ElementalCycle{
	domain.CycleMetal,
	domain.CycleWater,
	domain.CycleFire,
	domain.CycleEarth,
	domain.CycleWood,
}

// ResolveCycle derives the elemental cycle from the stem and branch at the
// self palace. Consecutive branches pair up (子丑, 寅卯, 辰巳) and repeat every
// six; consecutive stems pair up (甲乙, 丙丁, ...).
func ResolveCycle(stem domain.Stem, branch domain.Branch) domain.ElementalCycle {
	branchHousehold := (branch.Index() / 2) % 3
	stemHousehold := stem.Index() / 2
	return cycleOrder[(branchHousehold+stemHousehold)%5]
}
