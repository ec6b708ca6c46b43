package natal

import "github.com/custodia-labs/ziwei/internal/core/domain"

// AssignStems returns the stem of every position for a year stem (五虎遁).
//
// Stems sharing index mod 5 (甲己, 乙庚, ...) start 寅 on the same stem:
// 丙, 戊, 庚, 壬, 甲. 子 and 丑 close the cycle after 亥 and so carry the
// start stem and its successor.
func AssignStems(yearStem domain.Stem) [domain.BranchCount]domain.Stem {
	start := domain.Stem((yearStem.Index()%5*2 + 2) % domain.StemCount)

	var stems [domain.BranchCount]domain.Stem
	stems[domain.BranchZi] = start
	stems[domain.BranchChou] = start.Add(1)
	for i := 0; i < domain.StemCount; i++ {
		stems[domain.BranchYin.Add(i)] = start.Add(i)
	}
	return stems
}
