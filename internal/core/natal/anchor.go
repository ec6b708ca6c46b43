package natal

import "github.com/custodia-labs/ziwei/internal/core/domain"

// LocateAnchor places 紫微 from the lunar day and the cycle period P.
//
// Days run around the track from 寅 in rows of P. When the day does not fill
// its row, the shortfall (lack) moves the star: forwards when lack is even,
// backwards when it is odd.
func LocateAnchor(day int, cycle domain.ElementalCycle) domain.Branch {
	period := cycle.Period()
	row := (day + period - 1) / period
	pos := domain.BranchYin.Index() + row - 1

	if rem := day % period; rem != 0 {
		lack := period - rem
		if lack%2 == 0 {
			pos += lack
		} else {
			pos -= lack
		}
	}
	return domain.BranchZi.Add(pos)
}

// MirrorAnchor returns the start of the 天府 group: 紫微 reflected across the
// 寅-申 axis.
func MirrorAnchor(anchor domain.Branch) domain.Branch {
	return domain.Branch(((anchor.Index()-2)*-1 + domain.BranchCount + 2) % domain.BranchCount)
}
