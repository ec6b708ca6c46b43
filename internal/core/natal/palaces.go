package natal

import "github.com/custodia-labs/ziwei/internal/core/domain"

// AssignPalaces rotates the reference palace order onto the branches.
// 命宮 lands at (month - hour) counted from 子; the rest follow in
// reference order going backwards through the branches. The branch holding
// 命宮 is returned alongside.
func AssignPalaces(month, hour domain.Branch) ([domain.BranchCount]domain.Palace, domain.Branch) {
	selfOffset := (domain.BranchCount + month.Index() - hour.Index()) % domain.BranchCount

	var palaces [domain.BranchCount]domain.Palace
	for i := range palaces {
		palaces[i] = domain.Palace((domain.BranchCount - selfOffset + i) % domain.PalaceCount)
	}

	self := domain.BranchZi
	for i, p := range palaces {
		if p == domain.PalaceSelf {
			self = domain.Branch(i)
			break
		}
	}
	return palaces, self
}

// BodyBranch returns the branch of 身宮: month + hour, mod 12.
func BodyBranch(month, hour domain.Branch) domain.Branch {
	return month.Add(hour.Index())
}

// MarkBody flags the body palace. Exactly one entry is true.
func MarkBody(month, hour domain.Branch) [domain.BranchCount]bool {
	var marks [domain.BranchCount]bool
	marks[BodyBranch(month, hour)] = true
	return marks
}
