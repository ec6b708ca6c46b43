package natal

import "github.com/custodia-labs/ziwei/internal/core/domain"

// ziweiTemplate lists the 紫微 group by offset from 紫微.
var ziweiTemplate = [domain.BranchCount]domain.Star{
	domain.StarZiWei, "", "", "",
	domain.StarLianZhen, "", "", domain.StarTianTong,
	domain.StarWuQu, domain.StarTaiYang, "", domain.StarTianJi,
}

// tianfuTemplate lists the 天府 group by offset from 天府.
var tianfuTemplate = [domain.BranchCount]domain.Star{
	domain.StarTianFu, domain.StarTaiYin, domain.StarTanLang, domain.StarJuMen,
	domain.StarTianXiang, domain.StarTianLiang, domain.StarQiSha, "",
	"", "", domain.StarPoJun, "",
}

// PlacePrimary places the 14 primary stars given the 紫微 position. At a
// shared position the 紫微 group star comes first.
func PlacePrimary(anchor domain.Branch) [domain.BranchCount][]domain.Star {
	tianfu := MirrorAnchor(anchor)

	var placed [domain.BranchCount][]domain.Star
	for _, b := range domain.AllBranches() {
		stars := []domain.Star{}
		if s := ziweiTemplate[b.Add(-anchor.Index())]; s != "" {
			stars = append(stars, s)
		}
		if s := tianfuTemplate[b.Add(-tianfu.Index())]; s != "" {
			stars = append(stars, s)
		}
		placed[b] = stars
	}
	return placed
}
