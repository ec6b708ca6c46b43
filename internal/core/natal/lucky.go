package natal

import "github.com/custodia-labs/ziwei/internal/core/domain"

// nobleTable holds, per year stem, the branches of 天魁, 天鉞 and 祿存.
var nobleTable = [domain.StemCount][3]domain.Branch{
	{domain.BranchChou, domain.BranchWei, domain.BranchYin},  // 甲
	{domain.BranchZi, domain.BranchShen, domain.BranchMao},   // 乙
	{domain.BranchHai, domain.BranchYou, domain.BranchSi},    // 丙
	{domain.BranchHai, domain.BranchYou, domain.BranchWu},    // 丁
	{domain.BranchChou, domain.BranchWei, domain.BranchSi},   // 戊
	{domain.BranchZi, domain.BranchShen, domain.BranchWu},    // 己
	{domain.BranchChou, domain.BranchWei, domain.BranchShen}, // 庚
	{domain.BranchWu, domain.BranchYin, domain.BranchYou},    // 辛
	{domain.BranchMao, domain.BranchSi, domain.BranchHai},    // 壬
	{domain.BranchMao, domain.BranchSi, domain.BranchZi},     // 癸
}

// horseTable holds 天馬 indexed by year branch mod 4:
// 申子辰 -> 寅, 巳酉丑 -> 亥, 寅午戌 -> 申, 亥卯未 -> 巳.
var horseTable = [4]domain.Branch{
	domain.BranchYin,
	domain.BranchHai,
	domain.BranchShen,
	domain.BranchSi,
}

// LuckyPlacement is where each lucky star fell.
type LuckyPlacement struct {
	ZuoFu    domain.Branch
	YouBi    domain.Branch
	WenChang domain.Branch
	WenQu    domain.Branch
	TianKui  domain.Branch
	TianYue  domain.Branch
	LuCun    domain.Branch
	TianMa   domain.Branch
}

// LocateLucky computes the branch of every lucky star.
func LocateLucky(yearStem domain.Stem, yearBranch, month, hour domain.Branch) LuckyPlacement {
	noble := nobleTable[yearStem]
	return LuckyPlacement{
		ZuoFu:    domain.BranchChen.Add(month.Index() - domain.BranchYin.Index()),
		YouBi:    domain.BranchXu.Add(domain.BranchYin.Index() - month.Index()),
		WenChang: domain.BranchXu.Add(-hour.Index()),
		WenQu:    domain.BranchChen.Add(hour.Index()),
		TianKui:  noble[0],
		TianYue:  noble[1],
		LuCun:    noble[2],
		TianMa:   horseTable[yearBranch.Index()%4],
	}
}

// stars pairs each lucky star with its branch in fixed family order.
func (p LuckyPlacement) stars() []placement {
	return []placement{
		{domain.StarZuoFu, p.ZuoFu},
		{domain.StarYouBi, p.YouBi},
		{domain.StarWenChang, p.WenChang},
		{domain.StarWenQu, p.WenQu},
		{domain.StarTianKui, p.TianKui},
		{domain.StarTianYue, p.TianYue},
		{domain.StarLuCun, p.LuCun},
		{domain.StarTianMa, p.TianMa},
	}
}

// PlaceLucky returns the lucky stars at every position. Stars may share a
// position.
func PlaceLucky(yearStem domain.Stem, yearBranch, month, hour domain.Branch) [domain.BranchCount][]domain.Star {
	return scatter(LocateLucky(yearStem, yearBranch, month, hour).stars())
}

type placement struct {
	star   domain.Star
	branch domain.Branch
}

func scatter(placements []placement) [domain.BranchCount][]domain.Star {
	var out [domain.BranchCount][]domain.Star
	for i := range out {
		out[i] = []domain.Star{}
	}
	for _, p := range placements {
		out[p.branch] = append(out[p.branch], p.star)
	}
	return out
}
