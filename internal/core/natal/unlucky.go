package natal

import "github.com/custodia-labs/ziwei/internal/core/domain"

// goatTable holds, per year stem, the branches of 擎羊 and 陀羅 (either side
// of 祿存).
var goatTable = [domain.StemCount][2]domain.Branch{
	{domain.BranchMao, domain.BranchChou}, // 甲
	{domain.BranchChen, domain.BranchYin}, // 乙
	{domain.BranchWu, domain.BranchChen},  // 丙
	{domain.BranchWei, domain.BranchSi},   // 丁
	{domain.BranchWu, domain.BranchChen},  // 戊
	{domain.BranchWei, domain.BranchSi},   // 己
	{domain.BranchYou, domain.BranchWei},  // 庚
	{domain.BranchXu, domain.BranchShen},  // 辛
	{domain.BranchZi, domain.BranchXu},    // 壬
	{domain.BranchChou, domain.BranchHai}, // 癸
}

// fireBellTable holds the 子-hour branches of 火星 and 鈴星, indexed by year
// branch mod 4. The hour is added on top.
var fireBellTable = [4][2]domain.Branch{
	{domain.BranchYin, domain.BranchXu},   // 申子辰
	{domain.BranchMao, domain.BranchXu},   // 巳酉丑
	{domain.BranchChou, domain.BranchMao}, // 寅午戌
	{domain.BranchYou, domain.BranchXu},   // 亥卯未
}

// UnluckyPlacement is where each unlucky star fell.
type UnluckyPlacement struct {
	QingYang domain.Branch
	TuoLuo   domain.Branch
	HuoXing  domain.Branch
	LingXing domain.Branch
	DiKong   domain.Branch
	DiJie    domain.Branch
}

// LocateUnlucky computes the branch of every unlucky star. Hour offsets are
// always reduced mod 12.
func LocateUnlucky(yearStem domain.Stem, yearBranch, hour domain.Branch) UnluckyPlacement {
	goat := goatTable[yearStem]
	fireBell := fireBellTable[yearBranch.Index()%4]
	return UnluckyPlacement{
		QingYang: goat[0],
		TuoLuo:   goat[1],
		HuoXing:  fireBell[0].Add(hour.Index()),
		LingXing: fireBell[1].Add(hour.Index()),
		DiKong:   domain.BranchHai.Add(-hour.Index()),
		DiJie:    domain.BranchHai.Add(hour.Index()),
	}
}

func (p UnluckyPlacement) stars() []placement {
	return []placement{
		{domain.StarQingYang, p.QingYang},
		{domain.StarTuoLuo, p.TuoLuo},
		{domain.StarHuoXing, p.HuoXing},
		{domain.StarLingXing, p.LingXing},
		{domain.StarDiKong, p.DiKong},
		{domain.StarDiJie, p.DiJie},
	}
}

// PlaceUnlucky returns the unlucky stars at every position.
func PlaceUnlucky(yearStem domain.Stem, yearBranch, hour domain.Branch) [domain.BranchCount][]domain.Star {
	return scatter(LocateUnlucky(yearStem, yearBranch, hour).stars())
}
