package natal

import "github.com/custodia-labs/ziwei/internal/core/domain"

// transformTable lists, per year stem, the stars taking 祿, 權, 科 and 忌.
// Some rows name lucky stars (文昌, 文曲, 左輔, 右弼).
var transformTable = [domain.StemCount][4]domain.Star{
	{domain.StarLianZhen, domain.StarPoJun, domain.StarWuQu, domain.StarTaiYang},       // 甲
	{domain.StarTianJi, domain.StarTianLiang, domain.StarZiWei, domain.StarTaiYin},     // 乙
	{domain.StarTianTong, domain.StarTianJi, domain.StarWenChang, domain.StarLianZhen}, // 丙
	{domain.StarTaiYin, domain.StarTianTong, domain.StarTianJi, domain.StarJuMen},      // 丁
	{domain.StarTanLang, domain.StarTaiYin, domain.StarYouBi, domain.StarTianJi},       // 戊
	{domain.StarWuQu, domain.StarTanLang, domain.StarTianLiang, domain.StarWenQu},      // 己
	{domain.StarTaiYang, domain.StarWuQu, domain.StarTaiYin, domain.StarTianTong},      // 庚
	{domain.StarJuMen, domain.StarTaiYang, domain.StarWenQu, domain.StarWenChang},      // 辛
	{domain.StarTianLiang, domain.StarZiWei, domain.StarZuoFu, domain.StarWuQu},        // 壬
	{domain.StarPoJun, domain.StarJuMen, domain.StarTaiYin, domain.StarTanLang},        // 癸
}

// ResolveTransformations returns the four tag bindings for a year stem in
// tag order.
func ResolveTransformations(yearStem domain.Stem) [4]domain.Transformation {
	row := transformTable[yearStem]
	tags := domain.AllTransformationTags()

	var out [4]domain.Transformation
	for i, tag := range tags {
		out[i] = domain.Transformation{Tag: tag, Star: row[i]}
	}
	return out
}
