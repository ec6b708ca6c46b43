package domain

// Star is the name of a chart star.
type Star string

// Primary stars. The first six travel with 紫微, the rest with 天府.
const (
	StarZiWei    Star = "紫微"
	StarTianJi   Star = "天機"
	StarTaiYang  Star = "太陽"
	StarWuQu     Star = "武曲"
	StarTianTong Star = "天同"
	StarLianZhen Star = "廉貞"

	StarTianFu    Star = "天府"
	StarTaiYin    Star = "太陰"
	StarTanLang   Star = "貪狼"
	StarJuMen     Star = "巨門"
	StarTianXiang Star = "天相"
	StarTianLiang Star = "天梁"
	StarQiSha     Star = "七殺"
	StarPoJun     Star = "破軍"
)

// Lucky stars.
const (
	StarZuoFu    Star = "左輔"
	StarYouBi    Star = "右弼"
	StarWenChang Star = "文昌"
	StarWenQu    Star = "文曲"
	StarTianKui  Star = "天魁"
	StarTianYue  Star = "天鉞"
	StarLuCun    Star = "祿存"
	StarTianMa   Star = "天馬"
)

// Unlucky stars.
const (
	StarQingYang Star = "擎羊"
	StarTuoLuo   Star = "陀羅"
	StarHuoXing  Star = "火星"
	StarLingXing Star = "鈴星"
	StarDiKong   Star = "地空"
	StarDiJie    Star = "地劫"
)

// StarFamily groups stars that are placed by the same set of rules.
type StarFamily string

// Star families.
const (
	FamilyPrimary StarFamily = "primary"
	FamilyLucky   StarFamily = "lucky"
	FamilyUnlucky StarFamily = "unlucky"
)

var (
	primaryStars = []Star{
		StarZiWei, StarTianJi, StarTaiYang, StarWuQu, StarTianTong, StarLianZhen,
		StarTianFu, StarTaiYin, StarTanLang, StarJuMen, StarTianXiang, StarTianLiang, StarQiSha, StarPoJun,
	}
	luckyStars = []Star{
		StarZuoFu, StarYouBi, StarWenChang, StarWenQu, StarTianKui, StarTianYue, StarLuCun, StarTianMa,
	}
	unluckyStars = []Star{
		StarQingYang, StarTuoLuo, StarHuoXing, StarLingXing, StarDiKong, StarDiJie,
	}
)

// PrimaryStars returns the 14 primary stars.
func PrimaryStars() []Star {
	return append([]Star(nil), primaryStars...)
}

// LuckyStars returns the 8 lucky stars.
func LuckyStars() []Star {
	return append([]Star(nil), luckyStars...)
}

// UnluckyStars returns the 6 unlucky stars.
func UnluckyStars() []Star {
	return append([]Star(nil), unluckyStars...)
}

// Family reports which family the star belongs to.
func (s Star) Family() (StarFamily, bool) {
	for _, fam := range []struct {
		family StarFamily
		stars  []Star
	}{
		{FamilyPrimary, primaryStars},
		{FamilyLucky, luckyStars},
		{FamilyUnlucky, unluckyStars},
	} {
		for _, candidate := range fam.stars {
			if candidate == s {
				return fam.family, true
			}
		}
	}
	return "", false
}

// String returns the star name.
func (s Star) String() string {
	return string(s)
}

// TransformationTag is one of the four transformations (四化).
type TransformationTag string

// Tags in their fixed order.
const (
	TagLu   TransformationTag = "祿"
	TagQuan TransformationTag = "權"
	TagKe   TransformationTag = "科"
	TagJi   TransformationTag = "忌"
)

// AllTransformationTags returns the tags in table order.
func AllTransformationTags() []TransformationTag {
	return []TransformationTag{TagLu, TagQuan, TagKe, TagJi}
}

// String returns the tag character.
func (t TransformationTag) String() string {
	return string(t)
}

// Transformation binds a tag to the star it transforms in a chart.
type Transformation struct {
	Tag  TransformationTag `json:"tag"`
	Star Star              `json:"star"`
}

// PlacedStar is a star at a chart position, optionally carrying a
// transformation tag.
type PlacedStar struct {
	Name Star              `json:"name"`
	Tag  TransformationTag `json:"tag,omitempty"`
}

// Tagged reports whether the star carries a transformation.
func (p PlacedStar) Tagged() bool {
	return p.Tag != ""
}

// WithTag returns a copy of the star annotated with tag.
func (p PlacedStar) WithTag(tag TransformationTag) PlacedStar {
	p.Tag = tag
	return p
}

// String renders the star, e.g. "破軍" or "破軍化祿".
func (p PlacedStar) String() string {
	if p.Tag == "" {
		return string(p.Name)
	}
	return string(p.Name) + "化" + string(p.Tag)
}
