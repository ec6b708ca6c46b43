package domain

// Stem is one of the ten heavenly stems, ordered 甲 (0) through 癸 (9).
type Stem int

// The ten stems in cyclic order.
const (
	StemJia Stem = iota
	StemYi
	StemBing
	StemDing
	StemWu
	StemJi
	StemGeng
	StemXin
	StemRen
	StemGui
)

// StemCount is the size of the stem cycle.
const StemCount = 10

var stemNames = [StemCount]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// AllStems returns the stems in cyclic order.
func AllStems() []Stem {
	stems := make([]Stem, StemCount)
	for i := range stems {
		stems[i] = Stem(i)
	}
	return stems
}

// Index returns the position of the stem in the cycle.
func (s Stem) Index() int {
	return int(s)
}

// Add advances the stem by n steps, wrapping mod 10.
func (s Stem) Add(n int) Stem {
	return Stem(mod(int(s)+n, StemCount))
}

// IsValid returns true if the stem is inside the alphabet.
func (s Stem) IsValid() bool {
	return s >= 0 && s < StemCount
}

// String returns the stem character.
func (s Stem) String() string {
	if !s.IsValid() {
		return unknownDescription
	}
	return stemNames[s]
}

// MarshalText encodes the stem as its character.
func (s Stem) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a stem character.
func (s *Stem) UnmarshalText(text []byte) error {
	v, err := ParseStem(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Branch is one of the twelve earthly branches, ordered 子 (0) through 亥 (11).
// Every chart is keyed by branch.
type Branch int

// The twelve branches in cyclic order.
const (
	BranchZi Branch = iota
	BranchChou
	BranchYin
	BranchMao
	BranchChen
	BranchSi
	BranchWu
	BranchWei
	BranchShen
	BranchYou
	BranchXu
	BranchHai
)

// BranchCount is the size of the branch cycle and the number of chart positions.
const BranchCount = 12

var (
	branchNames = [BranchCount]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
	animalNames = [BranchCount]string{"鼠", "牛", "虎", "兔", "龍", "蛇", "馬", "羊", "猴", "雞", "狗", "豬"}
)

// AllBranches returns the branches in cyclic order starting at 子.
func AllBranches() []Branch {
	branches := make([]Branch, BranchCount)
	for i := range branches {
		branches[i] = Branch(i)
	}
	return branches
}

// Index returns the position of the branch in the cycle.
func (b Branch) Index() int {
	return int(b)
}

// Add advances the branch by n steps (n may be negative), wrapping mod 12.
func (b Branch) Add(n int) Branch {
	return Branch(mod(int(b)+n, BranchCount))
}

// IsValid returns true if the branch is inside the alphabet.
func (b Branch) IsValid() bool {
	return b >= 0 && b < BranchCount
}

// String returns the branch character.
func (b Branch) String() string {
	if !b.IsValid() {
		return unknownDescription
	}
	return branchNames[b]
}

// Animal returns the zodiac animal aliased to the branch.
func (b Branch) Animal() string {
	if !b.IsValid() {
		return unknownDescription
	}
	return animalNames[b]
}

// MarshalText encodes the branch as its character.
func (b Branch) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes a branch character or animal.
func (b *Branch) UnmarshalText(text []byte) error {
	v, err := ParseBranch(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Palace is one of the twelve life palaces. The zero value is the self palace.
type Palace int

// The palaces in reference order. Charts assign them to branches by rotation.
const (
	PalaceSelf Palace = iota
	PalaceParents
	PalaceFortune
	PalaceProperty
	PalaceCareer
	PalaceFriends
	PalaceTravel
	PalaceHealth
	PalaceWealth
	PalaceChildren
	PalaceSpouse
	PalaceSiblings
)

// PalaceCount is the number of palaces.
const PalaceCount = 12

var palaceNames = [PalaceCount]string{
	"命宮", "父母", "福德", "田宅", "官祿", "交友",
	"遷移", "疾厄", "財帛", "子女", "夫妻", "兄弟",
}

// AllPalaces returns the palaces in reference order.
func AllPalaces() []Palace {
	palaces := make([]Palace, PalaceCount)
	for i := range palaces {
		palaces[i] = Palace(i)
	}
	return palaces
}

// IsValid returns true if the palace is inside the alphabet.
func (p Palace) IsValid() bool {
	return p >= 0 && p < PalaceCount
}

// String returns the palace name.
func (p Palace) String() string {
	if !p.IsValid() {
		return unknownDescription
	}
	return palaceNames[p]
}

// MarshalText encodes the palace as its name.
func (p Palace) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a palace name.
func (p *Palace) UnmarshalText(text []byte) error {
	for i, name := range palaceNames {
		if name == string(text) {
			*p = Palace(i)
			return nil
		}
	}
	return &InputError{Field: "palace", Value: string(text), Err: ErrInvalidInput}
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
