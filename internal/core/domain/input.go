package domain

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseStem accepts a stem character (甲..癸) or its 1-based ordinal ("1".."10").
func ParseStem(s string) (Stem, error) {
	s = strings.TrimSpace(s)
	for i, name := range stemNames {
		if name == s {
			return Stem(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= StemCount {
		return Stem(n - 1), nil
	}
	return 0, &InputError{Field: "stem", Value: s, Err: ErrInvalidInput}
}

// ParseBranch accepts a branch character (子..亥), its animal (鼠..豬), or its
// 1-based ordinal ("1".."12").
func ParseBranch(s string) (Branch, error) {
	s = strings.TrimSpace(s)
	for i := range branchNames {
		if branchNames[i] == s || animalNames[i] == s {
			return Branch(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= BranchCount {
		return Branch(n - 1), nil
	}
	return 0, &InputError{Field: "branch", Value: s, Err: ErrInvalidInput}
}

// MonthBranch converts a lunar month number (1-12) to its branch.
// Month 1 is 寅, month 11 is 子, month 12 is 丑.
func MonthBranch(month int) (Branch, error) {
	if month < 1 || month > 12 {
		return 0, &InputError{Field: "month", Value: strconv.Itoa(month), Err: ErrInvalidInput}
	}
	return BranchYin.Add(month - 1), nil
}

// HourBranch converts a clock hour (0-23) to its double-hour branch.
// 23:00 and 00:00 both fall in 子.
func HourBranch(hour int) (Branch, error) {
	if hour < 0 || hour > 23 {
		return 0, &InputError{Field: "hour", Value: strconv.Itoa(hour), Err: ErrInvalidInput}
	}
	return Branch(((hour + 1) / 2) % BranchCount), nil
}

// ParseMonth accepts a branch character or a lunar month number.
// Numbers are always read as month numbers, never as branch ordinals.
func ParseMonth(s string) (Branch, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return MonthBranch(n)
	}
	b, err := ParseBranch(s)
	if err != nil {
		return 0, &InputError{Field: "month", Value: s, Err: ErrInvalidInput}
	}
	return b, nil
}

// ParseHour accepts a branch character (optionally suffixed with 時) or a
// clock hour. Numbers are always read as clock hours.
func ParseHour(s string) (Branch, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "時")
	if n, err := strconv.Atoi(s); err == nil {
		return HourBranch(n)
	}
	b, err := ParseBranch(s)
	if err != nil {
		return 0, &InputError{Field: "hour", Value: s, Err: ErrInvalidInput}
	}
	return b, nil
}

// ParseDay accepts a lunar day number 1-30.
func ParseDay(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < MinDay || n > MaxDay {
		return 0, &InputError{Field: "day", Value: s, Err: ErrInvalidInput}
	}
	return n, nil
}

// YearPillar converts a civil year to its sexagenary stem and branch.
// 1984 is 甲子; the cycle is extended proleptically in both directions.
func YearPillar(year int) (Stem, Branch) {
	return Stem(mod(year-4, StemCount)), Branch(mod(year-4, BranchCount))
}

// ParsePillar reads a two-character year pillar such as "癸卯".
// The stem and branch must share parity, as in every real sexagenary pair.
func ParsePillar(s string) (Stem, Branch, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 2 {
		return 0, 0, &InputError{Field: "pillar", Value: s, Err: ErrInvalidInput}
	}
	first, size := utf8.DecodeRuneInString(s)
	stem, err := ParseStem(string(first))
	if err != nil {
		return 0, 0, &InputError{Field: "pillar", Value: s, Err: ErrInvalidInput}
	}
	branch, err := ParseBranch(s[size:])
	if err != nil {
		return 0, 0, &InputError{Field: "pillar", Value: s, Err: ErrInvalidInput}
	}
	if stem.Index()%2 != branch.Index()%2 {
		return 0, 0, &InputError{Field: "pillar", Value: s, Err: ErrInvalidInput}
	}
	return stem, branch, nil
}

// ResolveBirthInput assembles a BirthInput from loosely typed fields as
// received from the CLI or MCP. The year comes from pillar when set,
// otherwise from the civil year; when both are set they must agree.
func ResolveBirthInput(year int, pillar, month string, day int, hour string) (BirthInput, error) {
	var in BirthInput
	switch {
	case pillar != "":
		stem, branch, err := ParsePillar(pillar)
		if err != nil {
			return BirthInput{}, err
		}
		if year != 0 {
			if ys, yb := YearPillar(year); ys != stem || yb != branch {
				return BirthInput{}, &InputError{Field: "pillar", Value: pillar, Err: ErrInvalidInput}
			}
		}
		in.YearStem, in.YearBranch = stem, branch
	case year != 0:
		in.YearStem, in.YearBranch = YearPillar(year)
	default:
		return BirthInput{}, &InputError{Field: "year", Value: "", Err: ErrInvalidInput}
	}

	m, err := ParseMonth(month)
	if err != nil {
		return BirthInput{}, err
	}
	h, err := ParseHour(hour)
	if err != nil {
		return BirthInput{}, err
	}
	in.Month, in.Day, in.Hour = m, day, h

	if err := in.Validate(); err != nil {
		return BirthInput{}, err
	}
	return in, nil
}
