package coercer

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"datareport/domain/table"
)

// truthyTokens are the cell values BitVal maps to 1, compared case-insensitively.
var truthyTokens = map[string]bool{
	"yes":  true,
	"true": true,
	"y":    true,
	"t":    true,
}

// BitVal maps a cell to 1 when it is one of yes/true/y/t (any case) or "1",
// and to 0 otherwise.
func BitVal(s string) float64 {
	if s == "1" || truthyTokens[strings.ToLower(s)] {
		return 1
	}
	return 0
}

// ParseFloat parses the longest numeric prefix of s after leading whitespace.
// It returns NaN when s does not start with a number, so "12abc" is 12 and
// "abc" is NaN. "Infinity" with an optional sign parses to ±Inf.
func ParseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, isSpace)
	if s == "" {
		return math.NaN()
	}

	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	// Only consume an exponent when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}

	num := s[:i]
	// ParseFloat reports ErrRange on overflow but still returns ±Inf or 0,
	// which is the value we want.
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}

// ParseInt parses the leading base-10 integer of s after whitespace.
func ParseInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, isSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsNumeric reports whether ParseFloat finds a number in s.
func IsNumeric(s string) bool {
	return !math.IsNaN(ParseFloat(s))
}

// IsEmpty reports whether a cell counts as missing.
func IsEmpty(s string) bool {
	return s == ""
}

// Value is one coerced cell.
type Value struct {
	Number float64
	Label  string
	Type   table.DeclaredType
}

// String renders the value the way it would appear in a label sequence.
func (v Value) String() string {
	if v.Type.IsNumeric() {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Label
}

// Coerce applies a declared type to one cell: Quantitative parses a number
// (NaN when unparsable), Binary applies BitVal and Categorical keeps the raw
// string.
func Coerce(cell string, typ table.DeclaredType) Value {
	switch typ {
	case table.Quantitative:
		return Value{Number: ParseFloat(cell), Type: typ}
	case table.Binary:
		return Value{Number: BitVal(cell), Type: typ}
	default:
		return Value{Label: cell, Type: table.Categorical}
	}
}

// NumericValues parses every cell and drops the ones that are not numbers.
func NumericValues(cells []string) []float64 {
	out := make([]float64, 0, len(cells))
	for _, c := range cells {
		if v := ParseFloat(c); !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
