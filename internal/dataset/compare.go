package dataset

import (
	"math"
	"strings"

	"datareport/adapters/datareadiness/coercer"
)

// Operator is a comparison used by conditional cleaning steps.
type Operator int

const (
	OpInvalid Operator = iota
	OpEqual
	OpNotEqual
	OpGreater
	OpLess
	OpGreaterOrEqual
	OpLessOrEqual
)

var operatorSymbols = map[Operator]string{
	OpEqual:          "=",
	OpNotEqual:       "!=",
	OpGreater:        ">",
	OpLess:           "<",
	OpGreaterOrEqual: ">=",
	OpLessOrEqual:    "<=",
}

func (o Operator) String() string {
	if s, ok := operatorSymbols[o]; ok {
		return s
	}
	return "invalid"
}

// ParseOperator maps "=", "!=", ">", "<", ">=" or "<=" to an Operator. "=="
// is accepted for "=". Anything else yields OpInvalid and false.
func ParseOperator(s string) (Operator, bool) {
	s = strings.TrimSpace(s)
	if s == "==" {
		return OpEqual, true
	}
	for op, sym := range operatorSymbols {
		if sym == s {
			return op, true
		}
	}
	return OpInvalid, false
}

// Compare evaluates a op b. When both operands parse as numbers (leading
// numeric prefix, as in "12px") they are compared numerically, otherwise
// both are compared as strings. OpInvalid compares false.
func Compare(a, b string, op Operator) bool {
	na, nb := coercer.ParseFloat(a), coercer.ParseFloat(b)
	if !math.IsNaN(na) && !math.IsNaN(nb) {
		return compareOrdered(na, nb, op)
	}
	return compareOrdered(a, b, op)
}

func compareOrdered[T float64 | string](a, b T, op Operator) bool {
	switch op {
	case OpEqual:
		return a == b
	case OpNotEqual:
		return a != b
	case OpGreater:
		return a > b
	case OpLess:
		return a < b
	case OpGreaterOrEqual:
		return a >= b
	case OpLessOrEqual:
		return a <= b
	}
	return false
}
