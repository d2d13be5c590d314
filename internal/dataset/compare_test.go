package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		op   Operator
		want bool
	}{
		{"10", "9", OpGreater, true},
		{"10", "10.0", OpEqual, true},
		{"12px", "3", OpGreater, true},
		{"abc", "abd", OpLess, true},
		{"10", "9a", OpLess, false},
		{"10", "x", OpLess, true}, // string comparison: "1" < "x"
		{"", "10", OpGreater, false},
		{"B", "B", OpNotEqual, false},
		{"5", "5", OpGreaterOrEqual, true},
		{"5", "6", OpLessOrEqual, true},
		{"5", "5", OpInvalid, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Compare(c.a, c.b, c.op), "%q %s %q", c.a, c.op, c.b)
	}
}

func TestParseOperator(t *testing.T) {
	for _, sym := range []string{"=", "!=", ">", "<", ">=", "<="} {
		op, ok := ParseOperator(sym)
		assert.True(t, ok, sym)
		assert.Equal(t, sym, op.String())
	}

	op, ok := ParseOperator(" == ")
	assert.True(t, ok)
	assert.Equal(t, OpEqual, op)

	op, ok = ParseOperator("<>")
	assert.False(t, ok)
	assert.Equal(t, OpInvalid, op)
	assert.Equal(t, "invalid", op.String())
}
