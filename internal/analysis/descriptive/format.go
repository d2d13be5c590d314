package descriptive

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatNumber renders a number with the fewest digits that round-trip, using
// exponent notation only for very large or very small magnitudes. NaN and the
// infinities render as "NaN", "Infinity" and "-Infinity".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFixed renders v with exactly decimals digits after the point. The
// exact binary value is scaled and ties round away from zero, so 2.5 gives
// "3" at 0 decimals while 1.005 (stored just below) gives "1.00" at 2.
// Magnitudes from 1e21 up and non-finite values fall back to FormatNumber.
func FormatFixed(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1e21 {
		return FormatNumber(v)
	}
	if decimals < 0 {
		decimals = 0
	}
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}

	// 53 mantissa bits times at most 10^100 stays well inside fixedPrec
	scaled := new(big.Float).SetPrec(fixedPrec).SetFloat64(v)
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	scaled.Mul(scaled, new(big.Float).SetPrec(fixedPrec).SetInt(pow))

	n, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(fixedPrec).Sub(scaled, new(big.Float).SetPrec(fixedPrec).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	if decimals == 0 {
		return sign + digits
	}
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	cut := len(digits) - decimals
	return sign + digits[:cut] + "." + digits[cut:]
}

const fixedPrec = 1024
