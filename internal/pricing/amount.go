package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a user-typed amount. Both "1234.56" and the Brazilian
// "1.234,56" / "R$ 1.234,56" forms are accepted; anything else is 0.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return finite(d.InexactFloat64())
}

// FormatRaw renders a value the way an edit input is seeded.
func FormatRaw(v float64) string {
	return strconv.FormatFloat(finite(v), 'f', -1, 64)
}

// Round2 rounds a monetary value half away from zero to cents.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(finite(v)).Round(2).InexactFloat64()
}

// FormatBRL renders "R$ 1.234,56".
func FormatBRL(v float64) string {
	fixed := decimal.NewFromFloat(finite(v)).StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i != 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + "R$ " + b.String() + "," + frac
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func nonNegative(v float64) float64 {
	v = finite(v)
	if v < 0 {
		return 0
	}
	return v
}

func safeDiv(num, den float64) float64 {
	if den <= 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0
	}
	return nonNegative(num / den)
}
