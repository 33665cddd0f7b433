// Package rupiah renders amounts for display.
package rupiah

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders a whole Rupiah amount as "Rp 1.234.567".
func Format(amount int64) string {
	if amount < 0 {
		panic(fmt.Sprintf("rupiah: negative amount %d", amount))
	}
	if amount == 0 {
		return "Rp 0"
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3 + 3)
	b.WriteString("Rp ")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// FormatRate renders a percentage with a decimal comma: 2%, 0,25%.
func FormatRate(rate float64) string {
	s := strconv.FormatFloat(rate, 'f', -1, 64)
	return strings.Replace(s, ".", ",", 1) + "%"
}
