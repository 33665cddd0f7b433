package ter

import (
	"fmt"
	"math"
)

// GrossTax applies rate (percent) to income and truncates to whole Rupiah.
func GrossTax(income int64, rate float64) int64 {
	if income < 0 {
		panic(fmt.Sprintf("ter: negative income %d", income))
	}
	return int64(math.Floor(float64(income) * rate / 100))
}
