package ter

import (
	"fmt"
	"math"
)

const (
	// MaxIterations bounds the fixed-point search. With a finite monotone
	// table the rate settles within a few steps.
	MaxIterations = 10
	// Epsilon is the tolerance, in percentage points, for two rates to be
	// considered equal.
	Epsilon = 0.0001
)

// GrossUpCategory finds the tax allowance that, added to income, produces a tax
// equal to itself under the category's TER table.
func GrossUpCategory(income int64, c Category) Result {
	r := GrossUpTable(income, table(c))
	r.Category = c
	return r
}

// GrossUpTable runs the gross-up iteration against an arbitrary table.
//
// Each round grosses income up with the candidate rate and looks the total
// up again; the rate is final once the lookup reproduces it. If the
// iteration cap is hit, the amounts are derived from the last candidate
// rate and Converged is false.
func GrossUpTable(income int64, t Table) Result {
	if income < 0 {
		panic(fmt.Sprintf("ter: negative income %d", income))
	}

	rate := t.Rate(float64(income))
	for i := 1; i <= MaxIterations; i++ {
		total := grossedUpTotal(income, rate)
		next := t.Rate(total)
		if math.Abs(next-rate) < Epsilon {
			return grossUpResult(income, total, rate, i, true)
		}
		rate = next
	}

	return grossUpResult(income, grossedUpTotal(income, rate), rate, MaxIterations, false)
}

func grossedUpTotal(income int64, rate float64) float64 {
	if rate >= 100 {
		panic(fmt.Sprintf("ter: rate %v leaves nothing to gross up", rate))
	}
	return math.Floor(float64(income) * 100 / (100 - rate))
}

func grossUpResult(income int64, total, rate float64, iterations int, converged bool) Result {
	return Result{
		Method:     GrossUp,
		Income:     income,
		Rate:       rate,
		Tax:        int64(math.Floor(total * rate / 100)),
		Allowance:  int64(total) - income,
		Total:      int64(total),
		Iterations: iterations,
		Converged:  converged,
	}
}
