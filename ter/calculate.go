package ter

import "fmt"

// Result holds the amounts derived by one calculation. Amounts are whole
// Rupiah, truncated.
type Result struct {
	Method    Method
	Category  Category
	Income    int64
	Rate      float64
	Tax       int64
	Allowance int64
	// Total is Income plus Allowance.
	Total      int64
	Iterations int
	Converged  bool
}

// TakeHomePay is what the employee receives after withholding.
func (r Result) TakeHomePay() int64 {
	return r.Total - r.Tax
}

// Calculate dispatches to the gross or gross-up procedure.
func Calculate(income int64, c Category, m Method) Result {
	switch m {
	case Gross:
		rate := RateFor(c, float64(income))
		return Result{
			Method:    Gross,
			Category:  c,
			Income:    income,
			Rate:      rate,
			Tax:       GrossTax(income, rate),
			Total:     income,
			Converged: true,
		}
	case GrossUp:
		return GrossUpCategory(income, c)
	}
	panic(fmt.Sprintf("ter: invalid method %d", int(m)))
}

// CalculateFor classifies s and calculates with its category.
func CalculateFor(income int64, s Status, m Method) Result {
	return Calculate(income, s.Category(), m)
}
