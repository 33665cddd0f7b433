package ter

// Rate returns the rate of the first bracket whose upper bound is at least
// income. Upper bounds are inclusive.
func (t Table) Rate(income float64) float64 {
	for _, b := range t {
		if income <= b.UpperBound {
			return b.Rate
		}
	}
	// only reachable for a table without its sentinel
	return t[len(t)-1].Rate
}

// RateFor looks up the TER rate for a monthly gross income. The gross-up
// calculator queries it with grossed-up totals as well as raw incomes.
func RateFor(c Category, income float64) float64 {
	return table(c).Rate(income)
}
