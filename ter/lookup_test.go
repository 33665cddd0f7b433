package ter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableShape(t *testing.T) {
	sizes := map[Category]int{CategoryA: 44, CategoryB: 40, CategoryC: 41}

	for _, c := range Categories() {
		t.Run(c.String(), func(t *testing.T) {
			tbl := TableFor(c)
			require.Len(t, tbl, sizes[c])
			assert.Equal(t, Sentinel, tbl[len(tbl)-1].UpperBound)
			assert.Equal(t, 0.0, tbl[0].Rate)
			assert.Equal(t, 34.0, tbl[len(tbl)-1].Rate)

			for i := 1; i < len(tbl); i++ {
				assert.Greater(t, tbl[i].UpperBound, tbl[i-1].UpperBound, "bracket %d", i)
				assert.GreaterOrEqual(t, tbl[i].Rate, tbl[i-1].Rate, "bracket %d", i)
				assert.Less(t, tbl[i].Rate, 100.0)
			}
		})
	}
}

func TestTableForReturnsCopy(t *testing.T) {
	tbl := TableFor(CategoryA)
	tbl[0].Rate = 99

	assert.Equal(t, 0.0, RateFor(CategoryA, 0))
}

func TestRateFor(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		income   float64
		want     float64
	}{
		{"A zero", CategoryA, 0, 0},
		{"A first boundary", CategoryA, 5_400_000, 0},
		{"A past first boundary", CategoryA, 5_400_001, 0.25},
		{"A ten million", CategoryA, 10_000_000, 2},
		{"A boundary is inclusive", CategoryA, 10_050_000, 2},
		{"A just above boundary", CategoryA, 10_050_000.5, 2.25},
		{"A last boundary", CategoryA, 1_400_000_000, 33},
		{"A top bracket", CategoryA, 1_400_000_001, 34},
		{"B first boundary", CategoryB, 6_200_000, 0},
		{"B ten million", CategoryB, 10_000_000, 1.5},
		{"B last boundary", CategoryB, 1_405_000_000, 33},
		{"B top bracket", CategoryB, 1e15, 34},
		{"C first boundary", CategoryC, 6_600_000, 0},
		{"C twelve million", CategoryC, 12_000_000, 2},
		{"C last boundary", CategoryC, 1_419_000_000, 33},
		{"C top bracket", CategoryC, 1_419_000_000.01, 34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RateFor(tt.category, tt.income))
		})
	}
}

func TestRateForUsesSmallestMatchingBracket(t *testing.T) {
	for _, c := range Categories() {
		tbl := TableFor(c)
		for i, b := range tbl[:len(tbl)-1] {
			assert.Equal(t, b.Rate, RateFor(c, b.UpperBound), "%s bracket %d", c, i)
			assert.Equal(t, tbl[i+1].Rate, RateFor(c, b.UpperBound+1), "%s bracket %d", c, i)
		}
	}
}

func TestRateForIsMonotone(t *testing.T) {
	for _, c := range Categories() {
		prev := RateFor(c, 0)
		for income := 0.0; income <= 2_000_000_000; income += 250_000 {
			rate := RateFor(c, income)
			require.GreaterOrEqual(t, rate, prev, "%s at %.0f", c, income)
			prev = rate
		}
	}
}
