package rupiah

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{7, "Rp 7"},
		{999, "Rp 999"},
		{1000, "Rp 1.000"},
		{200_000, "Rp 200.000"},
		{10_000_000, "Rp 10.000.000"},
		{13_291_139, "Rp 13.291.139"},
		{1_000_000_000_000_000, "Rp 1.000.000.000.000.000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.amount))
		})
	}
}

func TestFormatNegativePanics(t *testing.T) {
	assert.Panics(t, func() { Format(-1) })
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0%", FormatRate(0))
	assert.Equal(t, "0,25%", FormatRate(0.25))
	assert.Equal(t, "2%", FormatRate(2))
	assert.Equal(t, "21%", FormatRate(21))
	assert.Equal(t, "1,75%", FormatRate(1.75))
}
