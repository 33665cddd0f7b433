package input

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windeesel365/pph21-ter/ter"
)

func TestParseIncome(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr error
	}{
		{name: "plain digits", raw: "10000000", want: 10_000_000},
		{name: "zero", raw: "0", want: 0},
		{name: "trailing newline", raw: "5000\n", want: 5000},
		{name: "upper limit", raw: "1000000000000000", want: MaxIncome},
		{name: "empty", raw: "", wantErr: ErrEmpty},
		{name: "dot separator", raw: "10.000", wantErr: ErrSeparator},
		{name: "comma separator", raw: "10,000", wantErr: ErrSeparator},
		{name: "decimal", raw: "100.5", wantErr: ErrSeparator},
		{name: "negative", raw: "-5", wantErr: ErrNotDigits},
		{name: "underscore", raw: "10_000", wantErr: ErrNotDigits},
		{name: "inner space", raw: "10 000", wantErr: ErrNotDigits},
		{name: "above limit", raw: "1000000000000001", wantErr: ErrTooLarge},
		{name: "overflows int64", raw: "99999999999999999999", wantErr: ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIncome(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadIncomeRepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n10.000\nabc\n10000\n"), &out)

	got, err := p.ReadIncome("Penghasilan: ")

	require.NoError(t, err)
	assert.Equal(t, int64(10000), got)
	assert.Equal(t, 4, strings.Count(out.String(), "Penghasilan: "))
	assert.Contains(t, out.String(), "Input tidak boleh kosong")
	assert.Contains(t, out.String(), "Contoh benar")
	assert.Contains(t, out.String(), "Hanya boleh angka 0-9")
}

func TestReadIncomeWithoutTrailingNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("750000"), io.Discard)

	got, err := p.ReadIncome("> ")

	require.NoError(t, err)
	assert.Equal(t, int64(750_000), got)
}

func TestReadIncomeEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader("abc\n"), io.Discard)

	_, err := p.ReadIncome("> ")

	assert.ErrorIs(t, err, io.EOF)
}

func TestSelectStatus(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("9\n0\n8\n"), &out)

	got, err := p.SelectStatus()

	require.NoError(t, err)
	assert.Equal(t, ter.K3, got)
	assert.Contains(t, out.String(), "1. TK/0 - Tidak Kawin, Tanpa Tanggungan")
	assert.Equal(t, 2, strings.Count(out.String(), "Pilihan tidak valid"))
}

func TestSelectMethod(t *testing.T) {
	p := NewPrompter(strings.NewReader("x\n2\n"), io.Discard)

	got, err := p.SelectMethod()

	require.NoError(t, err)
	assert.Equal(t, ter.GrossUp, got)
}
