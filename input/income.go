// Package input reads and validates what the calculator needs from a
// terminal: the monthly income, the PTKP status and the method.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxIncome is the largest monthly income accepted, in Rupiah.
const MaxIncome int64 = 1_000_000_000_000_000

var (
	ErrEmpty     = errors.New("input tidak boleh kosong")
	ErrSeparator = errors.New("tidak menerima tanda pemisah atau desimal")
	ErrNotDigits = errors.New("hanya boleh angka 0-9 tanpa spasi atau simbol")
	ErrTooLarge  = fmt.Errorf("angka terlalu besar, maksimal adalah %d", MaxIncome)
)

// ParseIncome accepts a plain run of digits, e.g. "10000000".
func ParseIncome(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)

	if strings.ContainsAny(raw, ".,") {
		return 0, ErrSeparator
	}
	if raw == "" {
		return 0, ErrEmpty
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, ErrNotDigits
		}
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// only digits remain, so the only failure is overflow
		return 0, ErrTooLarge
	}
	if v > MaxIncome {
		return 0, ErrTooLarge
	}
	return v, nil
}
