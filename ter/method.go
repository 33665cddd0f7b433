package ter

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMethod = errors.New("unknown calculation method")

// Method selects who bears the tax.
type Method int

const (
	// Gross: the employee bears the tax, deducted from pay.
	Gross Method = iota
	// GrossUp: the employer pays a taxable allowance equal to the tax.
	GrossUp
)

func (m Method) String() string {
	switch m {
	case Gross:
		return "gross"
	case GrossUp:
		return "gross-up"
	}
	panic(fmt.Sprintf("ter: invalid method %d", int(m)))
}

func (m Method) Label() string {
	switch m {
	case Gross:
		return "Gross - Pajak ditanggung karyawan (dipotong dari gaji)"
	case GrossUp:
		return "Gross Up - Pajak ditunjang perusahaan (dapat tunjangan pajak)"
	}
	panic(fmt.Sprintf("ter: invalid method %d", int(m)))
}

func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gross":
		return Gross, nil
	case "gross-up", "grossup", "gross_up", "gross up":
		return GrossUp, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}
