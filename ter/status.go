// Package ter computes monthly PPh 21 withholding with the TER
// (tarif efektif rata-rata) tables.
package ter

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStatus = errors.New("unknown PTKP status")

// Status is the PTKP marital/dependents classification of an employee.
type Status int

const (
	TK0 Status = iota
	TK1
	TK2
	TK3
	K0
	K1
	K2
	K3
)

var statuses = []Status{TK0, TK1, TK2, TK3, K0, K1, K2, K3}

// Statuses returns every status in menu order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// Code returns the short form used on tax forms, e.g. "TK/0".
func (s Status) Code() string {
	switch s {
	case TK0:
		return "TK/0"
	case TK1:
		return "TK/1"
	case TK2:
		return "TK/2"
	case TK3:
		return "TK/3"
	case K0:
		return "K/0"
	case K1:
		return "K/1"
	case K2:
		return "K/2"
	case K3:
		return "K/3"
	}
	panic(fmt.Sprintf("ter: invalid status %d", int(s)))
}

func (s Status) Label() string {
	switch s {
	case TK0:
		return "TK/0 - Tidak Kawin, Tanpa Tanggungan"
	case TK1:
		return "TK/1 - Tidak Kawin, 1 Tanggungan"
	case TK2:
		return "TK/2 - Tidak Kawin, 2 Tanggungan"
	case TK3:
		return "TK/3 - Tidak Kawin, 3 Tanggungan"
	case K0:
		return "K/0  - Kawin, Tanpa Tanggungan"
	case K1:
		return "K/1  - Kawin, 1 Tanggungan"
	case K2:
		return "K/2  - Kawin, 2 Tanggungan"
	case K3:
		return "K/3  - Kawin, 3 Tanggungan"
	}
	panic(fmt.Sprintf("ter: invalid status %d", int(s)))
}

func (s Status) String() string { return s.Code() }

// Category maps the status to its TER category. The grouping is fixed by
// PP 58/2023 and is not configurable.
func (s Status) Category() Category {
	switch s {
	case TK0, TK1, K0:
		return CategoryA
	case TK2, TK3, K1, K2:
		return CategoryB
	case K3:
		return CategoryC
	}
	panic(fmt.Sprintf("ter: invalid status %d", int(s)))
}

// ParseStatus accepts the code form ("TK/0", "k/3"), ignoring case and
// surrounding spaces.
func ParseStatus(code string) (Status, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, s := range statuses {
		if s.Code() == code {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, code)
}
