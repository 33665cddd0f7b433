package ter

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown TER category")

// Category is one of the three TER rate categories.
type Category int

const (
	CategoryA Category = iota
	CategoryB
	CategoryC
)

var categories = []Category{CategoryA, CategoryB, CategoryC}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) String() string {
	switch c {
	case CategoryA:
		return "A"
	case CategoryB:
		return "B"
	case CategoryC:
		return "C"
	}
	panic(fmt.Sprintf("ter: invalid category %d", int(c)))
}

// Statuses returns the statuses classified into c.
func (c Category) Statuses() []Status {
	var out []Status
	for _, s := range statuses {
		if s.Category() == c {
			out = append(out, s)
		}
	}
	return out
}

// ParseCategory is used by the admin API to address a table by name.
func ParseCategory(name string) (Category, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, c := range categories {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}
