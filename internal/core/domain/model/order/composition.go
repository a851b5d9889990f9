package order

import (
	"fmt"
	"strconv"
	"strings"

	"orderdesk/internal/pkg/errs"
)

const lineSeparator = ", "

// Line is a single position of an order: a product name and how many of it
// the customer ordered.
type Line struct {
	Name     string
	Quantity int
}

// Composition is the itemized content of an order. It is a value object:
// lines keep their insertion order and the whole value serializes to the
// canonical "Name x Qty, Name x Qty" form stored with the order.
type Composition struct {
	lines []Line
}

// NewComposition builds a composition from the given lines. Lines with an
// empty name or non-positive quantity are rejected; an empty line set is
// allowed (an order whose every item vanished from the catalog).
func NewComposition(lines []Line) (Composition, error) {
	for _, l := range lines {
		if l.Name == "" {
			return Composition{}, errs.NewValueIsRequiredError("line name")
		}
		if l.Quantity <= 0 {
			return Composition{}, errs.NewValueIsInvalidError("line quantity")
		}
	}

	return Composition{lines: append([]Line(nil), lines...)}, nil
}

// ParseComposition restores a composition from its serialized form. Parts
// that do not match the "Name x Qty" shape are kept as single-quantity
// lines rather than dropped, so a hand-edited value survives a round trip.
func ParseComposition(s string) Composition {
	if s == "" {
		return Composition{}
	}

	parts := strings.Split(s, lineSeparator)
	lines := make([]Line, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}

		// Product names may themselves contain " x ", so split on the
		// last occurrence.
		if i := strings.LastIndex(part, " x "); i > 0 {
			if qty, err := strconv.Atoi(part[i+3:]); err == nil && qty > 0 {
				lines = append(lines, Line{Name: part[:i], Quantity: qty})
				continue
			}
		}
		lines = append(lines, Line{Name: part, Quantity: 1})
	}

	return Composition{lines: lines}
}

// Lines returns a copy of the line set.
func (c Composition) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

// IsEmpty reports whether the composition holds no lines.
func (c Composition) IsEmpty() bool {
	return len(c.lines) == 0
}

// String serializes the composition to its canonical stored form.
func (c Composition) String() string {
	if len(c.lines) == 0 {
		return ""
	}

	parts := make([]string, 0, len(c.lines))
	for _, l := range c.lines {
		parts = append(parts, fmt.Sprintf("%s x %d", l.Name, l.Quantity))
	}
	return strings.Join(parts, lineSeparator)
}
