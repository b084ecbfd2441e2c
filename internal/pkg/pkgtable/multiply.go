package pkgtable

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned when an arithmetic operation meets a cell that is
// not a number.
var ErrNotNumeric = errors.New("value is not numeric")

// Factor is a scalar multiplier that remembers whether it was written as an
// integer.
type Factor struct {
	n       int64
	f       float64
	integer bool
}

// IntFactor returns an integer multiplier.
func IntFactor(n int64) Factor {
	return Factor{n: n, f: float64(n), integer: true}
}

// FloatFactor returns a floating point multiplier, even for integral values.
func FloatFactor(f float64) Factor {
	return Factor{f: f}
}

// Float returns the multiplier as a float64.
func (f Factor) Float() float64 {
	return f.f
}

// IsInt reports whether the multiplier was written as an integer.
func (f Factor) IsInt() bool {
	return f.integer
}

// MultiplyColumn multiplies every non-empty cell of the named column(s) by
// factor, in place. Missing cells stay missing.
//
// A column stays integral only when every cell is an integer, none is missing
// and factor is an IntFactor. Otherwise every product is written as a float
// ("3.0", "4.5"). Unknown columns are left alone and reported with
// ErrColumnNotFound.
func (t *Table) MultiplyColumn(name string, factor Factor) error {
	idx := t.indexes(name)
	if len(idx) == 0 {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	for _, col := range idx {
		if err := t.multiplyAt(col, factor); err != nil {
			return fmt.Errorf("column %q: %w", name, err)
		}
	}

	return nil
}

func (t *Table) multiplyAt(col int, factor Factor) error {
	ints, floats, err := t.numericColumn(col)
	if err != nil {
		return err
	}

	if ints != nil && factor.integer {
		if scaled, ok := multiplyInts(ints, factor.n); ok {
			for i, row := range t.rows {
				row[col] = strconv.FormatInt(scaled[i], 10)
			}
			return nil
		}
	}

	for i, row := range t.rows {
		if row[col] != "" {
			row[col] = formatFloat(floats[i] * factor.f)
		}
	}

	return nil
}

// numericColumn parses the column as floats, and also as ints when every
// cell is present and an integer literal.
func (t *Table) numericColumn(col int) ([]int64, []float64, error) {
	floats := make([]float64, len(t.rows))
	ints := make([]int64, len(t.rows))
	allInts := true

	for i, row := range t.rows {
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			allInts = false
			continue
		}

		if allInts {
			if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
				ints[i] = n
				floats[i] = float64(n)
				continue
			}
			allInts = false
		}

		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: %q", ErrNotNumeric, i+1, row[col])
		}
		floats[i] = f
	}

	if !allInts {
		return nil, floats, nil
	}
	return ints, floats, nil
}

func multiplyInts(values []int64, factor int64) ([]int64, bool) {
	out := make([]int64, len(values))
	for i, v := range values {
		p := v * factor
		if v != 0 && p/v != factor {
			return nil, false
		}
		out[i] = p
	}
	return out, true
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsAny(s, ".") {
		return s
	}
	return s + ".0"
}
