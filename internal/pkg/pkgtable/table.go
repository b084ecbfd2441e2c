package pkgtable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrColumnNotFound is returned when a requested column is not in the table.
	ErrColumnNotFound = errors.New("column not found")
	// ErrNoColumns is returned when a file has no header row.
	ErrNoColumns = errors.New("no columns to parse from file")
)

// Table is an in-memory dataset of named columns and rows of cells.
type Table struct {
	columns []string
	rows    [][]string
}

// New builds a Table from a raw header and rows.
//
// The header is widened to the longest row, blank names become "Unnamed: i"
// and repeated names get a ".N" suffix. Rows shorter than the header are padded
// with empty (missing) cells.
func New(header []string, rows [][]string) *Table {
	width := len(header)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	columns := make([]string, width)
	copy(columns, header)

	padded := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) == width {
			padded[i] = row
			continue
		}
		cells := make([]string, width)
		copy(cells, row)
		padded[i] = cells
	}

	return &Table{
		columns: normalizeHeader(columns),
		rows:    padded,
	}
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Rows returns the table rows. Callers must not modify them.
func (t *Table) Rows() [][]string {
	return t.rows
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	return len(t.indexes(name)) > 0
}

func (t *Table) indexes(name string) []int {
	var idx []int
	for i, col := range t.columns {
		if col == name {
			idx = append(idx, i)
		}
	}
	return idx
}

// Select returns a new table holding exactly the named columns in the given
// order. Repeating a name repeats the column. Every name must exist.
func (t *Table) Select(names []string) (*Table, error) {
	positions := make([]int, 0, len(names))
	var missing []string

	for _, name := range names {
		idx := t.indexes(name)
		if len(idx) == 0 {
			missing = append(missing, strconv.Quote(name))
			continue
		}
		positions = append(positions, idx[0])
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: [%s]", ErrColumnNotFound, strings.Join(missing, ", "))
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cells := make([]string, len(positions))
		for j, pos := range positions {
			cells[j] = row[pos]
		}
		rows[i] = cells
	}

	columns := make([]string, len(names))
	copy(columns, names)

	return &Table{columns: columns, rows: rows}, nil
}
