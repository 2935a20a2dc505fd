package tabfmt

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Table holds an ordered set of columns and append-only rows and renders
// them as aligned text. It is not safe for concurrent mutation; rendering
// an unmodified table from multiple goroutines is fine.
type Table struct {
	columns []*Column
	rows    [][]string
}

// New returns a table over the given columns. The column set is fixed for
// the table's lifetime. Columns are shared, not copied, so justification
// changes made through a caller-held [Column] are visible at render time.
func New(columns ...*Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: at least one column is required", ErrNoColumns)
	}
	return &Table{columns: columns}, nil
}

// AddRow appends one row, one value per column in column order. The row is
// validated in full before any state changes: on error the table's rows and
// every column's running width are left untouched.
func (t *Table) AddRow(values ...string) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("%w: row has %d values, table has %d columns", ErrColumnCountMismatch, len(values), len(t.columns))
	}
	if len(t.rows) >= MaxRows {
		return fmt.Errorf("%w: table already holds %d rows", ErrRowLimit, MaxRows)
	}
	for i, value := range values {
		if n := strings.Count(value, "\n") + 1; n > MaxCellLines {
			return fmt.Errorf("%w: cell %d has %d lines, limit is %d", ErrTooManyLines, i, n, MaxCellLines)
		}
	}
	for i, value := range values {
		t.columns[i].updateMaxLength(value)
	}
	t.rows = append(t.rows, slices.Clone(values))
	return nil
}

// String renders the table: a header line, a dash separator per column,
// then each row in insertion order. Multiline cells spread a row across as
// many output lines as its tallest cell, with shorter cells filled by
// blanks of their column's width. Cells are joined by a single space and
// every line ends in a newline. Rendering is a pure read and repeats with
// identical results until more rows are added.
func (t *Table) String() string {
	var sb strings.Builder
	t.render(&sb)
	return sb.String()
}

// WriteTo renders the table into w. It implements [io.WriterTo].
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	t.render(&buf)
	return buf.WriteTo(w)
}

// render writes the full table to w. Writes to a strings.Builder or
// bytes.Buffer never fail, so render carries no error path; a cell that
// fails to format degrades to its error text instead of aborting.
func (t *Table) render(w io.StringWriter) {
	if len(t.columns) == 0 {
		return
	}

	header := make([]string, len(t.columns))
	for i, col := range t.columns {
		// A header never contains a newline in practice; if one does,
		// only the first formatted line is used.
		header[i] = cellLines(col, col.name)[0]
	}
	writeLine(w, header)

	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		sep[i] = strings.Repeat("-", col.Width())
	}
	writeLine(w, sep)

	for _, row := range t.rows {
		cells := make([][]string, len(t.columns))
		for i, col := range t.columns {
			cells[i] = cellLines(col, row[i])
		}
		for line := range maxLines(cells) {
			parts := make([]string, len(t.columns))
			for i, col := range t.columns {
				if line < len(cells[i]) {
					parts[i] = cells[i][line]
				} else {
					parts[i] = col.formatEmpty()
				}
			}
			writeLine(w, parts)
		}
	}
}

// cellLines formats one cell, substituting the error text for cells that
// fail to format so rendering always produces output.
func cellLines(col *Column, value string) []string {
	lines, err := col.formatCell(value)
	if err != nil {
		return []string{err.Error()}
	}
	return lines
}

func maxLines(cells [][]string) int {
	n := 1
	for _, lines := range cells {
		if len(lines) > n {
			n = len(lines)
		}
	}
	return n
}

func writeLine(w io.StringWriter, cells []string) {
	_, _ = w.WriteString(strings.Join(cells, " "))
	_, _ = w.WriteString("\n")
}
