package tabfmt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

// Column owns the display policy for one table column: header name,
// truncation width, justification, and the widest content seen so far.
// All widths are counted in Unicode code points.
type Column struct {
	name          string
	truncateAt    int
	justification Justification
	maxLength     int
}

// NewColumn returns a column with the given header name, truncation width,
// and justification. A truncateAt of zero (or less) disables truncation and
// the column grows to fit its widest content. A positive truncateAt is
// raised to at least 3 (room for the ellipsis) and to the name's length, so
// headers are never clipped.
func NewColumn(name string, truncateAt int, j Justification) (*Column, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if truncateAt > MaxTruncateWidth {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTruncateTooWide, truncateAt, MaxTruncateWidth)
	}
	nameLen := utf8.RuneCountInString(name)
	if truncateAt > 0 {
		truncateAt = max(truncateAt, 3, nameLen)
	} else {
		truncateAt = 0
	}
	return &Column{
		name:          name,
		truncateAt:    truncateAt,
		justification: j,
		maxLength:     nameLen,
	}, nil
}

// Name returns the header text.
func (c *Column) Name() string { return c.name }

// Justification returns the current justification.
func (c *Column) Justification() Justification { return c.justification }

// SetJustification replaces the column's justification. It may be called
// any time before rendering.
func (c *Column) SetJustification(j Justification) { c.justification = j }

// Width returns the column's rendered width: the truncation width when
// truncation is enabled, otherwise the widest line seen so far. It never
// drops below the name's length.
func (c *Column) Width() int {
	if c.truncateAt > 0 {
		return c.truncateAt
	}
	return c.maxLength
}

// updateMaxLength folds value into the running maximum content width. Each
// line of a multiline value counts independently. The maximum only grows.
func (c *Column) updateMaxLength(value string) {
	for line := range strings.SplitSeq(value, "\n") {
		if n := utf8.RuneCountInString(line); n > c.maxLength {
			c.maxLength = n
		}
	}
}

// formatCell renders one cell value as fixed-width lines, one per
// newline-separated line of the value, in original order.
func (c *Column) formatCell(value string) ([]string, error) {
	lines := strings.Split(value, "\n")
	if len(lines) > MaxCellLines {
		return nil, fmt.Errorf("%w: cell has %d lines, limit is %d", ErrTooManyLines, len(lines), MaxCellLines)
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = c.formatLine(line)
	}
	return out, nil
}

// formatLine truncates and pads a single line to the column's width.
func (c *Column) formatLine(line string) string {
	if c.truncateAt > 0 && utf8.RuneCountInString(line) > c.truncateAt {
		keep := max(c.truncateAt-len(ellipsis), 0)
		line = string([]rune(line)[:keep]) + ellipsis
	}
	pad := c.Width() - utf8.RuneCountInString(line)
	if pad <= 0 {
		return line
	}
	if c.justification == Right {
		return strings.Repeat(" ", pad) + line
	}
	return line + strings.Repeat(" ", pad)
}

// formatEmpty returns a blank cell of the column's rendered width. It fills
// a column's slot when a sibling cell in the same row has more lines.
func (c *Column) formatEmpty() string {
	return strings.Repeat(" ", c.Width())
}
