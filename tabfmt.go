package tabfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidName          = errors.New("invalid column name")
	ErrTruncateTooWide      = errors.New("truncation width too wide")
	ErrNoColumns            = errors.New("table has no columns")
	ErrColumnCountMismatch  = errors.New("column count mismatch")
	ErrRowLimit             = errors.New("row limit exceeded")
	ErrTooManyLines         = errors.New("too many lines in cell")
	ErrUnknownJustification = errors.New("unknown justification")
)

// Package limits. These are fixed ceilings, not tunables.
const (
	// MaxTruncateWidth is the largest truncation width a column accepts.
	MaxTruncateWidth = 5000

	// MaxRows is the largest number of rows a table holds.
	MaxRows = 5_000_000

	// MaxCellLines is the largest number of newline-separated lines a
	// single cell value may contain.
	MaxCellLines = 5000
)

// Justification controls which side of a cell receives padding.
type Justification int

const (
	Left  Justification = iota // pad on the right, text starts at column 0
	Right                      // pad on the left, text ends at the rightmost position
)

// String returns the justification name.
func (j Justification) String() string {
	if j == Right {
		return "right"
	}
	return "left"
}

// ParseJustification parses a justification string. Recognizes "left" and
// "right".
func ParseJustification(s string) (Justification, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, fmt.Errorf("%w: %q", ErrUnknownJustification, s)
	}
}
