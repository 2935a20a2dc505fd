// Package tabfmt renders tabular data as aligned plain text: fixed-width
// columns, optional per-column truncation, left/right justification, and
// multiline cell content.
//
// A [Column] owns the display policy for one table column; a [Table] owns
// an ordered set of columns and append-only rows and assembles the final
// text. Build columns with [NewColumn] (or declare them in YAML via
// [ParseLayout]), construct a table with [New], append rows with
// [Table.AddRow], then read the result from [Table.String] or stream it
// with [Table.WriteTo]:
//
//	name, _ := tabfmt.NewColumn("Name", 0, tabfmt.Left)
//	age, _ := tabfmt.NewColumn("Age", 0, tabfmt.Left)
//	tbl, _ := tabfmt.New(name, age)
//	_ = tbl.AddRow("John Doe", "30")
//	_ = tbl.AddRow("Jane Smith", "25")
//	fmt.Print(tbl)
//
//	Name       Age
//	---------- ---
//	John Doe   30
//	Jane Smith 25
//
// # Column Widths
//
// A column constructed with a truncation width of 0 grows to fit its widest
// content: the rendered width is the longest line seen across the header
// and every ingested value. A positive truncation width fixes the rendered
// width; longer lines are cut and suffixed with "...". The effective
// truncation width is never less than 3 (room for the ellipsis) nor less
// than the header text, so headers are never clipped.
//
// # Multiline Cells
//
// Cell values may contain newlines. Each line is truncated and padded
// independently, and a row renders as many output lines as its tallest
// cell; columns with fewer lines are filled with blanks of their width.
//
// # Width Counting
//
// All widths are counted in Unicode code points, not bytes and not
// terminal display columns. Output aligns visually for single-width text;
// double-width (East Asian) characters occupy one counted position but two
// terminal columns.
//
// # Layouts
//
// [ParseLayout] builds columns from a YAML sequence of declarations, for
// callers that keep display policy in configuration:
//
//	columns, err := tabfmt.ParseLayout([]byte(`
//	- name: Name
//	  truncate: 10
//	- name: Balance
//	  justify: right
//	`))
//
// # Errors
//
// Construction and ingestion fail fast with wrapped sentinel errors,
// matchable with [errors.Is]:
//
//   - [ErrInvalidName] — empty column name
//   - [ErrTruncateTooWide] — truncation width above [MaxTruncateWidth]
//   - [ErrNoColumns] — table constructed with no columns
//   - [ErrColumnCountMismatch] — row length differs from the column count
//   - [ErrRowLimit] — table already holds [MaxRows] rows
//   - [ErrTooManyLines] — a cell splits into more than [MaxCellLines] lines
//   - [ErrUnknownJustification] — unrecognized justification name
//
// A row that fails validation is rejected whole: no row is stored and no
// column width changes. Rendering never fails; a cell that cannot be
// formatted contributes its error text in place.
package tabfmt
