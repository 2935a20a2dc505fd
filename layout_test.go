package tabfmt_test

import (
	"testing"

	"github.com/bjaus/tabfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	t.Parallel()
	data := []byte(`
- name: Name
  truncate: 10
- name: Balance
  justify: right
`)
	columns, err := tabfmt.ParseLayout(data)
	require.NoError(t, err)
	require.Len(t, columns, 2)

	assert.Equal(t, "Name", columns[0].Name())
	assert.Equal(t, 10, columns[0].Width())
	assert.Equal(t, tabfmt.Left, columns[0].Justification())

	assert.Equal(t, "Balance", columns[1].Name())
	assert.Equal(t, 7, columns[1].Width())
	assert.Equal(t, tabfmt.Right, columns[1].Justification())
}

func TestParseLayoutRenders(t *testing.T) {
	t.Parallel()
	columns, err := tabfmt.ParseLayout([]byte(`
- name: Item
- name: Qty
  justify: right
`))
	require.NoError(t, err)

	tbl, err := tabfmt.New(columns...)
	require.NoError(t, err)
	require.NoError(t, tbl.AddRow("bolts", "12"))

	want := "" +
		"Item  Qty\n" +
		"----- ---\n" +
		"bolts  12\n"
	assert.Equal(t, want, tbl.String())
}

func TestParseLayoutErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		data   string
		target error
	}{
		"unknown justification": {
			data:   "- name: X\n  justify: center\n",
			target: tabfmt.ErrUnknownJustification,
		},
		"empty name": {
			data:   "- name: \"\"\n",
			target: tabfmt.ErrInvalidName,
		},
		"truncation too wide": {
			data:   "- name: X\n  truncate: 6000\n",
			target: tabfmt.ErrTruncateTooWide,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			columns, err := tabfmt.ParseLayout([]byte(tt.data))
			require.ErrorIs(t, err, tt.target)
			assert.Nil(t, columns)
		})
	}
}

func TestParseLayoutUnknownKey(t *testing.T) {
	t.Parallel()
	_, err := tabfmt.ParseLayout([]byte("- name: X\n  color: red\n"))
	require.Error(t, err)
}

func TestParseLayoutMalformed(t *testing.T) {
	t.Parallel()
	_, err := tabfmt.ParseLayout([]byte("- name: [\n"))
	require.Error(t, err)
}

func TestParseLayoutEmpty(t *testing.T) {
	t.Parallel()
	for _, data := range []string{"", "# columns to be decided\n"} {
		columns, err := tabfmt.ParseLayout([]byte(data))
		require.NoError(t, err)
		assert.Empty(t, columns)
	}
}
