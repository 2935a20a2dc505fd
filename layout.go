package tabfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// columnDef is one column declaration in a YAML layout.
type columnDef struct {
	Name     string        `yaml:"name"`
	Truncate int           `yaml:"truncate"`
	Justify  Justification `yaml:"justify"`
}

// ParseLayout builds columns from a YAML sequence of declarations:
//
//	columns, err := tabfmt.ParseLayout([]byte(`
//	- name: Name
//	  truncate: 10
//	- name: Balance
//	  justify: right
//	`))
//
// truncate defaults to 0 (no truncation) and justify to left. Unknown keys
// are rejected, and every declaration is validated by [NewColumn]. An empty
// document yields no columns.
func ParseLayout(data []byte) ([]*Column, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var defs []columnDef
	if err := dec.Decode(&defs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	columns := make([]*Column, len(defs))
	for i, def := range defs {
		col, err := NewColumn(def.Name, def.Truncate, def.Justify)
		if err != nil {
			return nil, fmt.Errorf("layout column %d: %w", i, err)
		}
		columns[i] = col
	}
	return columns, nil
}

// MarshalYAML encodes the justification as its name.
func (j Justification) MarshalYAML() (any, error) {
	return j.String(), nil
}

// UnmarshalYAML decodes "left" or "right".
func (j *Justification) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseJustification(s)
	if err != nil {
		return err
	}
	*j = parsed
	return nil
}
