// Package report renders energy tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/qwell/internal/errors"
	"github.com/tphakala/qwell/internal/well"
)

// Format selects a renderer
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in display order
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat normalizes a user supplied format name
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", errors.Newf("unsupported output format %q, expected one of %v", s, Formats).
		Component("report").
		Category(errors.CategoryConfiguration).
		Build()
}

// Header is the first line of the text table
const Header = "\twavenumbers\tenergy (J)\tdegeneracy"

// Write renders table to w in format f. Constants are included in the
// structured formats only.
func Write(w io.Writer, f Format, c well.Constants, table well.Table) error {
	var err error
	switch f {
	case FormatText:
		err = writeText(w, table)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(newDocument(c, table))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(newDocument(c, table)); err == nil {
			err = enc.Close()
		}
	default:
		_, err = ParseFormat(string(f))
		return err
	}

	if err != nil {
		return errors.New(fmt.Errorf("writing %s report: %w", f, err)).
			Component("report").
			Category(errors.CategoryFileIO).
			Build()
	}
	return nil
}

func writeText(w io.Writer, table well.Table) error {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, s := range table {
		fmt.Fprintf(&b, "\t%d %d %d\t\t%s\t%d\n", s.NX, s.NY, s.NZ, FormatEnergy(s.Energy), s.Degeneracy)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// document is the structured rendering of a table
type document struct {
	Constants constantsDoc `json:"constants" yaml:"constants"`
	States    []stateDoc   `json:"states" yaml:"states"`
}

type constantsDoc struct {
	Planck float64 `json:"planck" yaml:"planck"`
	Mass   float64 `json:"mass" yaml:"mass"`
	Length float64 `json:"length" yaml:"length"`
}

type stateDoc struct {
	Wavenumbers [3]int  `json:"wavenumbers" yaml:"wavenumbers,flow"`
	Energy      float64 `json:"energy" yaml:"energy"`
	Degeneracy  int     `json:"degeneracy" yaml:"degeneracy"`
}

func newDocument(c well.Constants, table well.Table) document {
	doc := document{
		Constants: constantsDoc{
			Planck: c.Planck(),
			Mass:   c.Mass(),
			Length: c.Length(),
		},
		States: make([]stateDoc, 0, len(table)),
	}
	for _, s := range table {
		doc.States = append(doc.States, stateDoc{
			Wavenumbers: [3]int{s.NX, s.NY, s.NZ},
			Energy:      s.Energy,
			Degeneracy:  s.Degeneracy,
		})
	}
	return doc
}
