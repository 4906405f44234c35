// Package diagfmt renders catalogs and validation problems for humans and tools.
package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v2"

	"tokgen/internal/catalog"
	"tokgen/internal/opmatch"
)

// TokenOutput is one catalog entry in machine-readable output.
type TokenOutput struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Text    string `json:"text" yaml:"text"`
	Section string `json:"section" yaml:"section"`
}

// CatalogOutput is the machine-readable form of a catalog.
type CatalogOutput struct {
	Digest            string        `json:"digest" yaml:"digest"`
	OperatorPattern   string        `json:"operator_pattern" yaml:"operator_pattern"`
	OperatorMaxLength int           `json:"operator_max_length" yaml:"operator_max_length"`
	Tokens            []TokenOutput `json:"tokens" yaml:"tokens"`
}

// Describe converts c into its machine-readable form.
func Describe(c *catalog.Catalog) CatalogOutput {
	out := CatalogOutput{
		Digest:            c.Digest().String(),
		OperatorPattern:   opmatch.Pattern(c.Operators()),
		OperatorMaxLength: opmatch.MaxLength(c.Operators()),
		Tokens:            make([]TokenOutput, c.Len()),
	}
	for i := 0; i < c.Len(); i++ {
		d := c.At(i)
		out.Tokens[i] = TokenOutput{
			ID:      int(c.ID(i)),
			Name:    d.Name,
			Text:    d.Text,
			Section: string(c.Section(i)),
		}
	}
	return out
}

// FormatCatalogJSON writes c as indented JSON.
func FormatCatalogJSON(w io.Writer, c *catalog.Catalog) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Describe(c))
}

// FormatCatalogYAML writes c as YAML.
func FormatCatalogYAML(w io.Writer, c *catalog.Catalog) error {
	data, err := yaml.Marshal(Describe(c))
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	_, err = w.Write(data)
	return err
}

var (
	idColor      = color.New(color.FgHiBlack)
	specialColor = color.New(color.FgMagenta)
	opColor      = color.New(color.FgCyan)
	keywordColor = color.New(color.FgGreen)
)

func sectionColor(s catalog.Section) *color.Color {
	switch s {
	case catalog.SectionSpecial:
		return specialColor
	case catalog.SectionOperator:
		return opColor
	default:
		return keywordColor
	}
}

// FormatCatalogPretty prints one aligned row per token. Names are padded by
// display width so wide keyword text does not break the columns.
func FormatCatalogPretty(w io.Writer, c *catalog.Catalog) error {
	nameWidth := 0
	for i := 0; i < c.Len(); i++ {
		if n := runewidth.StringWidth(c.At(i).Name); n > nameWidth {
			nameWidth = n
		}
	}
	for i := 0; i < c.Len(); i++ {
		d := c.At(i)
		sec := c.Section(i)
		name := runewidth.FillRight(d.Name, nameWidth)
		if _, err := fmt.Fprintf(w, "%s  %s  %-8s %q\n",
			idColor.Sprintf("%4d", c.ID(i)),
			sectionColor(sec).Sprint(name),
			sec,
			d.Text,
		); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d tokens, max operator length %d, digest %s\n",
		c.Len(), opmatch.MaxLength(c.Operators()), c.Digest().Short())
	return err
}
