package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"

	"github.com/spf13/afero"

	"tokgen/internal/catalog"
	"tokgen/internal/opmatch"
	"tokgen/internal/token"
)

// DefaultPackage is used when SymbolOptions.Package is empty.
const DefaultPackage = "tokens"

// SymbolOptions configures the generated Go module.
type SymbolOptions struct {
	Package string
}

type symbolEntry struct {
	Name string
	Text string
	ID   token.ID
}

type symbolInput struct {
	Package           string
	Digest            string
	Reserved          []struct{}
	Entries           []symbolEntry
	Keywords          []symbolEntry
	Operators         []symbolEntry
	OperatorPattern   string
	OperatorMaxLength int
	Dummy             string
}

var symbolTemplate = template.Must(template.New("symbols").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`// Code generated by tokgen. DO NOT EDIT.
// Catalog digest: sha256:{{.Digest}}

package {{.Package}}

import "regexp"

// Token IDs, identical to the ANTLR tokens file.
const (
{{- range .Entries}}
	{{.Name}} = {{.ID}}
{{- end}}
)

// TokenNames maps a token ID to its symbolic name.
var TokenNames = [...]string{
{{- range .Reserved}}
	"",
{{- end}}
{{- range .Entries}}
	{{quote .Name}},
{{- end}}
	{{quote .Dummy}},
}

// TokenConstText maps a token ID to its spelling or category label.
var TokenConstText = [...]string{
{{- range .Reserved}}
	"",
{{- end}}
{{- range .Entries}}
	{{quote .Text}},
{{- end}}
	{{quote .Dummy}},
}

// Keywords maps reserved word spellings to token IDs.
var Keywords = map[string]int{
{{- range .Keywords}}
	{{quote .Text}}: {{.Name}},
{{- end}}
}

// Operators maps operator spellings to token IDs.
var Operators = map[string]int{
{{- range .Operators}}
	{{quote .Text}}: {{.Name}},
{{- end}}
}

// OperatorPattern matches one operator at the start of the input. Alternatives
// are ordered longest first, so the first match is the longest match.
const OperatorPattern = {{quote .OperatorPattern}}

// OperatorRegexp is OperatorPattern, compiled.
var OperatorRegexp = regexp.MustCompile(OperatorPattern)

// OperatorMaxLength is the longest operator spelling in bytes.
const OperatorMaxLength = {{.OperatorMaxLength}}
`))

func entriesOf(c *catalog.Catalog, from, to int) []symbolEntry {
	out := make([]symbolEntry, 0, to-from)
	for i := from; i < to; i++ {
		d := c.At(i)
		out = append(out, symbolEntry{Name: d.Name, Text: d.Text, ID: c.ID(i)})
	}
	return out
}

// RenderSymbols renders the gofmt-formatted Go symbol module.
func RenderSymbols(c *catalog.Catalog, opts SymbolOptions) ([]byte, error) {
	pkg := opts.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	if !token.IsValidName(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}
	digest := c.Digest()
	ops := c.Operators()
	in := symbolInput{
		Package:           pkg,
		Digest:            digest.String(),
		Reserved:          make([]struct{}, int(token.Base)),
		Entries:           entriesOf(c, 0, c.Len()),
		Operators:         entriesOf(c, c.OperatorOffset(), c.KeywordOffset()),
		Keywords:          entriesOf(c, c.KeywordOffset(), c.Len()),
		OperatorPattern:   opmatch.Pattern(ops),
		OperatorMaxLength: opmatch.MaxLength(ops),
		Dummy:             token.DummyName,
	}

	var buf bytes.Buffer
	if err := symbolTemplate.Execute(&buf, in); err != nil {
		return nil, fmt.Errorf("render symbol module: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format symbol module: %w", err)
	}
	return src, nil
}

// WriteSymbols replaces the Go symbol module at path.
func WriteSymbols(fsys afero.Fs, path string, c *catalog.Catalog, opts SymbolOptions) error {
	src, err := RenderSymbols(c, opts)
	if err != nil {
		return err
	}
	return replaceFile(fsys, "write symbols", path, src)
}
