package emit

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/spf13/afero"
	"golang.org/x/tools/txtar"

	"tokgen/internal/catalog"
	tok "tokgen/internal/token"
)

type fixture struct {
	name    string
	cat     *catalog.Catalog
	tokens  string
	pattern string
}

func parseDefs(data []byte) []tok.Def {
	var defs []tok.Def
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		name, text, _ := strings.Cut(line, " ")
		defs = append(defs, tok.D(name, text))
	}
	return defs
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatalf("no fixtures found")
	}
	var out []fixture
	for _, p := range paths {
		archive, err := txtar.ParseFile(p)
		if err != nil {
			t.Fatalf("err parsing txtar(%s): %+v", p, err)
		}
		files := make(map[string][]byte, len(archive.Files))
		for _, f := range archive.Files {
			files[f.Name] = f.Data
		}
		words, err := catalog.ReadWords(files["keywords"])
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, fixture{
			name:    filepath.Base(p),
			cat:     catalog.Build(parseDefs(files["special"]), parseDefs(files["operators"]), catalog.KeywordDefs(words)),
			tokens:  string(files["tokens"]),
			pattern: strings.TrimSpace(string(files["pattern"])),
		})
	}
	return out
}

func TestRenderTokensGolden(t *testing.T) {
	for _, fx := range loadFixtures(t) {
		t.Run(fx.name, func(t *testing.T) {
			got := string(RenderTokens(fx.cat))
			if got != fx.tokens {
				t.Fatalf("tokens file differs:\n%s", pretty.Compare(strings.Split(got, "\n"), strings.Split(fx.tokens, "\n")))
			}
		})
	}
}

// symbolModule is what the tests read back out of a generated file.
type symbolModule struct {
	pkg       string
	consts    map[string]string
	constList []string
	arrays    map[string][]string
	maps      map[string]map[string]string
}

func unquote(t *testing.T, lit string) string {
	t.Helper()
	s, err := strconv.Unquote(lit)
	if err != nil {
		t.Fatalf("unquote %s: %v", lit, err)
	}
	return s
}

func readModule(t *testing.T, src []byte) symbolModule {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "lexer_tokens.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated module does not parse: %v\n%s", err, src)
	}
	m := symbolModule{
		pkg:    f.Name.Name,
		consts: make(map[string]string),
		arrays: make(map[string][]string),
		maps:   make(map[string]map[string]string),
	}
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok || len(vs.Values) != 1 {
				continue
			}
			name := vs.Names[0].Name
			switch v := vs.Values[0].(type) {
			case *ast.BasicLit:
				val := v.Value
				if v.Kind == token.STRING {
					val = unquote(t, val)
				}
				m.consts[name] = val
				m.constList = append(m.constList, name)
			case *ast.CompositeLit:
				switch v.Type.(type) {
				case *ast.ArrayType:
					var elems []string
					for _, e := range v.Elts {
						elems = append(elems, unquote(t, e.(*ast.BasicLit).Value))
					}
					m.arrays[name] = elems
				case *ast.MapType:
					entries := make(map[string]string)
					for _, e := range v.Elts {
						kv := e.(*ast.KeyValueExpr)
						entries[unquote(t, kv.Key.(*ast.BasicLit).Value)] = kv.Value.(*ast.Ident).Name
					}
					m.maps[name] = entries
				}
			}
		}
	}
	return m
}

func TestRenderSymbolsMirrorsTokensFile(t *testing.T) {
	for _, fx := range loadFixtures(t) {
		t.Run(fx.name, func(t *testing.T) {
			src, err := RenderSymbols(fx.cat, SymbolOptions{Package: "lexertokens"})
			if err != nil {
				t.Fatalf("RenderSymbols: %v", err)
			}
			m := readModule(t, src)
			if m.pkg != "lexertokens" {
				t.Fatalf("package = %s", m.pkg)
			}

			// constants follow the tokens file line by line
			lines := strings.Split(strings.TrimSpace(fx.tokens), "\n")
			for i, line := range lines {
				name, id, _ := strings.Cut(line, " = ")
				if m.constList[i] != name || m.consts[name] != id {
					t.Fatalf("const #%d = %s=%s, tokens file has %s", i, m.constList[i], m.consts[m.constList[i]], line)
				}
			}

			names := m.arrays["TokenNames"]
			texts := m.arrays["TokenConstText"]
			if len(names) != fx.cat.Len()+2 || len(texts) != fx.cat.Len()+2 {
				t.Fatalf("tables have %d/%d entries, want %d", len(names), len(texts), fx.cat.Len()+2)
			}
			if names[0] != "" || texts[0] != "" || names[len(names)-1] != "DUMMY" || texts[len(texts)-1] != "DUMMY" {
				t.Fatalf("reserved slots wrong: %q %q", names, texts)
			}
			for i := 0; i < fx.cat.Len(); i++ {
				id := int(fx.cat.ID(i))
				if names[id] != fx.cat.At(i).Name || texts[id] != fx.cat.At(i).Text {
					t.Fatalf("tables at %d = %q/%q, want %+v", id, names[id], texts[id], fx.cat.At(i))
				}
			}

			wantKw := make(map[string]string)
			for _, d := range fx.cat.Keywords() {
				wantKw[d.Text] = d.Name
			}
			if diff := pretty.Compare(m.maps["Keywords"], wantKw); diff != "" {
				t.Fatalf("Keywords differ:\n%s", diff)
			}
			wantOps := make(map[string]string)
			for _, d := range fx.cat.Operators() {
				wantOps[d.Text] = d.Name
			}
			if diff := pretty.Compare(m.maps["Operators"], wantOps); diff != "" {
				t.Fatalf("Operators differ:\n%s", diff)
			}

			if m.consts["OperatorPattern"] != fx.pattern {
				t.Fatalf("OperatorPattern = %q, want %q", m.consts["OperatorPattern"], fx.pattern)
			}
			if _, err := regexp.Compile(m.consts["OperatorPattern"]); err != nil {
				t.Fatalf("pattern does not compile: %v", err)
			}
		})
	}
}

func TestRenderSymbolsExampleValues(t *testing.T) {
	fx := loadFixtures(t)[1] // example.txtar sorts after escapes.txtar
	if fx.name != "example.txtar" {
		t.Fatalf("fixture order changed: %s", fx.name)
	}
	src, err := RenderSymbols(fx.cat, SymbolOptions{})
	if err != nil {
		t.Fatal(err)
	}
	m := readModule(t, src)
	if m.pkg != DefaultPackage {
		t.Fatalf("package = %s, want %s", m.pkg, DefaultPackage)
	}
	if m.consts["OperatorMaxLength"] != "3" {
		t.Fatalf("OperatorMaxLength = %s, want 3", m.consts["OperatorMaxLength"])
	}
	if !strings.HasPrefix(string(src), "// Code generated by tokgen. DO NOT EDIT.\n") {
		t.Fatalf("missing generated header")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	for _, fx := range loadFixtures(t) {
		a, err := RenderSymbols(fx.cat, SymbolOptions{})
		if err != nil {
			t.Fatal(err)
		}
		b, err := RenderSymbols(fx.cat, SymbolOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Fatalf("%s: symbol module is not deterministic", fx.name)
		}
		if string(RenderTokens(fx.cat)) != string(RenderTokens(fx.cat)) {
			t.Fatalf("%s: tokens file is not deterministic", fx.name)
		}
	}
}

func TestRenderSymbolsRejectsBadPackage(t *testing.T) {
	c := catalog.Build([]tok.Def{tok.D("ERROR", "")}, nil, nil)
	if _, err := RenderSymbols(c, SymbolOptions{Package: "my-pkg"}); err == nil {
		t.Fatalf("expected error for invalid package name")
	}
}

func TestWriteCreatesDirectoriesAndOverwrites(t *testing.T) {
	fsys := afero.NewMemMapFs()
	c := loadFixtures(t)[0].cat
	path := "/out/gen/antlr/SVLexer.tokens"
	if err := afero.WriteFile(fsys, "/out/stale.txt", []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteTokens(fsys, path, c); err != nil {
		t.Fatalf("WriteTokens: %v", err)
	}
	if err := afero.WriteFile(fsys, path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteTokens(fsys, path, c); err != nil {
		t.Fatalf("WriteTokens overwrite: %v", err)
	}
	got, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(RenderTokens(c)) {
		t.Fatalf("file was not replaced:\n%s", got)
	}

	symPath := "/out/gen/tokens/lexer_tokens.go"
	if err := WriteSymbols(fsys, symPath, c, SymbolOptions{}); err != nil {
		t.Fatalf("WriteSymbols: %v", err)
	}
	entries, err := afero.ReadDir(fsys, "/out/gen/tokens")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "lexer_tokens.go" {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestWriteUnwritableIsConfigurationError(t *testing.T) {
	c := loadFixtures(t)[0].cat
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := WriteTokens(fsys, "/out/SVLexer.tokens", c)
	if err == nil {
		t.Fatalf("expected error on read-only filesystem")
	}
	if !strings.Contains(err.Error(), "write tokens /out/SVLexer.tokens") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWriteToRealDirectory(t *testing.T) {
	dir := t.TempDir()
	c := loadFixtures(t)[0].cat
	path := filepath.Join(dir, "nested", "SVLexer.tokens")
	if err := WriteTokens(afero.NewOsFs(), path, c); err != nil {
		t.Fatalf("WriteTokens: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(RenderTokens(c)) {
		t.Fatalf("unexpected content:\n%s", data)
	}
}
