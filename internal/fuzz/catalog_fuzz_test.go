package fuzztests

import (
	"go/parser"
	"go/token"
	"testing"

	"tokgen/internal/catalog"
	"tokgen/internal/emit"
	"tokgen/internal/testkit"
	tok "tokgen/internal/token"
)

func FuzzKeywordCatalog(f *testing.F) {
	addKeywordSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxSeedBytes {
			input = input[:maxSeedBytes]
		}
		words, err := catalog.ReadWords(input)
		if err != nil {
			return
		}
		c := catalog.Build(tok.Special(), tok.Operators(), catalog.KeywordDefs(words))
		if c.Len() != len(tok.Special())+len(tok.Operators())+len(words) {
			t.Fatalf("catalog length %d does not match inputs", c.Len())
		}
		if err := testkit.CheckCatalogInvariants(c); err != nil {
			t.Fatalf("catalog invariants: %v", err)
		}
		if catalog.Validate(c) != nil {
			return
		}
		if err := testkit.CheckTokensFile(emit.RenderTokens(c), c); err != nil {
			t.Fatalf("tokens file: %v", err)
		}
		src, err := emit.RenderSymbols(c, emit.SymbolOptions{})
		if err != nil {
			t.Fatalf("RenderSymbols on a valid catalog: %v", err)
		}
		if _, err := parser.ParseFile(token.NewFileSet(), "tokens.go", src, 0); err != nil {
			t.Fatalf("symbol module does not parse: %v", err)
		}
	})
}
