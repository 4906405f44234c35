package catalog

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kylelemons/godebug/pretty"

	"tokgen/internal/token"
)

func exampleCatalog() *Catalog {
	special := []token.Def{token.D("ERROR", ""), token.D("ID", "identifier")}
	ops := []token.Def{token.D("LT", "<"), token.D("LT2", "<<"), token.D("LT2_EQ", "<<=")}
	return Build(special, ops, KeywordDefs([]string{"always"}))
}

func TestBuildAssignsSequentialIDs(t *testing.T) {
	c := exampleCatalog()
	want := map[string]token.ID{
		"ERROR": 1, "ID": 2, "LT": 3, "LT2": 4, "LT2_EQ": 5, "KW_ALWAYS": 6,
	}
	got := make(map[string]token.ID, c.Len())
	for i := 0; i < c.Len(); i++ {
		got[c.At(i).Name] = c.ID(i)
	}
	if diff := pretty.Compare(got, want); diff != "" {
		t.Fatalf("ids differ (-got +want):\n%s", diff)
	}
	if c.MaxID() != 6 {
		t.Fatalf("MaxID = %d, want 6", c.MaxID())
	}
	if id, ok := c.Lookup("LT2"); !ok || id != 4 {
		t.Fatalf("Lookup(LT2) = %d,%v want 4,true", id, ok)
	}
	if _, ok := c.Lookup("NOPE"); ok {
		t.Fatalf("Lookup(NOPE) should fail")
	}
}

func TestBuildPartitions(t *testing.T) {
	c := exampleCatalog()
	if n := len(c.Special()); n != 2 {
		t.Fatalf("special len = %d", n)
	}
	if n := len(c.Operators()); n != 3 {
		t.Fatalf("operators len = %d", n)
	}
	kws := c.Keywords()
	if len(kws) != 1 || kws[0] != token.D("KW_ALWAYS", "always") {
		t.Fatalf("keywords = %s", spew.Sdump(kws))
	}
	if c.OperatorOffset() != 2 || c.KeywordOffset() != 5 {
		t.Fatalf("offsets = %d,%d", c.OperatorOffset(), c.KeywordOffset())
	}
	if c.Section(0) != SectionSpecial || c.Section(4) != SectionOperator || c.Section(5) != SectionKeyword {
		t.Fatalf("unexpected sections")
	}
}

func TestBuildDoesNotAliasInputs(t *testing.T) {
	ops := []token.Def{token.D("LT", "<")}
	c := Build(nil, ops, nil)
	ops[0] = token.D("GT", ">")
	if c.At(0).Name != "LT" {
		t.Fatalf("catalog must not alias caller slices")
	}
	defs := c.Defs()
	defs[0].Name = "X"
	if c.At(0).Name != "LT" {
		t.Fatalf("Defs must return a copy")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	words := []string{"module", "endmodule", "always"}
	a := Build(token.Special(), token.Operators(), KeywordDefs(words))
	b := Build(token.Special(), token.Operators(), KeywordDefs(words))
	if a.Digest() != b.Digest() {
		t.Fatalf("same inputs produced different digests")
	}
	if diff := pretty.Compare(a.Defs(), b.Defs()); diff != "" {
		t.Fatalf("catalogs differ:\n%s", diff)
	}
	c := Build(token.Special(), token.Operators(), KeywordDefs([]string{"endmodule", "module", "always"}))
	if a.Digest() == c.Digest() {
		t.Fatalf("reordered keywords must change the digest")
	}
}

func TestAppendingKeywordKeepsPriorIDs(t *testing.T) {
	before := Build(token.Special(), token.Operators(), KeywordDefs([]string{"module", "endmodule"}))
	after := Build(token.Special(), token.Operators(), KeywordDefs([]string{"module", "endmodule", "wire"}))
	for i := 0; i < before.Len(); i++ {
		if before.At(i) != after.At(i) || before.ID(i) != after.ID(i) {
			t.Fatalf("entry %d shifted: %+v -> %+v", i, before.At(i), after.At(i))
		}
	}
	id, ok := after.Lookup("KW_WIRE")
	if !ok || id != after.MaxID() || id != before.MaxID()+1 {
		t.Fatalf("KW_WIRE = %d, want %d", id, before.MaxID()+1)
	}
}

func TestEmptyCatalog(t *testing.T) {
	c := Build(nil, nil, nil)
	if c.Len() != 0 || c.MaxID() != token.Invalid {
		t.Fatalf("empty catalog: len=%d max=%d", c.Len(), c.MaxID())
	}
	if err := Validate(c); err != nil {
		t.Fatalf("empty catalog should validate: %v", err)
	}
}
