package catalog

import (
	"strings"
	"testing"

	"tokgen/internal/token"
)

func TestValidateStaticTablesAndKeywords(t *testing.T) {
	c := Build(token.Special(), token.Operators(), KeywordDefs([]string{"module", "endmodule"}))
	if err := Validate(c); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateReportsEveryIssue(t *testing.T) {
	special := []token.Def{token.D("ERROR", ""), token.D("KW_ALWAYS", "always")}
	ops := []token.Def{
		token.D("LT", "<"),
		token.D("LT_AGAIN", "<"),
		token.D("BAD", "a+"),
		token.D("bad-name", "+"),
	}
	kws := KeywordDefs([]string{"always", "", "wire", "wire"})
	err := Validate(Build(special, ops, kws))
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	issues := Issues(err)

	type want struct {
		index int
		msg   string
	}
	wants := []want{
		{3, "duplicate operator text"},
		{4, "operator text must be"},
		{5, "not a valid identifier"},
		{6, "duplicate symbolic name"},
		{7, "keyword text must be"},
		{9, "duplicate symbolic name"},
		{9, "duplicate keyword"},
	}
	if len(issues) != len(wants) {
		var b strings.Builder
		for _, is := range issues {
			b.WriteString(is.Error() + "\n")
		}
		t.Fatalf("got %d issues, want %d:\n%s", len(issues), len(wants), b.String())
	}
	for i, w := range wants {
		if issues[i].Index != w.index || !strings.Contains(issues[i].Msg, w.msg) {
			t.Fatalf("issue %d = %v, want index %d containing %q", i, issues[i], w.index, w.msg)
		}
	}
	if issues[3].Section != SectionKeyword || !strings.Contains(issues[3].Msg, "ID 2") {
		t.Fatalf("keyword colliding with special token should point at ID 2: %v", issues[3])
	}
}

func TestIssuesOfForeignError(t *testing.T) {
	if Issues(nil) != nil {
		t.Fatalf("Issues(nil) must be nil")
	}
}
