package token_test

import (
	"testing"

	"tokgen/internal/token"
)

func TestIsValidName(t *testing.T) {
	valid := []string{"ERROR", "KW_1STEP", "_x", "LT2_EQ", "a1"}
	for _, s := range valid {
		if !token.IsValidName(s) {
			t.Fatalf("IsValidName(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "1STEP", "KW-X", "KW X", "ÄNDERN", "KW_$"}
	for _, s := range invalid {
		if token.IsValidName(s) {
			t.Fatalf("IsValidName(%q) = true, want false", s)
		}
	}
}

func TestIsOperatorText(t *testing.T) {
	ops := []string{"<<<=", "#-#", "'", "$", "|->"}
	for _, s := range ops {
		if !token.IsOperatorText(s) {
			t.Fatalf("IsOperatorText(%q) = false, want true", s)
		}
	}
	non := []string{"", "a", "<a", "1", "< =", "$unit"}
	for _, s := range non {
		if token.IsOperatorText(s) {
			t.Fatalf("IsOperatorText(%q) = true, want false", s)
		}
	}
}

func TestIsKeywordText(t *testing.T) {
	if !token.IsKeywordText("always_ff") {
		t.Fatalf("always_ff should be a keyword spelling")
	}
	for _, s := range []string{"", "a b", "tab\t", "\x00"} {
		if token.IsKeywordText(s) {
			t.Fatalf("IsKeywordText(%q) = true, want false", s)
		}
	}
}
