// Package opmatch builds the longest-match alternation over operator spellings.
//
// Go's regexp, like most engines, picks the first alternative that matches, not
// the longest. Ordering literals by descending length makes first-match and
// longest-match agree: "<<<=" is tried before "<<" and "<".
package opmatch

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"tokgen/internal/token"
)

// ByLength returns ops stable-sorted by descending byte length of Text.
// Operators of equal length keep their catalog order.
func ByLength(ops []token.Def) []token.Def {
	out := append([]token.Def(nil), ops...)
	slices.SortStableFunc(out, func(a, b token.Def) int {
		return len(b.Text) - len(a.Text)
	})
	return out
}

// Alternation joins the quoted literals of ops, longest first.
func Alternation(ops []token.Def) string {
	sorted := ByLength(ops)
	parts := make([]string, len(sorted))
	for i, d := range sorted {
		parts[i] = regexp.QuoteMeta(d.Text)
	}
	return strings.Join(parts, "|")
}

// Pattern returns the anchored pattern a scanner matches at its current position.
func Pattern(ops []token.Def) string {
	return "(?s)^(?:" + Alternation(ops) + ")"
}

// MaxLength is the longest operator spelling in bytes, a fixed lookahead bound.
func MaxLength(ops []token.Def) int {
	longest := 0
	for _, d := range ops {
		longest = max(longest, len(d.Text))
	}
	return longest
}

// Matcher recognizes operators at the start of a string.
type Matcher struct {
	re     *regexp.Regexp
	byText map[string]token.Def
}

// Compile builds a Matcher from ops.
func Compile(ops []token.Def) (*Matcher, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("no operators to match")
	}
	re, err := regexp.Compile(Pattern(ops))
	if err != nil {
		return nil, fmt.Errorf("compile operator pattern: %w", err)
	}
	byText := make(map[string]token.Def, len(ops))
	for _, d := range ops {
		if _, dup := byText[d.Text]; !dup {
			byText[d.Text] = d
		}
	}
	return &Matcher{re: re, byText: byText}, nil
}

// Match returns the operator spelled at the start of s.
func (m *Matcher) Match(s string) (token.Def, bool) {
	lit := m.re.FindString(s)
	if lit == "" {
		return token.Def{}, false
	}
	d, ok := m.byText[lit]
	return d, ok
}

// Pair is a short operator that is a proper prefix of a longer one.
type Pair struct {
	Short token.Def
	Long  token.Def
}

// PrefixPairs lists every (short, long) pair where short.Text prefixes long.Text.
func PrefixPairs(ops []token.Def) []Pair {
	var pairs []Pair
	for _, short := range ops {
		for _, long := range ops {
			if len(long.Text) > len(short.Text) && strings.HasPrefix(long.Text, short.Text) {
				pairs = append(pairs, Pair{Short: short, Long: long})
			}
		}
	}
	return pairs
}

// Verify checks that m picks the longer spelling for every prefix pair and
// recognizes each operator on its own.
func Verify(m *Matcher, ops []token.Def) error {
	for _, d := range ops {
		got, ok := m.Match(d.Text)
		if !ok || got.Text != d.Text {
			return fmt.Errorf("operator %s (%q) matched as %q", d.Name, d.Text, got.Text)
		}
	}
	for _, p := range PrefixPairs(ops) {
		got, ok := m.Match(p.Long.Text)
		if !ok || got.Text != p.Long.Text {
			return fmt.Errorf("%q should win over %q, matched %q", p.Long.Text, p.Short.Text, got.Text)
		}
	}
	return nil
}
