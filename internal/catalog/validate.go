package catalog

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"tokgen/internal/token"
)

// Section names the sub-list an entry came from.
type Section string

const (
	SectionSpecial  Section = "special"
	SectionOperator Section = "operator"
	SectionKeyword  Section = "keyword"
)

// Issue is one defect found by Validate.
type Issue struct {
	Index   int
	Section Section
	Def     token.Def
	Msg     string
}

func (i *Issue) Error() string {
	return fmt.Sprintf("%s #%d %s (%q): %s", i.Section, i.Index, i.Def.Name, i.Def.Text, i.Msg)
}

// Section reports which sub-list catalog position i belongs to.
func (c *Catalog) Section(i int) Section {
	switch {
	case i < c.nSpec:
		return SectionSpecial
	case i < c.nSpec+c.nOps:
		return SectionOperator
	default:
		return SectionKeyword
	}
}

// Validate checks the contract both emitted artifacts depend on. It returns nil
// or a *multierror.Error whose entries are *Issue, in catalog order.
func Validate(c *Catalog) error {
	var result *multierror.Error
	report := func(i int, format string, args ...any) {
		result = multierror.Append(result, &Issue{
			Index:   i,
			Section: c.Section(i),
			Def:     c.defs[i],
			Msg:     fmt.Sprintf(format, args...),
		})
	}

	names := make(map[string]int, len(c.defs))
	opTexts := make(map[string]int, c.nOps)
	kwTexts := make(map[string]int, len(c.defs)-c.nSpec-c.nOps)

	for i, d := range c.defs {
		if !token.IsValidName(d.Name) {
			report(i, "symbolic name is not a valid identifier")
		}
		if first, dup := names[d.Name]; dup {
			report(i, "duplicate symbolic name, first defined at ID %d", c.ID(first))
		} else {
			names[d.Name] = i
		}

		switch c.Section(i) {
		case SectionOperator:
			if !token.IsOperatorText(d.Text) {
				report(i, "operator text must be a non-empty run of symbols")
			}
			if first, dup := opTexts[d.Text]; dup {
				report(i, "duplicate operator text, first defined by %s", c.defs[first].Name)
			} else {
				opTexts[d.Text] = i
			}
		case SectionKeyword:
			if !token.IsKeywordText(d.Text) {
				report(i, "keyword text must be a non-empty word without whitespace")
			}
			if first, dup := kwTexts[d.Text]; dup {
				report(i, "duplicate keyword, first defined by %s", c.defs[first].Name)
			} else {
				kwTexts[d.Text] = i
			}
		}
	}
	return result.ErrorOrNil()
}

// Issues flattens a Validate error back into its issues.
func Issues(err error) []*Issue {
	merr, ok := err.(*multierror.Error)
	if !ok {
		if is, ok := err.(*Issue); ok {
			return []*Issue{is}
		}
		return nil
	}
	out := make([]*Issue, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		if is, ok := e.(*Issue); ok {
			out = append(out, is)
		}
	}
	return out
}
