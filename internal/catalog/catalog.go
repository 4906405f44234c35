// Package catalog assembles the ordered token table that every artifact is rendered from.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"

	"tokgen/internal/token"
)

// Digest is a sha256 over the canonical catalog encoding.
type Digest [32]byte

// String returns the lowercase hex form.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Short returns the first twelve hex digits.
func (d Digest) Short() string { return d.String()[:12] }

// Catalog is the ordered, immutable sequence special ++ operators ++ keywords.
// The ID of an entry is its index plus token.Base.
type Catalog struct {
	defs   []token.Def
	nSpec  int
	nOps   int
	byName map[string]int // first occurrence wins
}

// Build concatenates the three lists in fixed order. It does not sort, filter or
// deduplicate; run Validate before emitting anything.
func Build(special, operators, keywords []token.Def) *Catalog {
	defs := make([]token.Def, 0, len(special)+len(operators)+len(keywords))
	defs = append(defs, special...)
	defs = append(defs, operators...)
	defs = append(defs, keywords...)

	byName := make(map[string]int, len(defs))
	for i, d := range defs {
		if _, dup := byName[d.Name]; !dup {
			byName[d.Name] = i
		}
	}
	return &Catalog{
		defs:   defs,
		nSpec:  len(special),
		nOps:   len(operators),
		byName: byName,
	}
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.defs) }

// At returns the entry at catalog position i.
func (c *Catalog) At(i int) token.Def { return c.defs[i] }

// ID returns the token ID of catalog position i.
func (c *Catalog) ID(i int) token.ID { return token.ID(i) + token.Base }

// MaxID is the ID of the last entry, or token.Invalid for an empty catalog.
func (c *Catalog) MaxID() token.ID {
	if len(c.defs) == 0 {
		return token.Invalid
	}
	return c.ID(len(c.defs) - 1)
}

// Defs returns a copy of every entry in catalog order.
func (c *Catalog) Defs() []token.Def { return append([]token.Def(nil), c.defs...) }

// Special returns the structurally special entries.
func (c *Catalog) Special() []token.Def {
	return append([]token.Def(nil), c.defs[:c.nSpec]...)
}

// Operators returns the operator entries in catalog order.
func (c *Catalog) Operators() []token.Def {
	return append([]token.Def(nil), c.defs[c.nSpec:c.nSpec+c.nOps]...)
}

// Keywords returns the reserved word entries in catalog order.
func (c *Catalog) Keywords() []token.Def {
	return append([]token.Def(nil), c.defs[c.nSpec+c.nOps:]...)
}

// OperatorOffset is the catalog position of the first operator.
func (c *Catalog) OperatorOffset() int { return c.nSpec }

// KeywordOffset is the catalog position of the first keyword.
func (c *Catalog) KeywordOffset() int { return c.nSpec + c.nOps }

// Lookup finds the ID of a symbolic name.
func (c *Catalog) Lookup(name string) (token.ID, bool) {
	i, ok := c.byName[name]
	if !ok {
		return token.Invalid, false
	}
	return c.ID(i), true
}

// Digest hashes names and texts in order. Two catalogs with equal digests
// produce byte-identical artifacts.
func (c *Catalog) Digest() Digest {
	h := sha256.New()
	for _, d := range c.defs {
		_, _ = h.Write([]byte(d.Name))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(d.Text))
		_, _ = h.Write([]byte{'\n'})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
