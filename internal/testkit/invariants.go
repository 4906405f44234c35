// Package testkit holds checks shared by tests across packages.
package testkit

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"tokgen/internal/catalog"
	"tokgen/internal/token"
)

// CheckCatalogInvariants runs the properties both artifacts depend on:
// 1) entry i has ID i+token.Base, so IDs are contiguous from 1
// 2) the three sections partition the catalog in order
// 3) MaxID equals the number of entries
// 4) every name resolves to the ID of its first occurrence
func CheckCatalogInvariants(c *catalog.Catalog) error {
	if c == nil {
		return fmt.Errorf("nil catalog")
	}
	n := c.Len()
	for i := 0; i < n; i++ {
		want, err := safecast.Conv[int32](i + 1)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if c.ID(i) != token.ID(want) {
			return fmt.Errorf("entry %d has ID %d, want %d", i, c.ID(i), want)
		}
	}

	parts := len(c.Special()) + len(c.Operators()) + len(c.Keywords())
	if parts != n {
		return fmt.Errorf("sections hold %d entries, catalog has %d", parts, n)
	}
	if c.OperatorOffset() != len(c.Special()) || c.KeywordOffset() != len(c.Special())+len(c.Operators()) {
		return fmt.Errorf("section offsets %d/%d do not match section sizes", c.OperatorOffset(), c.KeywordOffset())
	}
	if int(c.MaxID()) != n {
		return fmt.Errorf("MaxID %d, want %d", c.MaxID(), n)
	}

	first := make(map[string]int, n)
	for i := 0; i < n; i++ {
		name := c.At(i).Name
		if _, seen := first[name]; !seen {
			first[name] = i
		}
	}
	for name, i := range first {
		id, ok := c.Lookup(name)
		if !ok || id != c.ID(i) {
			return fmt.Errorf("Lookup(%q) = %d, %v; want %d", name, id, ok, c.ID(i))
		}
	}
	return nil
}

// CheckTokensFile parses an identifier-mapping file and compares it line by
// line with c.
func CheckTokensFile(data []byte, c *catalog.Catalog) error {
	sc := bufio.NewScanner(bytes.NewReader(data))
	i := 0
	for sc.Scan() {
		line := sc.Text()
		name, num, ok := strings.Cut(line, " = ")
		if !ok {
			return fmt.Errorf("line %d: %q is not NAME = N", i+1, line)
		}
		v, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		id, err := safecast.Conv[int32](v)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		if i >= c.Len() {
			return fmt.Errorf("line %d: %s beyond the %d catalog entries", i+1, name, c.Len())
		}
		if name != c.At(i).Name || token.ID(id) != c.ID(i) {
			return fmt.Errorf("line %d: %s = %d, want %s = %d", i+1, name, id, c.At(i).Name, c.ID(i))
		}
		i++
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if i != c.Len() {
		return fmt.Errorf("tokens file has %d lines, catalog has %d entries", i, c.Len())
	}
	return nil
}
