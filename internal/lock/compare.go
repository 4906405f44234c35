package lock

import (
	"fmt"
	"strings"

	"tokgen/internal/catalog"
)

// Shift is a locked token whose ID changed.
type Shift struct {
	Name string
	From uint32
	To   uint32
}

// Report describes how a catalog differs from a snapshot.
type Report struct {
	Shifted  []Shift
	Removed  []Entry // locked names no longer in the catalog
	Added    []Entry // catalog names absent from the lock
	Retexted []Entry // same name and ID, new spelling (new text in Entry.Text)
}

// Clean reports whether no existing token moved or disappeared.
func (r Report) Clean() bool { return len(r.Shifted) == 0 && len(r.Removed) == 0 }

// Empty reports whether the catalog matches the snapshot exactly.
func (r Report) Empty() bool {
	return r.Clean() && len(r.Added) == 0 && len(r.Retexted) == 0
}

// Compare diffs c against the snapshot old. A nil snapshot reports every entry as added.
func Compare(old *Snapshot, c *catalog.Catalog) (Report, error) {
	cur, err := FromCatalog(c)
	if err != nil {
		return Report{}, err
	}
	var rep Report
	if old == nil {
		rep.Added = cur.Entries
		return rep, nil
	}

	prev := make(map[string]Entry, len(old.Entries))
	for _, e := range old.Entries {
		prev[e.Name] = e
	}
	seen := make(map[string]bool, len(cur.Entries))
	for _, e := range cur.Entries {
		seen[e.Name] = true
		p, ok := prev[e.Name]
		switch {
		case !ok:
			rep.Added = append(rep.Added, e)
		case p.ID != e.ID:
			rep.Shifted = append(rep.Shifted, Shift{Name: e.Name, From: p.ID, To: e.ID})
		case p.Text != e.Text:
			rep.Retexted = append(rep.Retexted, e)
		}
	}
	for _, e := range old.Entries {
		if !seen[e.Name] {
			rep.Removed = append(rep.Removed, e)
		}
	}
	return rep, nil
}

// ShiftError fails a frozen run whose catalog renumbers locked tokens.
type ShiftError struct {
	Report Report
}

func (e *ShiftError) Error() string {
	var parts []string
	for i, s := range e.Report.Shifted {
		if i == 5 {
			parts = append(parts, fmt.Sprintf("and %d more", len(e.Report.Shifted)-5))
			break
		}
		parts = append(parts, fmt.Sprintf("%s %d->%d", s.Name, s.From, s.To))
	}
	for _, r := range e.Report.Removed {
		parts = append(parts, fmt.Sprintf("%s removed", r.Name))
	}
	return "locked token ids changed: " + strings.Join(parts, ", ")
}
