// Package lock records the IDs a previous run assigned, so a later run can tell
// whether any existing token changed its number.
package lock

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/spf13/afero"
	"github.com/vmihailenco/msgpack/v5"

	"tokgen/internal/catalog"
	"tokgen/internal/failure"
)

// Current schema version - increment when Snapshot format changes
const schemaVersion uint16 = 1

// Entry is one locked token.
type Entry struct {
	Name string `msgpack:"n"`
	Text string `msgpack:"t"`
	ID   uint32 `msgpack:"i"`
}

// Snapshot is the persisted form of a catalog.
type Snapshot struct {
	Schema  uint16         `msgpack:"schema"`
	Digest  catalog.Digest `msgpack:"digest"`
	Entries []Entry        `msgpack:"entries"`
}

// FromCatalog snapshots c.
func FromCatalog(c *catalog.Catalog) (*Snapshot, error) {
	s := &Snapshot{
		Schema:  schemaVersion,
		Digest:  c.Digest(),
		Entries: make([]Entry, c.Len()),
	}
	for i := 0; i < c.Len(); i++ {
		id, err := safecast.Conv[uint32](c.ID(i))
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", c.At(i).Name, err)
		}
		d := c.At(i)
		s.Entries[i] = Entry{Name: d.Name, Text: d.Text, ID: id}
	}
	return s, nil
}

// Load reads a snapshot. A missing file yields (nil, nil).
func Load(fsys afero.Fs, path string) (*Snapshot, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, failure.Config("read lock", path, err)
	}
	var s Snapshot
	if err := msgpack.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return nil, failure.Configf("read lock", path, "corrupt lock file: %v", err)
	}
	if s.Schema != schemaVersion {
		return nil, failure.Configf("read lock", path, "lock schema %d, want %d", s.Schema, schemaVersion)
	}
	return &s, nil
}

// Save replaces the snapshot at path atomically.
func Save(fsys afero.Fs, path string, s *Snapshot) error {
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("encode lock: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return failure.Config("write lock", path, err)
	}
	f, err := afero.TempFile(fsys, dir, "tmp-*")
	if err != nil {
		return failure.Config("write lock", path, err)
	}
	defer func() {
		// after a successful rename the temp name no longer exists
		_ = fsys.Remove(f.Name())
	}()
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return failure.Config("write lock", path, err)
	}
	if err := f.Close(); err != nil {
		return failure.Config("write lock", path, err)
	}
	// swap in place of the previous lock
	if err := fsys.Rename(f.Name(), path); err != nil {
		return failure.Config("write lock", path, err)
	}
	return nil
}
