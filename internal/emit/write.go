package emit

import (
	"path/filepath"

	"github.com/spf13/afero"

	"tokgen/internal/failure"
)

// replaceFile creates the parent directory if needed and swaps data in under
// path via a temp file and rename, so readers never see a half-written artifact.
func replaceFile(fsys afero.Fs, op, path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return failure.Config(op, path, err)
	}
	f, err := afero.TempFile(fsys, dir, ".tokgen-*")
	if err != nil {
		return failure.Config(op, path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = fsys.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return failure.Config(op, path, err)
	}
	if err = f.Close(); err != nil {
		return failure.Config(op, path, err)
	}
	if err = fsys.Chmod(tmp, 0o644); err != nil {
		return failure.Config(op, path, err)
	}
	if err = fsys.Rename(tmp, path); err != nil {
		return failure.Config(op, path, err)
	}
	return nil
}
