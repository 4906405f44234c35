package emit

import (
	"bytes"
	"strconv"

	"github.com/spf13/afero"

	"tokgen/internal/catalog"
)

// RenderTokens renders the ANTLR tokens file: one "NAME = N" line per entry.
func RenderTokens(c *catalog.Catalog) []byte {
	var buf bytes.Buffer
	for i := 0; i < c.Len(); i++ {
		buf.WriteString(c.At(i).Name)
		buf.WriteString(" = ")
		buf.WriteString(strconv.FormatInt(int64(c.ID(i)), 10))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// WriteTokens replaces the tokens file at path.
func WriteTokens(fsys afero.Fs, path string, c *catalog.Catalog) error {
	return replaceFile(fsys, "write tokens", path, RenderTokens(c))
}
