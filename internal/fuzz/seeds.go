package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

func addKeywordSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "examples")
	if _, err := os.Stat(root); err == nil {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".txt" {
				return nil
			}
			// #nosec G304 -- path comes from the repository examples walk
			data, err := os.ReadFile(path)
			if err != nil || len(data) > maxSeedBytes {
				return nil
			}
			f.Add(data)
			return nil
		})
	}
	for _, seed := range []string{
		"",
		"always\n",
		"always\r\nbegin\r\n",
		"  spaced  \n\n\tend\n",
		"dup\ndup\n",
		"with space\n",
		"ünïcode\n",
		"\"quoted\"\n`tick`\n",
		"PATHPULSE$\n",
	} {
		f.Add([]byte(seed))
	}
}

func addOperatorSeeds(f *testing.F) {
	for _, seed := range []string{
		"", "<", "<<", "<<<=", "!==?", "->>", "|->x", "##[*]", "::", "'{", "(*", "a<b", "\x00",
	} {
		f.Add(seed)
	}
}
