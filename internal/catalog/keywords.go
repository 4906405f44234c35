package catalog

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tokgen/internal/failure"
	"tokgen/internal/token"
)

// KeywordDefs derives one definition per word, preserving order:
// KW_<WORD> named, spelled as the word itself.
func KeywordDefs(words []string) []token.Def {
	upper := cases.Upper(language.Und)
	out := make([]token.Def, 0, len(words))
	for _, w := range words {
		out = append(out, token.Def{
			Name: token.KeywordPrefix + upper.String(w),
			Text: w,
		})
	}
	return out
}

// ReadWords splits a word list into lines, trimming surrounding whitespace of
// each line. Blank lines are kept; Validate reports them.
func ReadWords(data []byte) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		words = append(words, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadKeywords reads the external word list and derives keyword definitions.
func LoadKeywords(fsys afero.Fs, path string) ([]token.Def, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, failure.Configf("read keywords", path, "word list does not exist")
		}
		return nil, failure.Config("read keywords", path, err)
	}
	words, err := ReadWords(data)
	if err != nil {
		return nil, failure.Config("read keywords", path, err)
	}
	return KeywordDefs(words), nil
}
