// Package project loads tokgen.toml, the description of one generation target.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"tokgen/internal/failure"
	"tokgen/internal/grammarc"
)

// FileName is the manifest searched for by Find.
const FileName = "tokgen.toml"

// Config is a loaded manifest with every path resolved against Root.
type Config struct {
	Path string // manifest path
	Root string // directory holding the manifest

	Package      string
	KeywordsFile string
	GrammarFile  string
	TokensFile   string
	SymbolsFile  string
	LockFile     string // empty disables the lock

	Command     []string
	CompilerOut string // -o for the grammar compiler
	SkipGrammar bool
}

type manifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Input struct {
		Keywords string `toml:"keywords"`
		Grammar  string `toml:"grammar"`
	} `toml:"input"`
	Output struct {
		Tokens  string `toml:"tokens"`
		Symbols string `toml:"symbols"`
		Lock    string `toml:"lock"`
	} `toml:"output"`
	Compiler struct {
		Command []string `toml:"command"`
		OutDir  string   `toml:"out_dir"`
		Skip    bool     `toml:"skip"`
	} `toml:"compiler"`
}

// Find walks up from startDir to the nearest tokgen.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the manifest at path.
func Load(path string) (*Config, error) {
	var m manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, failure.Configf("load manifest", path, "failed to parse TOML: %v", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, failure.Configf("load manifest", path, "unknown key %s", undecoded[0])
	}

	required := [][]string{
		{"input", "keywords"},
		{"input", "grammar"},
		{"output", "tokens"},
		{"output", "symbols"},
	}
	for _, key := range required {
		if !meta.IsDefined(key...) {
			return nil, failure.Configf("load manifest", path, "missing [%s].%s", key[0], key[1])
		}
	}

	root := filepath.Dir(path)
	resolve := func(p string) string {
		p = strings.TrimSpace(p)
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(root, filepath.FromSlash(p))
	}

	cfg := &Config{
		Path:         path,
		Root:         root,
		Package:      strings.TrimSpace(m.Package.Name),
		KeywordsFile: resolve(m.Input.Keywords),
		GrammarFile:  resolve(m.Input.Grammar),
		TokensFile:   resolve(m.Output.Tokens),
		SymbolsFile:  resolve(m.Output.Symbols),
		LockFile:     resolve(m.Output.Lock),
		Command:      m.Compiler.Command,
		CompilerOut:  resolve(m.Compiler.OutDir),
		SkipGrammar:  m.Compiler.Skip,
	}
	if len(cfg.Command) == 0 {
		cfg.Command = append([]string(nil), grammarc.DefaultCommand...)
	}
	if cfg.CompilerOut == "" {
		cfg.CompilerOut = filepath.Dir(cfg.TokensFile)
	}
	for _, p := range []struct{ key, val string }{
		{"[input].keywords", cfg.KeywordsFile},
		{"[input].grammar", cfg.GrammarFile},
		{"[output].tokens", cfg.TokensFile},
		{"[output].symbols", cfg.SymbolsFile},
	} {
		if p.val == "" {
			return nil, failure.Configf("load manifest", path, "%s is empty", p.key)
		}
	}
	if cfg.TokensFile == cfg.SymbolsFile {
		return nil, failure.Configf("load manifest", path, "[output].tokens and [output].symbols must differ")
	}
	return cfg, nil
}

// Discover finds and loads the manifest nearest to startDir.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, failure.Configf("load manifest", startDir, "no %s found in this directory or any parent", FileName)
	}
	return Load(path)
}

// Invocation is the grammar compiler run this manifest asks for.
func (c *Config) Invocation() grammarc.Invocation {
	return grammarc.Invocation{
		Command:   c.Command,
		OutputDir: c.CompilerOut,
		Grammar:   c.GrammarFile,
		Dir:       c.Root,
	}
}
