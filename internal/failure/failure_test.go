package failure

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestConfigurationErrorWrapping(t *testing.T) {
	err := fmt.Errorf("catalog: %w", Config("read keywords", "kw.txt", fs.ErrNotExist))
	if !IsConfiguration(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist in chain")
	}
	want := "catalog: read keywords kw.txt: file does not exist"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
	if Config("x", "y", nil) != nil {
		t.Fatalf("Config(nil) must be nil")
	}
}

func TestExternalToolErrorMessages(t *testing.T) {
	cases := []struct {
		err  *ExternalToolError
		want string
	}{
		{&ExternalToolError{Argv: []string{"java"}, ExitCode: 2, Stderr: " boom \n"}, "java: exit status 2: boom"},
		{&ExternalToolError{Argv: []string{"java"}, ExitCode: 1}, "java: exit status 1"},
		{&ExternalToolError{Argv: []string{"java"}, ExitCode: -1, Err: errors.New("not found")}, "java: not found"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("Error() = %q, want %q", got, tc.want)
		}
		if !IsExternalTool(fmt.Errorf("wrap: %w", tc.err)) {
			t.Fatalf("expected external tool error")
		}
		if IsConfiguration(tc.err) {
			t.Fatalf("external tool error must not be a configuration error")
		}
	}
}
