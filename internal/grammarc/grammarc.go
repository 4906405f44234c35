// Package grammarc runs the external grammar compiler once the token artifacts exist.
package grammarc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"tokgen/internal/failure"
	"tokgen/internal/trace"
)

// DefaultCommand is the ANTLR tool invocation used when none is configured.
var DefaultCommand = []string{"java", "-jar", "lib/antlr4-4.2.2-complete.jar"}

// Invocation describes one compiler run.
type Invocation struct {
	Command   []string // program and leading arguments
	OutputDir string   // passed as -o; where the tokens file was written
	Grammar   string   // grammar description file
	Dir       string   // working directory; empty means the current one
}

// Argv is the full argument vector: Command... -o OutputDir Grammar.
func (inv Invocation) Argv() []string {
	cmd := inv.Command
	if len(cmd) == 0 {
		cmd = DefaultCommand
	}
	argv := append([]string(nil), cmd...)
	if inv.OutputDir != "" {
		argv = append(argv, "-o", inv.OutputDir)
	}
	return append(argv, inv.Grammar)
}

// Runner executes an invocation. The pipeline takes one so tests can stub the compiler.
type Runner interface {
	Run(ctx context.Context, inv Invocation, stdout io.Writer) error
}

// Exec runs the compiler as a child process.
type Exec struct{}

// Run blocks until the compiler exits. Any non-zero exit is an ExternalToolError.
func (Exec) Run(ctx context.Context, inv Invocation, stdout io.Writer) error {
	if inv.Grammar == "" {
		return failure.Configf("run grammar compiler", "", "no grammar file configured")
	}
	argv := inv.Argv()

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "grammar-compiler", trace.CurrentSpan(ctx).SpanID)
	span.WithExtra("argv", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = inv.Dir
	if stdout == nil {
		stdout = io.Discard
	}
	cmd.Stdout = stdout
	var stderr strings.Builder
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		span.End("ok")
		return nil
	}

	toolErr := &failure.ExternalToolError{
		Argv:     argv,
		ExitCode: -1,
		Stderr:   stderr.String(),
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		toolErr.ExitCode = exitErr.ExitCode()
	}
	span.End(fmt.Sprintf("exit %d", toolErr.ExitCode))
	return toolErr
}
