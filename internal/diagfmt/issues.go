package diagfmt

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tokgen/internal/catalog"
	"tokgen/internal/failure"
	"tokgen/internal/lock"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	noteLabel  = color.New(color.FgYellow)
	pathColor  = color.New(color.Bold)
)

// FormatError prints err the way the CLI reports fatal failures. Validation
// failures list every issue; tool failures include the captured stderr.
func FormatError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if issues := catalog.Issues(err); len(issues) > 0 {
		fmt.Fprintf(w, "%s catalog has %d problem(s)\n", errorLabel.Sprint("error:"), len(issues))
		for _, is := range issues {
			fmt.Fprintf(w, "  %s %s %s: %s\n",
				idColor.Sprintf("#%d", is.Index+1), is.Section, pathColor.Sprint(is.Def.Name), is.Msg)
		}
		return
	}

	var tool *failure.ExternalToolError
	if errors.As(err, &tool) {
		fmt.Fprintf(w, "%s grammar compiler failed (exit %d)\n", errorLabel.Sprint("error:"), tool.ExitCode)
		if tool.Stderr != "" {
			fmt.Fprintf(w, "%s\n%s\n", noteLabel.Sprint("stderr:"), tool.Stderr)
		}
		return
	}

	var cfg *failure.ConfigurationError
	if errors.As(err, &cfg) {
		fmt.Fprintf(w, "%s %s\n", errorLabel.Sprint("config error:"), err)
		return
	}

	var shift *lock.ShiftError
	if errors.As(err, &shift) {
		fmt.Fprintf(w, "%s %s\n", errorLabel.Sprint("error:"), err)
		fmt.Fprintf(w, "%s rerun without --frozen to accept the new numbering\n", noteLabel.Sprint("note:"))
		return
	}

	fmt.Fprintf(w, "%s %s\n", errorLabel.Sprint("error:"), err)
}

// FormatLockReport summarizes how the catalog moved relative to the lock.
func FormatLockReport(w io.Writer, rep lock.Report) {
	for _, s := range rep.Shifted {
		fmt.Fprintf(w, "  %s %s %d -> %d\n", noteLabel.Sprint("shifted"), s.Name, s.From, s.To)
	}
	for _, e := range rep.Removed {
		fmt.Fprintf(w, "  %s %s (%d)\n", errorLabel.Sprint("removed"), e.Name, e.ID)
	}
	for _, e := range rep.Retexted {
		fmt.Fprintf(w, "  %s %s now %q\n", noteLabel.Sprint("retexted"), e.Name, e.Text)
	}
	if n := len(rep.Added); n > 0 {
		fmt.Fprintf(w, "  %s %d token(s)\n", keywordColor.Sprint("added"), n)
	}
}
