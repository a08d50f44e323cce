package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/titlelint/internal/lint"
)

// formatGrammar is the static restatement of the expected title format,
// printed whenever a title fails.
const formatGrammar = "<type>[(scope)][!]: <description>"

// strictRules restates the stylistic rules active in strict mode.
var strictRules = []string{
	"description starts with a lowercase letter",
	"description does not end with a period",
	"description uses the imperative mood (\"add\", not \"added\")",
}

// TextWriter outputs a human-readable report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *lint.Report) error {
	ew := &errWriter{w: w}

	for i, checked := range report.Titles {
		if i > 0 {
			ew.println("")
		}
		if checked.Result.Valid {
			ew.printf("✓ %s\n", describeTitle(checked))
			continue
		}

		ew.printf("✗ %s\n", describeTitle(checked))
		for n, e := range checked.Result.Errors {
			ew.printf("  %d. %s\n", n+1, e.Message)
			if e.Example != "" {
				ew.printf("     Example: %s\n", e.Example)
			}
		}
	}

	if report.Valid() {
		switch report.Summary.Checked {
		case 0:
			ew.println("Nothing to check.")
		case 1:
			ew.println("Title follows the Conventional Commits format.")
		default:
			ew.printf("All %d titles follow the Conventional Commits format.\n", report.Summary.Checked)
		}
		return ew.err
	}

	ew.println("")
	ew.println(strings.Repeat("─", 60))
	ew.printf("Expected format: %s\n", formatGrammar)
	ew.printf("Allowed types:   %s\n", strings.Join(lint.DefaultTypes, ", "))
	if report.Strict {
		ew.println("Strict mode rules:")
		for _, rule := range strictRules {
			ew.printf("  - %s\n", rule)
		}
	}
	ew.printf("%d of %d titles failed.\n", report.Summary.Failed, report.Summary.Checked)

	return ew.err
}

func describeTitle(checked lint.CheckedTitle) string {
	if checked.Source != "" {
		return fmt.Sprintf("%s: %q", checked.Source, checked.Title)
	}
	return fmt.Sprintf("%q", checked.Title)
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
