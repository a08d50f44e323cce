package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/titlelint/internal/lint"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *lint.Report) error {
	fmt.Fprintf(w, "## titlelint\n\n")

	fmt.Fprintf(w, "| Result | Count |\n")
	fmt.Fprintf(w, "|--------|-------|\n")
	fmt.Fprintf(w, "| Passed | %d    |\n", report.Summary.Passed)
	fmt.Fprintf(w, "| Failed | %d    |\n", report.Summary.Failed)
	fmt.Fprintf(w, "| **Total** | **%d** |\n\n", report.Summary.Checked)

	if report.Valid() {
		fmt.Fprintln(w, "All titles follow the Conventional Commits format. :white_check_mark:")
		return nil
	}

	for _, checked := range report.Titles {
		if checked.Result.Valid {
			continue
		}
		if checked.Source != "" {
			fmt.Fprintf(w, "### :x: %s — `%s`\n\n", checked.Source, checked.Title)
		} else {
			fmt.Fprintf(w, "### :x: `%s`\n\n", checked.Title)
		}
		for n, e := range checked.Result.Errors {
			fmt.Fprintf(w, "%d. **%s** — %s", n+1, e.Code, e.Message)
			if e.Example != "" {
				fmt.Fprintf(w, " (e.g. `%s`)", e.Example)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Expected format: `%s`\n\n", formatGrammar)
	fmt.Fprintf(w, "Allowed types: %s\n", "`"+strings.Join(lint.DefaultTypes, "`, `")+"`")
	if report.Strict {
		fmt.Fprintf(w, "\nStrict mode rules:\n\n")
		for _, rule := range strictRules {
			fmt.Fprintf(w, "- %s\n", rule)
		}
	}

	return nil
}
