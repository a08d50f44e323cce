package cli

import (
	"fmt"
	"os"

	"github.com/dshills/titlelint/internal/gitctx"
	"github.com/spf13/cobra"
)

var commitCmd = &cobra.Command{
	Use:   "commit [sha]",
	Short: "Check a commit subject",
	Long:  "Check the subject line of a commit. Defaults to HEAD when no revision is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := loadConfig(cmd)
		if !ok {
			return nil
		}

		var (
			subject gitctx.CommitSubject
			err     error
		)
		if len(args) == 1 {
			subject, err = gitctx.Subject(args[0])
		} else {
			subject, err = gitctx.HeadSubject()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		lintTitles("commit", []titleItem{{
			title:  subject.Subject,
			source: "commit " + shortSHA(subject.SHA),
		}}, cfg)
		return nil
	},
}

var rangeCmd = &cobra.Command{
	Use:   "range <rev-range>",
	Short: "Check every commit subject in a revision range",
	Long:  "Check the subject of every commit in a revision range such as origin/main..HEAD. Merge commits are skipped.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := loadConfig(cmd)
		if !ok {
			return nil
		}

		subjects, err := gitctx.RangeSubjects(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		items := make([]titleItem, len(subjects))
		for i, s := range subjects {
			items[i] = titleItem{title: s.Subject, source: "commit " + shortSHA(s.SHA)}
		}
		lintTitles("range", items, cfg)
		return nil
	},
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func init() {
	addCheckFlags(commitCmd)
	addCheckFlags(rangeCmd)
}
