package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/titlelint/internal/github"
	"github.com/spf13/cobra"
)

var (
	flagEventPath   string
	flagEventStatus bool
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Check the title from a GitHub Actions event payload",
	Long: "Read the webhook payload at GITHUB_EVENT_PATH and check the pull request title, " +
		"or the pushed head commit subject when the event is a push. Intended to run inside a workflow.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := loadConfig(cmd)
		if !ok {
			return nil
		}

		ev, err := github.LoadEvent(flagEventPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		title, source, err := ev.Title()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		lintTitles("event", []titleItem{{title: title, source: source}}, cfg)

		if flagEventStatus {
			sha := ev.SHA()
			if sha == "" {
				fmt.Fprintln(os.Stderr, "Warning: event names no commit; skipping status")
				return nil
			}
			client, err := github.NewClient()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitAuthError
				return nil
			}
			owner, repo, err := repoFromEnv()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v; skipping status\n", err)
				return nil
			}
			if err := postStatus(context.Background(), client, owner, repo, sha); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not post commit status: %v\n", err)
			}
		}
		return nil
	},
}

// repoFromEnv reads owner/repo from the GITHUB_REPOSITORY variable Actions
// always sets, falling back to the git remote.
func repoFromEnv() (owner, repo string, err error) {
	if v := os.Getenv("GITHUB_REPOSITORY"); v != "" {
		if o, r, found := strings.Cut(v, "/"); found && o != "" && r != "" {
			return o, r, nil
		}
	}
	return github.DetectRepo()
}

func init() {
	addCheckFlags(eventCmd)
	eventCmd.Flags().StringVar(&flagEventPath, "event-path", "", "Path to the event payload (default: $GITHUB_EVENT_PATH)")
	eventCmd.Flags().BoolVar(&flagEventStatus, "status", false, "Post the verdict as a commit status")
}
