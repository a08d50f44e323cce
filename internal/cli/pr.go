package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dshills/titlelint/internal/github"
	"github.com/spf13/cobra"
)

var (
	flagPROwner  string
	flagPRRepo   string
	flagPRStatus bool
)

var prCmd = &cobra.Command{
	Use:   "pr <number>",
	Short: "Check a GitHub pull request title",
	Long:  "Fetch a pull request title from GitHub, check it, and optionally post the verdict as a commit status on the PR head.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid PR number %q\n", args[0])
			exitCode = ExitUsageError
			return nil
		}

		cfg, ok := loadConfig(cmd)
		if !ok {
			return nil
		}

		owner, repo := flagPROwner, flagPRRepo
		if owner == "" || repo == "" {
			detectedOwner, detectedRepo, err := github.DetectRepo()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\nUse --owner and --repo flags to specify manually.\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			if owner == "" {
				owner = detectedOwner
			}
			if repo == "" {
				repo = detectedRepo
			}
		}

		client, err := github.NewClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		ctx := context.Background()
		pr, err := client.GetPR(ctx, owner, repo, number)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		lintTitles("pr", []titleItem{{
			title:  pr.Title,
			source: fmt.Sprintf("pull request #%d", pr.Number),
		}}, cfg)

		if flagPRStatus && pr.HeadSHA != "" {
			if err := postStatus(ctx, client, owner, repo, pr.HeadSHA); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not post commit status: %v\n", err)
			}
		}
		return nil
	},
}

// postStatus reports the verdict already reflected in exitCode to GitHub.
func postStatus(ctx context.Context, client *github.Client, owner, repo, sha string) error {
	status := github.CommitStatus{
		State:       "success",
		Description: "title follows the Conventional Commits format",
		Context:     github.StatusContext,
	}
	if exitCode == ExitInvalid {
		status.State = "failure"
		status.Description = "title does not follow the Conventional Commits format"
	}
	return client.CreateCommitStatus(ctx, owner, repo, sha, status)
}

func init() {
	addCheckFlags(prCmd)
	prCmd.Flags().StringVar(&flagPROwner, "owner", "", "Repository owner (default: detect from git remote)")
	prCmd.Flags().StringVar(&flagPRRepo, "repo", "", "Repository name (default: detect from git remote)")
	prCmd.Flags().BoolVar(&flagPRStatus, "status", false, "Post the verdict as a commit status on the PR head")
}
