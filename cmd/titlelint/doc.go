// Titlelint is a CLI for validating pull request titles and commit subjects
// against the Conventional Commits v1.0.0 format.
//
// It checks a title supplied directly, read from a commit message file, or
// pulled from git history, GitHub pull requests, and GitHub Actions event
// payloads, emitting structured verdicts with deterministic exit codes
// suitable for CI gating and git hooks.
//
// Usage:
//
//	titlelint check "feat: add user authentication"  # check a literal title
//	titlelint commit HEAD                            # check the latest commit subject
//	titlelint range origin/main..HEAD                # check every subject in a range
//	titlelint pr 42                                  # check a GitHub PR title
//	titlelint event                                  # check the title from a workflow event
//	titlelint hook install                           # install the commit-msg hook
//
// See https://github.com/dshills/titlelint for full documentation.
package main
