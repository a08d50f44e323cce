// Package github talks to the GitHub REST API: it fetches pull request
// titles, posts commit statuses, detects owner/repo from the git remote,
// and extracts the title to check from a GitHub Actions event payload.
package github
