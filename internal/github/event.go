package github

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/titlelint/internal/gitctx"
)

// Event is the subset of a GitHub Actions webhook payload titlelint reads.
type Event struct {
	Action      string `json:"action"`
	PullRequest *struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
		Head   struct {
			SHA string `json:"sha"`
		} `json:"head"`
	} `json:"pull_request"`
	HeadCommit *struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	} `json:"head_commit"`
}

// prActions are the pull_request actions whose title is worth checking.
var prActions = map[string]bool{
	"opened":      true,
	"edited":      true,
	"synchronize": true,
	"reopened":    true,
}

// LoadEvent reads the webhook payload pointed to by GITHUB_EVENT_PATH, or
// the given path when non-empty.
func LoadEvent(path string) (*Event, error) {
	if path == "" {
		path = os.Getenv("GITHUB_EVENT_PATH")
	}
	if path == "" {
		return nil, fmt.Errorf("GITHUB_EVENT_PATH is not set; not running under GitHub Actions?")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading event payload: %w", err)
	}
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("parsing event payload: %w", err)
	}
	return &ev, nil
}

// Title extracts the title to check from the event: the pull request title
// when present, otherwise the first line of the pushed head commit message.
// Having neither is an environment error, not a validation failure.
func (e *Event) Title() (title, source string, err error) {
	if e.PullRequest != nil {
		if e.Action != "" && !prActions[e.Action] {
			return "", "", fmt.Errorf("pull_request action %q does not carry a title to check", e.Action)
		}
		return e.PullRequest.Title, fmt.Sprintf("pull request #%d", e.PullRequest.Number), nil
	}
	if e.HeadCommit != nil {
		return gitctx.FirstLine(e.HeadCommit.Message), fmt.Sprintf("commit %s", shortSHA(e.HeadCommit.ID)), nil
	}
	return "", "", fmt.Errorf("event payload has neither a pull request title nor a head commit")
}

// SHA returns the commit to attach a status to, if the event names one.
func (e *Event) SHA() string {
	if e.PullRequest != nil {
		return e.PullRequest.Head.SHA
	}
	if e.HeadCommit != nil {
		return e.HeadCommit.ID
	}
	return ""
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
