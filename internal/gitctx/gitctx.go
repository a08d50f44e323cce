package gitctx

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// RepoMeta contains git repository metadata.
type RepoMeta struct {
	Root   string
	Head   string
	Branch string
}

// CommitSubject pairs a commit SHA with the first line of its message.
type CommitSubject struct {
	SHA     string
	Subject string
}

// GetRepoMeta collects repository metadata from git.
func GetRepoMeta() (RepoMeta, error) {
	root, err := gitOutput("rev-parse", "--show-toplevel")
	if err != nil {
		return RepoMeta{}, fmt.Errorf("not a git repository: %w", err)
	}
	head, err := gitOutput("rev-parse", "HEAD")
	if err != nil {
		head = "" // new repo with no commits
	}
	branch, err := gitOutput("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		branch = ""
	}
	return RepoMeta{
		Root:   strings.TrimSpace(root),
		Head:   strings.TrimSpace(head),
		Branch: strings.TrimSpace(branch),
	}, nil
}

// RepoRoot returns the repository root, or "" when not inside a repository.
func RepoRoot() string {
	root, err := gitOutput("rev-parse", "--show-toplevel")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(root)
}

// Subject returns the first line of the commit message for the given
// revision.
func Subject(rev string) (CommitSubject, error) {
	out, err := gitOutput("log", "-1", "--format=%H%x00%s", rev)
	if err != nil {
		return CommitSubject{}, fmt.Errorf("git log %s: %w", rev, err)
	}
	subjects := parseSubjects(out)
	if len(subjects) == 0 {
		return CommitSubject{}, fmt.Errorf("no commit found for %s", rev)
	}
	return subjects[0], nil
}

// HeadSubject returns the subject of the most recent commit.
func HeadSubject() (CommitSubject, error) {
	return Subject("HEAD")
}

// RangeSubjects returns the subject of every commit in a revision range,
// oldest first.
func RangeSubjects(revRange string) ([]CommitSubject, error) {
	out, err := gitOutput("log", "--reverse", "--no-merges", "--format=%H%x00%s", revRange)
	if err != nil {
		return nil, fmt.Errorf("git log %s: %w", revRange, err)
	}
	subjects := parseSubjects(out)
	if len(subjects) == 0 {
		return nil, fmt.Errorf("no commits in range %s", revRange)
	}
	return subjects, nil
}

// parseSubjects splits git log output formatted as %H%x00%s, one commit per
// line. The NUL separator keeps subjects containing any printable character
// intact.
func parseSubjects(out string) []CommitSubject {
	var subjects []CommitSubject
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		sha, subject, found := strings.Cut(line, "\x00")
		if !found {
			continue
		}
		subjects = append(subjects, CommitSubject{SHA: sha, Subject: subject})
	}
	return subjects
}

// FirstLine returns s up to the first newline, with any trailing carriage
// return removed.
func FirstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSuffix(s, "\r")
}

// ReadMessageFile reads a commit message file (as passed to a commit-msg
// hook) and returns its subject: the first line that is neither blank nor a
// '#' comment.
func ReadMessageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading commit message file: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	return "", fmt.Errorf("commit message file %s has no subject line", path)
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}
