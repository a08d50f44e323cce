package output

import (
	"strings"
	"testing"
)

func TestMarkdownWriter_Valid(t *testing.T) {
	report := buildReport(t, true, "feat: add auth")

	var sb strings.Builder
	if err := (&MarkdownWriter{}).Write(&sb, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "## titlelint") {
		t.Error("missing heading")
	}
	if !strings.Contains(out, ":white_check_mark:") {
		t.Error("missing success marker")
	}
	if strings.Contains(out, ":x:") {
		t.Error("valid report should have no failure sections")
	}
}

func TestMarkdownWriter_Invalid(t *testing.T) {
	report := buildReport(t, true, "feat: Added something.")

	var sb strings.Builder
	if err := (&MarkdownWriter{}).Write(&sb, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "| Failed | 1") {
		t.Errorf("missing summary row:\n%s", out)
	}
	if !strings.Contains(out, "**NON_IMPERATIVE_MOOD**") {
		t.Error("missing error code")
	}
	if !strings.Contains(out, "Expected format: `<type>[(scope)][!]: <description>`") {
		t.Error("missing grammar restatement")
	}
	if !strings.Contains(out, "Strict mode rules:") {
		t.Error("missing strict rules section")
	}
}
