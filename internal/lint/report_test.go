package lint

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestReport_Add(t *testing.T) {
	r := NewReport("range", "0.1.0", DefaultOptions())

	r.Add("feat: add auth", "commit abc1234", Result{Valid: true})
	r.Add("broken title", "commit def5678", Result{
		Valid:  false,
		Errors: []CheckError{newError(CodeInvalidFormat)},
	})

	if r.Summary.Checked != 2 || r.Summary.Passed != 1 || r.Summary.Failed != 1 {
		t.Errorf("summary = %+v, want 2 checked, 1 passed, 1 failed", r.Summary)
	}
	if r.Valid() {
		t.Error("report with a failed title should not be valid")
	}
	if r.Titles[1].Source != "commit def5678" {
		t.Errorf("Source = %q", r.Titles[1].Source)
	}
}

func TestReport_EmptyIsValid(t *testing.T) {
	r := NewReport("check", "0.1.0", DefaultOptions())
	if !r.Valid() {
		t.Error("empty report should be valid")
	}
}

func TestNewReport(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxDescriptionLength = 72
	r := NewReport("pr", "0.1.0", opts)

	if r.Tool != "titlelint" {
		t.Errorf("Tool = %q", r.Tool)
	}
	if r.Mode != "pr" {
		t.Errorf("Mode = %q", r.Mode)
	}
	if !r.Strict || r.MaxDescriptionLength != 72 {
		t.Errorf("options not carried: strict=%v max=%d", r.Strict, r.MaxDescriptionLength)
	}
	if r.RunID == "" {
		t.Error("RunID should be set")
	}

	other := NewReport("pr", "0.1.0", opts)
	if other.RunID == r.RunID {
		t.Error("run IDs should be unique per report")
	}
}

func TestReport_BranchSerialization(t *testing.T) {
	r := NewReport("commit", "0.1.0", DefaultOptions())

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"branch"`) {
		t.Error("branch should be omitted when unset")
	}

	r.Branch = "main"
	data, err = json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"branch":"main"`) {
		t.Errorf("branch missing from %s", data)
	}
}
