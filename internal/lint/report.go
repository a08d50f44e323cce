package lint

import "github.com/google/uuid"

// CheckedTitle pairs one checked title with its verdict. Source says where
// the title came from (a commit SHA, a PR number, the command line).
type CheckedTitle struct {
	Title  string `json:"title"`
	Source string `json:"source,omitempty"`
	Result Result `json:"result"`
}

// Summary counts verdicts across a report.
type Summary struct {
	Checked int `json:"checked"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
}

// Report is the top-level output structure for one invocation.
type Report struct {
	Tool                 string         `json:"tool"`
	Version              string         `json:"version"`
	RunID                string         `json:"runId"`
	Mode                 string         `json:"mode"`
	Branch               string         `json:"branch,omitempty"`
	Strict               bool           `json:"strict"`
	MaxDescriptionLength int            `json:"maxDescriptionLength"`
	Titles               []CheckedTitle `json:"titles"`
	Summary              Summary        `json:"summary"`
}

// NewReport creates an empty report for the given invocation mode.
func NewReport(mode, version string, opts Options) *Report {
	return &Report{
		Tool:                 "titlelint",
		Version:              version,
		RunID:                uuid.NewString(),
		Mode:                 mode,
		Strict:               opts.Strict,
		MaxDescriptionLength: opts.MaxDescriptionLength,
	}
}

// Add records one checked title and updates the summary.
func (r *Report) Add(title, source string, res Result) {
	r.Titles = append(r.Titles, CheckedTitle{Title: title, Source: source, Result: res})
	r.Summary.Checked++
	if res.Valid {
		r.Summary.Passed++
	} else {
		r.Summary.Failed++
	}
}

// Valid reports whether every checked title passed.
func (r *Report) Valid() bool {
	return r.Summary.Failed == 0
}
