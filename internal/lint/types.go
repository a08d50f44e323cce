package lint

// Code identifies a single conformance rule violation. Codes are stable
// strings so CI scripts can match on them in JSON output.
type Code string

const (
	CodeInvalidFormat Code = "INVALID_FORMAT"

	CodeInvalidType      Code = "INVALID_TYPE"
	CodeTypeNotLowercase Code = "TYPE_NOT_LOWERCASE"

	CodeEmptyScope         Code = "EMPTY_SCOPE"
	CodeInvalidScopeFormat Code = "INVALID_SCOPE_FORMAT"
	CodeScopeNotLowercase  Code = "SCOPE_NOT_LOWERCASE"

	CodeInvalidBreakingChangePosition Code = "INVALID_BREAKING_CHANGE_POSITION"

	CodeMissingSpaceAfterColon      Code = "MISSING_SPACE_AFTER_COLON"
	CodeMultipleSpacesAfterColon    Code = "MULTIPLE_SPACES_AFTER_COLON"
	CodeMissingDescription          Code = "MISSING_DESCRIPTION"
	CodeDescriptionHasLeadingSpace  Code = "DESCRIPTION_HAS_LEADING_SPACE"
	CodeDescriptionHasTrailingSpace Code = "DESCRIPTION_HAS_TRAILING_SPACE"
	CodeDescriptionTooLong          Code = "DESCRIPTION_TOO_LONG"
	CodeNonASCIICharacters          Code = "NON_ASCII_CHARACTERS"
	CodeDescriptionNotLowercase     Code = "DESCRIPTION_NOT_LOWERCASE"
	CodeDescriptionEndsWithPeriod   Code = "DESCRIPTION_ENDS_WITH_PERIOD"
	CodeNonImperativeMood           Code = "NON_IMPERATIVE_MOOD"
)

// CheckError is a single rule violation with a fixed human message and a
// corrective example.
type CheckError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Example string `json:"example,omitempty"`
}

// Result is the verdict for one title. Valid is true iff Errors is empty.
// Errors preserve rule evaluation order: character set, structure, type,
// scope, breaking-change marker, spacing/description, strict extras.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []CheckError `json:"errors"`
}

// Components holds the decomposed parts of a conventional commit header.
// Scope is nil when no parentheses appear before the colon; a non-nil empty
// string means empty parentheses were present, which is a violation rather
// than a parse failure. Description is the raw text after the first colon
// with spaces preserved so spacing rules can inspect it.
type Components struct {
	Type        string
	Scope       *string
	Breaking    bool
	Description string

	// Header is the raw text before the first colon, kept for the
	// breaking-change position check.
	Header string
}

// DefaultTypes is the fixed set of allowed commit types from the
// Conventional Commits convention plus the Angular additions.
var DefaultTypes = []string{
	"feat", "fix", "docs", "style", "refactor", "perf",
	"test", "build", "ci", "chore", "revert",
}
