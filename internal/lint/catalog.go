package lint

import (
	"fmt"
	"strings"
)

// catalogEntry pairs the fixed human message for a code with a corrective
// example. The table is read-only after init and safe to share.
type catalogEntry struct {
	message string
	example string
}

var catalog = map[Code]catalogEntry{
	CodeInvalidFormat: {
		message: "title does not match the <type>[(scope)][!]: <description> format",
		example: "feat(parser): add ability to parse arrays",
	},
	CodeNonASCIICharacters: {
		message: "title contains characters outside the printable ASCII range",
		example: "fix: handle expired tokens",
	},
	CodeInvalidType: {
		message: "type must be one of: " + strings.Join(DefaultTypes, ", "),
		example: "feat: add user authentication",
	},
	CodeTypeNotLowercase: {
		message: "type must be lowercase",
		example: "fix: handle timeout errors",
	},
	CodeEmptyScope: {
		message: "scope must not be empty when parentheses are present",
		example: "fix(api): handle timeout errors",
	},
	CodeScopeNotLowercase: {
		message: "scope must be lowercase",
		example: "fix(api): handle timeout errors",
	},
	CodeInvalidScopeFormat: {
		message: "scope may only contain letters, digits, hyphens, and underscores",
		example: "feat(user-auth): add login endpoint",
	},
	CodeInvalidBreakingChangePosition: {
		message: "breaking change marker must appear immediately before the colon",
		example: "feat(api)!: remove deprecated endpoints",
	},
	CodeMissingSpaceAfterColon: {
		message: "colon must be followed by a single space",
		example: "feat: add user authentication",
	},
	CodeMultipleSpacesAfterColon: {
		message: "colon must be followed by exactly one space",
		example: "feat: add user authentication",
	},
	CodeMissingDescription: {
		message: "description must not be empty",
		example: "docs: update README with usage examples",
	},
	CodeDescriptionHasLeadingSpace: {
		message: "description must not start with a space",
		example: "feat: add user authentication",
	},
	CodeDescriptionHasTrailingSpace: {
		message: "description must not end with a space",
		example: "feat: add user authentication",
	},
	CodeDescriptionTooLong: {
		message: "description must be at most %d characters",
		example: "feat: add login endpoint",
	},
	CodeDescriptionNotLowercase: {
		message: "description must start with a lowercase letter",
		example: "feat: add user authentication",
	},
	CodeDescriptionEndsWithPeriod: {
		message: "description must not end with a period",
		example: "feat: add user authentication",
	},
	CodeNonImperativeMood: {
		message: "description must use the imperative mood (\"add\", not \"added\")",
		example: "fix: remove unused import",
	},
}

// newError builds a CheckError from the static catalog. args interpolate
// into the message for the codes whose text depends on configuration
// (currently only the max-length rule).
func newError(code Code, args ...interface{}) CheckError {
	entry, ok := catalog[code]
	if !ok {
		return CheckError{Code: code, Message: string(code)}
	}
	msg := entry.message
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return CheckError{Code: code, Message: msg, Example: entry.example}
}
