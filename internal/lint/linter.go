package lint

import (
	"fmt"
	"strings"
)

// Options configures a Linter. The zero value is not usable; start from
// DefaultOptions and adjust.
type Options struct {
	// Strict enables the stylistic rules on top of the structural ones:
	// lowercase scope, lowercase description start, no terminal period,
	// imperative mood.
	Strict bool

	// MaxDescriptionLength bounds the description length after the single
	// leading space is stripped. Must be positive.
	MaxDescriptionLength int

	// ExtraTypes are additional allowed commit types merged into the
	// default set, e.g. from a repo-local config file.
	ExtraTypes []string
}

// DefaultOptions returns the standard configuration: strict mode on, 50
// character description limit.
func DefaultOptions() Options {
	return Options{
		Strict:               true,
		MaxDescriptionLength: 50,
	}
}

// Linter validates titles against the Conventional Commits format. It is
// immutable after construction and safe for concurrent use; Check performs
// no I/O and touches no shared mutable state.
type Linter struct {
	strict     bool
	maxDescLen int
	allowed    map[string]bool
}

// New builds a Linter. A non-positive max description length is a
// configuration error and is rejected here, before any title is checked.
func New(opts Options) (*Linter, error) {
	if opts.MaxDescriptionLength <= 0 {
		return nil, fmt.Errorf("max description length must be positive, got %d", opts.MaxDescriptionLength)
	}

	allowed := make(map[string]bool, len(DefaultTypes)+len(opts.ExtraTypes))
	for _, t := range DefaultTypes {
		allowed[t] = true
	}
	for _, t := range opts.ExtraTypes {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			allowed[t] = true
		}
	}

	return &Linter{
		strict:     opts.Strict,
		maxDescLen: opts.MaxDescriptionLength,
		allowed:    allowed,
	}, nil
}

// nonImperativeWords is the closed set of first words the mood heuristic
// rejects. It catches only these enumerated forms, not imperative-mood
// violations in general.
var nonImperativeWords = map[string]bool{
	"added": true, "adds": true, "adding": true,
	"updated": true, "updates": true, "updating": true,
	"fixed": true, "fixes": true, "fixing": true,
	"removed": true, "removes": true, "removing": true,
	"deleted": true, "deletes": true, "deleting": true,
}

// Check validates a single title. Every rule is evaluated independently and
// every violation is reported; the only early return is a structural parse
// failure, which leaves nothing to check component rules against. Two other
// documented short-circuits apply: an empty scope halts further scope rules,
// and a missing description halts further description rules.
func (l *Linter) Check(title string) Result {
	var errs []CheckError

	// Runs before parsing: malformed Unicode can defeat the structural
	// matching below.
	if containsNonPrintableASCII(title) {
		errs = append(errs, newError(CodeNonASCIICharacters))
	}

	c, ok := Parse(title)
	if !ok {
		errs = append(errs, newError(CodeInvalidFormat))
		return resultFrom(errs)
	}

	errs = append(errs, l.checkType(c)...)
	errs = append(errs, l.checkScope(c)...)
	errs = append(errs, l.checkBreakingMarker(c)...)
	errs = append(errs, l.checkDescription(c)...)

	return resultFrom(errs)
}

func (l *Linter) checkType(c Components) []CheckError {
	var errs []CheckError
	if containsUppercase(c.Type) {
		errs = append(errs, newError(CodeTypeNotLowercase))
	}
	if !l.allowed[strings.ToLower(c.Type)] {
		errs = append(errs, newError(CodeInvalidType))
	}
	return errs
}

func (l *Linter) checkScope(c Components) []CheckError {
	if c.Scope == nil {
		return nil
	}
	scope := *c.Scope
	if scope == "" {
		return []CheckError{newError(CodeEmptyScope)}
	}

	var errs []CheckError
	if l.strict && containsUppercase(scope) {
		errs = append(errs, newError(CodeScopeNotLowercase))
	}
	if !scopeCharsValid(scope, !l.strict) {
		errs = append(errs, newError(CodeInvalidScopeFormat))
	}
	return errs
}

func (l *Linter) checkBreakingMarker(c Components) []CheckError {
	if c.Breaking {
		if !breakingMarkerWellPlaced(c) {
			return []CheckError{newError(CodeInvalidBreakingChangePosition)}
		}
		return nil
	}
	// The marker belongs in the header only; a bare "!" in the description
	// is a misplaced marker.
	if strings.Contains(c.Description, "!") {
		return []CheckError{newError(CodeInvalidBreakingChangePosition)}
	}
	return nil
}

func (l *Linter) checkDescription(c Components) []CheckError {
	var errs []CheckError

	raw := c.Description
	if !strings.HasPrefix(raw, " ") {
		errs = append(errs, newError(CodeMissingSpaceAfterColon))
	}
	if strings.HasPrefix(raw, "  ") {
		errs = append(errs, newError(CodeMultipleSpacesAfterColon))
	}

	// Strip exactly one leading space to position at the true description
	// start; a second space is then a leading-space violation.
	desc := strings.TrimPrefix(raw, " ")
	if strings.TrimSpace(desc) == "" {
		errs = append(errs, newError(CodeMissingDescription))
		return errs
	}

	if strings.HasPrefix(desc, " ") {
		errs = append(errs, newError(CodeDescriptionHasLeadingSpace))
	}
	if strings.HasSuffix(desc, " ") {
		errs = append(errs, newError(CodeDescriptionHasTrailingSpace))
	}
	if len(desc) > l.maxDescLen {
		errs = append(errs, newError(CodeDescriptionTooLong, l.maxDescLen))
	}

	if l.strict {
		errs = append(errs, checkStyle(strings.TrimSpace(desc))...)
	}
	return errs
}

// checkStyle applies the strict-only stylistic rules to the fully trimmed
// description, which is known to be non-empty here.
func checkStyle(desc string) []CheckError {
	var errs []CheckError

	first := desc[0]
	if first < 'a' || first > 'z' {
		errs = append(errs, newError(CodeDescriptionNotLowercase))
	}
	if strings.HasSuffix(desc, ".") {
		errs = append(errs, newError(CodeDescriptionEndsWithPeriod))
	}

	word := desc
	if idx := strings.IndexByte(desc, ' '); idx >= 0 {
		word = desc[:idx]
	}
	if nonImperativeWords[strings.ToLower(word)] {
		errs = append(errs, newError(CodeNonImperativeMood))
	}
	return errs
}

func resultFrom(errs []CheckError) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}
