package lint

import (
	"strings"
	"testing"
)

var allCodes = []Code{
	CodeInvalidFormat,
	CodeInvalidType,
	CodeTypeNotLowercase,
	CodeEmptyScope,
	CodeInvalidScopeFormat,
	CodeScopeNotLowercase,
	CodeInvalidBreakingChangePosition,
	CodeMissingSpaceAfterColon,
	CodeMultipleSpacesAfterColon,
	CodeMissingDescription,
	CodeDescriptionHasLeadingSpace,
	CodeDescriptionHasTrailingSpace,
	CodeDescriptionTooLong,
	CodeNonASCIICharacters,
	CodeDescriptionNotLowercase,
	CodeDescriptionEndsWithPeriod,
	CodeNonImperativeMood,
}

func TestCatalog_Complete(t *testing.T) {
	for _, code := range allCodes {
		entry, ok := catalog[code]
		if !ok {
			t.Errorf("catalog missing entry for %s", code)
			continue
		}
		if entry.message == "" {
			t.Errorf("catalog entry for %s has empty message", code)
		}
		if entry.example == "" {
			t.Errorf("catalog entry for %s has empty example", code)
		}
	}
	if len(catalog) != len(allCodes) {
		t.Errorf("catalog has %d entries, want %d", len(catalog), len(allCodes))
	}
}

func TestNewError(t *testing.T) {
	e := newError(CodeEmptyScope)
	if e.Code != CodeEmptyScope {
		t.Errorf("Code = %s, want %s", e.Code, CodeEmptyScope)
	}
	if e.Message == "" || e.Example == "" {
		t.Error("message and example should be populated from the catalog")
	}
}

func TestNewError_Interpolation(t *testing.T) {
	e := newError(CodeDescriptionTooLong, 50)
	if !strings.Contains(e.Message, "50") {
		t.Errorf("message = %q, want the limit interpolated", e.Message)
	}
	if strings.Contains(e.Message, "%d") {
		t.Errorf("message = %q, verb left unexpanded", e.Message)
	}
}

func TestNewError_UnknownCode(t *testing.T) {
	e := newError(Code("BOGUS"))
	if e.Message != "BOGUS" {
		t.Errorf("unknown code should fall back to the code text, got %q", e.Message)
	}
}

func TestCatalog_InvalidTypeListsAllowedTypes(t *testing.T) {
	e := newError(CodeInvalidType)
	for _, typ := range DefaultTypes {
		if !strings.Contains(e.Message, typ) {
			t.Errorf("INVALID_TYPE message missing type %q", typ)
		}
	}
}
