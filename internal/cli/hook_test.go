package cli

import (
	"strings"
	"testing"
)

func TestGenerateHookScript(t *testing.T) {
	script := generateHookScript(true, 0)

	if !strings.Contains(script, hookMarkerStart) {
		t.Error("Script missing start marker")
	}
	if !strings.Contains(script, hookMarkerEnd) {
		t.Error("Script missing end marker")
	}
	if !strings.Contains(script, `titlelint check --file "$1" --strict=true`) {
		t.Error("Script missing titlelint command with correct flags")
	}
	if strings.Contains(script, "--max-length") {
		t.Error("Script should omit --max-length when unset")
	}
	if !strings.Contains(script, "TITLELINT_EXIT=$?") {
		t.Error("Script missing exit code capture")
	}
	if !strings.Contains(script, "exit 1") {
		t.Error("Script missing exit 1 for rejected subjects")
	}
	if !strings.Contains(script, "allowing commit") {
		t.Error("Script missing warning for errors")
	}
}

func TestGenerateHookScript_CustomFlags(t *testing.T) {
	script := generateHookScript(false, 72)

	if !strings.Contains(script, "--strict=false") {
		t.Error("Script doesn't use custom strict setting")
	}
	if !strings.Contains(script, "--max-length 72") {
		t.Error("Script doesn't use custom max length")
	}
}

func TestReplaceHookSection_NoExisting(t *testing.T) {
	existing := "#!/bin/sh\nsome-other-hook\n"
	section := generateHookScript(true, 0)

	result := replaceHookSection(existing, section)

	if !strings.HasPrefix(result, "#!/bin/sh\nsome-other-hook\n") {
		t.Error("Existing content should be preserved")
	}
	if !strings.Contains(result, hookMarkerStart) {
		t.Error("New section should be appended")
	}
}

func TestReplaceHookSection_ExistingSection(t *testing.T) {
	oldSection := generateHookScript(true, 50)
	existing := "#!/bin/sh\nbefore\n" + oldSection + "after\n"
	newSection := generateHookScript(false, 72)

	result := replaceHookSection(existing, newSection)

	if !strings.Contains(result, "before") {
		t.Error("Content before titlelint section should be preserved")
	}
	if !strings.Contains(result, "after") {
		t.Error("Content after titlelint section should be preserved")
	}
	if !strings.Contains(result, "--max-length 72") {
		t.Error("New section should have updated flags")
	}
	if strings.Contains(result, "--max-length 50") {
		t.Error("Old section should be replaced")
	}
}

func TestRemoveHookSection(t *testing.T) {
	section := generateHookScript(true, 0)
	existing := "#!/bin/sh\nbefore\n" + section + "after\n"

	result := removeHookSection(existing)

	if strings.Contains(result, hookMarkerStart) {
		t.Error("titlelint section should be removed")
	}
	if !strings.Contains(result, "before") || !strings.Contains(result, "after") {
		t.Error("Surrounding content should be preserved")
	}
}

func TestRemoveHookSection_NoSection(t *testing.T) {
	existing := "#!/bin/sh\nunrelated\n"
	if got := removeHookSection(existing); got != existing {
		t.Errorf("content without a section should be unchanged, got %q", got)
	}
}
