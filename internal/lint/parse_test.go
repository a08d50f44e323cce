package lint

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		wantType string
		wantDesc string
	}{
		{"plain", "feat: add auth", "feat", " add auth"},
		{"scoped", "fix(api): handle timeout", "fix", " handle timeout"},
		{"breaking", "feat!: drop v1", "feat", " drop v1"},
		{"scoped breaking", "feat(api)!: drop v1", "feat", " drop v1"},
		{"no space after colon", "feat:add auth", "feat", "add auth"},
		{"uppercase type", "Feature: add something", "Feature", " add something"},
		{"misplaced bang still parses", "feat!(api): x", "feat", " x"},
		{"empty description", "feat:", "feat", ""},
		{"colon in description", "feat: see RFC: 123", "feat", " see RFC: 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Parse(tt.title)
			if !ok {
				t.Fatalf("Parse(%q) failed, want success", tt.title)
			}
			if c.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", c.Type, tt.wantType)
			}
			if c.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", c.Description, tt.wantDesc)
			}
		})
	}
}

func TestParse_Scope(t *testing.T) {
	c, ok := Parse("fix(api): handle timeout")
	if !ok {
		t.Fatal("Parse failed")
	}
	if c.Scope == nil || *c.Scope != "api" {
		t.Errorf("Scope = %v, want api", c.Scope)
	}

	c, ok = Parse("feat(): add something")
	if !ok {
		t.Fatal("Parse failed for empty scope")
	}
	if c.Scope == nil || *c.Scope != "" {
		t.Error("empty parentheses should capture an empty scope, not no scope")
	}

	c, ok = Parse("feat: add something")
	if !ok {
		t.Fatal("Parse failed")
	}
	if c.Scope != nil {
		t.Errorf("Scope = %q, want nil", *c.Scope)
	}
}

func TestParse_Breaking(t *testing.T) {
	for _, title := range []string{"feat!: x", "feat(api)!: x", "feat!(api): x", "fe!at: x"} {
		c, ok := Parse(title)
		if !ok {
			t.Fatalf("Parse(%q) failed", title)
		}
		if !c.Breaking {
			t.Errorf("Parse(%q).Breaking = false, want true", title)
		}
	}

	c, ok := Parse("feat: oops!")
	if !ok {
		t.Fatal("Parse failed")
	}
	if c.Breaking {
		t.Error("bang after the colon should not set Breaking")
	}
}

func TestParse_BangInsideType(t *testing.T) {
	tests := []struct {
		title    string
		wantType string
	}{
		{"fe!at: x", "feat"},
		{"fe!at(api): x", "feat"},
		{"fi!x!: y", "fix"},
	}

	for _, tt := range tests {
		c, ok := Parse(tt.title)
		if !ok {
			t.Fatalf("Parse(%q) failed", tt.title)
		}
		if c.Type != tt.wantType {
			t.Errorf("Parse(%q).Type = %q, want %q", tt.title, c.Type, tt.wantType)
		}
		if !c.Breaking {
			t.Errorf("Parse(%q).Breaking = false, want true", tt.title)
		}
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"no colon", "feat add auth"},
		{"empty", ""},
		{"no type", ": add auth"},
		{"space before colon", "feat : add something"},
		{"space before scope", "feat (api): x"},
		{"digit in header", "feat2: x"},
		{"unclosed scope", "feat(api: x"},
		{"stray close paren", "feat)api(: x"},
		{"two scope groups", "feat(a)(b): x"},
		{"nested paren in scope", "feat((a)): x"},
		{"letters after scope", "feat(api)x: rest"},
		{"leading bang", "!feat: x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Parse(tt.title); ok {
				t.Errorf("Parse(%q) succeeded, want failure", tt.title)
			}
		})
	}
}

func TestBreakingMarkerWellPlaced(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"feat!: x", true},
		{"feat(api)!: x", true},
		{"FEAT!: x", true},
		{"feat!(api): x", false},
		{"fe!at: x", false},
		{"feat!!: x", false},
		{"feat!(api)!: x", false},
	}

	for _, tt := range tests {
		c, ok := Parse(tt.title)
		if !ok {
			t.Fatalf("Parse(%q) failed", tt.title)
		}
		if got := breakingMarkerWellPlaced(c); got != tt.want {
			t.Errorf("breakingMarkerWellPlaced(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}

func TestContainsNonPrintableASCII(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain ascii", "feat: add auth", false},
		{"boundary low", " ", false},
		{"boundary high", "~", false},
		{"tab", "feat:\tadd", true},
		{"newline", "feat: add\n", true},
		{"carriage return", "feat: add\r", true},
		{"emoji", "feat: add ✨", true},
		{"accented", "feat: café", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containsNonPrintableASCII(tt.input); got != tt.want {
				t.Errorf("containsNonPrintableASCII(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScopeCharsValid(t *testing.T) {
	tests := []struct {
		scope      string
		allowUpper bool
		want       bool
	}{
		{"api", false, true},
		{"user-auth", false, true},
		{"db_layer", false, true},
		{"v2", false, true},
		{"API", false, false},
		{"API", true, true},
		{"a b", false, false},
		{"a.b", true, false},
		{"a/b", true, false},
	}

	for _, tt := range tests {
		if got := scopeCharsValid(tt.scope, tt.allowUpper); got != tt.want {
			t.Errorf("scopeCharsValid(%q, %v) = %v, want %v", tt.scope, tt.allowUpper, got, tt.want)
		}
	}
}
