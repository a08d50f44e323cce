package lint

import "strings"

// Parse decomposes a title into its header components. It returns false when
// the title has no structural match at all: no colon, no leading letter
// sequence, or anything before the colon other than type letters, one
// well-formed scope group, and exclamation markers (which may interrupt the
// type letters). There is no partial result; either every component is
// captured or the parse fails outright.
func Parse(title string) (Components, bool) {
	colon := strings.IndexByte(title, ':')
	if colon < 0 {
		return Components{}, false
	}

	head := title[:colon]
	c := Components{
		Header:      head,
		Description: title[colon+1:],
	}

	i := 0
	for i < len(head) && isASCIILetter(head[i]) {
		i++
	}
	if i == 0 {
		return Components{}, false
	}
	c.Type = head[:i]

	for i < len(head) {
		switch {
		case head[i] == '!':
			c.Breaking = true
			i++
		case isASCIILetter(head[i]):
			// A marker splitting the type in two ("fe!at") is a placement
			// violation, not a parse failure. Rejoin the letters so the type
			// rules see the whole word.
			if !c.Breaking {
				return Components{}, false
			}
			j := i
			for j < len(head) && isASCIILetter(head[j]) {
				j++
			}
			c.Type += head[i:j]
			i = j
		case head[i] == '(':
			if c.Scope != nil {
				return Components{}, false
			}
			end := strings.IndexByte(head[i:], ')')
			if end < 0 {
				return Components{}, false
			}
			scope := head[i+1 : i+end]
			if strings.ContainsRune(scope, '(') {
				return Components{}, false
			}
			c.Scope = &scope
			i += end + 1
		default:
			return Components{}, false
		}
	}

	return c, true
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// containsNonPrintableASCII reports whether s has any byte outside the
// displayable range [0x20, 0x7E]. Tabs, newlines, and all multi-byte UTF-8
// sequences fail this check.
func containsNonPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return true
		}
	}
	return false
}

func containsUppercase(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return true
		}
	}
	return false
}

// scopeCharsValid reports whether every byte of s is in the scope charset:
// letters, digits, hyphen, underscore. Uppercase letters are only accepted
// when allowUpper is set (lenient mode).
func scopeCharsValid(s string, allowUpper bool) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'a' && b <= 'z':
		case b >= 'A' && b <= 'Z':
			if !allowUpper {
				return false
			}
		case isASCIIDigit(b):
		case b == '-' || b == '_':
		default:
			return false
		}
	}
	return true
}

// breakingMarkerWellPlaced requires the header to be exactly
// "type[(scope)]!" with a single marker immediately before the colon.
func breakingMarkerWellPlaced(c Components) bool {
	return strings.Count(c.Header, "!") == 1 && strings.HasSuffix(c.Header, "!")
}
