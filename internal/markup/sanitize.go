// Package markup sanitizes and re-tags inline markup fragments so they can
// be reparsed as well-formed XML and spliced into a deposit document.
package markup

import "strings"

// allowedTags are the source vocabulary tag names that survive bracket
// escaping. A trailing colon entry matches a whole namespace prefix.
var allowedTags = []string{
	"p", "italic", "i", "bold", "b", "underline", "u",
	"sub", "sup", "sc", "inline-formula", "ext-link", "mml:",
}

// AllowedTags returns the tag names recognized during sanitization.
func AllowedTags() []string {
	out := make([]string, len(allowedTags))
	copy(out, allowedTags)
	return out
}

// EscapeAmpersand escapes literal ampersands that do not already begin a
// character entity.
func EscapeAmpersand(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '&' && !entityFollows(s[i+1:]) {
			b.WriteString("&amp;")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// entityFollows reports whether rest starts with the remainder of a
// character entity, e.g. "amp;", "#8217;" or "#x2019;".
func entityFollows(rest string) bool {
	semi := strings.IndexByte(rest, ';')
	if semi <= 0 || semi > 31 {
		return false
	}
	name := rest[:semi]
	if name[0] == '#' {
		digits := name[1:]
		if strings.HasPrefix(digits, "x") || strings.HasPrefix(digits, "X") {
			digits = digits[1:]
		}
		if digits == "" {
			return false
		}
		for _, r := range digits {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return false
			}
		}
		return true
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// EscapeUnmatchedAngleBrackets escapes every angle bracket that is not part
// of an allowed tag, so the fragment is guaranteed to parse.
func EscapeUnmatchedAngleBrackets(s string, allowed []string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		switch s[i] {
		case '<':
			closeIdx := strings.IndexByte(s[i+1:], '>')
			openIdx := strings.IndexByte(s[i+1:], '<')
			if closeIdx >= 0 && (openIdx < 0 || closeIdx < openIdx) {
				candidate := s[i : i+closeIdx+2]
				if isAllowedTag(candidate, allowed) {
					b.WriteString(candidate)
					i += closeIdx + 2
					continue
				}
			}
			b.WriteString("&lt;")
			i++
		case '>':
			b.WriteString("&gt;")
			i++
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// isAllowedTag checks a "<...>" candidate against the allow-list.
func isAllowedTag(candidate string, allowed []string) bool {
	inner := strings.TrimSuffix(strings.TrimPrefix(candidate, "<"), ">")
	inner = strings.TrimSuffix(inner, "/")
	inner = strings.TrimPrefix(inner, "/")
	if inner == "" {
		return false
	}
	name := inner
	if idx := strings.IndexAny(inner, " \t\n"); idx >= 0 {
		name = inner[:idx]
	}
	for _, tag := range allowed {
		if strings.HasSuffix(tag, ":") {
			if strings.HasPrefix(name, tag) {
				return true
			}
		} else if name == tag {
			return true
		}
	}
	return false
}
