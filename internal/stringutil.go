// Package internal implements the parsing and rendering machinery behind
// the public mustache package: string helpers, the component tree, the
// parser, and the renderer's depth-first walker.
package internal

import "strings"

// Trim removes leading and trailing ASCII whitespace from s.
func Trim(s string) string {
	return strings.Trim(s, " \t\r\n\v\f")
}

// Escape returns s with the five HTML-significant characters replaced by
// their entity forms. Other bytes pass through unchanged.
func Escape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&apos;")
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
