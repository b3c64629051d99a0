package api

import (
	"fmt"
	"net/url"
	"strings"
)

// ExpandPath replaces each {name} placeholder in template with the
// percent-encoded value of params[name]. Every value is escaped as a single
// segment: "/" becomes %2F and dot segments are escaped so they cannot be
// collapsed by path cleaning.
func ExpandPath(template string, params map[string]string) (string, error) {
	var b strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("path template %q: unterminated placeholder", template)
		}
		end += open

		name := rest[open+1 : end]
		value, ok := params[name]
		if !ok || value == "" {
			return "", fmt.Errorf("path template %q: no value for %s", template, name)
		}

		b.WriteString(rest[:open])
		b.WriteString(EscapeSegment(value))
		rest = rest[end+1:]
	}
	return b.String(), nil
}

// EscapeSegment percent-encodes s as one path segment.
func EscapeSegment(s string) string {
	if s == "." || s == ".." {
		return strings.Repeat("%2E", len(s))
	}
	return url.PathEscape(s)
}
