package domain

import (
	"net/url"
	"strings"
)

// ResolveRecipient maps whatever a sender typed into a handle:
//   - an absolute URL resolves to its last non-empty path segment;
//   - otherwise one leading "@" and then one leading "u/" are stripped.
//
// It returns false when nothing usable remains. Both the suggestion path and
// the submission path go through this function.
func ResolveRecipient(input string) (string, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", false
	}

	if u, err := url.Parse(s); err == nil && u.IsAbs() {
		return lastPathSegment(u)
	}

	s = strings.TrimPrefix(s, "@")
	s = strings.TrimPrefix(s, "u/")
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

func lastPathSegment(u *url.URL) (string, bool) {
	path := u.Path
	if path == "" {
		path = u.Opaque
	}
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return "", false
	}
	return segments[len(segments)-1], true
}
