package domain

import (
	"strings"
)

// NormalizeEmail prepares an email for storage and lookup: surrounding
// whitespace is dropped and the address is lowercased. Emails compare
// case-insensitively everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeHandle trims a handle chosen at sign-up. Case is kept: handles
// are displayed and matched exactly as registered.
func NormalizeHandle(handle string) string {
	return strings.TrimSpace(handle)
}
