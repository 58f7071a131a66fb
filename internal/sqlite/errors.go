package sqlite

import "strings"

// isUniqueViolation reports whether the error came from a UNIQUE
// constraint. modernc.org/sqlite exposes constraint failures only
// through the error text.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
