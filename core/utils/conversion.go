package utils

import (
	"strings"
)

// OptionEnabled reports whether a build option value means "on".
// Booleans are taken as-is; strings are on only when they equal "true"
// ignoring case, so "1" or "yes" stay off.
func OptionEnabled(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	case []byte:
		return strings.EqualFold(string(v), "true")
	default:
		return false
	}
}
