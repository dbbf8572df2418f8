package helpers

import "strings"

// NullableString trims s and returns nil when nothing is left, so optional
// columns are stored as NULL instead of empty strings.
func NullableString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// StringOr dereferences s, returning fallback for nil or blank values.
func StringOr(s *string, fallback string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return fallback
	}
	return *s
}
