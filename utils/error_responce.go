package utils

import "strings"

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Legacy records migrated from the old Vietnamese booking system carry
// their conflict messages in Vietnamese, so the markers cover both
// languages.
var duplicateMarkers = []string{
	"duplicate",
	"trùng",
	"đã tồn tại",
}

// IsDuplicateError reports whether an error represents a duplicate or
// conflict condition: a Postgres unique-constraint violation surfaced
// through GORM, or a message relayed from the legacy system.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return IsDuplicateMessage(err.Error())
}

// IsDuplicateMessage checks free-text for duplicate/conflict markers.
func IsDuplicateMessage(msg string) bool {
	lower := strings.ToLower(msg)
	for _, marker := range duplicateMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
