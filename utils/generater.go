package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateBookingCode returns a short uppercase reference staff can read
// to customers over the phone, e.g. "BK-9F2C41D8".
func GenerateBookingCode() string {
	id := uuid.New().String()
	return "BK-" + strings.ToUpper(id[:8])
}
