package types

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	UUID_PREFIX_LEAD    = "lead"
	UUID_PREFIX_REQUEST = "req"
)

// GenerateUUID returns a new random UUID string.
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateUUIDWithPrefix returns a new random UUID string prefixed with the
// given entity prefix, e.g. "lead_0190b2c3...".
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
