package id

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a random 32-character hex identifier (a UUIDv4 without dashes).
// Identifiers are never derived from the clock, so rapid successive calls
// cannot collide.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
