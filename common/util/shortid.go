package util

import (
	"strings"

	"github.com/google/uuid"
)

// ShortID returns a compact random token suitable for public certificate
// IDs. Unguessable enough for informal verification links, not a security
// credential.
func ShortID(length int) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	if length > 0 && length < len(id) {
		return id[:length]
	}
	return id
}
