// Package identifier generates the 32-character opaque ids used for users,
// plans and accomplishments.
package identifier

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Length is the fixed length of every generated id.
const Length = 32

// New returns a new 32-character lowercase hex id.
func New() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// IsValid reports whether s has the shape of a generated id. It checks length
// only: ids are opaque tokens, existence is checked against storage.
func IsValid(s string) bool {
	return len(s) == Length
}
