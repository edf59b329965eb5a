package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh entity id.
func NewID() string {
	return uuid.NewString()
}

// NewShareToken returns an opaque token for public access links. Two UUIDs
// concatenated so the token is never confusable with an entity id.
func NewShareToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
