package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewShareToken(t *testing.T) {
	token := NewShareToken()
	assert.Len(t, token, 64)
	assert.NotContains(t, token, "-")
	assert.NotEqual(t, token, NewShareToken())
}

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 36)
	assert.Equal(t, 4, strings.Count(id, "-"))
}
