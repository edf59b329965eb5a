package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.14, Round2(3.14159))
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.Equal(t, -1.5, Round2(-1.5))
	assert.Equal(t, 0.0, Round2(0))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1234.5", FormatAmount(1234.5))
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "99.99", FormatAmount(99.99))
}
