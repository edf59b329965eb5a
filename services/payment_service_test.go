package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountToCents(t *testing.T) {
	assert.Equal(t, int64(1999), amountToCents(19.99))
	assert.Equal(t, int64(10000), amountToCents(100))
	assert.Equal(t, int64(5), amountToCents(0.05))
	assert.Equal(t, int64(0), amountToCents(0))
}
