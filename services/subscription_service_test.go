package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckLimit_UnderLimit(t *testing.T) {
	assert.NoError(t, CheckLimit(3, 2, "active jobs"))
}

func TestCheckLimit_AtLimit(t *testing.T) {
	err := CheckLimit(3, 3, "active jobs")
	assert.Error(t, err)

	var limitErr *LimitError
	assert.True(t, errors.As(err, &limitErr))
	assert.Equal(t, "Your plan allows 3 active jobs. Upgrade to add more.", limitErr.Msg)
}

func TestCheckLimit_Unlimited(t *testing.T) {
	assert.NoError(t, CheckLimit(-1, 100000, "active jobs"))
}

func TestCheckLimit_ZeroLimit(t *testing.T) {
	assert.Error(t, CheckLimit(0, 0, "crew members"))
}
