package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeHoursWorked(t *testing.T) {
	clockIn := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(2*time.Hour + 30*time.Minute)
	assert.Equal(t, 2.5, ComputeHoursWorked(clockIn, clockOut))
}

func TestComputeHoursWorked_ZeroSpan(t *testing.T) {
	now := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 0.0, ComputeHoursWorked(now, now))
}

func TestComputeHoursWorked_RoundsToTwoDecimals(t *testing.T) {
	clockIn := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(7*time.Hour + 20*time.Minute)
	assert.Equal(t, 7.33, ComputeHoursWorked(clockIn, clockOut))
}
