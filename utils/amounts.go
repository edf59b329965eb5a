package utils

import (
	"math"
	"strconv"
)

// FormatAmount renders a dollar amount for a DynamoDB number attribute.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Round2 rounds to two decimal places (cents, hours).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
