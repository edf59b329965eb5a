package services

import (
	"testing"

	"subtrack_server/models"

	"github.com/stretchr/testify/assert"
)

func TestSumExpenses(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 300},
		{Amount: 250},
	}
	assert.Equal(t, 550.0, SumExpenses(expenses))
}

func TestSumExpenses_Empty(t *testing.T) {
	assert.Equal(t, 0.0, SumExpenses(nil))
	assert.Equal(t, 0.0, SumExpenses([]models.Expense{}))
}

func TestSumExpenses_RoundsToCents(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 0.1},
		{Amount: 0.2},
	}
	assert.Equal(t, 0.3, SumExpenses(expenses))
}
