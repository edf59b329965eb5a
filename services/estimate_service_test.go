package services

import (
	"errors"
	"testing"

	"subtrack_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
)

func TestComputeEstimateTotals(t *testing.T) {
	items := []models.EstimateLineItem{
		{Description: "Lumber", Quantity: 2, UnitPrice: 100},
	}

	subtotal, markup, tax, total := ComputeEstimateTotals(items, 10, 5)
	assert.Equal(t, 200.0, subtotal)
	assert.Equal(t, 20.0, markup)
	assert.Equal(t, 11.0, tax)
	assert.Equal(t, 231.0, total)
}

func TestComputeEstimateTotals_NoItems(t *testing.T) {
	subtotal, markup, tax, total := ComputeEstimateTotals(nil, 10, 5)
	assert.Equal(t, 0.0, subtotal)
	assert.Equal(t, 0.0, markup)
	assert.Equal(t, 0.0, tax)
	assert.Equal(t, 0.0, total)
}

func TestComputeEstimateTotals_ZeroPercentages(t *testing.T) {
	items := []models.EstimateLineItem{
		{Description: "Labor", Quantity: 8, UnitPrice: 75},
		{Description: "Paint", Quantity: 3, UnitPrice: 45.50},
	}

	subtotal, markup, tax, total := ComputeEstimateTotals(items, 0, 0)
	assert.Equal(t, 736.50, subtotal)
	assert.Equal(t, 0.0, markup)
	assert.Equal(t, 0.0, tax)
	assert.Equal(t, 736.50, total)
}

func TestComputeEstimateTotals_TaxAppliesAfterMarkup(t *testing.T) {
	items := []models.EstimateLineItem{
		{Description: "Gravel", Quantity: 1, UnitPrice: 1000},
	}

	// Tax is computed on subtotal plus markup, not subtotal alone.
	_, markup, tax, total := ComputeEstimateTotals(items, 20, 10)
	assert.Equal(t, 200.0, markup)
	assert.Equal(t, 120.0, tax)
	assert.Equal(t, 1320.0, total)
}

func TestApprovalState_ReapprovalIsIdempotent(t *testing.T) {
	already, approvable := approvalState(models.EstimateStatusApproved)
	assert.True(t, already)
	assert.True(t, approvable)
}

func TestApprovalState_ApprovableStatuses(t *testing.T) {
	for _, status := range []string{models.EstimateStatusDraft, models.EstimateStatusSent, models.EstimateStatusViewed} {
		already, approvable := approvalState(status)
		assert.False(t, already, status)
		assert.True(t, approvable, status)
	}
}

func TestApprovalState_DeclinedBlocked(t *testing.T) {
	_, approvable := approvalState(models.EstimateStatusDeclined)
	assert.False(t, approvable)
}

func TestConvertGuard(t *testing.T) {
	assert.NoError(t, convertGuard(&models.Estimate{}))

	err := convertGuard(&models.Estimate{ConvertedJobID: "job-1"})
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestConvertWriteError_LostRaceIsConflict(t *testing.T) {
	lost := convertWriteError(&types.ConditionalCheckFailedException{})
	var conflict *ConflictError
	assert.ErrorAs(t, lost, &conflict)

	other := errors.New("throttled")
	assert.Equal(t, other, convertWriteError(other))
}
