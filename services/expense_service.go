package services

import (
	"context"
	"math"

	"subtrack_server/config"
	"subtrack_server/models"
	"subtrack_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExpenseService owns the per-job cost ledger. After every mutation the job's
// actualCost is recomputed from scratch, never adjusted incrementally.
type ExpenseService struct {
	Dynamo *DynamoService
	Tables config.Tables
	Jobs   *JobService
}

// ExpenseInput carries one cost entry.
type ExpenseInput struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Date        string  `json:"date"`
}

// ExpenseSummary is the list response: rows plus derived totals. Remaining
// may go negative; that is a signal, not an error.
type ExpenseSummary struct {
	Expenses  []models.Expense `json:"expenses"`
	Total     float64          `json:"total"`
	Budget    float64          `json:"budget"`
	Remaining float64          `json:"remaining"`
}

// SumExpenses totals the given expense rows, rounded to cents.
func SumExpenses(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return math.Round(total*100) / 100
}

func expenseKey(jobID, expenseID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"jobId":     &types.AttributeValueMemberS{Value: jobID},
		"expenseId": &types.AttributeValueMemberS{Value: expenseID},
	}
}

// AddExpense appends a cost entry and writes the recomputed total back onto
// the job.
func (es *ExpenseService) AddExpense(ctx context.Context, ownerID, jobID string, in ExpenseInput) (*models.Expense, error) {
	if in.Amount <= 0 {
		return nil, errValidation("Expense amount must be a positive number")
	}

	// Ownership check doubles as existence check.
	if _, err := es.Jobs.GetJob(ctx, ownerID, jobID); err != nil {
		return nil, err
	}

	expense := models.Expense{
		JobID:       jobID,
		ExpenseID:   utils.NewID(),
		OwnerID:     ownerID,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		CreatedAt:   utils.NowISO(),
	}

	if err := es.Dynamo.PutItem(ctx, es.Tables.Expenses, expense); err != nil {
		return nil, err
	}

	if err := es.recomputeActualCost(ctx, ownerID, jobID); err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes a cost entry and recomputes the job total.
func (es *ExpenseService) DeleteExpense(ctx context.Context, ownerID, jobID, expenseID string) error {
	if _, err := es.Jobs.GetJob(ctx, ownerID, jobID); err != nil {
		return err
	}

	if err := es.Dynamo.DeleteItem(ctx, es.Tables.Expenses, expenseKey(jobID, expenseID)); err != nil {
		return err
	}
	return es.recomputeActualCost(ctx, ownerID, jobID)
}

// ListExpenses returns all rows for a job plus total, budget and remaining.
func (es *ExpenseService) ListExpenses(ctx context.Context, ownerID, jobID string) (*ExpenseSummary, error) {
	job, err := es.Jobs.GetJob(ctx, ownerID, jobID)
	if err != nil {
		return nil, err
	}

	expenses, err := es.expensesForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	total := SumExpenses(expenses)
	return &ExpenseSummary{
		Expenses:  expenses,
		Total:     total,
		Budget:    job.BidAmount,
		Remaining: job.BidAmount - total,
	}, nil
}

func (es *ExpenseService) expensesForJob(ctx context.Context, jobID string) ([]models.Expense, error) {
	items, err := es.Dynamo.QueryItems(ctx, es.Tables.Expenses,
		"jobId = :jobId",
		map[string]types.AttributeValue{
			":jobId": &types.AttributeValueMemberS{Value: jobID},
		}, nil, 0)
	if err != nil {
		return nil, err
	}

	expenses := make([]models.Expense, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// recomputeActualCost re-reads every expense for the job and writes the sum
// back. A full rescan per mutation avoids drift from partially applied
// incremental counters.
func (es *ExpenseService) recomputeActualCost(ctx context.Context, ownerID, jobID string) error {
	expenses, err := es.expensesForJob(ctx, jobID)
	if err != nil {
		return err
	}

	total := SumExpenses(expenses)
	_, err = es.Dynamo.UpdateItem(ctx, es.Tables.Jobs,
		"SET actualCost = :actualCost, updatedAt = :now",
		jobKey(ownerID, jobID),
		map[string]types.AttributeValue{
			":actualCost": &types.AttributeValueMemberN{Value: utils.FormatAmount(total)},
			":now":        &types.AttributeValueMemberS{Value: utils.NowISO()},
		}, nil)
	return err
}
