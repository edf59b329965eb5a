package models

// Expense is one cost entry against a job.
type Expense struct {
	JobID       string  `dynamodbav:"jobId" json:"jobId"`
	ExpenseID   string  `dynamodbav:"expenseId" json:"expenseId"`
	OwnerID     string  `dynamodbav:"ownerId" json:"ownerId"`
	Category    string  `dynamodbav:"category,omitempty" json:"category,omitempty"`
	Description string  `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Amount      float64 `dynamodbav:"amount" json:"amount"`
	Date        string  `dynamodbav:"date,omitempty" json:"date,omitempty"`
	CreatedAt   string  `dynamodbav:"createdAt" json:"createdAt"`
}
