package models

// InvoiceLineItem is a single line on an invoice.
type InvoiceLineItem struct {
	Description string  `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Amount      float64 `dynamodbav:"amount" json:"amount"`
}

// Invoice moves draft -> sent -> viewed -> paid. Paid is terminal and
// back-propagates to the parent job. StatusCreatedAt ("status#createdAt") is
// the OwnerStatusIndex sort key.
type Invoice struct {
	JobID             string            `dynamodbav:"jobId" json:"jobId"`
	InvoiceID         string            `dynamodbav:"invoiceId" json:"invoiceId"`
	OwnerID           string            `dynamodbav:"ownerId" json:"ownerId"`
	ClientName        string            `dynamodbav:"clientName,omitempty" json:"clientName,omitempty"`
	ClientEmail       string            `dynamodbav:"clientEmail,omitempty" json:"clientEmail,omitempty"`
	Amount            float64           `dynamodbav:"amount" json:"amount"`
	DueDate           string            `dynamodbav:"dueDate" json:"dueDate"`
	LineItems         []InvoiceLineItem `dynamodbav:"lineItems,omitempty" json:"lineItems,omitempty"`
	Notes             string            `dynamodbav:"notes,omitempty" json:"notes,omitempty"`
	Status            string            `dynamodbav:"status" json:"status"`
	StatusCreatedAt   string            `dynamodbav:"statusCreatedAt" json:"-"`
	SentAt            string            `dynamodbav:"sentAt,omitempty" json:"sentAt,omitempty"`
	ViewedAt          string            `dynamodbav:"viewedAt,omitempty" json:"viewedAt,omitempty"`
	PaidAt            string            `dynamodbav:"paidAt,omitempty" json:"paidAt,omitempty"`
	LastReminderType  string            `dynamodbav:"lastReminderType,omitempty" json:"lastReminderType,omitempty"`
	LastReminderAt    string            `dynamodbav:"lastReminderAt,omitempty" json:"lastReminderAt,omitempty"`
	CheckoutSessionID string            `dynamodbav:"checkoutSessionId,omitempty" json:"-"`
	CreatedAt         string            `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt         string            `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
