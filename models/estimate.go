package models

// EstimateLineItem is a single priced line on an estimate.
type EstimateLineItem struct {
	ItemID      string  `dynamodbav:"itemId" json:"itemId"`
	Description string  `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Quantity    float64 `dynamodbav:"quantity" json:"quantity"`
	UnitPrice   float64 `dynamodbav:"unitPrice" json:"unitPrice"`
}

// Estimate moves draft -> sent -> viewed -> approved. ConvertedJobID is a
// one-way latch: once set, the estimate can never be converted again.
type Estimate struct {
	OwnerID           string             `dynamodbav:"ownerId" json:"ownerId"`
	EstimateID        string             `dynamodbav:"estimateId" json:"estimateId"`
	JobName           string             `dynamodbav:"jobName,omitempty" json:"jobName,omitempty"`
	ClientName        string             `dynamodbav:"clientName" json:"clientName"`
	ClientEmail       string             `dynamodbav:"clientEmail,omitempty" json:"clientEmail,omitempty"`
	Address           string             `dynamodbav:"address,omitempty" json:"address,omitempty"`
	LineItems         []EstimateLineItem `dynamodbav:"lineItems,omitempty" json:"lineItems,omitempty"`
	MarkupPercent     float64            `dynamodbav:"markupPercent" json:"markupPercent"`
	TaxPercent        float64            `dynamodbav:"taxPercent" json:"taxPercent"`
	Subtotal          float64            `dynamodbav:"subtotal" json:"subtotal"`
	Markup            float64            `dynamodbav:"markup" json:"markup"`
	Tax               float64            `dynamodbav:"tax" json:"tax"`
	Total             float64            `dynamodbav:"total" json:"total"`
	Status            string             `dynamodbav:"status" json:"status"`
	ShareToken        string             `dynamodbav:"shareToken" json:"shareToken"`
	Notes             string             `dynamodbav:"notes,omitempty" json:"notes,omitempty"`
	SentAt            string             `dynamodbav:"sentAt,omitempty" json:"sentAt,omitempty"`
	ViewedAt          string             `dynamodbav:"viewedAt,omitempty" json:"viewedAt,omitempty"`
	ApprovedAt        string             `dynamodbav:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	ApprovedSignature string             `dynamodbav:"approvedSignature,omitempty" json:"approvedSignature,omitempty"`
	ConvertedJobID    string             `dynamodbav:"convertedJobId,omitempty" json:"convertedJobId,omitempty"`
	CreatedAt         string             `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt         string             `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
