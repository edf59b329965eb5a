package models

// Job is one tracked job for an owner. The StatusCreatedAt attribute is the
// StatusIndex sort key, "status#createdAt", so listing by status stays
// recency-ordered within a status.
type Job struct {
	OwnerID         string  `dynamodbav:"ownerId" json:"ownerId"`
	JobID           string  `dynamodbav:"jobId" json:"jobId"`
	JobName         string  `dynamodbav:"jobName" json:"jobName"`
	ClientName      string  `dynamodbav:"clientName" json:"clientName"`
	ClientEmail     string  `dynamodbav:"clientEmail,omitempty" json:"clientEmail,omitempty"`
	ClientPhone     string  `dynamodbav:"clientPhone,omitempty" json:"clientPhone,omitempty"`
	Address         string  `dynamodbav:"address,omitempty" json:"address,omitempty"`
	BidAmount       float64 `dynamodbav:"bidAmount" json:"bidAmount"`
	ActualCost      float64 `dynamodbav:"actualCost" json:"actualCost"`
	Status          string  `dynamodbav:"status" json:"status"`
	StatusCreatedAt string  `dynamodbav:"statusCreatedAt" json:"-"`
	StartDate       string  `dynamodbav:"startDate,omitempty" json:"startDate,omitempty"`
	Notes           string  `dynamodbav:"notes,omitempty" json:"notes,omitempty"`
	EstimateID      string  `dynamodbav:"estimateId,omitempty" json:"estimateId,omitempty"`
	CreatedAt       string  `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt       string  `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
