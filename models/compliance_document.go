package models

// ComplianceDocument is an insurance/license/certification record. Status and
// DaysLeft are never stored; they are recomputed from ExpirationDate on every
// read so they can never go stale.
type ComplianceDocument struct {
	OwnerID        string `dynamodbav:"ownerId" json:"ownerId"`
	DocID          string `dynamodbav:"docId" json:"docId"`
	DocType        string `dynamodbav:"docType,omitempty" json:"docType,omitempty"`
	Name           string `dynamodbav:"name" json:"name"`
	Provider       string `dynamodbav:"provider,omitempty" json:"provider,omitempty"`
	PolicyNumber   string `dynamodbav:"policyNumber,omitempty" json:"policyNumber,omitempty"`
	IssueDate      string `dynamodbav:"issueDate,omitempty" json:"issueDate,omitempty"`
	ExpirationDate string `dynamodbav:"expirationDate" json:"expirationDate"`
	FileKey        string `dynamodbav:"fileKey,omitempty" json:"fileKey,omitempty"`
	Notes          string `dynamodbav:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`

	Status   string `dynamodbav:"-" json:"status,omitempty"`
	DaysLeft int    `dynamodbav:"-" json:"daysLeft"`
}
