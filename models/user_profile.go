package models

// UserProfile is the single per-owner row (sort key "PROFILE") carrying the
// plan tier and third-party integration tokens.
type UserProfile struct {
	OwnerID      string `dynamodbav:"ownerId" json:"ownerId"`
	RecordID     string `dynamodbav:"recordId" json:"-"`
	BusinessName string `dynamodbav:"businessName,omitempty" json:"businessName,omitempty"`
	ContactName  string `dynamodbav:"contactName,omitempty" json:"contactName,omitempty"`
	Email        string `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Phone        string `dynamodbav:"phone,omitempty" json:"phone,omitempty"`
	PlanTier     string `dynamodbav:"planTier" json:"planTier"`

	AccountingAccessToken  string `dynamodbav:"accountingAccessToken,omitempty" json:"-"`
	AccountingRefreshToken string `dynamodbav:"accountingRefreshToken,omitempty" json:"-"`
	AccountingTokenExpiry  string `dynamodbav:"accountingTokenExpiry,omitempty" json:"-"`
	AccountingRealmID      string `dynamodbav:"accountingRealmId,omitempty" json:"accountingRealmId,omitempty"`

	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
