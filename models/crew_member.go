package models

// CrewMember is one worker under an owner. ShareToken is issued at creation
// and never rotated; it is the only credential for the public crew view.
type CrewMember struct {
	OwnerID    string  `dynamodbav:"ownerId" json:"ownerId"`
	MemberID   string  `dynamodbav:"memberId" json:"memberId"`
	Name       string  `dynamodbav:"name" json:"name"`
	Phone      string  `dynamodbav:"phone,omitempty" json:"phone,omitempty"`
	Email      string  `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Role       string  `dynamodbav:"role,omitempty" json:"role,omitempty"`
	HourlyRate float64 `dynamodbav:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	ShareToken string  `dynamodbav:"shareToken" json:"shareToken"`
	Status     string  `dynamodbav:"status" json:"status"`
	CreatedAt  string  `dynamodbav:"createdAt" json:"createdAt"`
}
