package models

// Notification is a system-generated message for an owner; only the Read flag
// is ever mutated after creation.
type Notification struct {
	OwnerID   string `dynamodbav:"ownerId" json:"ownerId"`
	NotifID   string `dynamodbav:"notifId" json:"notifId"`
	Type      string `dynamodbav:"type,omitempty" json:"type,omitempty"`
	Title     string `dynamodbav:"title,omitempty" json:"title,omitempty"`
	Message   string `dynamodbav:"message" json:"message"`
	Read      bool   `dynamodbav:"read" json:"read"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}
