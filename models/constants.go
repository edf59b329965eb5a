package models

// Job statuses
const (
	JobStatusBidding  = "bidding"
	JobStatusActive   = "active"
	JobStatusComplete = "complete"
	JobStatusPaid     = "paid"
)

// Estimate statuses
const (
	EstimateStatusDraft    = "draft"
	EstimateStatusSent     = "sent"
	EstimateStatusViewed   = "viewed"
	EstimateStatusApproved = "approved"
	// Declined is part of the status vocabulary but no handler transitions
	// into it yet.
	EstimateStatusDeclined = "declined"
)

// Invoice statuses
const (
	InvoiceStatusDraft  = "draft"
	InvoiceStatusSent   = "sent"
	InvoiceStatusViewed = "viewed"
	InvoiceStatusPaid   = "paid"
)

// Compliance document urgency, worst first
const (
	ComplianceStatusExpired      = "expired"
	ComplianceStatusExpiring     = "expiring"
	ComplianceStatusExpiringSoon = "expiring-soon"
	ComplianceStatusActive       = "active"
)

// Invoice reminder tiers
const (
	ReminderTypeFriendly = "friendly"
	ReminderTypeFollowup = "followup"
	ReminderTypeOverdue  = "overdue"
)

// Crew member statuses
const (
	CrewStatusActive   = "active"
	CrewStatusInactive = "inactive"
)

// Plan tiers
const (
	PlanFree = "free"
	PlanPro  = "pro"
	PlanTeam = "team"
)

// Secondary index names
const (
	JobStatusIndex            = "StatusIndex"
	CrewShareTokenIndex       = "ShareTokenIndex"
	EstimateShareTokenIndex   = "ShareTokenIndex"
	AssignmentOwnerDateIndex  = "OwnerDateIndex"
	InvoiceOwnerStatusIndex   = "OwnerStatusIndex"
	ComplianceExpirationIndex = "ExpirationIndex"
)

// ProfileSortKey is the fixed sort key for the single profile row per owner.
const ProfileSortKey = "PROFILE"
