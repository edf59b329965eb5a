package models

// Assignment is at most one row per (date, member). The table key is
// assignmentDate + ownerMemberId, so writing the same day for the same member
// overwrites in place; moving a member to another day is delete + recreate.
// DateMemberID ("date#memberId") is the OwnerDateIndex sort key.
type Assignment struct {
	AssignmentDate string  `dynamodbav:"assignmentDate" json:"assignmentDate"`
	OwnerMemberID  string  `dynamodbav:"ownerMemberId" json:"-"`
	OwnerID        string  `dynamodbav:"ownerId" json:"ownerId"`
	MemberID       string  `dynamodbav:"memberId" json:"memberId"`
	JobID          string  `dynamodbav:"jobId" json:"jobId"`
	DateMemberID   string  `dynamodbav:"dateMemberId" json:"-"`
	StartTime      string  `dynamodbav:"startTime,omitempty" json:"startTime,omitempty"`
	ClockIn        string  `dynamodbav:"clockIn,omitempty" json:"clockIn,omitempty"`
	ClockOut       string  `dynamodbav:"clockOut,omitempty" json:"clockOut,omitempty"`
	ClockInLat     float64 `dynamodbav:"clockInLat,omitempty" json:"clockInLat,omitempty"`
	ClockInLng     float64 `dynamodbav:"clockInLng,omitempty" json:"clockInLng,omitempty"`
	ClockOutLat    float64 `dynamodbav:"clockOutLat,omitempty" json:"clockOutLat,omitempty"`
	ClockOutLng    float64 `dynamodbav:"clockOutLng,omitempty" json:"clockOutLng,omitempty"`
	HoursWorked    float64 `dynamodbav:"hoursWorked,omitempty" json:"hoursWorked,omitempty"`
	CreatedAt      string  `dynamodbav:"createdAt" json:"createdAt"`
}

// AssignmentSortKey builds the table sort key for an assignment row.
func AssignmentSortKey(ownerID, memberID string) string {
	return ownerID + "#" + memberID
}

// AssignmentIndexKey builds the OwnerDateIndex sort key.
func AssignmentIndexKey(date, memberID string) string {
	return date + "#" + memberID
}
