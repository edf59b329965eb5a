package services

import (
	"context"
	"log"
	"time"

	"subtrack_server/config"
	"subtrack_server/models"
	"subtrack_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AssignmentService owns per-day crew assignments and the public clock
// endpoints. The table key is (date, owner#member), so there is at most one
// assignment per member per day and re-creating one overwrites in place.
type AssignmentService struct {
	Dynamo *DynamoService
	Tables config.Tables
	Jobs   *JobService
	Crew   *CrewService
	SMS    *SMSService
}

// AssignmentInput carries the fields for creating or moving an assignment.
type AssignmentInput struct {
	MemberID  string `json:"memberId" validate:"required"`
	JobID     string `json:"jobId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime"`
}

// NotifyResult is one recipient's outcome in a crew notification batch.
// Partial failure is the expected mode; the batch never aborts.
type NotifyResult struct {
	MemberID string `json:"memberId"`
	Name     string `json:"name"`
	Sent     bool   `json:"sent"`
	Reason   string `json:"reason,omitempty"`
}

// CrewDayView is the public crew-view payload: the member plus today's
// assignment and its job, when there is one.
type CrewDayView struct {
	Member     *models.CrewMember `json:"member"`
	Assignment *models.Assignment `json:"assignment,omitempty"`
	Job        *models.Job        `json:"job,omitempty"`
}

func assignmentKey(date, ownerID, memberID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"assignmentDate": &types.AttributeValueMemberS{Value: date},
		"ownerMemberId":  &types.AttributeValueMemberS{Value: models.AssignmentSortKey(ownerID, memberID)},
	}
}

// ComputeHoursWorked returns the clocked span in hours, two decimals.
func ComputeHoursWorked(clockIn, clockOut time.Time) float64 {
	return utils.Round2(clockOut.Sub(clockIn).Hours())
}

// CreateAssignment writes the single assignment row for (date, member) after
// verifying both the member and the job belong to the caller. Writing over an
// existing row for the same day is the reassign mechanism.
func (as *AssignmentService) CreateAssignment(ctx context.Context, ownerID string, in AssignmentInput) (*models.Assignment, error) {
	if in.MemberID == "" || in.JobID == "" || in.Date == "" {
		return nil, errValidation("memberId, jobId and date are required")
	}

	if _, err := as.Crew.GetCrewMember(ctx, ownerID, in.MemberID); err != nil {
		return nil, err
	}
	if _, err := as.Jobs.GetJob(ctx, ownerID, in.JobID); err != nil {
		return nil, err
	}

	assignment := models.Assignment{
		AssignmentDate: in.Date,
		OwnerMemberID:  models.AssignmentSortKey(ownerID, in.MemberID),
		OwnerID:        ownerID,
		MemberID:       in.MemberID,
		JobID:          in.JobID,
		DateMemberID:   models.AssignmentIndexKey(in.Date, in.MemberID),
		StartTime:      in.StartTime,
		CreatedAt:      utils.NowISO(),
	}

	if err := as.Dynamo.PutItem(ctx, as.Tables.Assignments, assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// MoveAssignment relocates a member's assignment to a new date: delete the
// old row, write the new one. Two writes, not atomic.
func (as *AssignmentService) MoveAssignment(ctx context.Context, ownerID, oldDate string, in AssignmentInput) (*models.Assignment, error) {
	if oldDate != "" && oldDate != in.Date {
		if err := as.Dynamo.DeleteItem(ctx, as.Tables.Assignments, assignmentKey(oldDate, ownerID, in.MemberID)); err != nil {
			return nil, err
		}
	}
	return as.CreateAssignment(ctx, ownerID, in)
}

// ListAssignments returns the owner's assignments via the OwnerDateIndex,
// optionally narrowed to one date.
func (as *AssignmentService) ListAssignments(ctx context.Context, ownerID, date string) ([]models.Assignment, error) {
	keyCondition := "ownerId = :ownerId"
	values := map[string]types.AttributeValue{
		":ownerId": &types.AttributeValueMemberS{Value: ownerID},
	}
	if date != "" {
		keyCondition += " AND begins_with(dateMemberId, :date)"
		values[":date"] = &types.AttributeValueMemberS{Value: date + "#"}
	}

	items, err := as.Dynamo.QueryItemsWithOptions(ctx, as.Tables.Assignments, models.AssignmentOwnerDateIndex,
		keyCondition, values, nil, 0, true)
	if err != nil {
		return nil, err
	}

	assignments := make([]models.Assignment, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// DeleteAssignment removes one day's row for a member.
func (as *AssignmentService) DeleteAssignment(ctx context.Context, ownerID, date, memberID string) error {
	return as.Dynamo.DeleteItem(ctx, as.Tables.Assignments, assignmentKey(date, ownerID, memberID))
}

func (as *AssignmentService) todaysAssignment(ctx context.Context, member *models.CrewMember) (*models.Assignment, error) {
	today := time.Now().UTC().Format(utils.DateOnly)
	item, err := as.Dynamo.GetItem(ctx, as.Tables.Assignments, assignmentKey(today, member.OwnerID, member.MemberID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var assignment models.Assignment
	if err := attributevalue.UnmarshalMap(item, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// DayView resolves the public crew view behind a share token.
func (as *AssignmentService) DayView(ctx context.Context, token string) (*CrewDayView, error) {
	member, err := as.Crew.GetCrewMemberByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	view := &CrewDayView{Member: member}
	assignment, err := as.todaysAssignment(ctx, member)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return view, nil
	}
	view.Assignment = assignment

	if job, err := as.Jobs.GetJob(ctx, member.OwnerID, assignment.JobID); err == nil {
		view.Job = job
	}
	return view, nil
}

// ClockIn stamps today's assignment with the clock-in time and optional GPS.
func (as *AssignmentService) ClockIn(ctx context.Context, token string, lat, lng float64) (*models.Assignment, error) {
	member, err := as.Crew.GetCrewMemberByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	assignment, err := as.todaysAssignment(ctx, member)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, errNotFound("No assignment for today")
	}

	assignment.ClockIn = utils.NowISO()
	assignment.ClockInLat = lat
	assignment.ClockInLng = lng

	if err := as.Dynamo.PutItem(ctx, as.Tables.Assignments, *assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// ClockOut stamps the clock-out time and computes hoursWorked. A missing
// clock-in degrades to "now", yielding ~0 hours instead of an error.
func (as *AssignmentService) ClockOut(ctx context.Context, token string, lat, lng float64) (*models.Assignment, error) {
	member, err := as.Crew.GetCrewMemberByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	assignment, err := as.todaysAssignment(ctx, member)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, errNotFound("No assignment for today")
	}

	now := time.Now().UTC()
	start := now
	if assignment.ClockIn != "" {
		if t := utils.ParseISO(assignment.ClockIn); !t.IsZero() {
			start = t
		}
	}

	assignment.ClockOut = now.Format(time.RFC3339)
	assignment.ClockOutLat = lat
	assignment.ClockOutLng = lng
	assignment.HoursWorked = ComputeHoursWorked(start, now)

	if err := as.Dynamo.PutItem(ctx, as.Tables.Assignments, *assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// NotifyCrew texts every member assigned on a date who has a phone number.
// Each recipient gets its own result row; one failure never aborts the rest.
func (as *AssignmentService) NotifyCrew(ctx context.Context, ownerID, date string) ([]NotifyResult, error) {
	assignments, err := as.ListAssignments(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}

	results := make([]NotifyResult, 0, len(assignments))
	for _, assignment := range assignments {
		member, err := as.Crew.GetCrewMember(ctx, ownerID, assignment.MemberID)
		if err != nil {
			results = append(results, NotifyResult{MemberID: assignment.MemberID, Reason: "member not found"})
			continue
		}

		result := NotifyResult{MemberID: member.MemberID, Name: member.Name}
		if member.Phone == "" {
			result.Reason = "no phone number on file"
			results = append(results, result)
			continue
		}

		job, _ := as.Jobs.GetJob(ctx, ownerID, assignment.JobID)
		message := buildCrewMessage(member, &assignment, job)

		if as.SMS == nil {
			result.Reason = "sms not configured"
		} else if err := as.SMS.SendText(ctx, member.Phone, message); err != nil {
			log.Printf("Crew SMS to %s failed: %v", member.MemberID, err)
			result.Reason = "sms delivery failed"
		} else {
			result.Sent = true
		}
		results = append(results, result)
	}
	return results, nil
}

func buildCrewMessage(member *models.CrewMember, assignment *models.Assignment, job *models.Job) string {
	msg := "Hi " + member.Name + ", you are scheduled on " + assignment.AssignmentDate
	if job != nil {
		msg += " for " + job.JobName
		if job.Address != "" {
			msg += " at " + job.Address
		}
	}
	if assignment.StartTime != "" {
		msg += ", start " + assignment.StartTime
	}
	return msg + "."
}
