package services

import (
	"context"
	"strings"

	"subtrack_server/config"
	"subtrack_server/models"
	"subtrack_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// JobService owns job creation, retrieval, listing, updates and deletion.
type JobService struct {
	Dynamo *DynamoService
	Tables config.Tables
	Gate   *SubscriptionService
}

// JobInput carries the writable job fields.
type JobInput struct {
	JobName     string  `json:"jobName" validate:"required"`
	ClientName  string  `json:"clientName" validate:"required"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone string  `json:"clientPhone"`
	Address     string  `json:"address"`
	BidAmount   float64 `json:"bidAmount"`
	StartDate   string  `json:"startDate"`
	Notes       string  `json:"notes"`
}

// JobUpdate carries optional fields for a partial update; nil means "leave
// alone".
type JobUpdate struct {
	JobName     *string  `json:"jobName"`
	ClientName  *string  `json:"clientName"`
	ClientEmail *string  `json:"clientEmail"`
	ClientPhone *string  `json:"clientPhone"`
	Address     *string  `json:"address"`
	BidAmount   *float64 `json:"bidAmount"`
	Status      *string  `json:"status"`
	StartDate   *string  `json:"startDate"`
	Notes       *string  `json:"notes"`
}

func jobKey(ownerID, jobID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"ownerId": &types.AttributeValueMemberS{Value: ownerID},
		"jobId":   &types.AttributeValueMemberS{Value: jobID},
	}
}

// statusSortKey embeds the status into the StatusIndex sort key so listings
// stay recency-ordered within a status.
func statusSortKey(status, timestamp string) string {
	return status + "#" + timestamp
}

// CreateJob validates required fields, applies defaults and writes the job.
func (js *JobService) CreateJob(ctx context.Context, ownerID string, in JobInput) (*models.Job, error) {
	if strings.TrimSpace(in.JobName) == "" {
		return nil, errValidation("Job name is required")
	}
	if strings.TrimSpace(in.ClientName) == "" {
		return nil, errValidation("Client name is required")
	}

	if js.Gate != nil {
		if err := js.Gate.CheckJobCreate(ctx, ownerID); err != nil {
			return nil, err
		}
	}

	now := utils.NowISO()
	job := models.Job{
		OwnerID:         ownerID,
		JobID:           utils.NewID(),
		JobName:         strings.TrimSpace(in.JobName),
		ClientName:      strings.TrimSpace(in.ClientName),
		ClientEmail:     in.ClientEmail,
		ClientPhone:     in.ClientPhone,
		Address:         in.Address,
		BidAmount:       in.BidAmount,
		ActualCost:      0,
		Status:          models.JobStatusBidding,
		StatusCreatedAt: statusSortKey(models.JobStatusBidding, now),
		StartDate:       in.StartDate,
		Notes:           in.Notes,
		CreatedAt:       now,
	}

	if err := js.Dynamo.PutItem(ctx, js.Tables.Jobs, job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetJob fetches one job owned by the caller.
func (js *JobService) GetJob(ctx context.Context, ownerID, jobID string) (*models.Job, error) {
	item, err := js.Dynamo.GetItem(ctx, js.Tables.Jobs, jobKey(ownerID, jobID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errNotFound("Job not found")
	}

	var job models.Job
	if err := attributevalue.UnmarshalMap(item, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs returns the owner's jobs, newest first; with a status it queries
// the StatusIndex instead of the base table.
func (js *JobService) ListJobs(ctx context.Context, ownerID, status string) ([]models.Job, error) {
	var items []map[string]types.AttributeValue
	var err error

	if status != "" {
		items, err = js.Dynamo.QueryItemsWithOptions(ctx, js.Tables.Jobs, models.JobStatusIndex,
			"ownerId = :ownerId AND begins_with(statusCreatedAt, :status)",
			map[string]types.AttributeValue{
				":ownerId": &types.AttributeValueMemberS{Value: ownerID},
				":status":  &types.AttributeValueMemberS{Value: status + "#"},
			}, nil, 0, true)
	} else {
		items, err = js.Dynamo.QueryItems(ctx, js.Tables.Jobs,
			"ownerId = :ownerId",
			map[string]types.AttributeValue{
				":ownerId": &types.AttributeValueMemberS{Value: ownerID},
			}, nil, 0)
	}
	if err != nil {
		return nil, err
	}

	jobs := make([]models.Job, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateJob merges only the provided fields over the stored record. A status
// change rewrites the StatusIndex sort key with the new status and current
// timestamp.
func (js *JobService) UpdateJob(ctx context.Context, ownerID, jobID string, upd JobUpdate) (*models.Job, error) {
	job, err := js.GetJob(ctx, ownerID, jobID)
	if err != nil {
		return nil, err
	}

	if upd.JobName != nil {
		if strings.TrimSpace(*upd.JobName) == "" {
			return nil, errValidation("Job name cannot be blank")
		}
		job.JobName = strings.TrimSpace(*upd.JobName)
	}
	if upd.ClientName != nil {
		if strings.TrimSpace(*upd.ClientName) == "" {
			return nil, errValidation("Client name cannot be blank")
		}
		job.ClientName = strings.TrimSpace(*upd.ClientName)
	}
	if upd.ClientEmail != nil {
		job.ClientEmail = *upd.ClientEmail
	}
	if upd.ClientPhone != nil {
		job.ClientPhone = *upd.ClientPhone
	}
	if upd.Address != nil {
		job.Address = *upd.Address
	}
	if upd.BidAmount != nil {
		job.BidAmount = *upd.BidAmount
	}
	if upd.StartDate != nil {
		job.StartDate = *upd.StartDate
	}
	if upd.Notes != nil {
		job.Notes = *upd.Notes
	}
	if upd.Status != nil && *upd.Status != job.Status {
		switch *upd.Status {
		case models.JobStatusBidding, models.JobStatusActive, models.JobStatusComplete:
		case models.JobStatusPaid:
			// Paid is only reachable through the invoice pay cascade.
			return nil, errValidation("Jobs are marked paid by paying an invoice")
		default:
			return nil, errValidation("Unknown job status")
		}
		job.Status = *upd.Status
		job.StatusCreatedAt = statusSortKey(job.Status, utils.NowISO())
	}
	job.UpdatedAt = utils.NowISO()

	if err := js.Dynamo.PutItem(ctx, js.Tables.Jobs, job); err != nil {
		return nil, err
	}
	return job, nil
}

// MarkJobPaid sets the job status to paid. The invoice pay cascade is the
// only caller.
func (js *JobService) MarkJobPaid(ctx context.Context, ownerID, jobID string) error {
	now := utils.NowISO()
	_, err := js.Dynamo.UpdateItem(ctx, js.Tables.Jobs,
		"SET #status = :status, statusCreatedAt = :sca, updatedAt = :now",
		jobKey(ownerID, jobID),
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: models.JobStatusPaid},
			":sca":    &types.AttributeValueMemberS{Value: statusSortKey(models.JobStatusPaid, now)},
			":now":    &types.AttributeValueMemberS{Value: now},
		},
		map[string]string{"#status": "status"})
	return err
}

// DeleteJob removes the job row. Expenses and invoices under it are left as
// orphans on purpose.
func (js *JobService) DeleteJob(ctx context.Context, ownerID, jobID string) error {
	if _, err := js.GetJob(ctx, ownerID, jobID); err != nil {
		return err
	}
	return js.Dynamo.DeleteItem(ctx, js.Tables.Jobs, jobKey(ownerID, jobID))
}
