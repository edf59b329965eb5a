package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"subtrack_server/config"
	"subtrack_server/models"
	"subtrack_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// EstimateService owns the draft -> sent -> viewed -> approved machine and
// the one-way conversion into a job.
type EstimateService struct {
	Dynamo        *DynamoService
	Tables        config.Tables
	Email         *EmailService
	Notifications *NotificationService
	AppURL        string
}

// EstimateInput carries the writable estimate fields.
type EstimateInput struct {
	JobName       string                    `json:"jobName"`
	ClientName    string                    `json:"clientName" validate:"required"`
	ClientEmail   string                    `json:"clientEmail"`
	Address       string                    `json:"address"`
	LineItems     []models.EstimateLineItem `json:"lineItems"`
	MarkupPercent float64                   `json:"markupPercent"`
	TaxPercent    float64                   `json:"taxPercent"`
	Notes         string                    `json:"notes"`
}

// ApproveResult reports a public approval; AlreadyApproved distinguishes the
// idempotent no-op from a fresh approval.
type ApproveResult struct {
	Estimate        *models.Estimate `json:"estimate"`
	AlreadyApproved bool             `json:"alreadyApproved"`
}

// ComputeEstimateTotals derives subtotal, markup, tax and total from line
// items and percentages, each rounded to cents.
func ComputeEstimateTotals(items []models.EstimateLineItem, markupPercent, taxPercent float64) (subtotal, markup, tax, total float64) {
	for _, item := range items {
		subtotal += item.Quantity * item.UnitPrice
	}
	subtotal = utils.Round2(subtotal)
	markup = utils.Round2(subtotal * markupPercent / 100)
	tax = utils.Round2((subtotal + markup) * taxPercent / 100)
	total = utils.Round2(subtotal + markup + tax)
	return
}

func estimateKey(ownerID, estimateID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"ownerId":    &types.AttributeValueMemberS{Value: ownerID},
		"estimateId": &types.AttributeValueMemberS{Value: estimateID},
	}
}

// CreateEstimate computes totals, assigns ids to line items missing one and
// writes the estimate as a draft with a fresh share token.
func (es *EstimateService) CreateEstimate(ctx context.Context, ownerID string, in EstimateInput) (*models.Estimate, error) {
	if strings.TrimSpace(in.ClientName) == "" {
		return nil, errValidation("Client name is required")
	}

	items := make([]models.EstimateLineItem, len(in.LineItems))
	copy(items, in.LineItems)
	for i := range items {
		if items[i].ItemID == "" {
			items[i].ItemID = fmt.Sprintf("item-%d", i+1)
		}
	}

	subtotal, markup, tax, total := ComputeEstimateTotals(items, in.MarkupPercent, in.TaxPercent)

	estimate := models.Estimate{
		OwnerID:       ownerID,
		EstimateID:    utils.NewID(),
		JobName:       in.JobName,
		ClientName:    strings.TrimSpace(in.ClientName),
		ClientEmail:   in.ClientEmail,
		Address:       in.Address,
		LineItems:     items,
		MarkupPercent: in.MarkupPercent,
		TaxPercent:    in.TaxPercent,
		Subtotal:      subtotal,
		Markup:        markup,
		Tax:           tax,
		Total:         total,
		Status:        models.EstimateStatusDraft,
		ShareToken:    utils.NewShareToken(),
		Notes:         in.Notes,
		CreatedAt:     utils.NowISO(),
	}

	if err := es.Dynamo.PutItem(ctx, es.Tables.Estimates, estimate); err != nil {
		return nil, err
	}
	return &estimate, nil
}

// GetEstimate fetches one estimate owned by the caller.
func (es *EstimateService) GetEstimate(ctx context.Context, ownerID, estimateID string) (*models.Estimate, error) {
	item, err := es.Dynamo.GetItem(ctx, es.Tables.Estimates, estimateKey(ownerID, estimateID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errNotFound("Estimate not found")
	}

	var estimate models.Estimate
	if err := attributevalue.UnmarshalMap(item, &estimate); err != nil {
		return nil, err
	}
	return &estimate, nil
}

// ListEstimates returns all estimates for the owner.
func (es *EstimateService) ListEstimates(ctx context.Context, ownerID string) ([]models.Estimate, error) {
	items, err := es.Dynamo.QueryItems(ctx, es.Tables.Estimates,
		"ownerId = :ownerId",
		map[string]types.AttributeValue{
			":ownerId": &types.AttributeValueMemberS{Value: ownerID},
		}, nil, 0)
	if err != nil {
		return nil, err
	}

	estimates := make([]models.Estimate, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &estimates); err != nil {
		return nil, err
	}
	return estimates, nil
}

// UpdateEstimate rewrites the writable fields and recomputes totals. The
// share token, status history and conversion latch are never touched.
func (es *EstimateService) UpdateEstimate(ctx context.Context, ownerID, estimateID string, in EstimateInput) (*models.Estimate, error) {
	estimate, err := es.GetEstimate(ctx, ownerID, estimateID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ClientName) == "" {
		return nil, errValidation("Client name is required")
	}

	items := make([]models.EstimateLineItem, len(in.LineItems))
	copy(items, in.LineItems)
	for i := range items {
		if items[i].ItemID == "" {
			items[i].ItemID = fmt.Sprintf("item-%d", i+1)
		}
	}

	estimate.JobName = in.JobName
	estimate.ClientName = strings.TrimSpace(in.ClientName)
	estimate.ClientEmail = in.ClientEmail
	estimate.Address = in.Address
	estimate.LineItems = items
	estimate.MarkupPercent = in.MarkupPercent
	estimate.TaxPercent = in.TaxPercent
	estimate.Subtotal, estimate.Markup, estimate.Tax, estimate.Total =
		ComputeEstimateTotals(items, in.MarkupPercent, in.TaxPercent)
	estimate.Notes = in.Notes
	estimate.UpdatedAt = utils.NowISO()

	if err := es.Dynamo.PutItem(ctx, es.Tables.Estimates, *estimate); err != nil {
		return nil, err
	}
	return estimate, nil
}

// DeleteEstimate removes the estimate row.
func (es *EstimateService) DeleteEstimate(ctx context.Context, ownerID, estimateID string) error {
	if _, err := es.GetEstimate(ctx, ownerID, estimateID); err != nil {
		return err
	}
	return es.Dynamo.DeleteItem(ctx, es.Tables.Estimates, estimateKey(ownerID, estimateID))
}

// SendEstimate transitions draft -> sent and emails the client a share link.
// Re-sending from sent just re-confirms. The email is best-effort: a delivery
// failure never blocks the transition.
func (es *EstimateService) SendEstimate(ctx context.Context, ownerID, estimateID string) (*models.Estimate, bool, error) {
	estimate, err := es.GetEstimate(ctx, ownerID, estimateID)
	if err != nil {
		return nil, false, err
	}

	switch estimate.Status {
	case models.EstimateStatusDraft:
		estimate.Status = models.EstimateStatusSent
		estimate.SentAt = utils.NowISO()
		estimate.UpdatedAt = estimate.SentAt
		if err := es.Dynamo.PutItem(ctx, es.Tables.Estimates, *estimate); err != nil {
			return nil, false, err
		}
	case models.EstimateStatusSent:
		// idempotent re-send
	default:
		return nil, false, errConflict("Estimate can only be sent from draft")
	}

	emailed := false
	if es.Email != nil && estimate.ClientEmail != "" {
		link := es.AppURL + "/estimate-view/" + estimate.ShareToken
		if err := es.Email.SendEstimate(ctx, estimate, link); err != nil {
			log.Printf("Estimate %s email failed: %v", estimate.EstimateID, err)
		} else {
			emailed = true
		}
	}
	return estimate, emailed, nil
}

// GetEstimateByToken resolves an estimate through the share-token index.
func (es *EstimateService) GetEstimateByToken(ctx context.Context, token string) (*models.Estimate, error) {
	items, err := es.Dynamo.QueryItemsWithIndex(ctx, es.Tables.Estimates, models.EstimateShareTokenIndex,
		"shareToken = :token",
		map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		}, nil, 1)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errNotFound("Estimate not found")
	}

	var estimate models.Estimate
	if err := attributevalue.UnmarshalMap(items[0], &estimate); err != nil {
		return nil, err
	}
	return &estimate, nil
}

// PublicView returns the estimate behind a share token. A first read of a
// sent estimate flips it to viewed; the transition is guarded by a status
// precondition so duplicated reads never double-transition.
func (es *EstimateService) PublicView(ctx context.Context, token string) (*models.Estimate, error) {
	estimate, err := es.GetEstimateByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if estimate.Status == models.EstimateStatusSent {
		now := utils.NowISO()
		_, err := es.Dynamo.UpdateItemConditional(ctx, es.Tables.Estimates,
			"SET #status = :viewed, viewedAt = :now",
			estimateKey(estimate.OwnerID, estimate.EstimateID),
			map[string]types.AttributeValue{
				":viewed": &types.AttributeValueMemberS{Value: models.EstimateStatusViewed},
				":now":    &types.AttributeValueMemberS{Value: now},
				":sent":   &types.AttributeValueMemberS{Value: models.EstimateStatusSent},
			},
			map[string]string{"#status": "status"},
			"#status = :sent")
		if err != nil && !IsConditionalCheckFailed(err) {
			return nil, err
		}
		if err == nil {
			estimate.Status = models.EstimateStatusViewed
			estimate.ViewedAt = now
		}
	}
	return estimate, nil
}

// approvalState classifies an estimate status for a public approval: whether
// it is already approved, and whether approval is allowed at all.
func approvalState(status string) (already, approvable bool) {
	switch status {
	case models.EstimateStatusApproved:
		return true, true
	case models.EstimateStatusDraft, models.EstimateStatusSent, models.EstimateStatusViewed:
		return false, true
	default:
		return false, false
	}
}

// convertGuard rejects an estimate whose conversion latch is already set.
func convertGuard(estimate *models.Estimate) error {
	if estimate.ConvertedJobID != "" {
		return errConflict("Estimate has already been converted to a job")
	}
	return nil
}

// convertWriteError maps a lost latch race onto the same conflict the
// precheck raises; anything else passes through.
func convertWriteError(err error) error {
	if IsConditionalCheckFailed(err) {
		return errConflict("Estimate has already been converted to a job")
	}
	return err
}

// PublicApprove approves the estimate behind a share token. Approval is
// idempotent: re-approving reports alreadyApproved instead of failing.
func (es *EstimateService) PublicApprove(ctx context.Context, token, signature string) (*ApproveResult, error) {
	estimate, err := es.GetEstimateByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	already, approvable := approvalState(estimate.Status)
	if already {
		return &ApproveResult{Estimate: estimate, AlreadyApproved: true}, nil
	}
	if !approvable {
		return nil, errConflict("Estimate cannot be approved from its current status")
	}

	if strings.TrimSpace(signature) == "" {
		signature = "Approved digitally"
	}

	estimate.Status = models.EstimateStatusApproved
	estimate.ApprovedAt = utils.NowISO()
	estimate.ApprovedSignature = signature
	estimate.UpdatedAt = estimate.ApprovedAt

	if err := es.Dynamo.PutItem(ctx, es.Tables.Estimates, *estimate); err != nil {
		return nil, err
	}

	if es.Notifications != nil {
		es.Notifications.Notify(ctx, estimate.OwnerID, "estimate_approved",
			"Estimate approved",
			estimate.ClientName+" approved the estimate for $"+utils.FormatAmount(estimate.Total))
	}
	return &ApproveResult{Estimate: estimate}, nil
}

// ConvertToJob turns an approved estimate into a job exactly once. The
// convertedJobId latch is reserved with a conditional write before the job is
// created, so a concurrent second convert loses at the store.
func (es *EstimateService) ConvertToJob(ctx context.Context, ownerID, estimateID string, jobs *JobService) (*models.Job, error) {
	estimate, err := es.GetEstimate(ctx, ownerID, estimateID)
	if err != nil {
		return nil, err
	}
	if err := convertGuard(estimate); err != nil {
		return nil, err
	}

	now := utils.NowISO()
	jobID := utils.NewID()

	_, err = es.Dynamo.UpdateItemConditional(ctx, es.Tables.Estimates,
		"SET convertedJobId = :jobId, #status = :approved, updatedAt = :now",
		estimateKey(ownerID, estimateID),
		map[string]types.AttributeValue{
			":jobId":    &types.AttributeValueMemberS{Value: jobID},
			":approved": &types.AttributeValueMemberS{Value: models.EstimateStatusApproved},
			":now":      &types.AttributeValueMemberS{Value: now},
		},
		map[string]string{"#status": "status"},
		"attribute_not_exists(convertedJobId)")
	if err != nil {
		return nil, convertWriteError(err)
	}

	jobName := estimate.JobName
	if jobName == "" {
		jobName = "Job for " + estimate.ClientName
	}

	job := models.Job{
		OwnerID:         ownerID,
		JobID:           jobID,
		JobName:         jobName,
		ClientName:      estimate.ClientName,
		ClientEmail:     estimate.ClientEmail,
		Address:         estimate.Address,
		BidAmount:       estimate.Total,
		ActualCost:      0,
		Status:          models.JobStatusActive,
		StatusCreatedAt: statusSortKey(models.JobStatusActive, now),
		Notes:           estimate.Notes,
		EstimateID:      estimate.EstimateID,
		CreatedAt:       now,
	}

	if err := jobs.Dynamo.PutItem(ctx, jobs.Tables.Jobs, job); err != nil {
		return nil, err
	}
	return &job, nil
}
