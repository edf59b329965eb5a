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

// InvoiceService owns the draft -> sent -> viewed -> paid machine. Paying an
// invoice is the single place where one entity's mutation forces another's
// state: the parent job becomes paid.
type InvoiceService struct {
	Dynamo        *DynamoService
	Tables        config.Tables
	Jobs          *JobService
	Gate          *SubscriptionService
	Email         *EmailService
	Accounting    *AccountingService
	Notifications *NotificationService
	AppURL        string
}

// InvoiceInput carries the optional invoice fields; defaults come from the
// parent job.
type InvoiceInput struct {
	Amount    *float64                 `json:"amount"`
	DueDate   string                   `json:"dueDate"`
	LineItems []models.InvoiceLineItem `json:"lineItems"`
	Notes     string                   `json:"notes"`
}

// SendResult reports a send attempt; the state transition succeeds even when
// the email does not.
type SendResult struct {
	Invoice     *models.Invoice `json:"invoice"`
	EmailSent   bool            `json:"emailSent"`
	EmailReason string          `json:"emailReason,omitempty"`
}

func invoiceKey(jobID, invoiceID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"jobId":     &types.AttributeValueMemberS{Value: jobID},
		"invoiceId": &types.AttributeValueMemberS{Value: invoiceID},
	}
}

// ApplyInvoiceDefaults fills the blanks on a new invoice from its parent job:
// amount defaults to the bid, dueDate to +30 days, line items to a single
// entry describing the job.
func ApplyInvoiceDefaults(in InvoiceInput, job *models.Job, now time.Time) (amount float64, dueDate string, lineItems []models.InvoiceLineItem) {
	amount = job.BidAmount
	if in.Amount != nil && *in.Amount > 0 {
		amount = *in.Amount
	}

	dueDate = in.DueDate
	if dueDate == "" {
		dueDate = now.AddDate(0, 0, 30).Format(utils.DateOnly)
	}

	lineItems = in.LineItems
	if len(lineItems) == 0 {
		lineItems = []models.InvoiceLineItem{{
			Description: "Work performed: " + job.JobName,
			Amount:      amount,
		}}
	}
	return
}

// CreateInvoice writes a draft invoice under a job the caller owns.
func (is *InvoiceService) CreateInvoice(ctx context.Context, ownerID, jobID string, in InvoiceInput) (*models.Invoice, error) {
	job, err := is.Jobs.GetJob(ctx, ownerID, jobID)
	if err != nil {
		return nil, err
	}

	if is.Gate != nil {
		if err := is.Gate.CheckInvoiceCreate(ctx, ownerID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	amount, dueDate, lineItems := ApplyInvoiceDefaults(in, job, now)
	createdAt := now.Format(time.RFC3339)

	invoice := models.Invoice{
		JobID:           jobID,
		InvoiceID:       utils.NewID(),
		OwnerID:         ownerID,
		ClientName:      job.ClientName,
		ClientEmail:     job.ClientEmail,
		Amount:          amount,
		DueDate:         dueDate,
		LineItems:       lineItems,
		Notes:           in.Notes,
		Status:          models.InvoiceStatusDraft,
		StatusCreatedAt: statusSortKey(models.InvoiceStatusDraft, createdAt),
		CreatedAt:       createdAt,
	}

	if err := is.Dynamo.PutItem(ctx, is.Tables.Invoices, invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetInvoice fetches one invoice and verifies tenant ownership.
func (is *InvoiceService) GetInvoice(ctx context.Context, ownerID, jobID, invoiceID string) (*models.Invoice, error) {
	invoice, err := is.getByKey(ctx, jobID, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.OwnerID != ownerID {
		return nil, errNotFound("Invoice not found")
	}
	return invoice, nil
}

func (is *InvoiceService) getByKey(ctx context.Context, jobID, invoiceID string) (*models.Invoice, error) {
	item, err := is.Dynamo.GetItem(ctx, is.Tables.Invoices, invoiceKey(jobID, invoiceID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errNotFound("Invoice not found")
	}

	var invoice models.Invoice
	if err := attributevalue.UnmarshalMap(item, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// ListInvoices returns the owner's invoices through the OwnerStatusIndex,
// newest first, optionally narrowed to one status.
func (is *InvoiceService) ListInvoices(ctx context.Context, ownerID, status string) ([]models.Invoice, error) {
	keyCondition := "ownerId = :ownerId"
	values := map[string]types.AttributeValue{
		":ownerId": &types.AttributeValueMemberS{Value: ownerID},
	}
	if status != "" {
		keyCondition += " AND begins_with(statusCreatedAt, :status)"
		values[":status"] = &types.AttributeValueMemberS{Value: status + "#"}
	}

	items, err := is.Dynamo.QueryItemsWithOptions(ctx, is.Tables.Invoices, models.InvoiceOwnerStatusIndex,
		keyCondition, values, nil, 0, true)
	if err != nil {
		return nil, err
	}

	invoices := make([]models.Invoice, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// ListJobInvoices returns every invoice under one job.
func (is *InvoiceService) ListJobInvoices(ctx context.Context, ownerID, jobID string) ([]models.Invoice, error) {
	if _, err := is.Jobs.GetJob(ctx, ownerID, jobID); err != nil {
		return nil, err
	}

	items, err := is.Dynamo.QueryItems(ctx, is.Tables.Invoices,
		"jobId = :jobId",
		map[string]types.AttributeValue{
			":jobId": &types.AttributeValueMemberS{Value: jobID},
		}, nil, 0)
	if err != nil {
		return nil, err
	}

	invoices := make([]models.Invoice, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// SendInvoice transitions draft -> sent and emails the client. The invoice
// moves to sent regardless of the email outcome; the notification side-channel
// never blocks the business state.
func (is *InvoiceService) SendInvoice(ctx context.Context, ownerID, jobID, invoiceID string) (*SendResult, error) {
	invoice, err := is.GetInvoice(ctx, ownerID, jobID, invoiceID)
	if err != nil {
		return nil, err
	}

	switch invoice.Status {
	case models.InvoiceStatusDraft:
		invoice.Status = models.InvoiceStatusSent
		invoice.SentAt = utils.NowISO()
		invoice.StatusCreatedAt = statusSortKey(models.InvoiceStatusSent, invoice.CreatedAt)
		invoice.UpdatedAt = invoice.SentAt
		if err := is.Dynamo.PutItem(ctx, is.Tables.Invoices, *invoice); err != nil {
			return nil, err
		}
	case models.InvoiceStatusSent, models.InvoiceStatusViewed:
		// re-send allowed
	default:
		return nil, errConflict("Invoice has already been paid")
	}

	result := &SendResult{Invoice: invoice}
	if is.Email == nil || invoice.ClientEmail == "" {
		result.EmailReason = "no client email on file"
		return result, nil
	}

	link := is.AppURL + "/pay/" + invoice.InvoiceID + "?jobId=" + invoice.JobID
	if err := is.Email.SendInvoice(ctx, invoice, link); err != nil {
		log.Printf("Invoice %s email failed: %v", invoice.InvoiceID, err)
		result.EmailReason = "email delivery failed"
		return result, nil
	}
	result.EmailSent = true
	return result, nil
}

// PayInvoice marks the invoice paid and cascades the parent job to paid.
// Re-paying a paid invoice is a no-op.
func (is *InvoiceService) PayInvoice(ctx context.Context, ownerID, jobID, invoiceID string) (*models.Invoice, error) {
	invoice, err := is.GetInvoice(ctx, ownerID, jobID, invoiceID)
	if err != nil {
		return nil, err
	}
	return is.markPaid(ctx, invoice)
}

// MarkPaidFromWebhook is the payment-completed callback path; it carries no
// tenant identity, so the invoice is addressed by its table key alone.
func (is *InvoiceService) MarkPaidFromWebhook(ctx context.Context, jobID, invoiceID string) (*models.Invoice, error) {
	invoice, err := is.getByKey(ctx, jobID, invoiceID)
	if err != nil {
		return nil, err
	}
	return is.markPaid(ctx, invoice)
}

func (is *InvoiceService) markPaid(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	// Webhook deliveries retry; keep the first paidAt and do not re-sync.
	if invoice.Status == models.InvoiceStatusPaid {
		return invoice, nil
	}

	now := utils.NowISO()
	invoice.Status = models.InvoiceStatusPaid
	invoice.PaidAt = now
	invoice.StatusCreatedAt = statusSortKey(models.InvoiceStatusPaid, invoice.CreatedAt)
	invoice.UpdatedAt = now

	if err := is.Dynamo.PutItem(ctx, is.Tables.Invoices, *invoice); err != nil {
		return nil, err
	}

	// The only path that sets a job to paid.
	if err := is.Jobs.MarkJobPaid(ctx, invoice.OwnerID, invoice.JobID); err != nil {
		log.Printf("Invoice %s paid but job %s cascade failed: %v", invoice.InvoiceID, invoice.JobID, err)
		return nil, err
	}

	if is.Accounting != nil {
		if err := is.Accounting.SyncPaidInvoice(ctx, invoice); err != nil {
			log.Printf("Invoice %s accounting sync failed: %v", invoice.InvoiceID, err)
		}
	}

	if is.Notifications != nil {
		is.Notifications.Notify(ctx, invoice.OwnerID, "invoice_paid",
			"Invoice paid",
			"Invoice for $"+utils.FormatAmount(invoice.Amount)+" was paid")
	}
	return invoice, nil
}

// PublicInvoice returns the payment-page view of an invoice; a first read of
// a sent invoice flips it to viewed under a status precondition.
func (is *InvoiceService) PublicInvoice(ctx context.Context, jobID, invoiceID string) (*models.Invoice, error) {
	invoice, err := is.getByKey(ctx, jobID, invoiceID)
	if err != nil {
		return nil, err
	}

	if invoice.Status == models.InvoiceStatusSent {
		now := utils.NowISO()
		_, err := is.Dynamo.UpdateItemConditional(ctx, is.Tables.Invoices,
			"SET #status = :viewed, viewedAt = :now, statusCreatedAt = :sca",
			invoiceKey(jobID, invoiceID),
			map[string]types.AttributeValue{
				":viewed": &types.AttributeValueMemberS{Value: models.InvoiceStatusViewed},
				":now":    &types.AttributeValueMemberS{Value: now},
				":sca":    &types.AttributeValueMemberS{Value: statusSortKey(models.InvoiceStatusViewed, invoice.CreatedAt)},
				":sent":   &types.AttributeValueMemberS{Value: models.InvoiceStatusSent},
			},
			map[string]string{"#status": "status"},
			"#status = :sent")
		if err != nil && !IsConditionalCheckFailed(err) {
			return nil, err
		}
		if err == nil {
			invoice.Status = models.InvoiceStatusViewed
			invoice.ViewedAt = now
		}
	}
	return invoice, nil
}

// RecordCheckoutSession remembers the Stripe session opened for an invoice
// so a later webhook can be correlated with it.
func (is *InvoiceService) RecordCheckoutSession(ctx context.Context, jobID, invoiceID, sessionID string) error {
	_, err := is.Dynamo.UpdateItem(ctx, is.Tables.Invoices,
		"SET checkoutSessionId = :session",
		invoiceKey(jobID, invoiceID),
		map[string]types.AttributeValue{
			":session": &types.AttributeValueMemberS{Value: sessionID},
		}, nil)
	return err
}

// NextReminderType picks the reminder tier owed to a sent invoice, or ""
// when none is due. Each tier is sent at most once; lastSent is the debounce.
func NextReminderType(daysSinceSent int, lastSent string) string {
	tier := ""
	switch {
	case daysSinceSent >= 30:
		tier = models.ReminderTypeOverdue
	case daysSinceSent >= 14:
		tier = models.ReminderTypeFollowup
	case daysSinceSent >= 7:
		tier = models.ReminderTypeFriendly
	}
	if tier == "" || reminderRank(tier) <= reminderRank(lastSent) {
		return ""
	}
	return tier
}

func reminderRank(t string) int {
	switch t {
	case models.ReminderTypeFriendly:
		return 1
	case models.ReminderTypeFollowup:
		return 2
	case models.ReminderTypeOverdue:
		return 3
	}
	return 0
}

// RecordReminder stamps the debounce fields after a reminder went out.
func (is *InvoiceService) RecordReminder(ctx context.Context, invoice *models.Invoice, reminderType string) error {
	_, err := is.Dynamo.UpdateItem(ctx, is.Tables.Invoices,
		"SET lastReminderType = :type, lastReminderAt = :now",
		invoiceKey(invoice.JobID, invoice.InvoiceID),
		map[string]types.AttributeValue{
			":type": &types.AttributeValueMemberS{Value: reminderType},
			":now":  &types.AttributeValueMemberS{Value: utils.NowISO()},
		}, nil)
	return err
}
