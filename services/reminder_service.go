package services

import (
	"context"
	"log"
	"time"

	"subtrack_server/config"
	"subtrack_server/models"
	"subtrack_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ReminderService is the periodic overdue-invoice sweep. It scans unpaid
// sent invoices, picks the tier owed at 7/14/30 days since send, and emails
// at most one reminder per tier. A viewed invoice still gets reminders.
type ReminderService struct {
	Dynamo   *DynamoService
	Tables   config.Tables
	Invoices *InvoiceService
	Gate     *SubscriptionService
	Email    *EmailService
	AppURL   string
}

// ReminderRunSummary reports one sweep.
type ReminderRunSummary struct {
	Scanned int `json:"scanned"`
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Run sweeps every unpaid sent invoice once. Per-invoice failures are
// logged and counted; the sweep never aborts early.
func (rs *ReminderService) Run(ctx context.Context) (*ReminderRunSummary, error) {
	var invoices []models.Invoice
	err := rs.Dynamo.ScanItems(ctx, rs.Tables.Invoices,
		"#status IN (:sent, :viewed)",
		map[string]types.AttributeValue{
			":sent":   &types.AttributeValueMemberS{Value: models.InvoiceStatusSent},
			":viewed": &types.AttributeValueMemberS{Value: models.InvoiceStatusViewed},
		},
		map[string]string{"#status": "status"},
		&invoices)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	summary := &ReminderRunSummary{Scanned: len(invoices)}

	for i := range invoices {
		invoice := &invoices[i]

		sentAt := utils.ParseISO(invoice.SentAt)
		if sentAt.IsZero() {
			summary.Skipped++
			continue
		}

		daysSinceSent := int(now.Sub(sentAt).Hours() / 24)
		reminderType := NextReminderType(daysSinceSent, invoice.LastReminderType)
		if reminderType == "" {
			summary.Skipped++
			continue
		}

		if rs.Gate != nil {
			allowed, err := rs.Gate.HasFeature(ctx, invoice.OwnerID, "reminders")
			if err != nil || !allowed {
				summary.Skipped++
				continue
			}
		}

		if rs.Email == nil || invoice.ClientEmail == "" {
			summary.Skipped++
			continue
		}

		link := rs.AppURL + "/pay/" + invoice.InvoiceID + "?jobId=" + invoice.JobID
		if err := rs.Email.SendReminder(ctx, invoice, reminderType, link); err != nil {
			log.Printf("Reminder for invoice %s failed: %v", invoice.InvoiceID, err)
			summary.Failed++
			continue
		}

		if err := rs.Invoices.RecordReminder(ctx, invoice, reminderType); err != nil {
			log.Printf("Failed to record reminder for invoice %s: %v", invoice.InvoiceID, err)
			summary.Failed++
			continue
		}
		summary.Sent++
	}
	return summary, nil
}
