package services

import (
	"context"
	"fmt"
	"log"

	"subtrack_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService sends transactional mail through SES. Callers treat every send
// as best-effort; a delivery failure never fails the business transition that
// triggered it.
type EmailService struct {
	Client *sesv2.Client
	Sender string
}

// InitializeSESClient initializes the SES client for a region.
func InitializeSESClient(region string) *sesv2.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return sesv2.NewFromConfig(cfg)
}

func (es *EmailService) send(ctx context.Context, to, subject, body string) error {
	_, err := es.Client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(es.Sender),
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// SendEstimate emails the client their estimate link.
func (es *EmailService) SendEstimate(ctx context.Context, estimate *models.Estimate, link string) error {
	subject := fmt.Sprintf("Estimate from your contractor: $%.2f", estimate.Total)
	body := fmt.Sprintf("Hi %s,\n\nYour estimate is ready. Review and approve it here:\n%s\n\nTotal: $%.2f\n",
		estimate.ClientName, link, estimate.Total)
	return es.send(ctx, estimate.ClientEmail, subject, body)
}

// SendInvoice emails the client their invoice payment link.
func (es *EmailService) SendInvoice(ctx context.Context, invoice *models.Invoice, link string) error {
	subject := fmt.Sprintf("Invoice for $%.2f, due %s", invoice.Amount, invoice.DueDate)
	body := fmt.Sprintf("Hi %s,\n\nYou have a new invoice for $%.2f, due %s.\nView and pay here:\n%s\n",
		invoice.ClientName, invoice.Amount, invoice.DueDate, link)
	return es.send(ctx, invoice.ClientEmail, subject, body)
}

// SendReminder emails a payment reminder at the given tier.
func (es *EmailService) SendReminder(ctx context.Context, invoice *models.Invoice, reminderType, link string) error {
	var subject, opening string
	switch reminderType {
	case models.ReminderTypeOverdue:
		subject = fmt.Sprintf("Overdue: invoice for $%.2f", invoice.Amount)
		opening = "This invoice is now overdue."
	case models.ReminderTypeFollowup:
		subject = fmt.Sprintf("Following up: invoice for $%.2f", invoice.Amount)
		opening = "Just following up on this invoice."
	default:
		subject = fmt.Sprintf("Reminder: invoice for $%.2f", invoice.Amount)
		opening = "A friendly reminder about this invoice."
	}
	body := fmt.Sprintf("Hi %s,\n\n%s It was due %s.\nView and pay here:\n%s\n",
		invoice.ClientName, opening, invoice.DueDate, link)
	return es.send(ctx, invoice.ClientEmail, subject, body)
}
