package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"subtrack_server/models"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
)

// PaymentService wraps Stripe Checkout. The webhook is the source of truth
// for completed payments; the checkout session only carries the invoice
// identity through metadata.
type PaymentService struct {
	WebhookSecret string
	AppURL        string
}

// NewPaymentService sets the Stripe API key once for the process.
func NewPaymentService(secretKey, webhookSecret, appURL string) *PaymentService {
	stripe.Key = secretKey
	return &PaymentService{WebhookSecret: webhookSecret, AppURL: appURL}
}

// amountToCents converts a dollar amount to Stripe's integer cents. Rounded,
// not truncated: float64(19.99)*100 is 1998.999..., and truncation would
// undercharge by a cent.
func amountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateCheckoutSession opens a Stripe Checkout session for an invoice and
// returns its id and redirect URL.
func (ps *PaymentService) CreateCheckoutSession(invoice *models.Invoice) (string, string, error) {
	if invoice.Status == models.InvoiceStatusPaid {
		return "", "", errConflict("Invoice has already been paid")
	}

	description := "Invoice"
	if invoice.ClientName != "" {
		description = "Invoice for " + invoice.ClientName
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
					UnitAmount: stripe.Int64(amountToCents(invoice.Amount)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(ps.AppURL + "/pay/" + invoice.InvoiceID + "?jobId=" + invoice.JobID + "&paid=1"),
		CancelURL:  stripe.String(ps.AppURL + "/pay/" + invoice.InvoiceID + "?jobId=" + invoice.JobID),
	}
	params.AddMetadata("invoiceId", invoice.InvoiceID)
	params.AddMetadata("jobId", invoice.JobID)

	s, err := session.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return s.ID, s.URL, nil
}

// ParseWebhook verifies the webhook signature and, for a completed checkout,
// returns the invoice identity from the session metadata.
func (ps *PaymentService) ParseWebhook(payload []byte, signature string) (jobID, invoiceID string, completed bool, err error) {
	event, err := webhook.ConstructEvent(payload, signature, ps.WebhookSecret)
	if err != nil {
		return "", "", false, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	if event.Type != "checkout.session.completed" {
		return "", "", false, nil
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return "", "", false, fmt.Errorf("failed to parse checkout session: %w", err)
	}

	jobID = s.Metadata["jobId"]
	invoiceID = s.Metadata["invoiceId"]
	if jobID == "" || invoiceID == "" {
		return "", "", false, errors.New("checkout session missing invoice metadata")
	}
	return jobID, invoiceID, true, nil
}
