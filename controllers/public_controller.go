package controllers

import (
	"io"
	"log"
	"net/http"

	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// PublicController serves the unauthenticated share-token and payment
// surfaces. Nothing here reads the owner from the request; identity comes
// from the token or the invoice row itself.
type PublicController struct {
	EstimateService     *services.EstimateService
	AssignmentService   *services.AssignmentService
	InvoiceService      *services.InvoiceService
	PaymentService      *services.PaymentService
	SubscriptionService *services.SubscriptionService
}

// NewPublicController creates a new instance of PublicController.
func NewPublicController(
	estimateService *services.EstimateService,
	assignmentService *services.AssignmentService,
	invoiceService *services.InvoiceService,
	paymentService *services.PaymentService,
	subscriptionService *services.SubscriptionService,
) *PublicController {
	return &PublicController{
		EstimateService:     estimateService,
		AssignmentService:   assignmentService,
		InvoiceService:      invoiceService,
		PaymentService:      paymentService,
		SubscriptionService: subscriptionService,
	}
}

// ViewEstimate renders an estimate for its client. A first view of a sent
// estimate is recorded.
func (c *PublicController) ViewEstimate(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	estimate, err := c.EstimateService.PublicView(r.Context(), token)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, estimate)
}

// ApproveEstimate records the client's approval. Approving twice is not an
// error; the response says the estimate was already approved.
func (c *PublicController) ApproveEstimate(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var payload struct {
		Signature string `json:"signature"`
	}
	if err := decodeAndValidate(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.EstimateService.PublicApprove(r.Context(), token, payload.Signature)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// CrewDayView shows a crew member their assignment for today.
func (c *PublicController) CrewDayView(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	view, err := c.AssignmentService.DayView(r.Context(), token)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// CrewClock handles clock in and clock out against today's assignment.
func (c *PublicController) CrewClock(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var payload struct {
		Action string  `json:"action" validate:"required,oneof=clockIn clockOut"`
		Lat    float64 `json:"lat"`
		Lng    float64 `json:"lng"`
	}
	if err := decodeAndValidate(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var assignment interface{}
	var err error
	if payload.Action == "clockIn" {
		assignment, err = c.AssignmentService.ClockIn(r.Context(), token, payload.Lat, payload.Lng)
	} else {
		assignment, err = c.AssignmentService.ClockOut(r.Context(), token, payload.Lat, payload.Lng)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, assignment)
}

// ViewInvoice renders the public payment page for an invoice. The jobId query
// parameter is required because invoices are keyed by job.
func (c *PublicController) ViewInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceID := mux.Vars(r)["invoiceId"]
	jobID := r.URL.Query().Get("jobId")
	if jobID == "" {
		respondError(w, http.StatusBadRequest, "Missing jobId query parameter")
		return
	}

	invoice, err := c.InvoiceService.PublicInvoice(r.Context(), jobID, invoiceID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	payable, err := c.SubscriptionService.HasFeature(r.Context(), invoice.OwnerID, "onlinePayments")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"invoice":        invoice,
		"onlinePayments": payable,
	})
}

// CreateCheckout opens a Stripe Checkout session for an invoice and returns
// the redirect URL. Online payments are a plan feature of the invoice owner.
func (c *PublicController) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	invoiceID := mux.Vars(r)["invoiceId"]
	jobID := r.URL.Query().Get("jobId")
	if jobID == "" {
		respondError(w, http.StatusBadRequest, "Missing jobId query parameter")
		return
	}

	invoice, err := c.InvoiceService.PublicInvoice(r.Context(), jobID, invoiceID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	payable, err := c.SubscriptionService.HasFeature(r.Context(), invoice.OwnerID, "onlinePayments")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !payable {
		respondError(w, http.StatusForbidden, "Online payments are not enabled for this invoice")
		return
	}

	sessionID, url, err := c.PaymentService.CreateCheckoutSession(invoice)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if err := c.InvoiceService.RecordCheckoutSession(r.Context(), jobID, invoiceID, sessionID); err != nil {
		log.Printf("Failed to record checkout session %s on invoice %s: %v", sessionID, invoiceID, err)
	}
	respondJSON(w, http.StatusOK, map[string]string{"checkoutUrl": url})
}

// StripeWebhook marks an invoice paid when its checkout session completes.
// Marking an already paid invoice paid again is a no-op, so Stripe retries
// are safe.
func (c *PublicController) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 65536))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read webhook payload")
		return
	}

	jobID, invoiceID, completed, err := c.PaymentService.ParseWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		log.Printf("Stripe webhook rejected: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid webhook")
		return
	}
	if !completed {
		respondJSON(w, http.StatusOK, map[string]string{"message": "Event ignored"})
		return
	}

	if _, err := c.InvoiceService.MarkPaidFromWebhook(r.Context(), jobID, invoiceID); err != nil {
		log.Printf("Failed to mark invoice %s paid from webhook: %v", invoiceID, err)
		respondError(w, http.StatusInternalServerError, "Failed to record payment")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Payment recorded"})
}
