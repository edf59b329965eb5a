package controllers

import (
	"net/http"

	"subtrack_server/middleware"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// InvoiceController handles the authenticated invoice surface.
type InvoiceController struct {
	InvoiceService *services.InvoiceService
}

// NewInvoiceController creates a new instance of InvoiceController.
func NewInvoiceController(invoiceService *services.InvoiceService) *InvoiceController {
	return &InvoiceController{InvoiceService: invoiceService}
}

func (c *InvoiceController) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	jobID := mux.Vars(r)["jobId"]

	var input services.InvoiceInput
	if err := decodeAndValidate(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	invoice, err := c.InvoiceService.CreateInvoice(r.Context(), ownerID, jobID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, invoice)
}

func (c *InvoiceController) ListInvoices(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	status := r.URL.Query().Get("status")

	invoices, err := c.InvoiceService.ListInvoices(r.Context(), ownerID, status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, invoices)
}

func (c *InvoiceController) ListJobInvoices(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	jobID := mux.Vars(r)["jobId"]

	invoices, err := c.InvoiceService.ListJobInvoices(r.Context(), ownerID, jobID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, invoices)
}

func (c *InvoiceController) GetInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	vars := mux.Vars(r)

	invoice, err := c.InvoiceService.GetInvoice(r.Context(), ownerID, vars["jobId"], vars["invoiceId"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, invoice)
}

func (c *InvoiceController) SendInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	vars := mux.Vars(r)

	result, err := c.InvoiceService.SendInvoice(r.Context(), ownerID, vars["jobId"], vars["invoiceId"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (c *InvoiceController) PayInvoice(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	vars := mux.Vars(r)

	invoice, err := c.InvoiceService.PayInvoice(r.Context(), ownerID, vars["jobId"], vars["invoiceId"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, invoice)
}
