package routes

import (
	"subtrack_server/controllers"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// RegisterInvoiceRoutes sets up invoice routes. The owner-wide list lives
// under /api/invoices; everything else is keyed by job.
func RegisterInvoiceRoutes(r *mux.Router, auth mux.MiddlewareFunc, invoiceService *services.InvoiceService) {
	controller := controllers.NewInvoiceController(invoiceService)

	// Create a subrouter for /api/invoices
	invoiceRouter := r.PathPrefix("/api/invoices").Subrouter()
	invoiceRouter.Use(auth)
	invoiceRouter.HandleFunc("", controller.ListInvoices).Methods("GET")

	// Per-job invoice routes under /api/jobs/{jobId}/invoices
	jobInvoiceRouter := r.PathPrefix("/api/jobs/{jobId}/invoices").Subrouter()
	jobInvoiceRouter.Use(auth)
	jobInvoiceRouter.HandleFunc("", controller.CreateInvoice).Methods("POST")
	jobInvoiceRouter.HandleFunc("", controller.ListJobInvoices).Methods("GET")
	jobInvoiceRouter.HandleFunc("/{invoiceId}", controller.GetInvoice).Methods("GET")
	jobInvoiceRouter.HandleFunc("/{invoiceId}/send", controller.SendInvoice).Methods("POST")
	jobInvoiceRouter.HandleFunc("/{invoiceId}/pay", controller.PayInvoice).Methods("PUT")
}
