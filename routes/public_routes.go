package routes

import (
	"subtrack_server/controllers"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// RegisterPublicRoutes sets up the unauthenticated share-token and payment
// routes. These are mounted at the root, outside the auth middleware.
func RegisterPublicRoutes(
	r *mux.Router,
	estimateService *services.EstimateService,
	assignmentService *services.AssignmentService,
	invoiceService *services.InvoiceService,
	paymentService *services.PaymentService,
	subscriptionService *services.SubscriptionService,
) {
	controller := controllers.NewPublicController(estimateService, assignmentService, invoiceService, paymentService, subscriptionService)

	r.HandleFunc("/estimate-view/{token}", controller.ViewEstimate).Methods("GET")
	r.HandleFunc("/estimate-view/{token}/approve", controller.ApproveEstimate).Methods("POST")
	r.HandleFunc("/crew-view/{token}", controller.CrewDayView).Methods("GET")
	r.HandleFunc("/crew-view/{token}/clock", controller.CrewClock).Methods("POST")
	r.HandleFunc("/pay/{invoiceId}", controller.ViewInvoice).Methods("GET")
	r.HandleFunc("/pay/{invoiceId}", controller.CreateCheckout).Methods("POST")
	r.HandleFunc("/stripe-webhook", controller.StripeWebhook).Methods("POST")
}
