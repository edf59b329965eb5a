package routes

import (
	"subtrack_server/controllers"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// RegisterSubscriptionRoutes sets up plan and profile routes under /api/subscription
func RegisterSubscriptionRoutes(r *mux.Router, auth mux.MiddlewareFunc, subscriptionService *services.SubscriptionService, accountingService *services.AccountingService) {
	controller := controllers.NewSubscriptionController(subscriptionService, accountingService)

	// Create a subrouter for /api/subscription
	subscriptionRouter := r.PathPrefix("/api/subscription").Subrouter()
	subscriptionRouter.Use(auth)

	subscriptionRouter.HandleFunc("/status", controller.GetStatus).Methods("GET")
	subscriptionRouter.HandleFunc("/check", controller.CheckAction).Methods("POST")
	subscriptionRouter.HandleFunc("/profile", controller.GetProfile).Methods("GET")
	subscriptionRouter.HandleFunc("/profile", controller.UpdateProfile).Methods("PUT")
	subscriptionRouter.HandleFunc("/accounting/connect", controller.ConnectAccounting).Methods("POST")
	subscriptionRouter.HandleFunc("/accounting/status", controller.AccountingStatus).Methods("GET")
}
