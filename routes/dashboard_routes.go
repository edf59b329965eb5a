package routes

import (
	"subtrack_server/controllers"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// RegisterDashboardRoutes sets up the dashboard and report routes under /api
func RegisterDashboardRoutes(r *mux.Router, auth mux.MiddlewareFunc, dashboardService *services.DashboardService, reportService *services.ReportService, subscriptionService *services.SubscriptionService) {
	controller := controllers.NewDashboardController(dashboardService, reportService, subscriptionService)

	dashboardRouter := r.PathPrefix("/api").Subrouter()
	dashboardRouter.Use(auth)

	dashboardRouter.HandleFunc("/dashboard", controller.GetDashboard).Methods("GET")
	dashboardRouter.HandleFunc("/reports", controller.GetReport).Methods("GET")
}
