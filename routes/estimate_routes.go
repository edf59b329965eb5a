package routes

import (
	"subtrack_server/controllers"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// RegisterEstimateRoutes sets up routes for estimates under /api/estimates
func RegisterEstimateRoutes(r *mux.Router, auth mux.MiddlewareFunc, estimateService *services.EstimateService, jobService *services.JobService) {
	controller := controllers.NewEstimateController(estimateService, jobService)

	// Create a subrouter for /api/estimates
	estimateRouter := r.PathPrefix("/api/estimates").Subrouter()
	estimateRouter.Use(auth)

	estimateRouter.HandleFunc("", controller.CreateEstimate).Methods("POST")
	estimateRouter.HandleFunc("", controller.ListEstimates).Methods("GET")
	estimateRouter.HandleFunc("/{estimateId}", controller.GetEstimate).Methods("GET")
	estimateRouter.HandleFunc("/{estimateId}", controller.UpdateEstimate).Methods("PUT")
	estimateRouter.HandleFunc("/{estimateId}", controller.DeleteEstimate).Methods("DELETE")
	estimateRouter.HandleFunc("/{estimateId}/send", controller.SendEstimate).Methods("POST")
	estimateRouter.HandleFunc("/{estimateId}/convert", controller.ConvertEstimate).Methods("POST")
}
