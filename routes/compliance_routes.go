package routes

import (
	"subtrack_server/controllers"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// RegisterComplianceRoutes sets up routes for compliance documents under /api/compliance
func RegisterComplianceRoutes(r *mux.Router, auth mux.MiddlewareFunc, complianceService *services.ComplianceService, s3Service *services.S3Service) {
	controller := controllers.NewComplianceController(complianceService, s3Service)

	// Create a subrouter for /api/compliance
	complianceRouter := r.PathPrefix("/api/compliance").Subrouter()
	complianceRouter.Use(auth)

	complianceRouter.HandleFunc("", controller.CreateDocument).Methods("POST")
	complianceRouter.HandleFunc("", controller.ListDocuments).Methods("GET")
	complianceRouter.HandleFunc("/upload-url", controller.GetUploadURL).Methods("POST")
	complianceRouter.HandleFunc("/{docId}", controller.GetDocument).Methods("GET")
	complianceRouter.HandleFunc("/{docId}", controller.UpdateDocument).Methods("PUT")
	complianceRouter.HandleFunc("/{docId}", controller.DeleteDocument).Methods("DELETE")
}
