package routes

import (
	"subtrack_server/controllers"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// RegisterAssignmentRoutes sets up scheduling routes under /api/assignments
func RegisterAssignmentRoutes(r *mux.Router, auth mux.MiddlewareFunc, assignmentService *services.AssignmentService) {
	controller := controllers.NewAssignmentController(assignmentService)

	// Create a subrouter for /api/assignments
	assignmentRouter := r.PathPrefix("/api/assignments").Subrouter()
	assignmentRouter.Use(auth)

	assignmentRouter.HandleFunc("", controller.CreateAssignment).Methods("POST")
	assignmentRouter.HandleFunc("", controller.ListAssignments).Methods("GET")
	assignmentRouter.HandleFunc("/notify", controller.NotifyCrew).Methods("POST")
	assignmentRouter.HandleFunc("/{date}/move", controller.MoveAssignment).Methods("POST")
	assignmentRouter.HandleFunc("/{date}/{memberId}", controller.DeleteAssignment).Methods("DELETE")
}
