package routes

import (
	"subtrack_server/controllers"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// RegisterCrewRoutes sets up routes for crew members under /api/crew
func RegisterCrewRoutes(r *mux.Router, auth mux.MiddlewareFunc, crewService *services.CrewService) {
	controller := controllers.NewCrewController(crewService)

	// Create a subrouter for /api/crew
	crewRouter := r.PathPrefix("/api/crew").Subrouter()
	crewRouter.Use(auth)

	crewRouter.HandleFunc("", controller.CreateCrewMember).Methods("POST")
	crewRouter.HandleFunc("", controller.ListCrewMembers).Methods("GET")
	crewRouter.HandleFunc("/{memberId}", controller.GetCrewMember).Methods("GET")
	crewRouter.HandleFunc("/{memberId}", controller.UpdateCrewMember).Methods("PUT")
	crewRouter.HandleFunc("/{memberId}", controller.DeleteCrewMember).Methods("DELETE")
}
