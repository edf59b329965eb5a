package routes

import (
	"subtrack_server/controllers"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// RegisterReminderRoutes sets up the manual reminder sweep trigger under /api/reminders
func RegisterReminderRoutes(r *mux.Router, auth mux.MiddlewareFunc, reminderService *services.ReminderService) {
	controller := controllers.NewReminderController(reminderService)

	reminderRouter := r.PathPrefix("/api/reminders").Subrouter()
	reminderRouter.Use(auth)

	reminderRouter.HandleFunc("/run", controller.RunSweep).Methods("POST")
}
