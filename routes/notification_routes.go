package routes

import (
	"subtrack_server/controllers"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// RegisterNotificationRoutes sets up routes for the notification feed under /api/notifications
func RegisterNotificationRoutes(r *mux.Router, auth mux.MiddlewareFunc, notificationService *services.NotificationService) {
	controller := controllers.NewNotificationController(notificationService)

	// Create a subrouter for /api/notifications
	notificationRouter := r.PathPrefix("/api/notifications").Subrouter()
	notificationRouter.Use(auth)

	notificationRouter.HandleFunc("", controller.ListNotifications).Methods("GET")
	notificationRouter.HandleFunc("/read-all", controller.MarkAllRead).Methods("POST")
	notificationRouter.HandleFunc("/{notifId}/read", controller.MarkRead).Methods("POST")
}
