package controllers

import (
	"net/http"

	"subtrack_server/middleware"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// NotificationController handles the notification feed.
type NotificationController struct {
	NotificationService *services.NotificationService
}

// NewNotificationController creates a new instance of NotificationController.
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

func (c *NotificationController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	notifications, err := c.NotificationService.ListNotifications(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}

func (c *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	notifID := mux.Vars(r)["notifId"]

	if err := c.NotificationService.MarkRead(r.Context(), ownerID, notifID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Notification marked read"})
}

func (c *NotificationController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	if err := c.NotificationService.MarkAllRead(r.Context(), ownerID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "All notifications marked read"})
}
