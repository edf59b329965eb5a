package controllers

import (
	"net/http"

	"subtrack_server/services"
)

// ReminderController exposes a manual trigger for the reminder sweep that
// cron runs daily.
type ReminderController struct {
	ReminderService *services.ReminderService
}

// NewReminderController creates a new instance of ReminderController.
func NewReminderController(reminderService *services.ReminderService) *ReminderController {
	return &ReminderController{ReminderService: reminderService}
}

func (c *ReminderController) RunSweep(w http.ResponseWriter, r *http.Request) {
	summary, err := c.ReminderService.Run(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
