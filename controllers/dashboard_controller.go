package controllers

import (
	"net/http"

	"subtrack_server/middleware"
	"subtrack_server/services"
)

// DashboardController handles the dashboard and the full report. The report
// is a plan-gated feature; the dashboard is not.
type DashboardController struct {
	DashboardService    *services.DashboardService
	ReportService       *services.ReportService
	SubscriptionService *services.SubscriptionService
}

// NewDashboardController creates a new instance of DashboardController.
func NewDashboardController(dashboardService *services.DashboardService, reportService *services.ReportService, subscriptionService *services.SubscriptionService) *DashboardController {
	return &DashboardController{
		DashboardService:    dashboardService,
		ReportService:       reportService,
		SubscriptionService: subscriptionService,
	}
}

func (c *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	data, err := c.DashboardService.GetDashboard(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, data)
}

func (c *DashboardController) GetReport(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	allowed, err := c.SubscriptionService.HasFeature(r.Context(), ownerID, "fullReports")
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !allowed {
		respondError(w, http.StatusForbidden, "Full reports require a Pro plan. Upgrade to unlock them.")
		return
	}

	report, err := c.ReportService.GetReport(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
