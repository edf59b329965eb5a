package controllers

import (
	"errors"
	"net/http"

	"subtrack_server/middleware"
	"subtrack_server/services"
)

// SubscriptionController handles plan status, the business profile, and the
// accounting connection.
type SubscriptionController struct {
	SubscriptionService *services.SubscriptionService
	AccountingService   *services.AccountingService
}

// NewSubscriptionController creates a new instance of SubscriptionController.
func NewSubscriptionController(subscriptionService *services.SubscriptionService, accountingService *services.AccountingService) *SubscriptionController {
	return &SubscriptionController{SubscriptionService: subscriptionService, AccountingService: accountingService}
}

// GetStatus returns the owner's plan and live usage counts.
func (c *SubscriptionController) GetStatus(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	status, err := c.SubscriptionService.Status(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// CheckAction pre-checks a create against the plan caps so the client can
// show the upgrade prompt before the form, not after.
func (c *SubscriptionController) CheckAction(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	var payload struct {
		Action string `json:"action" validate:"required,oneof=createJob createInvoice createCrew"`
	}
	if err := decodeAndValidate(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var checkErr error
	switch payload.Action {
	case "createJob":
		checkErr = c.SubscriptionService.CheckJobCreate(r.Context(), ownerID)
	case "createInvoice":
		checkErr = c.SubscriptionService.CheckInvoiceCreate(r.Context(), ownerID)
	case "createCrew":
		checkErr = c.SubscriptionService.CheckCrewCreate(r.Context(), ownerID)
	}

	if checkErr != nil {
		var limitErr *services.LimitError
		if errors.As(checkErr, &limitErr) {
			respondJSON(w, http.StatusOK, map[string]interface{}{
				"allowed": false,
				"reason":  limitErr.Msg,
			})
			return
		}
		respondServiceError(w, checkErr)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"allowed": true})
}

func (c *SubscriptionController) GetProfile(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	profile, err := c.SubscriptionService.GetProfile(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

func (c *SubscriptionController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	var payload struct {
		BusinessName string `json:"businessName"`
		ContactName  string `json:"contactName"`
		Email        string `json:"email"`
		Phone        string `json:"phone"`
	}
	if err := decodeAndValidate(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := c.SubscriptionService.UpdateProfile(r.Context(), ownerID,
		payload.BusinessName, payload.ContactName, payload.Email, payload.Phone)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// ConnectAccounting exchanges the OAuth authorization code from the provider
// callback and stores the resulting tokens.
func (c *SubscriptionController) ConnectAccounting(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	var payload struct {
		Code    string `json:"code" validate:"required"`
		RealmID string `json:"realmId"`
	}
	if err := decodeAndValidate(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := c.AccountingService.Connect(r.Context(), ownerID, payload.Code, payload.RealmID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Accounting provider connected"})
}

// AccountingStatus reports whether the owner has a connected provider.
func (c *SubscriptionController) AccountingStatus(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	connected, err := c.AccountingService.Connected(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"connected": connected})
}
