package controllers

import (
	"net/http"

	"subtrack_server/middleware"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// EstimateController handles the authenticated estimate surface. The public
// token endpoints live in PublicController.
type EstimateController struct {
	EstimateService *services.EstimateService
	JobService      *services.JobService
}

// NewEstimateController creates a new instance of EstimateController.
func NewEstimateController(estimateService *services.EstimateService, jobService *services.JobService) *EstimateController {
	return &EstimateController{EstimateService: estimateService, JobService: jobService}
}

func (c *EstimateController) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	var input services.EstimateInput
	if err := decodeAndValidate(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	estimate, err := c.EstimateService.CreateEstimate(r.Context(), ownerID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, estimate)
}

func (c *EstimateController) ListEstimates(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	estimates, err := c.EstimateService.ListEstimates(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, estimates)
}

func (c *EstimateController) GetEstimate(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	estimateID := mux.Vars(r)["estimateId"]

	estimate, err := c.EstimateService.GetEstimate(r.Context(), ownerID, estimateID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, estimate)
}

func (c *EstimateController) UpdateEstimate(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	estimateID := mux.Vars(r)["estimateId"]

	var input services.EstimateInput
	if err := decodeAndValidate(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	estimate, err := c.EstimateService.UpdateEstimate(r.Context(), ownerID, estimateID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, estimate)
}

func (c *EstimateController) DeleteEstimate(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	estimateID := mux.Vars(r)["estimateId"]

	if err := c.EstimateService.DeleteEstimate(r.Context(), ownerID, estimateID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Estimate deleted"})
}

func (c *EstimateController) SendEstimate(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	estimateID := mux.Vars(r)["estimateId"]

	estimate, emailed, err := c.EstimateService.SendEstimate(r.Context(), ownerID, estimateID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"estimate":  estimate,
		"emailSent": emailed,
	})
}

func (c *EstimateController) ConvertEstimate(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	estimateID := mux.Vars(r)["estimateId"]

	job, err := c.EstimateService.ConvertToJob(r.Context(), ownerID, estimateID, c.JobService)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, job)
}
