package controllers

import (
	"net/http"

	"subtrack_server/middleware"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// JobController handles requests related to jobs.
type JobController struct {
	JobService *services.JobService
}

// NewJobController creates a new instance of JobController.
func NewJobController(jobService *services.JobService) *JobController {
	return &JobController{JobService: jobService}
}

func (c *JobController) CreateJob(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	var input services.JobInput
	if err := decodeAndValidate(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := c.JobService.CreateJob(r.Context(), ownerID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, job)
}

func (c *JobController) ListJobs(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	status := r.URL.Query().Get("status")

	jobs, err := c.JobService.ListJobs(r.Context(), ownerID, status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, jobs)
}

func (c *JobController) GetJob(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	jobID := mux.Vars(r)["jobId"]

	job, err := c.JobService.GetJob(r.Context(), ownerID, jobID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (c *JobController) UpdateJob(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	jobID := mux.Vars(r)["jobId"]

	var update services.JobUpdate
	if err := decodeAndValidate(r, &update); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := c.JobService.UpdateJob(r.Context(), ownerID, jobID, update)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (c *JobController) DeleteJob(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	jobID := mux.Vars(r)["jobId"]

	if err := c.JobService.DeleteJob(r.Context(), ownerID, jobID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Job deleted"})
}
