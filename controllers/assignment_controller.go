package controllers

import (
	"net/http"

	"subtrack_server/middleware"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// AssignmentController handles the authenticated scheduling surface; the
// public clock endpoints live in PublicController.
type AssignmentController struct {
	AssignmentService *services.AssignmentService
}

// NewAssignmentController creates a new instance of AssignmentController.
func NewAssignmentController(assignmentService *services.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

func (c *AssignmentController) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	var input services.AssignmentInput
	if err := decodeAndValidate(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	assignment, err := c.AssignmentService.CreateAssignment(r.Context(), ownerID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, assignment)
}

func (c *AssignmentController) ListAssignments(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	date := r.URL.Query().Get("date")

	assignments, err := c.AssignmentService.ListAssignments(r.Context(), ownerID, date)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, assignments)
}

// MoveAssignment relocates a member's assignment to a different date: the
// old row is deleted, the new one written.
func (c *AssignmentController) MoveAssignment(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	oldDate := mux.Vars(r)["date"]

	var input services.AssignmentInput
	if err := decodeAndValidate(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	assignment, err := c.AssignmentService.MoveAssignment(r.Context(), ownerID, oldDate, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, assignment)
}

func (c *AssignmentController) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	vars := mux.Vars(r)

	if err := c.AssignmentService.DeleteAssignment(r.Context(), ownerID, vars["date"], vars["memberId"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Assignment deleted"})
}

// NotifyCrew texts every member assigned on a date; the response carries one
// result row per recipient.
func (c *AssignmentController) NotifyCrew(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	var payload struct {
		Date string `json:"date" validate:"required"`
	}
	if err := decodeAndValidate(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := c.AssignmentService.NotifyCrew(r.Context(), ownerID, payload.Date)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, results)
}
