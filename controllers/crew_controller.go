package controllers

import (
	"net/http"

	"subtrack_server/middleware"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// CrewController handles crew member management.
type CrewController struct {
	CrewService *services.CrewService
}

// NewCrewController creates a new instance of CrewController.
func NewCrewController(crewService *services.CrewService) *CrewController {
	return &CrewController{CrewService: crewService}
}

func (c *CrewController) CreateCrewMember(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	var input services.CrewInput
	if err := decodeAndValidate(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := c.CrewService.CreateCrewMember(r.Context(), ownerID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, member)
}

func (c *CrewController) ListCrewMembers(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	members, err := c.CrewService.ListCrewMembers(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, members)
}

func (c *CrewController) GetCrewMember(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	memberID := mux.Vars(r)["memberId"]

	member, err := c.CrewService.GetCrewMember(r.Context(), ownerID, memberID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

func (c *CrewController) UpdateCrewMember(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	memberID := mux.Vars(r)["memberId"]

	var payload struct {
		services.CrewInput
		Status string `json:"status"`
	}
	if err := decodeAndValidate(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := c.CrewService.UpdateCrewMember(r.Context(), ownerID, memberID, payload.CrewInput, payload.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

func (c *CrewController) DeleteCrewMember(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	memberID := mux.Vars(r)["memberId"]

	if err := c.CrewService.DeleteCrewMember(r.Context(), ownerID, memberID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Crew member deleted"})
}
