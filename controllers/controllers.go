package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"subtrack_server/services"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// respondJSON writes the success envelope.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// respondError writes the failure envelope with a short human-readable
// message; never a stack trace or internal identifier.
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// respondServiceError maps the service error taxonomy onto status codes.
func respondServiceError(w http.ResponseWriter, err error) {
	var validation *services.ValidationError
	var notFound *services.NotFoundError
	var conflict *services.ConflictError
	var unauthorized *services.UnauthorizedError
	var limit *services.LimitError

	switch {
	case errors.As(err, &validation):
		respondError(w, http.StatusBadRequest, validation.Msg)
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, notFound.Msg)
	case errors.As(err, &conflict):
		respondError(w, http.StatusBadRequest, conflict.Msg)
	case errors.As(err, &unauthorized):
		respondError(w, http.StatusUnauthorized, unauthorized.Msg)
	case errors.As(err, &limit):
		respondError(w, http.StatusBadRequest, limit.Msg)
	default:
		log.Printf("Internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
	}
}

// decodeAndValidate decodes the JSON body into v and runs struct validation.
func decodeAndValidate(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("Invalid request payload")
	}
	if err := validate.Struct(v); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			return errors.New("Invalid or missing field: " + invalid[0].Field())
		}
		return errors.New("Invalid request payload")
	}
	return nil
}
