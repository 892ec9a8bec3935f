package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"armoire/models"
)

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"message": msg})
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondWithDomainError maps domain errors onto HTTP statuses. Unknown
// errors become a generic 500 with no detail leaked to the client.
func RespondWithDomainError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidInput):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrEmptyCart):
		RespondWithError(w, http.StatusBadRequest, "Cart is empty")
	case errors.Is(err, models.ErrGateway):
		RespondWithError(w, http.StatusBadGateway, "Payment gateway error")
	default:
		RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}

type M map[string]interface{}
