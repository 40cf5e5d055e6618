package utils

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Message string `json:"message"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	if code == http.StatusNoContent {
		w.WriteHeader(code)
		return
	}
	RespondWithJSON(w, code, Response{Message: message})
}
