package hookrelay

import (
	"encoding/json"
	"net/http"
)

// AcceptedResponse is the JSON body returned when a delivery is accepted.
type AcceptedResponse struct {
	Accepted  bool   `json:"accepted"`
	Duplicate bool   `json:"duplicate,omitempty"`
	EventID   string `json:"eventId"`
}

// ErrorResponse is the JSON body returned when a delivery is rejected or the
// callback fails.
type ErrorResponse struct {
	Error   string `json:"error"`
	EventID string `json:"eventId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
