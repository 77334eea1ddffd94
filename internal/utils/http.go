package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSON serializes v as JSON into w with the given HTTP status code.
// If serialization fails after the header has been written there is no
// way to change the status, so the error is reported via a plain 500 body
// only when nothing has been written yet.
func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	payload, err := json.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(payload)
}
