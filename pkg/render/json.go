package render

import (
	"encoding/json"
	"net/http"
)

// ErrorDetail is the error payload of every failing endpoint: a single
// human-readable detail string, no structured codes.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// JSON writes the payload with the given status code.
func JSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// Error writes the standard error shape.
func Error(w http.ResponseWriter, status int, detail string) {
	_ = JSON(w, status, ErrorDetail{Detail: detail})
}
