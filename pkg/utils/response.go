package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the single envelope every handler writes, success and failure
// alike. Callers never branch on transport-specific error shapes.
type Response struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, status int, message string, data interface{}) {
	write(w, Response{
		Success:    status >= 200 && status < 300,
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

func Error(w http.ResponseWriter, status int, message string) {
	write(w, Response{
		Success:    false,
		StatusCode: status,
		Message:    message,
	})
}

// ValidationError carries per-field messages so the console can render them
// inline next to the offending inputs.
func ValidationError(w http.ResponseWriter, fields map[string]string) {
	write(w, Response{
		Success:    false,
		StatusCode: http.StatusBadRequest,
		Message:    "Validation failed",
		Errors:     fields,
	})
}

func write(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	json.NewEncoder(w).Encode(resp)
}
