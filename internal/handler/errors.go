package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeNotFound writes a 404 with the given message (e.g. "trip not found").
// The caller supplies the message because the handler is the layer that
// knows what was being looked up.
func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Error: ErrorDetail{Code: "not_found", Message: message},
	})
}

// writeValidation writes a 400 for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func writeValidation(w http.ResponseWriter, err error) {
	writeBadRequest(w, unwrapMessage(err))
}

// writeBadRequest writes a 400 for a request rejected before reaching the
// service layer (e.g. missing or malformed body, bad path parameter).
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message},
	})
}

// writeInternal writes a 500 with a generic message. The underlying error is
// logged by the request middleware, never leaked to the client.
func writeInternal(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{Code: "internal", Message: "internal server error"},
	})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: destination is required"
// → "destination is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	const marker = "validation error: "
	msg := err.Error()
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
