package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/ai-builder/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteSuccess writes the uniform success envelope {"success":true,"data":…}
// with the given status code.
func WriteSuccess(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteJSON(w, models.Response{Success: true, Data: data}, statusCode)
}

// WriteMessage writes a success envelope carrying only a human-readable
// message, used by endpoints with no payload (logout, delete).
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.Response{Success: true, Message: message}, statusCode)
}

// WriteError writes the uniform failure envelope. code may be empty; when
// set it carries a machine-readable denial reason such as
// "INSUFFICIENT_CREDITS".
func WriteError(w http.ResponseWriter, errMessage, code string, statusCode int) (int, error) {
	return WriteJSON(w, models.Response{Success: false, Error: errMessage, Code: code}, statusCode)
}
