package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/ai-builder/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteSuccess_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteSuccess(w, map[string]string{"id": "p-1"}, http.StatusCreated)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var envelope models.Response
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("expected envelope JSON, got: %v", err)
	}
	if !envelope.Success {
		t.Error("expected success=true")
	}
	if envelope.Data == nil {
		t.Error("expected data field to be populated")
	}
}

func TestWriteMessage_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteMessage(w, "logged out", http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var envelope models.Response
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("expected envelope JSON, got: %v", err)
	}
	if !envelope.Success {
		t.Error("expected success=true")
	}
	if envelope.Message != "logged out" {
		t.Errorf("expected message 'logged out', got '%s'", envelope.Message)
	}
}

func TestWriteError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteError(w, "not enough credits", "INSUFFICIENT_CREDITS", http.StatusPaymentRequired)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusPaymentRequired {
		t.Errorf("expected status %d, got %d", http.StatusPaymentRequired, w.Code)
	}

	var envelope models.Response
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("expected envelope JSON, got: %v", err)
	}
	if envelope.Success {
		t.Error("expected success=false")
	}
	if envelope.Error != "not enough credits" {
		t.Errorf("expected error message to round-trip, got '%s'", envelope.Error)
	}
	if envelope.Code != "INSUFFICIENT_CREDITS" {
		t.Errorf("expected code 'INSUFFICIENT_CREDITS', got '%s'", envelope.Code)
	}
}

func TestWriteError_EmptyCodeOmitted(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteError(w, "boom", "", http.StatusInternalServerError)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("expected JSON body, got: %v", err)
	}
	if _, present := raw["code"]; present {
		t.Error("expected empty code to be omitted from the body")
	}
}
