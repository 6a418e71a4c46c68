package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func writeEnvelope(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"status": status, "message": message, "data": data})
}

func TestHTTP_ValidateDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/signin/validate" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.com" {
			t.Errorf("unexpected body %v", body)
		}
		writeEnvelope(w, http.StatusOK, "ok", map[string]bool{"email_valid": true, "password_valid": false, "valid": false})
	}))
	defer srv.Close()

	res, err := NewHTTP(srv.URL).Validate(context.Background(), "a@b.com", "short")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.EmailValid || res.PasswordValid || res.Valid {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestHTTP_ErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusConflict, "Finish editing the profile first", nil)
	}))
	defer srv.Close()

	err := NewHTTP(srv.URL).SignOut(context.Background(), uuid.New())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "Finish editing the profile first" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestHTTP_SubmitSignInKeepsResultOn422(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnprocessableEntity, "Invalid credentials", map[string]bool{"email_valid": false, "password_valid": true})
	}))
	defer srv.Close()

	res, err := NewHTTP(srv.URL).SubmitSignIn(context.Background(), uuid.New())
	if err == nil {
		t.Fatalf("expected error")
	}
	if res.EmailValid || !res.PasswordValid {
		t.Fatalf("expected decoded result alongside error, got %+v", res)
	}
}
