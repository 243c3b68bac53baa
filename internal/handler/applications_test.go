package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yourorg/jobboard/internal/domain"
)

func postApplication(env *testEnv, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)
	return rec
}

func TestSubmitApplication(t *testing.T) {
	env := newTestEnv(t)

	rec := postApplication(env, validApplicationJSON)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created domain.Application
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("undecodable response: %v", err)
	}
	if created.Email != "john.doe@example.com" {
		t.Fatalf("email not lowercased: %q", created.Email)
	}
	if created.ApplicationStatus != domain.ApplicationStatusPending {
		t.Fatalf("expected default status Pending, got %q", created.ApplicationStatus)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatal("expected system-assigned identity and timestamps")
	}
}

func TestSubmitApplicationNoAuthNeeded(t *testing.T) {
	env := newTestEnv(t)

	// no Authorization header at all
	if rec := postApplication(env, validApplicationJSON); rec.Code != http.StatusCreated {
		t.Fatalf("public submission must not require a token, got %d", rec.Code)
	}
}

func TestSubmitApplicationValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]string{
		"bad email": strings.Replace(validApplicationJSON, "John.Doe@Example.com", "john.doe-example.com", 1),
		"bad phone": strings.Replace(validApplicationJSON, "+1234567890", "12345", 1),
		"bad link":  strings.Replace(validApplicationJSON, "https://example.com/cv.pdf", "example.com/cv.pdf", 1),
	}

	for name, body := range cases {
		rec := postApplication(env, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d: %s", name, rec.Code, rec.Body.String())
		}
	}
	if len(env.appRepo.apps) != 0 {
		t.Fatal("rejected applications must not be persisted")
	}
}

func TestListApplications(t *testing.T) {
	env := newTestEnv(t)

	if rec := postApplication(env, validApplicationJSON); rec.Code != http.StatusCreated {
		t.Fatalf("seed submit failed: %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var apps []domain.Application
	if err := json.Unmarshal(rec.Body.Bytes(), &apps); err != nil {
		t.Fatalf("undecodable response: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}
}
