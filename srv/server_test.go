package srv

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/plaxsys/rentapp/appform"
)

func testServer() *Server {
	return New(nil, nil, appform.Options{})
}

func submitBody() string {
	return `{
		"propertyName": "Maple Court",
		"fullName": "Ada Applicant",
		"email": "ada@example.com",
		"phone": "555-0100",
		"consentGiven": true
	}`
}

func TestSubmitAcceptsApplication(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest("POST", "/applications", strings.NewReader(submitBody()))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusAccepted, rec.Body)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["id"] == "" {
		t.Fatal("no application id returned")
	}
	if _, ok := s.store.Get(resp["id"]); !ok {
		t.Error("submission not stored under returned id")
	}
}

func TestSubmitRejectsMissingRequiredFields(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest("POST", "/applications",
		strings.NewReader(`{"propertyName": "Maple Court", "fullName": "Ada Applicant"}`))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSubmitRejectsMalformedJSON(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest("POST", "/applications", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDownloadRendersStoredApplication(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest("POST", "/applications", strings.NewReader(submitBody()))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding submit response: %v", err)
	}

	dl := httptest.NewRequest("GET", "/applications/"+resp["id"]+"/pdf", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, dl)

	if rec.Code != http.StatusOK {
		t.Fatalf("download status = %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("response body is not a pdf")
	}
}

func TestDownloadUnknownApplication(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest("GET", "/applications/not-a-uuid/pdf", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed id: status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	req = httptest.NewRequest("GET", "/applications/00000000-0000-0000-0000-000000000000/pdf", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
