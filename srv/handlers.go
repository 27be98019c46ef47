package srv

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/plaxsys/rentapp/appform"
	"github.com/plaxsys/rentapp/srv/util"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"status": "ok", "applications": s.store.Len()})
}

// handleSubmit accepts one application, stores it, and kicks off the
// render-and-email pipeline in the background. Field-level business
// validation happened in the form; only the contractually required fields
// are checked here.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, "Invalid application payload", http.StatusBadRequest)
		return
	}
	if sub.FullName == "" || sub.Email == "" || sub.Phone == "" {
		http.Error(w, "fullName, email and phone are required", http.StatusBadRequest)
		return
	}

	sub.ID = uuid.New().String()
	s.store.Put(sub)

	go s.process(sub)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"id": sub.ID})
}

// process renders the submission and mails the result. Failures are logged,
// never surfaced to the applicant: the record is already stored and the PDF
// can be re-rendered on download.
func (s *Server) process(sub Submission) {
	pdf, err := s.render(sub)
	if err != nil {
		util.ErrorLogger.Printf("[Application %s] render failed: %v", sub.ID, err)
		return
	}
	util.InfoLogger.Printf("[Application %s] rendered %d bytes for %s", sub.ID, len(pdf), sub.FullName)

	if s.mailer == nil || !s.mailer.Enabled() {
		util.InfoLogger.Printf("[Application %s] mail transport not configured, skipping send", sub.ID)
		return
	}
	if err := s.mailer.SendApplication(sub.Application, sub.PropertyName, pdf); err != nil {
		util.ErrorLogger.Printf("[Application %s] %v", sub.ID, err)
		return
	}
	util.InfoLogger.Printf("[Application %s] mailed application for %s", sub.ID, sub.FullName)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "Invalid application id", http.StatusBadRequest)
		return
	}

	sub, ok := s.store.Get(id)
	if !ok {
		http.Error(w, "Application not found", http.StatusNotFound)
		return
	}

	pdf, err := s.render(sub)
	if err != nil {
		util.ErrorLogger.Printf("[Application %s] render failed: %v", id, err)
		http.Error(w, "Failed to render application", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=application-%s.pdf", id))
	w.Write(pdf)
}

// render produces the PDF for a submission, serving repeated requests from
// the cache. Asset resolution happens here, before the engine runs; the
// layout pass itself performs no I/O.
func (s *Server) render(sub Submission) ([]byte, error) {
	if pdf, found := s.pdfs.Get(sub.ID); found {
		return pdf.([]byte), nil
	}

	resolved := appform.Assets{}
	if s.fetcher != nil {
		resolved = s.fetcher.Resolve(sub.Application)
	}
	pdf, err := appform.Render(sub.Application, resolved, s.opts)
	if err != nil {
		return nil, err
	}

	s.pdfs.Set(sub.ID, pdf, cache.DefaultExpiration)
	return pdf, nil
}
