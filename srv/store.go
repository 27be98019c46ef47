package srv

import (
	"sync"

	"github.com/plaxsys/rentapp/appform"
)

// Submission is one application as received over the wire: the record's
// fields plus the property it applies to, flattened into one payload.
type Submission struct {
	ID           string `json:"id,omitempty"`
	PropertyName string `json:"propertyName"`

	appform.Application
}

// Store keeps submissions in memory for the lifetime of the process. The
// durable property/application database lives in a separate service; this
// store only has to outlive the render-and-email pipeline.
type Store struct {
	mu   sync.RWMutex
	subs map[string]Submission
}

func NewStore() *Store {
	return &Store{subs: make(map[string]Submission)}
}

func (s *Store) Put(sub Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[sub.ID] = sub
}

func (s *Store) Get(id string) (Submission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.subs[id]
	return sub, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
