package monaco

import (
	"sync"

	"github.com/atweb-solid/solid-monaco/engine"
)

// ViewStateStore keeps serialized cursor/scroll snapshots per document path,
// so that switching back to a document restores its editing position. The
// empty key holds the snapshot of the anonymous (pathless) document.
//
// Last write wins. Entries are never evicted, so a long-lived process
// visiting many distinct paths grows the store without bound.
type ViewStateStore struct {
	mu     sync.Mutex
	states map[string]engine.ViewState
}

// SharedViewStates is the process-wide store used when Config.ViewStates is
// nil.
var SharedViewStates = NewViewStateStore()

func NewViewStateStore() *ViewStateStore {
	return &ViewStateStore{states: make(map[string]engine.ViewState)}
}

func (s *ViewStateStore) Save(key string, state engine.ViewState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[key] = state
}

func (s *ViewStateStore) Restore(key string) (engine.ViewState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[key]
	return st, ok
}
