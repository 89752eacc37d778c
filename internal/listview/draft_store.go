package listview

import "sync"

// DraftStore autosaves form drafts keyed by form ID. Saving and loading are
// best effort: a failed draft must never block a submission, so the API has
// no error returns.
type DraftStore interface {
	Save(formID string, fields map[string]string)
	Load(formID string) (map[string]string, bool)
	Clear(formID string)
}

// MemoryDraftStore keeps drafts in process memory.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]map[string]string
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]map[string]string)}
}

func (s *MemoryDraftStore) Save(formID string, fields map[string]string) {
	if formID == "" || len(fields) == 0 {
		return
	}

	copied := make(map[string]string, len(fields))
	for key, value := range fields {
		copied[key] = value
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[formID] = copied
}

func (s *MemoryDraftStore) Load(formID string) (map[string]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[formID]
	if !ok {
		return nil, false
	}

	copied := make(map[string]string, len(draft))
	for key, value := range draft {
		copied[key] = value
	}
	return copied, true
}

func (s *MemoryDraftStore) Clear(formID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, formID)
}
