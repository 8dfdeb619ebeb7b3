// Package memory is the client-side conversation transcript cache. It mirrors
// the visible transcript so a restart can restore it; it is a cache, never a
// source of truth, and the server never reads it.
package memory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// MaxMessages caps the persisted transcript; older entries are evicted first.
const MaxMessages = 30

// Message is one cached transcript entry.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Snapshot is the full cached state.
type Snapshot struct {
	ConversationID string    `json:"conversationId"`
	Messages       []Message `json:"messages"`
}

// Observer is notified after every committed change.
type Observer func(Snapshot)

// Store is a file-backed transcript cache with write-on-change semantics.
// Persistence failures are swallowed: losing the cache only loses the
// restored transcript, never conversation correctness.
type Store struct {
	mu        sync.Mutex
	path      string
	snap      Snapshot
	observers []Observer
}

// Open loads the cache from path. A missing or corrupt file yields a fresh
// empty cache.
func Open(path string) *Store {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return s
	}
	s.snap = snap
	return s
}

// Subscribe registers an observer invoked after each committed change.
func (s *Store) Subscribe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Snapshot returns a copy of the cached state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copySnapshot()
}

// SetConversationID records the server-assigned conversation id.
func (s *Store) SetConversationID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.ConversationID == id {
		return
	}
	s.snap.ConversationID = id
	s.commit()
}

// Append adds a message, evicting the oldest entries beyond MaxMessages.
func (s *Store) Append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Messages = append(s.snap.Messages, msg)
	if overflow := len(s.snap.Messages) - MaxMessages; overflow > 0 {
		s.snap.Messages = s.snap.Messages[overflow:]
	}
	s.commit()
}

// Clear drops the cached transcript and conversation id.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{}
	s.commit()
	_ = os.Remove(s.path)
}

// commit persists and notifies observers. Callers must hold the lock.
func (s *Store) commit() {
	raw, err := json.Marshal(s.snap)
	if err == nil {
		_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
		_ = os.WriteFile(s.path, raw, 0o600)
	}

	snap := s.copySnapshot()
	for _, fn := range s.observers {
		fn(snap)
	}
}

func (s *Store) copySnapshot() Snapshot {
	out := Snapshot{ConversationID: s.snap.ConversationID}
	out.Messages = append([]Message(nil), s.snap.Messages...)
	return out
}
