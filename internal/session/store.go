package session

import (
	"sync"
	"time"
)

// IdleTimeout is how long a conversation may sit untouched before the
// periodic sweep removes it.
const IdleTimeout = 30 * time.Minute

// Store owns every active conversation, keyed by user id. Conversations are
// created lazily on a user's first message and live in memory only.
type Store struct {
	mu            sync.Mutex
	conversations map[int64]*Conversation
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{conversations: make(map[int64]*Conversation)}
}

// Touch returns the conversation for userID, creating it on first contact,
// and updates its last-activity timestamp. It is called once per inbound
// message regardless of how the message is handled.
func (s *Store) Touch(userID int64) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[userID]
	if !ok {
		conv = &Conversation{UserID: userID, State: StateNone}
		s.conversations[userID] = conv
	}
	conv.LastActivity = time.Now()
	return conv
}

// CleanupIdle removes every conversation idle for longer than maxIdle and
// returns how many were removed.
func (s *Store) CleanupIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	removed := 0
	for userID, conv := range s.conversations {
		if conv.LastActivity.Before(cutoff) {
			delete(s.conversations, userID)
			removed++
		}
	}
	return removed
}

// Len returns the number of active conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conversations)
}
