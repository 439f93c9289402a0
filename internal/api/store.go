package api

import (
	"context"
	"sync"
	"time"

	"github.com/tsawler/pagina"
)

// DeckStore is a thread-safe in-memory deck cache with TTL eviction.
// Decks are rendered views, not documents of record, so losing one on
// restart only costs the client a recompose.
type DeckStore struct {
	mu    sync.Mutex
	decks map[string]storedDeck
	ttl   time.Duration
}

type storedDeck struct {
	deck    *pagina.Deck
	savedAt time.Time
}

// NewDeckStore creates a store whose entries expire after ttl. A zero
// or negative ttl disables expiry.
func NewDeckStore(ttl time.Duration) *DeckStore {
	return &DeckStore{
		decks: make(map[string]storedDeck),
		ttl:   ttl,
	}
}

func (s *DeckStore) Put(id string, deck *pagina.Deck) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decks[id] = storedDeck{deck: deck, savedAt: time.Now()}
}

// Get returns the deck for id, or nil if absent or expired.
func (s *DeckStore) Get(id string) *pagina.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.decks[id]
	if !ok {
		return nil
	}
	if s.ttl > 0 && time.Since(entry.savedAt) > s.ttl {
		delete(s.decks, id)
		return nil
	}
	return entry.deck
}

// Len reports the number of stored decks, expired or not.
func (s *DeckStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.decks)
}

// Cleanup removes expired decks.
func (s *DeckStore) Cleanup() {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, entry := range s.decks {
		if now.Sub(entry.savedAt) > s.ttl {
			delete(s.decks, id)
		}
	}
}

// Janitor runs Cleanup every interval until ctx is cancelled.
func (s *DeckStore) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}
