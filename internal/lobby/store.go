package lobby

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Store owns the canonical, order-sensitive list of open games. The list is
// newest-first: a fresh offer is always prepended. All other components read
// the list through snapshots; only the Store mutates it.
type Store struct {
	mu       sync.RWMutex
	games    []Game
	onChange func([]Game)
}

// NewStore returns an empty store. The canonical list stays empty until the
// first initial_game_list replaces it wholesale.
func NewStore() *Store {
	return &Store{}
}

// OnChange registers the single downstream listener. It is invoked with a
// snapshot of the canonical list after every effective mutation. No-op calls
// (duplicate upsert, removal of an absent id) do not notify.
func (s *Store) OnChange(fn func(games []Game)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// ReplaceAll makes the canonical list exactly the given ordered sequence.
// Used for the initial synchronization after every (re)connect.
func (s *Store) ReplaceAll(games []Game) {
	s.mu.Lock()
	s.games = make([]Game, len(games))
	copy(s.games, games)
	s.mu.Unlock()

	log.Debug().Int("games", len(games)).Msg("canonical list replaced")
	s.notify()
}

// Upsert prepends a game to the canonical list. If a game with the same ID
// is already present the call is a no-op, which makes duplicate delivery of
// a new_game event harmless.
func (s *Store) Upsert(g Game) {
	s.mu.Lock()
	for _, existing := range s.games {
		if existing.ID == g.ID {
			s.mu.Unlock()
			log.Debug().Str("game_id", g.ID).Msg("duplicate upsert ignored")
			return
		}
	}
	s.games = append([]Game{g}, s.games...)
	s.mu.Unlock()

	s.notify()
}

// Remove deletes the game with the given ID if present. Removing an id that
// is not in the list is a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	idx := -1
	for i, g := range s.games {
		if g.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.games = append(s.games[:idx], s.games[idx+1:]...)
	s.mu.Unlock()

	s.notify()
}

// Games returns a snapshot of the canonical list in canonical order.
func (s *Store) Games() []Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]Game, len(s.games))
	copy(snapshot, s.games)
	return snapshot
}

// Len returns the current size of the canonical list.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

func (s *Store) notify() {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()

	if fn != nil {
		fn(s.Games())
	}
}
