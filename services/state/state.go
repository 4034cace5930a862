package state

import (
	"sync"

	"courtside/models"
)

/*
 * 'AppState' owns the volatile session state: the current user and the
 * full game collection. It is constructed explicitly and passed to the
 * engines that need it, never accessed through a package-level variable.
 *
 * All mutations go through the internal mutex. Games only ever get added;
 * there is no removal or archival path.
 */
type AppState struct {
	mu          sync.Mutex
	currentUser *models.User
	games       []*models.Game
	byID        map[string]*models.Game
}

// NewAppState seeds the state with the session's current user
func NewAppState(currentUser *models.User) *AppState {
	return &AppState{
		currentUser: currentUser,
		byID:        make(map[string]*models.Game),
	}
}

func (s *AppState) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}

// UpdateCurrentUser applies a profile edit under the state lock
func (s *AppState) UpdateCurrentUser(fn func(*models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.currentUser)
}

// WithGame runs fn on the game under the state lock. Returns false if no
// game with that id exists, in which case fn is never called.
func (s *AppState) WithGame(id string, fn func(*models.Game)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.byID[id]
	if !ok {
		return false
	}
	fn(g)
	return true
}

// Game returns a copy of the game with the given id, or false. The copy
// is safe to read without the lock; mutations go through WithGame.
func (s *AppState) Game(id string) (*models.Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return g.Clone(), true
}

// HasGame reports whether an id is taken
func (s *AppState) HasGame(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byID[id]
	return ok
}

// Snapshot returns copies of every game in insertion order. Concurrent
// joins and leaves never show through a snapshot.
func (s *AppState) Snapshot() []*models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Game, len(s.games))
	for i, g := range s.games {
		out[i] = g.Clone()
	}
	return out
}

// AddHostedGames appends a creation batch and bumps the host's hosted
// counter by the batch size, in one critical section.
func (s *AppState) AddHostedGames(host *models.User, games ...*models.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range games {
		s.games = append(s.games, g)
		s.byID[g.ID] = g
	}
	host.GamesHosted += len(games)
}
