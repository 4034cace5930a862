package roster

import (
	"errors"

	"courtside/models"
	"courtside/services/state"
)

// ErrGameNotFound is returned when an operation references a game id
// absent from the collection. Membership edge cases (already joined,
// already left) are deliberately not errors.
var ErrGameNotFound = errors.New("game not found")

// Action labels shown on the join/leave button, derived from membership
const (
	ActionJoin          = "Join"
	ActionJoinWaitlist  = "Join waitlist"
	ActionLeave         = "Leave"
	ActionLeaveWaitlist = "Leave waitlist"
)

/*
 * 'Engine' enforces the join/leave/capacity/waitlist rules for games held
 * in the application state. Per (game, user) a player is in exactly one of
 * three states: not in the game, on the roster, or on the waitlist. Join
 * and leave are the only transitions; there is no direct move between
 * roster and waitlist.
 */
type Engine struct {
	state *state.AppState
}

func NewEngine(s *state.AppState) *Engine {
	return &Engine{state: s}
}

// Join puts the user on the roster if a seat is free, otherwise at the
// tail of the waitlist. Joining a game the user is already part of is a
// no-op, not an error.
func (e *Engine) Join(gameID string, user *models.User) error {
	ok := e.state.WithGame(gameID, func(g *models.Game) {
		join(g, user)
	})
	if !ok {
		return ErrGameNotFound
	}
	return nil
}

// Leave removes the user from roster and waitlist. If the departure freed
// a roster seat and somebody is waiting, the head of the waitlist (the
// oldest waiter) is promoted. A single departure frees at most one seat,
// so at most one promotion happens; the promoted user is returned so
// callers can notify them, nil when nobody moved up.
func (e *Engine) Leave(gameID string, user *models.User) (*models.User, error) {
	var promoted *models.User
	ok := e.state.WithGame(gameID, func(g *models.Game) {
		promoted = leave(g, user)
	})
	if !ok {
		return nil, ErrGameNotFound
	}
	return promoted, nil
}

// ActionLabel is the pure display decision for the join/leave button
func ActionLabel(g *models.Game, user *models.User) string {
	switch {
	case g.InRoster(user.ID):
		return ActionLeave
	case g.InWaitlist(user.ID):
		return ActionLeaveWaitlist
	case g.IsFull():
		return ActionJoinWaitlist
	default:
		return ActionJoin
	}
}

func join(g *models.Game, user *models.User) {
	if g.InRoster(user.ID) || g.InWaitlist(user.ID) {
		return
	}
	if len(g.Roster) < g.PlayerCap {
		g.Roster = append(g.Roster, user)
		return
	}
	g.Waitlist = append(g.Waitlist, user)
}

func leave(g *models.Game, user *models.User) *models.User {
	g.Roster = removeUser(g.Roster, user.ID)
	g.Waitlist = removeUser(g.Waitlist, user.ID)

	if len(g.Roster) < g.PlayerCap && len(g.Waitlist) > 0 {
		promoted := g.Waitlist[0]
		g.Waitlist = append([]*models.User{}, g.Waitlist[1:]...)
		g.Roster = append(g.Roster, promoted)
		return promoted
	}
	return nil
}

func removeUser(users []*models.User, id string) []*models.User {
	out := users[:0]
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}
