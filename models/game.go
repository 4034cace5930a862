package models

import "time"

/*
 * 'Game' is a scheduled pickup game. Roster and Waitlist are ordered:
 * the roster never exceeds PlayerCap and the waitlist is FIFO, both
 * enforced by the roster engine rather than by the type itself.
 * A user appears in at most one of the two lists at any time.
 */
type Game struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Sport       Sport     `json:"sport"`
	StartsAt    time.Time `json:"starts_at"`
	Location    string    `json:"location"`
	Skill       SkillBand `json:"skill_band"`
	PlayerCap   int       `json:"player_cap"`
	OnCampus    bool      `json:"on_campus"`
	Host        *User     `json:"host"`
	Roster      []*User   `json:"roster"`
	Waitlist    []*User   `json:"waitlist"`
	Description string    `json:"description"`
}

// SpotsLeft never goes negative, even if a cap is lowered under a full roster
func (g *Game) SpotsLeft() int {
	left := g.PlayerCap - len(g.Roster)
	if left < 0 {
		return 0
	}
	return left
}

func (g *Game) IsFull() bool {
	return len(g.Roster) >= g.PlayerCap
}

func (g *Game) InRoster(userID string) bool {
	for _, u := range g.Roster {
		if u.ID == userID {
			return true
		}
	}
	return false
}

func (g *Game) InWaitlist(userID string) bool {
	for _, u := range g.Waitlist {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// Clone returns a read-only view of the game: the struct, its host and
// its roster/waitlist entries are all copied, so the view stays valid
// while the original keeps changing. User.Sports slices are shared; they
// are replaced wholesale on profile edits, never mutated in place.
func (g *Game) Clone() *Game {
	cp := *g
	cp.Host = cloneUser(g.Host)
	cp.Roster = cloneUsers(g.Roster)
	cp.Waitlist = cloneUsers(g.Waitlist)
	return &cp
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func cloneUsers(users []*User) []*User {
	out := make([]*User, len(users))
	for i, u := range users {
		out[i] = cloneUser(u)
	}
	return out
}
