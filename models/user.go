package models

/*
 * 'User' is the in-memory profile of a player. Identity is the ID field:
 * two User values refer to the same player iff their IDs match. The ID
 * doubles as the username of the persisted account (see models/postgres).
 */
type User struct {
	ID           string       `json:"id"`
	FirstName    string       `json:"first_name"`
	LastInitial  string       `json:"last_initial"`
	Skill        SkillBand    `json:"skill_band"`
	Availability Availability `json:"availability"`
	Sports       []Sport      `json:"sports"`
	Bio          string       `json:"bio"`
	GamesPlayed  int          `json:"games_played"`
	GamesHosted  int          `json:"games_hosted"`
}

// DisplayName renders "Jordan M." style names for rosters and map pins
func (u *User) DisplayName() string {
	if u.LastInitial == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastInitial + "."
}

// PlaysSport reports whether the user lists the sport on their profile
func (u *User) PlaysSport(s Sport) bool {
	for _, sport := range u.Sports {
		if sport == s {
			return true
		}
	}
	return false
}
