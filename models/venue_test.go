package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProjectMapGame(t *testing.T) {
	host := &User{ID: "host", FirstName: "Casey", LastInitial: "B"}
	g := &Game{
		ID:        "game1",
		Title:     "Evening Hoops",
		Sport:     SportBasketball,
		StartsAt:  time.Date(2025, time.June, 11, 19, 0, 0, 0, time.UTC),
		Skill:     SkillIntermediate,
		PlayerCap: 10,
		Host:      host,
		Roster:    []*User{host, {ID: "p2"}, {ID: "p3"}},
	}
	venue := &Venue{ID: "venue-1", Name: "Union Gym"}
	coord := Coordinate{Latitude: 40.01, Longitude: -75.55}

	mg := ProjectMapGame(g, venue, coord)

	assert.Equal(t, "game1", mg.ID)
	assert.Equal(t, "basketball", mg.Sport)
	assert.Equal(t, "Casey B.", mg.HostName)
	assert.Equal(t, 3, mg.PlayerCount)
	assert.Equal(t, 10, mg.PlayerCap)
	assert.Equal(t, "venue-1", mg.VenueID)
	assert.Equal(t, "Union Gym", mg.VenueName)
	assert.Equal(t, coord, mg.PinCoordinate())
}

func TestProjectMapGameWithoutVenue(t *testing.T) {
	host := &User{ID: "host", FirstName: "Sam"}
	g := &Game{ID: "game2", Title: "Park Run", Sport: SportSoccer, Host: host, Roster: []*User{host}}

	mg := ProjectMapGame(g, nil, Coordinate{Latitude: 1, Longitude: 2})

	assert.Empty(t, mg.VenueID)
	assert.Empty(t, mg.VenueName)
	assert.Equal(t, "Sam", mg.HostName)
}
