package models

import "time"

// Coordinate is a WGS84 point in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

/*
 * 'Venue' is a place that hosts pickup games. Immutable once constructed;
 * produced by the geo fetch layer and consumed by the map feature.
 */
type Venue struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	SportTypes []string `json:"sport_types"`
}

/*
 * 'MapGame' is the denormalized read-only projection of a game used for
 * map display. It is derived from a Game plus an optional Venue; it is
 * never mutated and never written back.
 */
type MapGame struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Sport       string    `json:"sport"`
	VenueID     string    `json:"venue_id,omitempty"`
	VenueName   string    `json:"venue_name,omitempty"`
	StartTime   time.Time `json:"start_time"`
	HostID      string    `json:"host_id"`
	HostName    string    `json:"host_name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	SkillBand   string    `json:"skill_band"`
	PlayerCount int       `json:"player_count"`
	PlayerCap   int       `json:"player_cap"`
}

// MapPin is the common capability of everything rendered on the map:
// venue pins and game pins. Consumers dispatch on the concrete type.
type MapPin interface {
	PinID() string
	PinCoordinate() Coordinate
}

func (v Venue) PinID() string { return v.ID }

func (v Venue) PinCoordinate() Coordinate {
	return Coordinate{Latitude: v.Latitude, Longitude: v.Longitude}
}

func (m MapGame) PinID() string { return m.ID }

func (m MapGame) PinCoordinate() Coordinate {
	return Coordinate{Latitude: m.Latitude, Longitude: m.Longitude}
}

// ProjectMapGame derives the map projection of a game. venue may be nil
// for games at free-text locations.
func ProjectMapGame(g *Game, venue *Venue, coord Coordinate) MapGame {
	mg := MapGame{
		ID:          g.ID,
		Title:       g.Title,
		Sport:       string(g.Sport),
		StartTime:   g.StartsAt,
		HostID:      g.Host.ID,
		HostName:    g.Host.DisplayName(),
		Latitude:    coord.Latitude,
		Longitude:   coord.Longitude,
		SkillBand:   string(g.Skill),
		PlayerCount: len(g.Roster),
		PlayerCap:   g.PlayerCap,
	}
	if venue != nil {
		mg.VenueID = venue.ID
		mg.VenueName = venue.Name
	}
	return mg
}
