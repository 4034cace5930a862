package geo

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"courtside/models"
)

// GameWindow is the schedule bucket understood by the geo data source.
// Distinct from the feed's TimeWindow: this is the shape the future
// network API consumes, preserved for forward compatibility.
type GameWindow string

const (
	WindowNow      GameWindow = "now"
	WindowToday    GameWindow = "today"
	WindowNext24h  GameWindow = "next24h"
	WindowThisWeek GameWindow = "thisWeek"
)

// VenueQuery describes a venues-near-coordinate lookup
type VenueQuery struct {
	Latitude    float64
	Longitude   float64
	RadiusMiles int
	Sport       string // empty = all sports
}

// GameQuery describes a games-near-coordinate lookup
type GameQuery struct {
	VenueQuery
	Window GameWindow
}

// Source is the venue/game lookup the map feature consumes. The local
// generator below stands in for a future network call.
type Source interface {
	FetchVenues(ctx context.Context, q VenueQuery) ([]models.Venue, error)
	FetchGames(ctx context.Context, q GameQuery) ([]models.MapGame, error)
}

/*
 * 'Generator' fabricates plausible venues and games scattered inside the
 * query radius. Seeded so that repeated runs of the app produce stable
 * demo data.
 */
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

var venueNames = []string{
	"Riverside Courts", "Eastside Rec Center", "Maple Park", "Union Gym",
	"Harbor Fields", "Campus Rec Pavilion", "Westwood Sports Complex",
	"Cedar Lane Courts",
}

var sportLabels = []string{
	"basketball", "soccer", "tennis", "pickleball", "volleyball",
}

var hostNames = []struct{ first, initial string }{
	{"Alex", "R"}, {"Sam", "T"}, {"Priya", "K"}, {"Diego", "M"}, {"Lena", "W"},
}

func (g *Generator) FetchVenues(ctx context.Context, q VenueQuery) ([]models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	count := 3 + g.rng.Intn(len(venueNames)-3)
	venues := make([]models.Venue, 0, count)
	for i := 0; i < count; i++ {
		lat, lng := g.scatter(q.Latitude, q.Longitude, q.RadiusMiles)
		sports := g.pickSports(q.Sport)
		venues = append(venues, models.Venue{
			ID:         fmt.Sprintf("venue-%d-%d", i, g.rng.Intn(10000)),
			Name:       venueNames[i%len(venueNames)],
			Address:    fmt.Sprintf("%d Park Ave", 100+g.rng.Intn(900)),
			Latitude:   lat,
			Longitude:  lng,
			SportTypes: sports,
		})
	}
	return venues, nil
}

func (g *Generator) FetchGames(ctx context.Context, q GameQuery) ([]models.MapGame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	count := 2 + g.rng.Intn(5)
	games := make([]models.MapGame, 0, count)
	skills := []models.SkillBand{models.SkillCasual, models.SkillIntermediate, models.SkillCompetitive}
	for i := 0; i < count; i++ {
		lat, lng := g.scatter(q.Latitude, q.Longitude, q.RadiusMiles)
		sport := q.Sport
		if sport == "" {
			sport = sportLabels[g.rng.Intn(len(sportLabels))]
		}

		name := hostNames[g.rng.Intn(len(hostNames))]
		host := &models.User{
			ID:          fmt.Sprintf("host-%d", g.rng.Intn(100)),
			FirstName:   name.first,
			LastInitial: name.initial,
		}
		roster := []*models.User{host}
		for extra := 1 + g.rng.Intn(7); extra > 0; extra-- {
			roster = append(roster, &models.User{ID: fmt.Sprintf("player-%d-%d", i, extra)})
		}

		venueIdx := g.rng.Intn(len(venueNames))
		venue := &models.Venue{
			ID:   fmt.Sprintf("venue-%d", venueIdx),
			Name: venueNames[venueIdx],
		}

		// Fabricate a canonical game, then derive the map projection the
		// same way real games would be projected
		game := &models.Game{
			ID:        fmt.Sprintf("mapgame-%d-%d", i, g.rng.Intn(10000)),
			Title:     fmt.Sprintf("Pickup %s", sport),
			Sport:     models.Sport(sport),
			StartsAt:  g.startWithin(q.Window),
			Skill:     skills[g.rng.Intn(len(skills))],
			PlayerCap: 10,
			Host:      host,
			Roster:    roster,
		}
		games = append(games, models.ProjectMapGame(game, venue, models.Coordinate{Latitude: lat, Longitude: lng}))
	}
	return games, nil
}

// scatter places a point uniformly inside the radius, miles converted to
// degrees with the flat-earth approximation the presets use
func (g *Generator) scatter(lat, lng float64, radiusMiles int) (float64, float64) {
	deg := float64(radiusMiles) / 69.0
	return lat + (g.rng.Float64()*2-1)*deg, lng + (g.rng.Float64()*2-1)*deg
}

func (g *Generator) pickSports(requested string) []string {
	if requested != "" {
		return []string{requested}
	}
	n := 1 + g.rng.Intn(3)
	sports := make([]string, 0, n)
	for i := 0; i < n; i++ {
		sports = append(sports, sportLabels[g.rng.Intn(len(sportLabels))])
	}
	return sports
}

func (g *Generator) startWithin(w GameWindow) time.Time {
	now := time.Now()
	switch w {
	case WindowNow:
		return now.Add(time.Duration(g.rng.Intn(60)) * time.Minute)
	case WindowToday:
		return now.Add(time.Duration(g.rng.Intn(12)) * time.Hour)
	case WindowNext24h:
		return now.Add(time.Duration(g.rng.Intn(24)) * time.Hour)
	default:
		return now.Add(time.Duration(g.rng.Intn(7*24)) * time.Hour)
	}
}
