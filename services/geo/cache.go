package geo

import (
	"fmt"
	"sync"
	"time"

	game_constants "courtside/constants/game"
	"courtside/models"
)

/*
 * 'Cache' is the short-lived cache in front of the geo source. Entries are
 * keyed by (coordinate rounded to a tolerance, radius, sport, window) with
 * independent expiry per key, and venues and games are cached separately.
 * A failed fetch never touches the cache: callers only store results after
 * a fully successful fetch pairing.
 */
type Cache struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	venues map[string]venueEntry
	games  map[string]gameEntry
}

type venueEntry struct {
	venues    []models.Venue
	fetchedAt time.Time
}

type gameEntry struct {
	games     []models.MapGame
	fetchedAt time.Time
}

// NewCache builds a cache with the given TTL. now may be nil, defaulting
// to time.Now.
func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:    ttl,
		now:    now,
		venues: make(map[string]venueEntry),
		games:  make(map[string]gameEntry),
	}
}

func (c *Cache) Venues(q VenueQuery) ([]models.Venue, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.venues[venueKey(q)]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.venues, true
}

func (c *Cache) StoreVenues(q VenueQuery, venues []models.Venue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.venues[venueKey(q)] = venueEntry{venues: venues, fetchedAt: c.now()}
}

func (c *Cache) Games(q GameQuery) ([]models.MapGame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.games[gameKey(q)]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.games, true
}

func (c *Cache) StoreGames(q GameQuery, games []models.MapGame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.games[gameKey(q)] = gameEntry{games: games, fetchedAt: c.now()}
}

// Key formatting mirrors the Redis key helpers elsewhere in the codebase:
// one format spec per key shape, never inline Sprintf at call sites.

func venueKey(q VenueQuery) string {
	return fmt.Sprintf("venues:%s:%d:%s", coordKey(q.Latitude, q.Longitude), q.RadiusMiles, q.Sport)
}

func gameKey(q GameQuery) string {
	return fmt.Sprintf("games:%s:%d:%s:%s", coordKey(q.Latitude, q.Longitude), q.RadiusMiles, q.Sport, q.Window)
}

func coordKey(lat, lng float64) string {
	p := game_constants.CoordKeyPrecision
	return fmt.Sprintf("%.*f,%.*f", p, lat, p, lng)
}
