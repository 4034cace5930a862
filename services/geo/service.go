package geo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	game_constants "courtside/constants/game"
	"courtside/models"
)

// ErrFetchTimeout marks a geo fetch that exceeded the bounded timeout,
// distinct from an ordinary source failure
var ErrFetchTimeout = errors.New("geo fetch timed out")

// NearbyResult is the joined outcome of one map refresh
type NearbyResult struct {
	Venues    []models.Venue      `json:"venues"`
	Games     []models.MapGame    `json:"games"`
	Radius    models.RadiusPreset `json:"radius_miles"`
	Broadened bool                `json:"broadened"`
}

/*
 * 'Service' serves venues/games near a coordinate. The two collection
 * fetches run concurrently and are joined before anything is applied; a
 * failure in either propagates as one error with no partial result and no
 * cache write. When a successful pairing comes back thin, the radius
 * preset advances to the next larger value; the broadening takes effect
 * on the next fetch rather than re-fetching synchronously.
 */
type Service struct {
	source Source
	cache  *Cache

	mu     sync.Mutex
	radius models.RadiusPreset
}

func NewService(source Source) *Service {
	return &Service{
		source: source,
		cache:  NewCache(game_constants.NearbyCacheTTL, nil),
		radius: models.Radius10,
	}
}

// NewServiceWithCache lets tests supply a cache with a fake clock
func NewServiceWithCache(source Source, cache *Cache) *Service {
	return &Service{source: source, cache: cache, radius: models.Radius10}
}

func (s *Service) Radius() models.RadiusPreset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.radius
}

// Nearby returns the venues and games around a coordinate at the current
// radius preset, consulting the cache first.
func (s *Service) Nearby(ctx context.Context, lat, lng float64, sport string, window GameWindow) (*NearbyResult, error) {
	radius := s.Radius()

	vq := VenueQuery{Latitude: lat, Longitude: lng, RadiusMiles: int(radius), Sport: sport}
	gq := GameQuery{VenueQuery: vq, Window: window}

	venues, venuesCached := s.cache.Venues(vq)
	games, gamesCached := s.cache.Games(gq)

	if !venuesCached || !gamesCached {
		ctx, cancel := context.WithTimeout(ctx, game_constants.GeoFetchTimeout)
		defer cancel()

		var fetchedVenues []models.Venue
		var fetchedGames []models.MapGame

		eg, ctx := errgroup.WithContext(ctx)
		if !venuesCached {
			eg.Go(func() error {
				var err error
				fetchedVenues, err = s.source.FetchVenues(ctx, vq)
				return err
			})
		}
		if !gamesCached {
			eg.Go(func() error {
				var err error
				fetchedGames, err = s.source.FetchGames(ctx, gq)
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %v", ErrFetchTimeout, err)
			}
			return nil, fmt.Errorf("fetching nearby results: %w", err)
		}

		// Both halves succeeded; only now does the cache change
		if !venuesCached {
			venues = fetchedVenues
			s.cache.StoreVenues(vq, venues)
		}
		if !gamesCached {
			games = fetchedGames
			s.cache.StoreGames(gq, games)
		}
	}

	broadened := s.maybeBroaden(radius, len(venues)+len(games))

	return &NearbyResult{
		Venues:    venues,
		Games:     games,
		Radius:    radius,
		Broadened: broadened,
	}, nil
}

// maybeBroaden advances the preset when results are thin. Returns whether
// the radius changed for the next fetch.
func (s *Service) maybeBroaden(used models.RadiusPreset, combined int) bool {
	if combined >= game_constants.MinNearbyResults || used >= models.Radius50 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// a concurrent request may have broadened already
	if s.radius != used {
		return false
	}
	s.radius = s.radius.Next()
	return true
}

// Pins flattens a result into the uniform map-pin list the map UI renders
func Pins(res *NearbyResult) []models.MapPin {
	pins := make([]models.MapPin, 0, len(res.Venues)+len(res.Games))
	for _, v := range res.Venues {
		pins = append(pins, v)
	}
	for _, g := range res.Games {
		pins = append(pins, g)
	}
	return pins
}
