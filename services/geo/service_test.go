package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"courtside/models"
)

type fakeSource struct {
	venues     []models.Venue
	games      []models.MapGame
	venueErr   error
	gameErr    error
	venueCalls int
	gameCalls  int
}

func (f *fakeSource) FetchVenues(ctx context.Context, q VenueQuery) ([]models.Venue, error) {
	f.venueCalls++
	return f.venues, f.venueErr
}

func (f *fakeSource) FetchGames(ctx context.Context, q GameQuery) ([]models.MapGame, error) {
	f.gameCalls++
	return f.games, f.gameErr
}

func manyResults() ([]models.Venue, []models.MapGame) {
	venues := []models.Venue{{ID: "v1"}, {ID: "v2"}, {ID: "v3"}}
	games := []models.MapGame{{ID: "g1"}, {ID: "g2"}, {ID: "g3"}}
	return venues, games
}

func newTestService(src *fakeSource, clock *time.Time) *Service {
	cache := NewCache(60*time.Second, func() time.Time { return *clock })
	return NewServiceWithCache(src, cache)
}

func TestNearbyCachesWithinTTL(t *testing.T) {
	venues, games := manyResults()
	src := &fakeSource{venues: venues, games: games}
	now := time.Now()
	svc := newTestService(src, &now)

	first, err := svc.Nearby(context.Background(), 40.01, -75.55, "", WindowToday)
	assert.NoError(t, err)
	assert.Equal(t, 1, src.venueCalls)
	assert.Equal(t, 1, src.gameCalls)

	// Second call inside the TTL: served from cache, source untouched
	second, err := svc.Nearby(context.Background(), 40.01, -75.55, "", WindowToday)
	assert.NoError(t, err)
	assert.Equal(t, 1, src.venueCalls)
	assert.Equal(t, 1, src.gameCalls)
	assert.Equal(t, first.Venues, second.Venues)
	assert.Equal(t, first.Games, second.Games)

	// Past the TTL: fresh invocation
	now = now.Add(61 * time.Second)
	_, err = svc.Nearby(context.Background(), 40.01, -75.55, "", WindowToday)
	assert.NoError(t, err)
	assert.Equal(t, 2, src.venueCalls)
	assert.Equal(t, 2, src.gameCalls)
}

func TestNearbyDifferentCoordinateMissesCache(t *testing.T) {
	venues, games := manyResults()
	src := &fakeSource{venues: venues, games: games}
	now := time.Now()
	svc := newTestService(src, &now)

	_, err := svc.Nearby(context.Background(), 40.01, -75.55, "", WindowToday)
	assert.NoError(t, err)

	// A different place right after must not reuse the first answer
	_, err = svc.Nearby(context.Background(), 41.88, -87.63, "", WindowToday)
	assert.NoError(t, err)
	assert.Equal(t, 2, src.venueCalls)
	assert.Equal(t, 2, src.gameCalls)
}

func TestThinResultsBroadenRadiusForNextFetch(t *testing.T) {
	src := &fakeSource{
		venues: []models.Venue{{ID: "v1"}},
		games:  []models.MapGame{{ID: "g1"}},
	}
	now := time.Now()
	svc := newTestService(src, &now)

	res, err := svc.Nearby(context.Background(), 40.01, -75.55, "", WindowToday)
	assert.NoError(t, err)
	// This fetch ran at the original preset; the broadening kicks in next time
	assert.Equal(t, models.Radius10, res.Radius)
	assert.True(t, res.Broadened)
	assert.Equal(t, models.Radius20, svc.Radius())

	now = now.Add(61 * time.Second)
	res, err = svc.Nearby(context.Background(), 40.01, -75.55, "", WindowToday)
	assert.NoError(t, err)
	assert.Equal(t, models.Radius20, res.Radius)
	assert.Equal(t, models.Radius50, svc.Radius())

	// Capped at the largest preset
	now = now.Add(61 * time.Second)
	res, err = svc.Nearby(context.Background(), 40.01, -75.55, "", WindowToday)
	assert.NoError(t, err)
	assert.Equal(t, models.Radius50, res.Radius)
	assert.False(t, res.Broadened)
	assert.Equal(t, models.Radius50, svc.Radius())
}

func TestEnoughResultsKeepRadius(t *testing.T) {
	venues, games := manyResults()
	src := &fakeSource{venues: venues, games: games}
	now := time.Now()
	svc := newTestService(src, &now)

	res, err := svc.Nearby(context.Background(), 40.01, -75.55, "", WindowToday)
	assert.NoError(t, err)
	assert.False(t, res.Broadened)
	assert.Equal(t, models.Radius10, svc.Radius())
}

func TestFailedFetchLeavesCacheUntouched(t *testing.T) {
	venues, _ := manyResults()
	src := &fakeSource{venues: venues, gameErr: errors.New("backend down")}
	now := time.Now()
	svc := newTestService(src, &now)

	// Games failed: no partial result comes back
	res, err := svc.Nearby(context.Background(), 40.01, -75.55, "", WindowToday)
	assert.Error(t, err)
	assert.Nil(t, res)

	// The successful venue half must not have been cached either: fixing
	// the source and retrying hits it again for both collections
	src.gameErr = nil
	src.games = []models.MapGame{{ID: "g1"}}
	_, err = svc.Nearby(context.Background(), 40.01, -75.55, "", WindowToday)
	assert.NoError(t, err)
	assert.Equal(t, 2, src.venueCalls)
}

func TestTimeoutSurfacesAsDistinctError(t *testing.T) {
	src := &fakeSource{venueErr: context.DeadlineExceeded}
	now := time.Now()
	svc := newTestService(src, &now)

	_, err := svc.Nearby(context.Background(), 40.01, -75.55, "", WindowToday)
	assert.ErrorIs(t, err, ErrFetchTimeout)
}

func TestPinsCoverVenuesAndGames(t *testing.T) {
	res := &NearbyResult{
		Venues: []models.Venue{{ID: "v1", Latitude: 1, Longitude: 2}},
		Games:  []models.MapGame{{ID: "g1", Latitude: 3, Longitude: 4}},
	}

	pins := Pins(res)
	assert.Len(t, pins, 2)
	assert.Equal(t, "v1", pins[0].PinID())
	assert.Equal(t, models.Coordinate{Latitude: 3, Longitude: 4}, pins[1].PinCoordinate())
}

func TestGeneratorGamesCarryProjectionFields(t *testing.T) {
	gen := NewGenerator(42)
	games, err := gen.FetchGames(context.Background(), GameQuery{
		VenueQuery: VenueQuery{Latitude: 40.0, Longitude: -75.0, RadiusMiles: 10},
		Window:     WindowToday,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, games)

	for _, mg := range games {
		assert.NotEmpty(t, mg.HostName)
		assert.NotEmpty(t, mg.VenueName)
		assert.Greater(t, mg.PlayerCount, 0)
		assert.LessOrEqual(t, mg.PlayerCount, mg.PlayerCap)
	}
}

func TestGeneratorStaysInsideRadius(t *testing.T) {
	gen := NewGenerator(42)
	venues, err := gen.FetchVenues(context.Background(), VenueQuery{
		Latitude: 40.0, Longitude: -75.0, RadiusMiles: 10,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, venues)

	deg := 10.0 / 69.0
	for _, v := range venues {
		assert.InDelta(t, 40.0, v.Latitude, deg)
		assert.InDelta(t, -75.0, v.Longitude, deg)
	}
}
