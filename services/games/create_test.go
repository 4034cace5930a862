package games

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"courtside/models"
	"courtside/services/state"
)

func newTestEngine() (*state.AppState, *Engine, *models.User) {
	host := &models.User{ID: "host", FirstName: "Host", LastInitial: "H"}
	appState := state.NewAppState(host)
	return appState, NewEngine(appState), host
}

func validRequest(start time.Time) Request {
	return Request{
		Title:     "Tuesday hoops",
		Sport:     models.SportBasketball,
		StartsAt:  start,
		Location:  "Union Gym",
		Skill:     models.SkillIntermediate,
		PlayerCap: 8,
	}
}

func TestCreateSingleGame(t *testing.T) {
	appState, engine, host := newTestEngine()
	start := time.Date(2025, time.June, 10, 18, 0, 0, 0, time.UTC)

	created, err := engine.CreateGame(validRequest(start))

	assert.NoError(t, err)
	assert.Len(t, created, 1)
	assert.Equal(t, start, created[0].StartsAt)
	assert.Equal(t, []*models.User{host}, created[0].Roster)
	assert.Same(t, host, created[0].Host)
	assert.Equal(t, 1, host.GamesHosted)
	assert.Len(t, appState.Snapshot(), 1)
}

func TestRecurrenceExpandsWeekly(t *testing.T) {
	appState, engine, host := newTestEngine()
	start := time.Date(2025, time.June, 10, 18, 0, 0, 0, time.UTC)

	req := validRequest(start)
	req.Recurrence = 3
	created, err := engine.CreateGame(req)

	assert.NoError(t, err)
	assert.Len(t, created, 4)
	for offset, g := range created {
		assert.Equal(t, start.AddDate(0, 0, 7*offset), g.StartsAt)
		assert.Equal(t, []*models.User{host}, g.Roster)
		assert.Empty(t, g.Waitlist)
	}
	assert.Equal(t, 4, host.GamesHosted)
	assert.Len(t, appState.Snapshot(), 4)
}

func TestCreatedGamesGetUniqueIDs(t *testing.T) {
	_, engine, _ := newTestEngine()

	req := validRequest(time.Now().Add(time.Hour))
	req.Recurrence = 5
	created, err := engine.CreateGame(req)
	assert.NoError(t, err)

	seen := make(map[string]bool)
	for _, g := range created {
		assert.False(t, seen[g.ID], "duplicate id %s", g.ID)
		seen[g.ID] = true
	}
}

func TestValidationRejections(t *testing.T) {
	_, engine, host := newTestEngine()
	start := time.Now().Add(time.Hour)

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty title", func(r *Request) { r.Title = "   " }},
		{"zero cap", func(r *Request) { r.PlayerCap = 0 }},
		{"negative cap", func(r *Request) { r.PlayerCap = -3 }},
		{"negative recurrence", func(r *Request) { r.Recurrence = -1 }},
		{"no sport", func(r *Request) { r.Sport = "" }},
		{"sport all", func(r *Request) { r.Sport = models.SportAll }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(start)
			tc.mutate(&req)

			created, err := engine.CreateGame(req)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, created)
		})
	}

	// Nothing got through
	assert.Equal(t, 0, host.GamesHosted)
}
