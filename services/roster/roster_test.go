package roster

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"courtside/models"
	"courtside/services/state"
)

func testUser(id string) *models.User {
	return &models.User{ID: id, FirstName: id, LastInitial: "T"}
}

// newTestGame builds a state holding one game with the given cap and
// initial roster, hosted by the first roster member
func newTestGame(t *testing.T, cap int, rosterIDs ...string) (*state.AppState, *Engine, *models.Game) {
	t.Helper()
	host := testUser("host")
	appState := state.NewAppState(host)

	g := &models.Game{
		ID:        "game1",
		Title:     "Test game",
		Sport:     models.SportBasketball,
		StartsAt:  time.Now().Add(time.Hour),
		PlayerCap: cap,
		Host:      host,
	}
	for _, id := range rosterIDs {
		g.Roster = append(g.Roster, testUser(id))
	}
	appState.AddHostedGames(host, g)

	return appState, NewEngine(appState), g
}

func rosterIDs(g *models.Game) []string {
	ids := make([]string, len(g.Roster))
	for i, u := range g.Roster {
		ids[i] = u.ID
	}
	return ids
}

func waitlistIDs(g *models.Game) []string {
	ids := make([]string, len(g.Waitlist))
	for i, u := range g.Waitlist {
		ids[i] = u.ID
	}
	return ids
}

func TestJoinTakesSeatWhenAvailable(t *testing.T) {
	_, engine, g := newTestGame(t, 3, "a")

	err := engine.Join("game1", testUser("b"))

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rosterIDs(g))
	assert.Empty(t, g.Waitlist)
}

func TestJoinFullGameGoesToWaitlist(t *testing.T) {
	_, engine, g := newTestGame(t, 2, "a", "b")

	err := engine.Join("game1", testUser("c"))

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rosterIDs(g))
	assert.Equal(t, []string{"c"}, waitlistIDs(g))
}

func TestCapacityNeverExceeded(t *testing.T) {
	_, engine, g := newTestGame(t, 3)

	// Hammer the game with joins and interleaved leaves; the roster must
	// never observably exceed the cap
	users := []string{"u1", "u2", "u3", "u4", "u5", "u6"}
	for _, id := range users {
		assert.NoError(t, engine.Join("game1", testUser(id)))
		assert.LessOrEqual(t, len(g.Roster), 3)
	}
	for _, id := range []string{"u2", "u5"} {
		_, err := engine.Leave("game1", testUser(id))
		assert.NoError(t, err)
		assert.LessOrEqual(t, len(g.Roster), 3)
	}
}

func TestRosterAndWaitlistAreExclusive(t *testing.T) {
	_, engine, g := newTestGame(t, 1, "a")

	b := testUser("b")
	assert.NoError(t, engine.Join("game1", b))
	// b is waitlisted; joining again must not duplicate anywhere
	assert.NoError(t, engine.Join("game1", b))

	assert.Equal(t, []string{"a"}, rosterIDs(g))
	assert.Equal(t, []string{"b"}, waitlistIDs(g))
	assert.False(t, g.InRoster("b") && g.InWaitlist("b"))
}

func TestJoinIsIdempotent(t *testing.T) {
	_, engine, g := newTestGame(t, 3, "a")

	b := testUser("b")
	assert.NoError(t, engine.Join("game1", b))
	assert.NoError(t, engine.Join("game1", b))

	assert.Equal(t, []string{"a", "b"}, rosterIDs(g))
	assert.Empty(t, g.Waitlist)
}

func TestLeaveUnknownUserIsNoop(t *testing.T) {
	_, engine, g := newTestGame(t, 2, "a", "b")

	promoted, err := engine.Leave("game1", testUser("stranger"))
	assert.NoError(t, err)
	assert.Nil(t, promoted)

	assert.Equal(t, []string{"a", "b"}, rosterIDs(g))
	assert.Empty(t, g.Waitlist)
}

func TestLeavePromotesOldestWaiter(t *testing.T) {
	_, engine, g := newTestGame(t, 2, "a", "b")

	for _, id := range []string{"u1", "u2", "u3"} {
		assert.NoError(t, engine.Join("game1", testUser(id)))
	}
	assert.Equal(t, []string{"u1", "u2", "u3"}, waitlistIDs(g))

	promoted, err := engine.Leave("game1", testUser("a"))
	assert.NoError(t, err)

	// u1 (not u2 or u3) gets the freed seat; the rest shift up
	assert.Equal(t, "u1", promoted.ID)
	assert.Equal(t, []string{"b", "u1"}, rosterIDs(g))
	assert.Equal(t, []string{"u2", "u3"}, waitlistIDs(g))
}

func TestLeaveFromWaitlistTriggersNoPromotion(t *testing.T) {
	_, engine, g := newTestGame(t, 2, "a", "b")

	assert.NoError(t, engine.Join("game1", testUser("c")))
	assert.NoError(t, engine.Join("game1", testUser("d")))

	// d leaves the waitlist; no roster seat was freed
	promoted, err := engine.Leave("game1", testUser("d"))
	assert.NoError(t, err)
	assert.Nil(t, promoted)

	assert.Equal(t, []string{"a", "b"}, rosterIDs(g))
	assert.Equal(t, []string{"c"}, waitlistIDs(g))
}

func TestJoinLeaveScenario(t *testing.T) {
	_, engine, g := newTestGame(t, 2, "A", "B")

	assert.NoError(t, engine.Join("game1", testUser("C")))
	assert.Equal(t, []string{"C"}, waitlistIDs(g))

	assert.NoError(t, engine.Join("game1", testUser("D")))
	assert.Equal(t, []string{"C", "D"}, waitlistIDs(g))

	promoted, err := engine.Leave("game1", testUser("A"))
	assert.NoError(t, err)
	assert.Equal(t, "C", promoted.ID)
	assert.Equal(t, []string{"B", "C"}, rosterIDs(g))
	assert.Equal(t, []string{"D"}, waitlistIDs(g))

	promoted, err = engine.Leave("game1", testUser("D"))
	assert.NoError(t, err)
	assert.Nil(t, promoted)
	assert.Equal(t, []string{"B", "C"}, rosterIDs(g))
	assert.Empty(t, g.Waitlist)
}

func TestUnknownGameReturnsNotFound(t *testing.T) {
	_, engine, _ := newTestGame(t, 2)

	assert.ErrorIs(t, engine.Join("nope", testUser("a")), ErrGameNotFound)
	_, err := engine.Leave("nope", testUser("a"))
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestReadsStaySafeDuringMembershipChurn(t *testing.T) {
	appState, engine, _ := newTestGame(t, 2, "a")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			u := testUser(fmt.Sprintf("u%d", i%5))
			assert.NoError(t, engine.Join("game1", u))
			_, err := engine.Leave("game1", u)
			assert.NoError(t, err)
		}
	}()

	// Render-style reads while the churn runs. Game hands out copies, so
	// iterating the lists here never touches the slices being mutated.
	for alive := true; alive; {
		select {
		case <-done:
			alive = false
		default:
		}
		if gg, ok := appState.Game("game1"); ok {
			for _, u := range gg.Roster {
				_ = u.DisplayName()
			}
			for _, u := range gg.Waitlist {
				_ = u.DisplayName()
			}
		}
	}
}

func TestActionLabel(t *testing.T) {
	_, engine, g := newTestGame(t, 2, "a")

	viewer := testUser("v")
	assert.Equal(t, ActionJoin, ActionLabel(g, viewer))

	assert.NoError(t, engine.Join("game1", viewer))
	assert.Equal(t, ActionLeave, ActionLabel(g, viewer))

	// Fill the game, then look at it as a third user
	_, err := engine.Leave("game1", viewer)
	assert.NoError(t, err)
	assert.NoError(t, engine.Join("game1", testUser("b")))
	assert.Equal(t, ActionJoinWaitlist, ActionLabel(g, viewer))

	assert.NoError(t, engine.Join("game1", viewer))
	assert.Equal(t, ActionLeaveWaitlist, ActionLabel(g, viewer))
}
