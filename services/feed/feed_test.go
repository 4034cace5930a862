package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"courtside/models"
	"courtside/services/state"
)

// fixedNow is a Wednesday afternoon
var fixedNow = time.Date(2025, time.June, 11, 15, 0, 0, 0, time.UTC)

func buildState(games ...*models.Game) *state.AppState {
	host := &models.User{ID: "host", FirstName: "Host"}
	appState := state.NewAppState(host)
	for _, g := range games {
		if g.Host == nil {
			g.Host = host
		}
		appState.AddHostedGames(host, g)
	}
	return appState
}

func newEngine(games ...*models.Game) *Engine {
	return NewEngine(buildState(games...), func() time.Time { return fixedNow })
}

func gameAt(id string, sport models.Sport, skill models.SkillBand, onCampus bool, t time.Time) *models.Game {
	return &models.Game{
		ID: id, Title: id, Sport: sport, Skill: skill,
		OnCampus: onCampus, PlayerCap: 10, StartsAt: t,
	}
}

func ids(games []*models.Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.ID
	}
	return out
}

func TestFilterBySportAndCampus(t *testing.T) {
	g1 := gameAt("g1", models.SportBasketball, models.SkillCasual, true, fixedNow.Add(2*time.Hour))
	g2 := gameAt("g2", models.SportSoccer, models.SkillCompetitive, false, fixedNow.Add(26*time.Hour))
	engine := newEngine(g1, g2)

	got := engine.FilteredGames(Filter{Sport: models.SportBasketball, Window: models.WindowAll})
	assert.Equal(t, []string{"g1"}, ids(got))

	got = engine.FilteredGames(Filter{OnCampusOnly: true, Window: models.WindowAll})
	assert.Equal(t, []string{"g1"}, ids(got))
}

func TestFilterBySkill(t *testing.T) {
	g1 := gameAt("g1", models.SportTennis, models.SkillCasual, false, fixedNow.Add(time.Hour))
	g2 := gameAt("g2", models.SportTennis, models.SkillCompetitive, false, fixedNow.Add(time.Hour))
	engine := newEngine(g1, g2)

	got := engine.FilteredGames(Filter{Skill: models.SkillCompetitive, Window: models.WindowAll})
	assert.Equal(t, []string{"g2"}, ids(got))

	// "all" matches everything
	got = engine.FilteredGames(Filter{Skill: models.SkillAll, Window: models.WindowAll})
	assert.Len(t, got, 2)
}

func TestTimeWindows(t *testing.T) {
	today := gameAt("today", models.SportSoccer, models.SkillCasual, false, fixedNow.Add(4*time.Hour))
	tomorrow := gameAt("tomorrow", models.SportSoccer, models.SkillCasual, false, fixedNow.AddDate(0, 0, 1))
	saturday := gameAt("saturday", models.SportSoccer, models.SkillCasual, false,
		time.Date(2025, time.June, 14, 10, 0, 0, 0, time.UTC))
	nextMonth := gameAt("nextmonth", models.SportSoccer, models.SkillCasual, false, fixedNow.AddDate(0, 1, 0))
	engine := newEngine(today, tomorrow, saturday, nextMonth)

	cases := []struct {
		window models.TimeWindow
		want   []string
	}{
		{models.WindowToday, []string{"today"}},
		{models.WindowTomorrow, []string{"tomorrow"}},
		{models.WindowWeek, []string{"today", "tomorrow", "saturday"}},
		{models.WindowWeekend, []string{"saturday"}},
		{models.WindowAll, []string{"today", "tomorrow", "saturday", "nextmonth"}},
	}

	for _, tc := range cases {
		got := engine.FilteredGames(Filter{Window: tc.window})
		assert.Equal(t, tc.want, ids(got), "window %s", tc.window)
	}
}

func TestWeekendMatchesAnyWeek(t *testing.T) {
	// A Sunday two months out still counts as "weekend"
	farSunday := gameAt("farsunday", models.SportVolleyball, models.SkillCasual, false,
		time.Date(2025, time.August, 10, 9, 0, 0, 0, time.UTC))
	engine := newEngine(farSunday)

	got := engine.FilteredGames(Filter{Window: models.WindowWeekend})
	assert.Equal(t, []string{"farsunday"}, ids(got))
}

func TestSortedAscendingWithStableTies(t *testing.T) {
	late := gameAt("late", models.SportSoccer, models.SkillCasual, false, fixedNow.Add(8*time.Hour))
	early := gameAt("early", models.SportSoccer, models.SkillCasual, false, fixedNow.Add(1*time.Hour))
	tieA := gameAt("tieA", models.SportSoccer, models.SkillCasual, false, fixedNow.Add(3*time.Hour))
	tieB := gameAt("tieB", models.SportSoccer, models.SkillCasual, false, fixedNow.Add(3*time.Hour))
	engine := newEngine(late, early, tieA, tieB)

	got := engine.FilteredGames(Filter{Window: models.WindowAll})

	// ties keep insertion order: tieA was added before tieB
	assert.Equal(t, []string{"early", "tieA", "tieB", "late"}, ids(got))
}

func TestResultIsFreshSlice(t *testing.T) {
	g1 := gameAt("g1", models.SportSoccer, models.SkillCasual, false, fixedNow.Add(time.Hour))
	engine := newEngine(g1)

	first := engine.FilteredGames(Filter{Window: models.WindowAll})
	second := engine.FilteredGames(Filter{Window: models.WindowAll})

	first[0] = nil
	assert.NotNil(t, second[0])
}
