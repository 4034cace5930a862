package feed

import (
	"sort"
	"time"

	"courtside/models"
	"courtside/services/state"
)

// Filter holds the feed criteria. Zero values ("", WindowAll equivalent)
// mean "no restriction" for their dimension.
type Filter struct {
	Sport        models.Sport
	Skill        models.SkillBand
	OnCampusOnly bool
	Window       models.TimeWindow
}

/*
 * 'Engine' produces the visible, ordered game list for given filter
 * criteria. It is a pure read layer: every call re-evaluates the filter
 * against the live collection and wall clock, so results change across a
 * session as time passes. The clock is injected so the calendar buckets
 * are deterministic under test.
 */
type Engine struct {
	state *state.AppState
	now   func() time.Time
}

// NewEngine builds a feed engine. now may be nil, defaulting to time.Now.
func NewEngine(s *state.AppState, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{state: s, now: now}
}

// FilteredGames returns a fresh slice of matching games, ascending by
// scheduled time. The sort is stable: ties keep insertion order.
func (e *Engine) FilteredGames(f Filter) []*models.Game {
	now := e.now()
	out := make([]*models.Game, 0)
	for _, g := range e.state.Snapshot() {
		if matches(g, f, now) {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartsAt.Before(out[j].StartsAt)
	})
	return out
}

func matches(g *models.Game, f Filter, now time.Time) bool {
	if f.Sport != "" && f.Sport != models.SportAll && g.Sport != f.Sport {
		return false
	}
	if f.Skill != "" && f.Skill != models.SkillAll && g.Skill != f.Skill {
		return false
	}
	if f.OnCampusOnly && !g.OnCampus {
		return false
	}
	return inWindow(g.StartsAt, f.Window, now)
}

func inWindow(t time.Time, w models.TimeWindow, now time.Time) bool {
	switch w {
	case models.WindowToday:
		return sameDay(t, now)
	case models.WindowTomorrow:
		return sameDay(t, now.AddDate(0, 0, 1))
	case models.WindowWeek:
		ty, tw := t.ISOWeek()
		ny, nw := now.ISOWeek()
		return ty == ny && tw == nw
	case models.WindowWeekend:
		// any Saturday or Sunday, regardless of which week
		return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
	default:
		return true
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
