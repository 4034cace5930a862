package models

// Sport identifies the kind of pickup game. "all" is only meaningful
// as a filter value, never on a stored game.
type Sport string

const (
	SportBasketball Sport = "basketball"
	SportSoccer     Sport = "soccer"
	SportTennis     Sport = "tennis"
	SportPickleball Sport = "pickleball"
	SportVolleyball Sport = "volleyball"
	SportOther      Sport = "other"
	SportAll        Sport = "all"
)

// SkillBand is the self-reported competitiveness tier used for filtering
type SkillBand string

const (
	SkillCasual       SkillBand = "casual"
	SkillIntermediate SkillBand = "intermediate"
	SkillCompetitive  SkillBand = "competitive"
	SkillAll          SkillBand = "all"
)

type Availability string

const (
	AvailabilityWeeknights Availability = "weeknights"
	AvailabilityWeekends   Availability = "weekends"
	AvailabilityMornings   Availability = "mornings"
	AvailabilityAnytime    Availability = "anytime"
)

// TimeWindow is the relative calendar bucket used to filter the feed
type TimeWindow string

const (
	WindowToday    TimeWindow = "today"
	WindowTomorrow TimeWindow = "tomorrow"
	WindowWeek     TimeWindow = "week"
	WindowWeekend  TimeWindow = "weekend"
	WindowAll      TimeWindow = "all"
)

// RadiusPreset is one of the fixed search distances exposed to the map,
// in miles
type RadiusPreset int

const (
	Radius10 RadiusPreset = 10
	Radius20 RadiusPreset = 20
	Radius50 RadiusPreset = 50
)

// Next returns the following (larger) preset, capped at the maximum
func (r RadiusPreset) Next() RadiusPreset {
	switch r {
	case Radius10:
		return Radius20
	case Radius20:
		return Radius50
	default:
		return Radius50
	}
}

// Degrees converts the preset to approximate latitude/longitude degrees
func (r RadiusPreset) Degrees() float64 {
	return float64(r) / 69.0
}

// ParseSport returns SportAll for empty or unknown values, so query
// parameters degrade to "no filter" instead of erroring
func ParseSport(s string) Sport {
	switch Sport(s) {
	case SportBasketball, SportSoccer, SportTennis, SportPickleball, SportVolleyball, SportOther:
		return Sport(s)
	default:
		return SportAll
	}
}

func ParseSkillBand(s string) SkillBand {
	switch SkillBand(s) {
	case SkillCasual, SkillIntermediate, SkillCompetitive:
		return SkillBand(s)
	default:
		return SkillAll
	}
}

func ParseTimeWindow(s string) TimeWindow {
	switch TimeWindow(s) {
	case WindowToday, WindowTomorrow, WindowWeek, WindowWeekend:
		return TimeWindow(s)
	default:
		return WindowAll
	}
}
