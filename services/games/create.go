package games

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	game_constants "courtside/constants/game"
	"courtside/models"
	"courtside/services/state"
)

// ErrValidation wraps all creation-request rejections
var ErrValidation = errors.New("invalid game request")

// Request is a hosting request. Recurrence is the number of weekly
// repeats on top of the base instance.
type Request struct {
	Title       string           `json:"title"`
	Sport       models.Sport     `json:"sport"`
	StartsAt    time.Time        `json:"starts_at"`
	Location    string           `json:"location"`
	Skill       models.SkillBand `json:"skill_band"`
	PlayerCap   int              `json:"player_cap"`
	OnCampus    bool             `json:"on_campus"`
	Recurrence  int              `json:"recurrence"`
	Description string           `json:"description"`
}

/*
 * 'Engine' expands a hosting request into recurrence+1 weekly game
 * instances, each with a fresh id and the host pre-enrolled as the sole
 * roster member. It is an unconditional generator: it does not check for
 * conflicts with existing games at the same location and time.
 */
type Engine struct {
	state *state.AppState
}

func NewEngine(s *state.AppState) *Engine {
	return &Engine{state: s}
}

// CreateGame validates the request, generates the instances and appends
// them to the collection in one batch. The host's hosted counter goes up
// by the number of instances created.
func (e *Engine) CreateGame(req Request) ([]*models.Game, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	host := e.state.CurrentUser()
	batch := make([]*models.Game, 0, req.Recurrence+1)
	for offset := 0; offset <= req.Recurrence; offset++ {
		g := &models.Game{
			ID:          e.newGameID(),
			Title:       req.Title,
			Sport:       req.Sport,
			StartsAt:    req.StartsAt.AddDate(0, 0, 7*offset),
			Location:    req.Location,
			Skill:       req.Skill,
			PlayerCap:   req.PlayerCap,
			OnCampus:    req.OnCampus,
			Host:        host,
			Roster:      []*models.User{host},
			Description: req.Description,
		}
		batch = append(batch, g)
	}

	e.state.AddHostedGames(host, batch...)
	return batch, nil
}

func validate(req Request) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if req.PlayerCap <= 0 {
		return fmt.Errorf("%w: player cap must be positive", ErrValidation)
	}
	if req.PlayerCap > game_constants.MaxPlayerCap {
		return fmt.Errorf("%w: player cap must be at most %d", ErrValidation, game_constants.MaxPlayerCap)
	}
	if req.Recurrence < 0 {
		return fmt.Errorf("%w: recurrence must not be negative", ErrValidation)
	}
	if req.Recurrence > game_constants.MaxRecurrence {
		return fmt.Errorf("%w: recurrence must be at most %d", ErrValidation, game_constants.MaxRecurrence)
	}
	if req.Sport == "" || req.Sport == models.SportAll {
		return fmt.Errorf("%w: a concrete sport is required", ErrValidation)
	}
	return nil
}

// Random game id generation
const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generateGameID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// Ensure the id is truly unique within the in-memory collection
func (e *Engine) newGameID() string {
	for {
		id := generateGameID(game_constants.GameIDLength)
		if !e.state.HasGame(id) {
			return id
		}
	}
}
