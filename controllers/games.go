package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/models"
	"courtside/services/feed"
	"courtside/services/games"
	"courtside/services/roster"
	"courtside/services/socket_io/handlers"
	socketio_types "courtside/services/socket_io/types"
	"courtside/services/state"
)

func gameJSON(g *models.Game, viewer *models.User) gin.H {
	rosterNames := make([]gin.H, len(g.Roster))
	for i, u := range g.Roster {
		rosterNames[i] = gin.H{"id": u.ID, "name": u.DisplayName()}
	}
	waitlistNames := make([]gin.H, len(g.Waitlist))
	for i, u := range g.Waitlist {
		waitlistNames[i] = gin.H{"id": u.ID, "name": u.DisplayName()}
	}
	return gin.H{
		"game_id":        g.ID,
		"title":          g.Title,
		"sport":          g.Sport,
		"starts_at":      g.StartsAt,
		"location":       g.Location,
		"skill_band":     g.Skill,
		"player_cap":     g.PlayerCap,
		"on_campus":      g.OnCampus,
		"host":           gin.H{"id": g.Host.ID, "name": g.Host.DisplayName()},
		"roster":         rosterNames,
		"waitlist":       waitlistNames,
		"spots_left":     g.SpotsLeft(),
		"is_full":        g.IsFull(),
		"description":    g.Description,
		"action":         roster.ActionLabel(g, viewer),
		"matches_sports": viewer.PlaysSport(g.Sport),
	}
}

// @Summary Lists the game feed
// @Description Returns games matching the filter criteria, ascending by start time
// @Tags games
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param sport query string false "Sport filter"
// @Param skill query string false "Skill band filter"
// @Param on_campus query boolean false "On-campus games only"
// @Param window query string false "Time window (today/tomorrow/week/weekend/all)"
// @Success 200 {array} object{game_id=string}
// @Security ApiKeyAuth
// @Router /auth/games [get]
func ListGames(appState *state.AppState, feedEngine *feed.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := feed.Filter{
			Sport:        models.ParseSport(c.Query("sport")),
			Skill:        models.ParseSkillBand(c.Query("skill")),
			OnCampusOnly: c.Query("on_campus") == "true",
			Window:       models.ParseTimeWindow(c.Query("window")),
		}

		viewer := appState.CurrentUser()
		matching := feedEngine.FilteredGames(filter)

		out := make([]gin.H, len(matching))
		for i, g := range matching {
			out[i] = gameJSON(g, viewer)
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Gives info of a game
// @Description Given a game id, it will return its roster, waitlist and the viewer's action label
// @Tags games
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param game_id path string true "Id of the game wanted"
// @Success 200 {object} object{game_id=string}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/games/{game_id} [get]
func GetGameInfo(appState *state.AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID := c.Param("game_id")

		g, ok := appState.Game(gameID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusOK, gameJSON(g, appState.CurrentUser()))
	}
}

// @Summary Joins a game
// @Description Puts the current user on the roster, or the waitlist when the game is full. Re-joining is a no-op.
// @Tags games
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param game_id path string true "game_id"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/games/{game_id}/join [post]
func JoinGame(appState *state.AppState, rosterEngine *roster.Engine, sio *socketio_types.SocketServer) gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID := c.Param("game_id")
		user := appState.CurrentUser()

		if err := rosterEngine.Join(gameID, user); err != nil {
			if errors.Is(err, roster.ErrGameNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if g, ok := appState.Game(gameID); ok {
			handlers.BroadcastRosterUpdate(sio, g)
		}
		c.JSON(http.StatusOK, gin.H{"message": "joined game successfully"})
	}
}

// @Summary Leaves a game
// @Description Removes the current user from roster or waitlist, promoting the oldest waiter when a seat frees up
// @Tags games
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param game_id path string true "game_id"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/games/{game_id}/leave [post]
func LeaveGame(appState *state.AppState, rosterEngine *roster.Engine, sio *socketio_types.SocketServer) gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID := c.Param("game_id")
		user := appState.CurrentUser()

		promoted, err := rosterEngine.Leave(gameID, user)
		if err != nil {
			if errors.Is(err, roster.ErrGameNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if g, ok := appState.Game(gameID); ok {
			handlers.BroadcastRosterUpdate(sio, g)
			if promoted != nil {
				handlers.NotifyPromotion(sio, promoted.ID, g)
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "left game successfully"})
	}
}

// @Summary Creates games from a hosting request
// @Description Expands the request into recurrence+1 weekly instances with the host pre-enrolled
// @Tags games
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 201 {object} object{message=string,game_ids=[]string}
// @Failure 400 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/games [post]
func CreateGame(gamesEngine *games.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req games.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		created, err := gamesEngine.CreateGame(req)
		if err != nil {
			if errors.Is(err, games.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating game"})
			return
		}

		ids := make([]string, len(created))
		for i, g := range created {
			ids[i] = g.ID
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Games created successfully",
			"game_ids": ids,
		})
	}
}
