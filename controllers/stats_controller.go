package controllers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	redis_models "courtside/models/redis"
	"courtside/services/redis"
)

type StatsController struct {
	DB          *sql.DB
	RedisClient *redis.RedisClient
}

// GetPlayerStats returns the persisted counters, skill band and current
// presence for a player
func (sc *StatsController) GetPlayerStats(c *gin.Context) {
	username := c.Param("username")

	var stats struct {
		Username    string `json:"username"`
		SkillBand   string `json:"skill_band"`
		GamesPlayed int    `json:"games_played"`
		GamesHosted int    `json:"games_hosted"`
	}

	err := sc.DB.QueryRow(`
		SELECT username, skill_band, games_played, games_hosted
		FROM player_profiles
		WHERE username = $1
	`, username).Scan(
		&stats.Username, &stats.SkillBand, &stats.GamesPlayed, &stats.GamesHosted,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error querying database: " + err.Error()})
		}
		return
	}

	// Rank the player against everyone else by games played
	var rank int
	err = sc.DB.QueryRow(`
		SELECT COUNT(*) + 1
		FROM player_profiles
		WHERE games_played > $1
	`, stats.GamesPlayed).Scan(&rank)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing rank: " + err.Error()})
		return
	}

	// Presence is best-effort: absent or unreadable reads as offline
	status := string(redis_models.StatusOffline)
	if sc.RedisClient != nil {
		if presence, err := sc.RedisClient.GetPlayerPresence(username); err == nil {
			status = string(presence.Status)
		}
	}

	response := gin.H{
		"username":     stats.Username,
		"skill_band":   stats.SkillBand,
		"games_played": stats.GamesPlayed,
		"games_hosted": stats.GamesHosted,
		"rank":         rank,
		"status":       status,
	}

	c.JSON(http.StatusOK, response)
}
