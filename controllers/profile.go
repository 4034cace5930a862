package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/models"
	"courtside/services/state"
	"courtside/services/sync"
)

type profileUpdate struct {
	FirstName    *string  `json:"first_name"`
	LastInitial  *string  `json:"last_initial"`
	Skill        *string  `json:"skill_band"`
	Availability *string  `json:"availability"`
	Sports       []string `json:"sports"`
	Bio          *string  `json:"bio"`
}

// @Summary Returns the current user's profile
// @Tags profile
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{id=string}
// @Security ApiKeyAuth
// @Router /auth/me [get]
func GetProfile(appState *state.AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, appState.CurrentUser())
	}
}

// @Summary Updates the current user's profile
// @Description Applies the submitted fields in memory and persists them through the sync manager
// @Tags profile
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Security ApiKeyAuth
// @Router /auth/update [patch]
func UpdateProfile(appState *state.AppState, syncManager *sync.SyncManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update profileUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		appState.UpdateCurrentUser(func(u *models.User) {
			if update.FirstName != nil {
				u.FirstName = *update.FirstName
			}
			if update.LastInitial != nil {
				u.LastInitial = *update.LastInitial
			}
			if update.Skill != nil {
				u.Skill = models.ParseSkillBand(*update.Skill)
			}
			if update.Availability != nil {
				u.Availability = models.Availability(*update.Availability)
			}
			if update.Sports != nil {
				sports := make([]models.Sport, 0, len(update.Sports))
				for _, s := range update.Sports {
					sports = append(sports, models.ParseSport(s))
				}
				u.Sports = sports
			}
			if update.Bio != nil {
				u.Bio = *update.Bio
			}
		})

		if syncManager != nil {
			if err := syncManager.SyncCurrentUser(); err != nil {
				// Memory is the source of truth; a failed flush is not fatal
				log.Printf("Warning: profile sync failed: %v", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
	}
}
