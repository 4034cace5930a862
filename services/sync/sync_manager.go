package sync

import (
	"fmt"

	"gorm.io/gorm"

	"courtside/models"
	postgres_models "courtside/models/postgres"
	"courtside/services/state"
)

/*
 * 'SyncManager' writes the volatile profile counters back to PostgreSQL.
 * Games themselves are never persisted; only gamesPlayed/gamesHosted and
 * the editable profile fields survive a restart.
 */
type SyncManager struct {
	state *state.AppState
	db    *gorm.DB
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(appState *state.AppState, db *gorm.DB) *SyncManager {
	return &SyncManager{
		state: appState,
		db:    db,
	}
}

// SyncProfileCounters flushes a user's counters to player_profiles
func (sm *SyncManager) SyncProfileCounters(user *models.User) error {
	result := sm.db.Model(&postgres_models.PlayerProfile{}).
		Where("username = ?", user.ID).
		Updates(map[string]interface{}{
			"games_played": user.GamesPlayed,
			"games_hosted": user.GamesHosted,
		})
	if result.Error != nil {
		return fmt.Errorf("error syncing profile counters: %v", result.Error)
	}
	return nil
}

// SyncCurrentUser persists the session user's counters and profile fields
func (sm *SyncManager) SyncCurrentUser() error {
	user := sm.state.CurrentUser()

	sports, err := sportsJSON(user)
	if err != nil {
		return err
	}

	result := sm.db.Model(&postgres_models.PlayerProfile{}).
		Where("username = ?", user.ID).
		Updates(map[string]interface{}{
			"first_name":   user.FirstName,
			"last_initial": user.LastInitial,
			"skill_band":   string(user.Skill),
			"availability": string(user.Availability),
			"sports":       sports,
			"bio":          user.Bio,
			"games_played": user.GamesPlayed,
			"games_hosted": user.GamesHosted,
		})
	if result.Error != nil {
		return fmt.Errorf("error syncing current user: %v", result.Error)
	}
	return nil
}
