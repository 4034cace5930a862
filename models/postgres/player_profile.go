package postgres

import (
	"gorm.io/datatypes"
)

/*
 * 'PlayerProfile' is the durable half of a player profile. The sports list
 * is stored as a jsonb array of sport labels. GamesPlayed/GamesHosted are
 * written back from the in-memory state by the sync manager.
 */
type PlayerProfile struct {
	Username     string         `gorm:"primaryKey;size:50;not null"`
	FirstName    string         `gorm:"size:50"`
	LastInitial  string         `gorm:"size:1"`
	SkillBand    string         `gorm:"size:20;default:'casual'"`
	Availability string         `gorm:"size:20;default:'anytime'"`
	Sports       datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Bio          string         `gorm:"type:text"`
	GamesPlayed  int            `gorm:"default:0"`
	GamesHosted  int            `gorm:"default:0"`
}
