package postgres

import (
	"time"
)

/*
 * 'Account' is the persisted credential record behind a player. It contains
 * a reference to PlayerProfile through the username.
 */
type Account struct {
	Email         string    `gorm:"primaryKey;size:100;not null"`
	Username      string    `gorm:"size:50;not null;uniqueIndex"`
	PasswordHash  string    `gorm:"size:255;not null"`
	PhoneNumber   string    `gorm:"size:20;index"`
	PhoneVerified bool      `gorm:"default:false"`
	Provider      string    `gorm:"size:20;default:'local'"` // "local" or "google"
	FullName      string    `gorm:"size:100"`
	MemberSince   time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationship with the player profile
	PlayerProfile PlayerProfile `gorm:"foreignKey:Username;constraint:OnDelete:CASCADE"`
}
