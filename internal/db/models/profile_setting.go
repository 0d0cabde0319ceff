// Package models contains database model definitions.
package models

import "time"

// ProfileSetting represents one key/value row of the owner's profile.
// The full profile is the logical map over all rows; a missing row is
// equivalent to a null value.
type ProfileSetting struct {
	ID    uint64  `gorm:"primaryKey"`
	Key   string  `gorm:"uniqueIndex;size:100;not null"`
	Value *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
