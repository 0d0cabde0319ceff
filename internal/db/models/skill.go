package models

import "time"

// Skill represents a single skill entry, grouped for display by the free-form
// Category string.
type Skill struct {
	ID       uint64 `gorm:"primaryKey"`
	Name     string `gorm:"size:255;not null"`
	Category string `gorm:"size:255;not null"`

	// Proficiency is a percentage in [0,100].
	Proficiency int     `gorm:"not null"`
	Icon        *string `gorm:"size:255"`

	// Order is the manual sort key within the category.
	Order int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
