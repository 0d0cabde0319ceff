package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is an ordered list of free-form tags stored as a JSON text column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}

	out, err := json.Marshal(l)

	return string(out), err
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// Project represents a portfolio project. Slug is the public lookup key and
// is always derived from the current title.
type Project struct {
	ID          uint64  `gorm:"primaryKey"`
	Title       string  `gorm:"size:255;not null"`
	Slug        string  `gorm:"uniqueIndex;size:255;not null"`
	Description string  `gorm:"type:text;not null"`
	Content     *string `gorm:"type:text"`

	// Image is the relative object-store path of the uploaded cover image.
	Image *string `gorm:"size:255"`

	Technologies StringList `gorm:"type:text"`
	DemoURL      *string    `gorm:"size:255"`
	GithubURL    *string    `gorm:"size:255"`
	CompletedAt  *time.Time

	IsFeatured  bool `gorm:"not null;default:false"`
	IsPublished bool `gorm:"not null;default:false"`

	// Order is the manual sort key for public listings.
	Order int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
