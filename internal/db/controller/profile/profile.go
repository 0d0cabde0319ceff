// Package profile provides the key/value settings store backing the owner's
// profile fields.
package profile

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
)

const (
	keyQueryPattern = "key = ?"
)

var (
	// ErrKeyEmpty is returned when a setting key is empty.
	ErrKeyEmpty = errors.New("profile setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Named profile setting keys.
const (
	KeyFullName    = "full_name"
	KeyTagline     = "tagline"
	KeyBio         = "bio"
	KeyEmail       = "email"
	KeyPhone       = "phone"
	KeyLocation    = "location"
	KeyAvatar      = "avatar"
	KeyResumeURL   = "resume_url"
	KeyGithubURL   = "github_url"
	KeyLinkedinURL = "linkedin_url"
	KeyTwitterURL  = "twitter_url"
)

// Keys are the named profile settings rendered on the public site and the
// admin form. They are seeded at setup and never deleted.
var Keys = []string{
	KeyFullName,
	KeyTagline,
	KeyBio,
	KeyEmail,
	KeyPhone,
	KeyLocation,
	KeyAvatar,
	KeyResumeURL,
	KeyGithubURL,
	KeyLinkedinURL,
	KeyTwitterURL,
}

// defaults are the initial values written by SeedDefaults.
var defaults = map[string]string{
	KeyFullName: "Your Name",
	KeyTagline:  "Full Stack Developer",
	KeyBio:      "Passionate developer...",
	KeyEmail:    "your@email.com",
}

// Get retrieves the value for a key. A key without a row resolves to nil,
// not an error.
func Get(db *gorm.DB, key string) (*string, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrKeyEmpty
	}

	var setting models.ProfileSetting
	result := db.Where(keyQueryPattern, key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return setting.Value, nil
}

// Set creates or overwrites the value for a key (idempotent upsert).
func Set(db *gorm.DB, key string, value *string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrKeyEmpty
	}

	var setting models.ProfileSetting
	result := db.Where(keyQueryPattern, key).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return db.Create(&models.ProfileSetting{Key: key, Value: value}).Error
	}
	if result.Error != nil {
		return result.Error
	}

	setting.Value = value

	return db.Save(&setting).Error
}

// Apply writes a batch of settings in a single transaction so a failed
// multi-field profile update never leaves a partially applied profile.
func Apply(db *gorm.DB, values map[string]*string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := Set(tx, key, value); err != nil {
				return err
			}
		}

		return nil
	})
}

// AllAsMap returns every stored key/value pair. Null values map to the empty
// string, which is what the admin form renders for them.
func AllAsMap(db *gorm.DB) (map[string]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.ProfileSetting
	if err := db.Find(&settings).Error; err != nil {
		return nil, err
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		if s.Value != nil {
			out[s.Key] = *s.Value
		} else {
			out[s.Key] = ""
		}
	}

	return out, nil
}

// Named returns the named profile keys only, with absent rows and null
// values resolved to the empty string. This is the public site's profile
// snapshot.
func Named(db *gorm.DB) (map[string]string, error) {
	all, err := AllAsMap(db)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(Keys))
	for _, key := range Keys {
		out[key] = all[key]
	}

	return out, nil
}

// SeedDefaults inserts any missing named key with its initial value. Existing
// rows are left untouched, so reruns are safe.
func SeedDefaults(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, key := range Keys {
			var count int64
			if err := tx.Model(&models.ProfileSetting{}).Where(keyQueryPattern, key).Count(&count).Error; err != nil {
				return err
			}

			if count > 0 {
				continue
			}

			value := defaults[key]
			if err := tx.Create(&models.ProfileSetting{Key: key, Value: &value}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
