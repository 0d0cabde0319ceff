// Package skill provides CRUD operations over skills and the grouped-by-
// category read model used on the public site.
package skill

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/validation"
)

var (
	// ErrSkillNotFound is returned when a skill lookup fails.
	ErrSkillNotFound = errors.New("skill not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Form carries the validated fields of a skill create/update submission.
type Form struct {
	Name        string `form:"name"        validate:"required,max=255"`
	Category    string `form:"category"    validate:"required,max=255"`
	Proficiency int    `form:"proficiency" validate:"min=0,max=100"`
	Icon        string `form:"icon"`
	Order       int    `form:"order"`
}

// Grouped is the category-grouped read model. Categories preserves the
// first-seen order of the (category, order) sort; keys are the stored
// category strings, case-sensitive and unnormalized.
type Grouped struct {
	Categories []string
	ByCategory map[string][]models.Skill
}

// categoryOrderAsc sorts by category, then by the manual sort key within it.
func categoryOrderAsc(db *gorm.DB) *gorm.DB {
	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "category"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}})
}

// List returns all skills ordered by (category, order).
func List(db *gorm.DB) ([]models.Skill, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var skills []models.Skill
	if err := categoryOrderAsc(db).Find(&skills).Error; err != nil {
		return nil, err
	}

	return skills, nil
}

// ListGroupedByCategory folds the sorted skill list into the grouped read
// model. The grouping is a pure transformation over the sort result, not a
// stored structure.
func ListGroupedByCategory(db *gorm.DB) (*Grouped, error) {
	skills, err := List(db)
	if err != nil {
		return nil, err
	}

	return Group(skills), nil
}

// Group folds an ordered skill list into the grouped read model.
func Group(skills []models.Skill) *Grouped {
	out := &Grouped{
		Categories: make([]string, 0),
		ByCategory: make(map[string][]models.Skill),
	}

	for _, s := range skills {
		if _, seen := out.ByCategory[s.Category]; !seen {
			out.Categories = append(out.Categories, s.Category)
		}

		out.ByCategory[s.Category] = append(out.ByCategory[s.Category], s)
	}

	return out
}

// GetByID returns the skill with this id.
func GetByID(db *gorm.DB, id uint64) (*models.Skill, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var skill models.Skill
	err := db.First(&skill, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}

	return &skill, nil
}

// Create validates the form and inserts the skill.
func Create(db *gorm.DB, form Form) (*models.Skill, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := validation.Struct(form); err != nil {
		return nil, err
	}

	skill := models.Skill{}
	applyForm(&skill, form)

	if err := db.Create(&skill).Error; err != nil {
		return nil, err
	}

	return &skill, nil
}

// Update validates the form and replaces every field of the skill.
func Update(db *gorm.DB, id uint64, form Form) (*models.Skill, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	skill, err := GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if err = validation.Struct(form); err != nil {
		return nil, err
	}

	applyForm(skill, form)

	if err = db.Save(skill).Error; err != nil {
		return nil, err
	}

	return skill, nil
}

// Delete removes the skill. There are no cascading side effects.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Skill{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}

	return nil
}

func applyForm(skill *models.Skill, form Form) {
	skill.Name = form.Name
	skill.Category = form.Category
	skill.Proficiency = form.Proficiency
	skill.Order = form.Order

	if form.Icon != "" {
		skill.Icon = &form.Icon
	} else {
		skill.Icon = nil
	}
}
