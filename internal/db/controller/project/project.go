// Package project provides CRUD operations over portfolio projects,
// including slug derivation and image file lifecycle management.
package project

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/slug"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/storage"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/validation"
)

const (
	// Namespace is the object-store prefix for uploaded project images.
	Namespace = "projects"

	// featuredLimit caps the featured selection on the home page. This is a
	// fixed product rule, not configuration.
	featuredLimit = 3

	// completedAtLayout is the expected form layout for completion dates.
	completedAtLayout = "2006-01-02"
)

var (
	// ErrProjectNotFound is returned when a project lookup fails.
	ErrProjectNotFound = errors.New("project not found")
	// ErrSlugTaken is returned when another project already owns the derived slug.
	ErrSlugTaken = errors.New("project slug already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Form carries the validated fields of a project create/update submission.
// Updates replace every field.
type Form struct {
	Title        string   `form:"title"        validate:"required,max=255"`
	Description  string   `form:"description"  validate:"required"`
	Content      string   `form:"content"`
	Technologies []string `form:"technologies"`
	DemoURL      string   `form:"demo_url"     validate:"omitempty,url"`
	GithubURL    string   `form:"github_url"   validate:"omitempty,url"`
	CompletedAt  string   `form:"completed_at" validate:"omitempty,datetime=2006-01-02"`
	IsFeatured   bool     `form:"is_featured"`
	IsPublished  bool     `form:"is_published"`
	Order        int      `form:"order"`
}

// orderAsc sorts by the manual sort key.
func orderAsc(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}})
}

// List returns all projects ordered ascending by their manual sort key.
func List(db *gorm.DB) ([]models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var projects []models.Project
	if err := orderAsc(db).Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

// ListPublished returns all published projects ordered by sort key.
func ListPublished(db *gorm.DB) ([]models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var projects []models.Project
	err := orderAsc(db.Where("is_published = ?", true)).Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return projects, nil
}

// ListFeaturedPublished returns at most three published, featured projects
// ordered by sort key.
func ListFeaturedPublished(db *gorm.DB) ([]models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var projects []models.Project
	err := orderAsc(db.Where("is_published = ? AND is_featured = ?", true, true)).
		Limit(featuredLimit).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return projects, nil
}

// GetBySlugPublished returns the published project with this slug.
func GetBySlugPublished(db *gorm.DB, slugValue string) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var project models.Project
	err := db.Where("slug = ? AND is_published = ?", slugValue, true).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	return &project, nil
}

// GetByID returns the project with this id regardless of publish state.
func GetByID(db *gorm.DB, id uint64) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var project models.Project
	err := db.First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	return &project, nil
}

// Create validates the form, stores the uploaded image (if any) and inserts
// the row with a slug derived from the title. A duplicate slug surfaces the
// unique index violation as ErrSlugTaken; there is no pre-check.
func Create(ctx context.Context, db *gorm.DB, store storage.Store, form Form, upload *storage.Upload) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := validation.Struct(form); err != nil {
		return nil, err
	}

	project := models.Project{Slug: slug.Make(form.Title)}
	applyForm(&project, form)

	if upload != nil {
		path, err := store.Store(ctx, Namespace, upload)
		if err != nil {
			return nil, err
		}

		project.Image = &path
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&project).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	return &project, nil
}

// Update validates the form and replaces every field of the project. A new
// upload replaces the stored image and deletes the old file first; the slug
// is re-derived from the submitted title unconditionally, so it always
// reflects the current title.
func Update(ctx context.Context, db *gorm.DB, store storage.Store, id uint64, form Form, upload *storage.Upload) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	project, err := GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if err = validation.Struct(form); err != nil {
		return nil, err
	}

	if upload != nil {
		deleteImage(ctx, store, project)

		path, err := store.Store(ctx, Namespace, upload)
		if err != nil {
			return nil, err
		}

		project.Image = &path
	}

	project.Slug = slug.Make(form.Title)
	applyForm(project, form)

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(project).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	return project, nil
}

// Delete removes the stored image file (if any) and then deletes the row.
// There is no soft delete.
func Delete(ctx context.Context, db *gorm.DB, store storage.Store, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	project, err := GetByID(db, id)
	if err != nil {
		return err
	}

	deleteImage(ctx, store, project)

	return db.Delete(&models.Project{}, id).Error
}

// deleteImage removes the project's stored image best-effort. Cleanup
// failures are logged, never surfaced; the row operation must still succeed.
func deleteImage(ctx context.Context, store storage.Store, project *models.Project) {
	if project.Image == nil || *project.Image == "" {
		return
	}

	if err := store.Delete(ctx, *project.Image); err != nil {
		log.Warn().Err(err).Str("path", *project.Image).Msg("failed to delete old project image")
	}
}

// applyForm copies every submitted field onto the row, leaving identity,
// slug and image handling to the caller.
func applyForm(project *models.Project, form Form) {
	project.Title = form.Title
	project.Description = form.Description
	project.Content = nilIfEmpty(form.Content)
	project.Technologies = models.StringList(form.Technologies)
	project.DemoURL = nilIfEmpty(form.DemoURL)
	project.GithubURL = nilIfEmpty(form.GithubURL)
	project.CompletedAt = parseCompletedAt(form.CompletedAt)
	project.IsFeatured = form.IsFeatured
	project.IsPublished = form.IsPublished
	project.Order = form.Order
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// parseCompletedAt turns the validated date string into a time value. The
// layout was already enforced by the datetime validation rule.
func parseCompletedAt(s string) *time.Time {
	if s == "" {
		return nil
	}

	t, err := time.Parse(completedAtLayout, s)
	if err != nil {
		return nil
	}

	return &t
}
