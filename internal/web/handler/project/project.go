// Package project renders the public detail page for a single published
// project, looked up by slug.
package project

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/profile"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/project"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
)

const (
	// Path is the path to the public project detail page.
	Path = "/project/:slug"

	// TemplateName is the name of the project detail template.
	TemplateName = "project"
)

// Service is the project detail handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the project detail handler.
var Handler = Service{}

// Init initializes the project detail handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
}

// Get renders a published project by slug. Drafts and unknown slugs both
// resolve to 404.
func (s *Service) Get(c *fiber.Ctx) error {
	p, err := project.GetBySlugPublished(s.db, c.Params("slug"))
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return fiber.ErrNotFound
		}

		return err
	}

	settings, err := profile.Named(s.db)
	if err != nil {
		return err
	}

	return c.Render(TemplateName, fiber.Map{
		"title":   s.cfg.Title,
		"profile": settings,
		"project": p,
	}, handler.BaseLayout)
}
