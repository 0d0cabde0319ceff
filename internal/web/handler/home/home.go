// Package home renders the public portfolio page: profile settings, featured
// and published projects, and skills grouped by category.
package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/profile"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/project"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/skill"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
)

const (
	// Path is the path to the public home page.
	Path = "/"

	// TemplateName is the name of the home template.
	TemplateName = "home"
)

// Service is the home handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the home handler.
var Handler = Service{}

// Init initializes the home handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
}

// Get renders the public portfolio page.
func (s *Service) Get(c *fiber.Ctx) error {
	settings, err := profile.Named(s.db)
	if err != nil {
		return err
	}

	featured, err := project.ListFeaturedPublished(s.db)
	if err != nil {
		return err
	}

	published, err := project.ListPublished(s.db)
	if err != nil {
		return err
	}

	skills, err := skill.ListGroupedByCategory(s.db)
	if err != nil {
		return err
	}

	return c.Render(TemplateName, fiber.Map{
		"title":    s.cfg.Title,
		"profile":  settings,
		"featured": featured,
		"projects": published,
		"skills":   skills,
	}, handler.BaseLayout)
}
