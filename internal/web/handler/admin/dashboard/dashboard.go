// Package dashboard renders the admin landing page with content counts.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/navigation"
)

const (
	// Path is the path to the admin dashboard.
	Path = "/admin"

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
}

// Get renders the admin dashboard.
func (s *Service) Get(c *fiber.Ctx) error {
	var (
		projectCount   int64
		publishedCount int64
		skillCount     int64
	)

	s.db.Model(&models.Project{}).Count(&projectCount)
	s.db.Model(&models.Project{}).Where("is_published = ?", true).Count(&publishedCount)
	s.db.Model(&models.Skill{}).Count(&skillCount)

	nav := navigation.NewContext("Dashboard", "admin", "dashboard").
		AddBreadcrumb("Admin", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"nav":             nav,
		"title":           s.cfg.Title,
		"project_count":   projectCount,
		"published_count": publishedCount,
		"skill_count":     skillCount,
	}, handler.BaseLayout)
}
