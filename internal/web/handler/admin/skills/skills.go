// Package skills implements the admin CRUD screens for skills.
package skills

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/skill"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/validation"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/navigation"
)

const (
	// Path is the base path of the admin skill screens.
	Path = "/admin/skills"

	// IndexTemplateName is the name of the skill list template.
	IndexTemplateName = "admin/skills/index"

	// FormTemplateName is the name of the skill create/edit template.
	FormTemplateName = "admin/skills/form"
)

// Service is the admin skills handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin skills handler.
var Handler = Service{}

// Init initializes the admin skills handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Index)
		router.Get("/new", s.New)
		router.Post(handler.RouterRootPath, s.Store)
		router.Get("/:id/edit", s.Edit)
		router.Post("/:id", s.Update)
		router.Post("/:id/delete", s.Destroy)
	})
}

// Index renders the skill list grouped by category.
func (s *Service) Index(c *fiber.Ctx) error {
	grouped, err := skill.ListGroupedByCategory(s.db)
	if err != nil {
		return err
	}

	nav := navigation.NewContext("Skills", "admin", "skills").
		AddBreadcrumb("Admin", "/admin", false).
		AddBreadcrumb("Skills", Path, true)

	return c.Render(IndexTemplateName, fiber.Map{
		"nav":     nav,
		"title":   s.cfg.Title,
		"skills":  grouped,
		"saved":   c.Query("saved") != "",
		"deleted": c.Query("deleted") != "",
	}, handler.BaseLayout)
}

// New renders an empty skill form.
func (s *Service) New(c *fiber.Ctx) error {
	return c.Render(FormTemplateName, fiber.Map{
		"title":  s.cfg.Title,
		"action": Path,
		"form":   skill.Form{},
	}, handler.BaseLayout)
}

// Store creates a skill from the submitted form.
func (s *Service) Store(c *fiber.Ctx) error {
	form := parseForm(c)

	if _, err := skill.Create(s.db, form); err != nil {
		return s.renderFormError(c, Path, form, err)
	}

	return c.Redirect(Path + "?saved=1")
}

// Edit renders the form pre-filled with an existing skill.
func (s *Service) Edit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.ErrNotFound
	}

	sk, err := skill.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, skill.ErrSkillNotFound) {
			return fiber.ErrNotFound
		}

		return err
	}

	form := skill.Form{
		Name:        sk.Name,
		Category:    sk.Category,
		Proficiency: sk.Proficiency,
		Order:       sk.Order,
	}

	if sk.Icon != nil {
		form.Icon = *sk.Icon
	}

	return c.Render(FormTemplateName, fiber.Map{
		"title":  s.cfg.Title,
		"action": Path + "/" + strconv.FormatUint(id, 10),
		"form":   form,
	}, handler.BaseLayout)
}

// Update replaces a skill with the submitted form.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.ErrNotFound
	}

	form := parseForm(c)

	if _, err = skill.Update(s.db, id, form); err != nil {
		if errors.Is(err, skill.ErrSkillNotFound) {
			return fiber.ErrNotFound
		}

		return s.renderFormError(c, Path+"/"+strconv.FormatUint(id, 10), form, err)
	}

	return c.Redirect(Path + "?saved=1")
}

// Destroy deletes a skill.
func (s *Service) Destroy(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.ErrNotFound
	}

	if err = skill.Delete(s.db, id); err != nil {
		if errors.Is(err, skill.ErrSkillNotFound) {
			return fiber.ErrNotFound
		}

		return err
	}

	return c.Redirect(Path + "?deleted=1")
}

// renderFormError re-renders the form with the submitted values on
// validation failure.
func (s *Service) renderFormError(c *fiber.Ctx, action string, form skill.Form, err error) error {
	var validationErrs validation.Errors
	if !errors.As(err, &validationErrs) {
		return err
	}

	return c.Render(FormTemplateName, fiber.Map{
		"title":  s.cfg.Title,
		"action": action,
		"form":   form,
		"errors": validationErrs,
	}, handler.BaseLayout)
}

func parseForm(c *fiber.Ctx) skill.Form {
	proficiency, _ := strconv.Atoi(c.FormValue("proficiency"))
	order, _ := strconv.Atoi(c.FormValue("order"))

	return skill.Form{
		Name:        c.FormValue("name"),
		Category:    c.FormValue("category"),
		Proficiency: proficiency,
		Icon:        c.FormValue("icon"),
		Order:       order,
	}
}

func parseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}
