// Package projects implements the admin CRUD screens for portfolio projects.
package projects

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/project"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/storage"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/validation"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/navigation"
)

const (
	// Path is the base path of the admin project screens.
	Path = "/admin/projects"

	// IndexTemplateName is the name of the project list template.
	IndexTemplateName = "admin/projects/index"

	// FormTemplateName is the name of the project create/edit template.
	FormTemplateName = "admin/projects/form"
)

// Service is the admin projects handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	db    *gorm.DB
	store storage.Store
}

// Handler is the admin projects handler.
var Handler = Service{}

// Init initializes the admin projects handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, store storage.Store) {
	if app == nil || cfg == nil || db == nil || store == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.store = store

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

// Index renders the project list.
func (s *Service) Index(c *fiber.Ctx) error {
	projects, err := project.List(s.db)
	if err != nil {
		return err
	}

	nav := navigation.NewContext("Projects", "admin", "projects").
		AddBreadcrumb("Admin", "/admin", false).
		AddBreadcrumb("Projects", Path, true)

	return c.Render(IndexTemplateName, fiber.Map{
		"nav":      nav,
		"title":    s.cfg.Title,
		"projects": projects,
		"saved":    c.Query("saved") != "",
		"deleted":  c.Query("deleted") != "",
	}, handler.BaseLayout)
}

// New renders an empty project form.
func (s *Service) New(c *fiber.Ctx) error {
	return c.Render(FormTemplateName, fiber.Map{
		"title":  s.cfg.Title,
		"action": Path,
		"form":   project.Form{},
	}, handler.BaseLayout)
}

// Store creates a project from the submitted form.
func (s *Service) Store(c *fiber.Ctx) error {
	form := parseForm(c)

	upload, err := handler.FormUpload(c, "image")
	if err != nil {
		return err
	}

	if _, err = project.Create(c.Context(), s.db, s.store, form, upload); err != nil {
		return s.renderFormError(c, Path, form, err)
	}

	return c.Redirect(Path + "?saved=1")
}

// Edit renders the form pre-filled with an existing project.
func (s *Service) Edit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.ErrNotFound
	}

	p, err := project.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return fiber.ErrNotFound
		}

		return err
	}

	form := project.Form{
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		IsFeatured:   p.IsFeatured,
		IsPublished:  p.IsPublished,
		Order:        p.Order,
	}

	if p.Content != nil {
		form.Content = *p.Content
	}

	if p.DemoURL != nil {
		form.DemoURL = *p.DemoURL
	}

	if p.GithubURL != nil {
		form.GithubURL = *p.GithubURL
	}

	if p.CompletedAt != nil {
		form.CompletedAt = p.CompletedAt.Format("2006-01-02")
	}

	return c.Render(FormTemplateName, fiber.Map{
		"title":   s.cfg.Title,
		"action":  Path + "/" + strconv.FormatUint(id, 10),
		"form":    form,
		"project": p,
	}, handler.BaseLayout)
}

// Update replaces a project with the submitted form.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.ErrNotFound
	}

	form := parseForm(c)

	upload, err := handler.FormUpload(c, "image")
	if err != nil {
		return err
	}

	if _, err = project.Update(c.Context(), s.db, s.store, id, form, upload); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return fiber.ErrNotFound
		}

		return s.renderFormError(c, Path+"/"+strconv.FormatUint(id, 10), form, err)
	}

	return c.Redirect(Path + "?saved=1")
}

// Destroy deletes a project, image file included.
func (s *Service) Destroy(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.ErrNotFound
	}

	if err = project.Delete(c.Context(), s.db, s.store, id); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return fiber.ErrNotFound
		}

		return err
	}

	return c.Redirect(Path + "?deleted=1")
}

// renderFormError re-renders the form with the submitted values. Validation
// failures and slug conflicts come back to the user; anything else is a real
// error.
func (s *Service) renderFormError(c *fiber.Ctx, action string, form project.Form, err error) error {
	var validationErrs validation.Errors

	switch {
	case errors.As(err, &validationErrs):
		return c.Render(FormTemplateName, fiber.Map{
			"title":  s.cfg.Title,
			"action": action,
			"form":   form,
			"errors": validationErrs,
		}, handler.BaseLayout)
	case errors.Is(err, project.ErrSlugTaken):
		return c.Render(FormTemplateName, fiber.Map{
			"title":  s.cfg.Title,
			"action": action,
			"form":   form,
			"error":  "A project with this title already exists",
		}, handler.BaseLayout)
	default:
		return err
	}
}

// parseForm reads the multipart form fields. Technologies come in as one
// comma separated text field.
func parseForm(c *fiber.Ctx) project.Form {
	order, _ := strconv.Atoi(c.FormValue("order"))

	return project.Form{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		Content:      c.FormValue("content"),
		Technologies: splitTechnologies(c.FormValue("technologies")),
		DemoURL:      c.FormValue("demo_url"),
		GithubURL:    c.FormValue("github_url"),
		CompletedAt:  c.FormValue("completed_at"),
		IsFeatured:   c.FormValue("is_featured") != "",
		IsPublished:  c.FormValue("is_published") != "",
		Order:        order,
	}
}

func splitTechnologies(value string) []string {
	var out []string

	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func parseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}
