// Package profilesettings implements the admin form over the key/value
// profile store, including the avatar upload.
package profilesettings

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/profile"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/storage"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/validation"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/navigation"
)

const (
	// Path is the path to the admin profile settings form.
	Path = "/admin/profile-settings"

	// TemplateName is the name of the profile settings template.
	TemplateName = "admin/profile"

	// Namespace is the object-store prefix for the avatar image.
	Namespace = "profile"

	// MaxAvatarSize caps avatar uploads at 2 MiB.
	MaxAvatarSize = 2 << 20
)

var (
	// ErrAvatarTooLarge is returned when the uploaded avatar exceeds MaxAvatarSize.
	ErrAvatarTooLarge = errors.New("avatar must be 2 MB or smaller")
	// ErrAvatarNotImage is returned when the uploaded avatar is not an image.
	ErrAvatarNotImage = errors.New("avatar must be an image")
)

// Form carries the text fields of the settings submission. The avatar arrives
// as a file upload and is checked by validateAvatar instead.
type Form struct {
	FullName    string `form:"full_name"    validate:"max=255"`
	Tagline     string `form:"tagline"      validate:"max=255"`
	Bio         string `form:"bio"`
	Email       string `form:"email"        validate:"omitempty,email"`
	Phone       string `form:"phone"        validate:"max=50"`
	Location    string `form:"location"     validate:"max=255"`
	ResumeURL   string `form:"resume_url"   validate:"omitempty,url"`
	GithubURL   string `form:"github_url"   validate:"omitempty,url"`
	LinkedinURL string `form:"linkedin_url" validate:"omitempty,url"`
	TwitterURL  string `form:"twitter_url"  validate:"omitempty,url"`
}

// values maps the form onto the settings store keys.
func (f *Form) values() map[string]*string {
	return map[string]*string{
		profile.KeyFullName:    &f.FullName,
		profile.KeyTagline:     &f.Tagline,
		profile.KeyBio:         &f.Bio,
		profile.KeyEmail:       &f.Email,
		profile.KeyPhone:       &f.Phone,
		profile.KeyLocation:    &f.Location,
		profile.KeyResumeURL:   &f.ResumeURL,
		profile.KeyGithubURL:   &f.GithubURL,
		profile.KeyLinkedinURL: &f.LinkedinURL,
		profile.KeyTwitterURL:  &f.TwitterURL,
	}
}

// Service is the profile settings handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	db    *gorm.DB
	store storage.Store
}

// Handler is the profile settings handler.
var Handler = Service{}

// Init initializes the profile settings handler.
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
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})
}

// Get renders the settings form with the current values.
func (s *Service) Get(c *fiber.Ctx) error {
	settings, err := profile.Named(s.db)
	if err != nil {
		return err
	}

	nav := navigation.NewContext("Profile Settings", "admin", "profile").
		AddBreadcrumb("Admin", "/admin", false).
		AddBreadcrumb("Profile Settings", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"nav":      nav,
		"title":    s.cfg.Title,
		"settings": settings,
		"saved":    c.Query("saved") != "",
	}, handler.BaseLayout)
}

// Post validates the submitted values and applies them as one batch. An
// uploaded avatar file is stored first and replaces the previous one; the old
// file is removed best-effort.
func (s *Service) Post(c *fiber.Ctx) error {
	form := parseForm(c)

	if err := validation.Struct(form); err != nil {
		return s.renderFormError(c, form, err)
	}

	values := form.values()

	upload, err := handler.FormUpload(c, profile.KeyAvatar)
	if err != nil {
		return err
	}

	if upload != nil {
		if err = validateAvatar(upload); err != nil {
			return s.renderFormError(c, form, err)
		}

		oldAvatar, err := profile.Get(s.db, profile.KeyAvatar)
		if err != nil {
			return err
		}

		path, err := s.store.Store(c.Context(), Namespace, upload)
		if err != nil {
			return err
		}

		values[profile.KeyAvatar] = &path

		if oldAvatar != nil && *oldAvatar != "" {
			if err = s.store.Delete(c.Context(), *oldAvatar); err != nil {
				log.Warn().Err(err).Str("path", *oldAvatar).Msg("failed to delete old avatar")
			}
		}
	}

	if err = profile.Apply(s.db, values); err != nil {
		return err
	}

	return c.Redirect(Path + "?saved=1")
}

// parseForm reads the multipart form fields.
func parseForm(c *fiber.Ctx) Form {
	return Form{
		FullName:    c.FormValue(profile.KeyFullName),
		Tagline:     c.FormValue(profile.KeyTagline),
		Bio:         c.FormValue(profile.KeyBio),
		Email:       c.FormValue(profile.KeyEmail),
		Phone:       c.FormValue(profile.KeyPhone),
		Location:    c.FormValue(profile.KeyLocation),
		ResumeURL:   c.FormValue(profile.KeyResumeURL),
		GithubURL:   c.FormValue(profile.KeyGithubURL),
		LinkedinURL: c.FormValue(profile.KeyLinkedinURL),
		TwitterURL:  c.FormValue(profile.KeyTwitterURL),
	}
}

// validateAvatar checks that the upload is an image within the size cap.
func validateAvatar(upload *storage.Upload) error {
	if upload.Size > MaxAvatarSize {
		return ErrAvatarTooLarge
	}

	if !strings.HasPrefix(upload.ContentType, "image/") {
		return ErrAvatarNotImage
	}

	return nil
}

// renderFormError re-renders the form with the submitted values. Validation
// failures and avatar rejections come back to the user; anything else is a
// real error.
func (s *Service) renderFormError(c *fiber.Ctx, form Form, err error) error {
	var validationErrs validation.Errors

	settings := make(map[string]string, len(profile.Keys))
	for key, value := range form.values() {
		settings[key] = *value
	}

	switch {
	case errors.As(err, &validationErrs):
		return c.Render(TemplateName, fiber.Map{
			"title":    s.cfg.Title,
			"settings": settings,
			"errors":   validationErrs,
		}, handler.BaseLayout)
	case errors.Is(err, ErrAvatarTooLarge), errors.Is(err, ErrAvatarNotImage):
		return c.Render(TemplateName, fiber.Map{
			"title":    s.cfg.Title,
			"settings": settings,
			"error":    err.Error(),
		}, handler.BaseLayout)
	default:
		return err
	}
}
