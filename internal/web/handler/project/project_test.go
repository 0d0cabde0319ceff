package project

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
)

type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, _ interface{}, _ ...string) error {
	_, _ = io.WriteString(w, name)
	return nil
}

func newTestService(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	err = db.AutoMigrate(&models.ProfileSetting{}, &models.Project{})
	if err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	app := fiber.New(fiber.Config{Views: noOpViews{}})

	cfg := &config.Config{
		Title: "Test Portfolio",
		Webserver: config.Webserver{
			URL:  "http://localhost",
			Port: 3000,
		},
	}

	var s Service
	s.Init(app, cfg, db)

	return app, db
}

func get(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	return resp
}

func TestGet_PublishedProjectRenders(t *testing.T) {
	app, db := newTestService(t)

	err := db.Create(&models.Project{
		Title:       "Alpha",
		Slug:        "alpha",
		Description: "first",
		IsPublished: true,
	}).Error
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	resp := get(t, app, "/project/alpha")

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	bodyBytes, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(bodyBytes), TemplateName) {
		t.Fatalf("expected project template, got %q", string(bodyBytes))
	}
}

func TestGet_DraftProjectIs404(t *testing.T) {
	app, db := newTestService(t)

	err := db.Create(&models.Project{
		Title:       "Hidden",
		Slug:        "hidden",
		Description: "draft",
		IsPublished: false,
	}).Error
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	resp := get(t, app, "/project/hidden")

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for draft, got %d", resp.StatusCode)
	}
}

func TestGet_UnknownSlugIs404(t *testing.T) {
	app, _ := newTestService(t)

	resp := get(t, app, "/project/nope")

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown slug, got %d", resp.StatusCode)
	}
}
