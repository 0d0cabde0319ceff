package home

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
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/profile"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
)

// noOpViews writes the template name so tests can assert which template was
// rendered.
type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, _ interface{}, _ ...string) error {
	_, _ = io.WriteString(w, name)
	return nil
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{Views: noOpViews{}})
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	err = db.AutoMigrate(&models.ProfileSetting{}, &models.Project{}, &models.Skill{})
	if err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Title: "Test Portfolio",
		Webserver: config.Webserver{
			URL:  "http://localhost",
			Port: 3000,
		},
	}
}

func TestGet_RendersHome(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp()

	if err := profile.SeedDefaults(db); err != nil {
		t.Fatalf("failed to seed profile defaults: %v", err)
	}

	err := db.Create(&models.Project{
		Title:       "Alpha",
		Slug:        "alpha",
		Description: "first",
		IsPublished: true,
	}).Error
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	err = db.Create(&models.Skill{Name: "Go", Category: "Backend", Proficiency: 90}).Error
	if err != nil {
		t.Fatalf("failed to create skill: %v", err)
	}

	var s Service
	s.Init(app, newTestConfig(), db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	bodyBytes, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(bodyBytes), TemplateName) {
		t.Fatalf("expected home template, got %q", string(bodyBytes))
	}
}

func TestGet_EmptyDatabaseStillRenders(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp()

	var s Service
	s.Init(app, newTestConfig(), db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}
}
