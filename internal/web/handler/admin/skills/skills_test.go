package skills

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
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

	if err = db.AutoMigrate(&models.Skill{}); err != nil {
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

func postForm(t *testing.T, app *fiber.App, target string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	return resp
}

func TestStore_CreatesSkillAndRedirects(t *testing.T) {
	app, db := newTestService(t)

	form := url.Values{
		"name":        {"Go"},
		"category":    {"Backend"},
		"proficiency": {"95"},
	}
	resp := postForm(t, app, Path, form)

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", resp.StatusCode)
	}

	var skill models.Skill
	if err := db.First(&skill).Error; err != nil {
		t.Fatalf("expected skill row: %v", err)
	}

	if skill.Name != "Go" || skill.Proficiency != 95 {
		t.Fatalf("unexpected skill: %+v", skill)
	}
}

func TestStore_ProficiencyOutOfRangeRerendersForm(t *testing.T) {
	app, db := newTestService(t)

	form := url.Values{
		"name":        {"Go"},
		"category":    {"Backend"},
		"proficiency": {"150"},
	}
	resp := postForm(t, app, Path, form)

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK on re-render, got %d", resp.StatusCode)
	}

	bodyBytes, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(bodyBytes), FormTemplateName) {
		t.Fatalf("expected form template, got %q", string(bodyBytes))
	}

	var count int64
	db.Model(&models.Skill{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows after validation failure, got %d", count)
	}
}

func TestUpdate_ReplacesFields(t *testing.T) {
	app, db := newTestService(t)

	skill := models.Skill{Name: "PHP", Category: "Backend", Proficiency: 80}
	if err := db.Create(&skill).Error; err != nil {
		t.Fatalf("failed to create skill: %v", err)
	}

	form := url.Values{
		"name":        {"PHP 8"},
		"category":    {"Backend"},
		"proficiency": {"85"},
	}
	resp := postForm(t, app, Path+"/"+strconv.FormatUint(skill.ID, 10), form)

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", resp.StatusCode)
	}

	var updated models.Skill
	if err := db.First(&updated, skill.ID).Error; err != nil {
		t.Fatalf("failed to reload skill: %v", err)
	}

	if updated.Name != "PHP 8" || updated.Proficiency != 85 {
		t.Fatalf("unexpected skill after update: %+v", updated)
	}
}

func TestDestroy_RemovesRow(t *testing.T) {
	app, db := newTestService(t)

	skill := models.Skill{Name: "Perl", Category: "Backend", Proficiency: 40}
	if err := db.Create(&skill).Error; err != nil {
		t.Fatalf("failed to create skill: %v", err)
	}

	resp := postForm(t, app, Path+"/"+strconv.FormatUint(skill.ID, 10)+"/delete", url.Values{})

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", resp.StatusCode)
	}

	var count int64
	db.Model(&models.Skill{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows after delete, got %d", count)
	}
}

func TestDestroy_UnknownIDIs404(t *testing.T) {
	app, _ := newTestService(t)

	resp := postForm(t, app, Path+"/999/delete", url.Values{})

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
