package daemon

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/profile"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/slug"
)

// SeedSampleContent fills an empty database with demo projects, skills and
// profile settings so a fresh install has something to show. Existing rows are
// left untouched.
func SeedSampleContent(cfg *config.Config) error {
	db := openDB(cfg)

	seed(cfg, db)

	if err := seedSampleProfile(db); err != nil {
		return err
	}

	if err := seedSampleProjects(db); err != nil {
		return err
	}

	if err := seedSampleSkills(db); err != nil {
		return err
	}

	log.Info().Msg("sample content loaded")

	return nil
}

func strPtr(s string) *string { return &s }

func datePtr(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}

	return &t
}

func seedSampleProfile(db *gorm.DB) error {
	values := map[string]*string{
		profile.KeyFullName: strPtr("John Doe"),
		profile.KeyTagline:  strPtr("Full Stack Developer & Tech Enthusiast"),
		profile.KeyBio: strPtr("I am a passionate full stack developer with over 5 years of experience " +
			"building web applications. I love working with modern technologies and solving complex problems."),
		profile.KeyEmail:       strPtr("john.doe@example.com"),
		profile.KeyPhone:       strPtr("+1 (555) 123-4567"),
		profile.KeyLocation:    strPtr("San Francisco, CA"),
		profile.KeyGithubURL:   strPtr("https://github.com/johndoe"),
		profile.KeyLinkedinURL: strPtr("https://linkedin.com/in/johndoe"),
		profile.KeyTwitterURL:  strPtr("https://twitter.com/johndoe"),
	}

	return profile.Apply(db, values)
}

func seedSampleProjects(db *gorm.DB) error {
	var count int64
	db.Model(&models.Project{}).Count(&count)
	if count > 0 {
		return nil
	}

	projects := []models.Project{
		{
			Title:       "E-Commerce Platform",
			Description: "A full-featured e-commerce platform with product management, cart and checkout.",
			Content: strPtr("Built a complete e-commerce solution featuring product catalogs, " +
				"shopping cart functionality, secure payment processing, and an admin dashboard " +
				"for inventory management."),
			Technologies: models.StringList{"Go", "Fiber", "MySQL", "Redis"},
			DemoURL:      strPtr("https://demo.example.com"),
			GithubURL:    strPtr("https://github.com/johndoe/ecommerce"),
			CompletedAt:  datePtr("2024-06-15"),
			IsFeatured:   true,
			IsPublished:  true,
			Order:        1,
		},
		{
			Title:       "Task Management App",
			Description: "A collaborative task management application with real-time updates.",
			Content: strPtr("Developed a team productivity tool with boards, task assignment, " +
				"due dates and real-time notifications over websockets."),
			Technologies: models.StringList{"Go", "Vue.js", "PostgreSQL"},
			GithubURL:    strPtr("https://github.com/johndoe/taskapp"),
			CompletedAt:  datePtr("2024-01-20"),
			IsFeatured:   true,
			IsPublished:  true,
			Order:        2,
		},
		{
			Title:        "Portfolio Website Builder",
			Description:  "A drag and drop website builder aimed at personal portfolios.",
			Technologies: models.StringList{"Go", "JavaScript", "TailwindCSS"},
			DemoURL:      strPtr("https://builder.example.com"),
			CompletedAt:  datePtr("2023-09-01"),
			IsPublished:  true,
			Order:        3,
		},
	}

	for i := range projects {
		projects[i].Slug = slug.Make(projects[i].Title)
	}

	return db.Create(&projects).Error
}

func seedSampleSkills(db *gorm.DB) error {
	var count int64
	db.Model(&models.Skill{}).Count(&count)
	if count > 0 {
		return nil
	}

	skills := []models.Skill{
		{Name: "Go", Category: "Backend", Proficiency: 95, Order: 1},
		{Name: "PHP", Category: "Backend", Proficiency: 90, Order: 2},
		{Name: "Node.js", Category: "Backend", Proficiency: 80, Order: 3},
		{Name: "Python", Category: "Backend", Proficiency: 75, Order: 4},
		{Name: "JavaScript", Category: "Frontend", Proficiency: 90, Order: 1},
		{Name: "Vue.js", Category: "Frontend", Proficiency: 85, Order: 2},
		{Name: "React", Category: "Frontend", Proficiency: 80, Order: 3},
		{Name: "HTML/CSS", Category: "Frontend", Proficiency: 95, Order: 4},
		{Name: "MySQL", Category: "Database", Proficiency: 90, Order: 1},
		{Name: "PostgreSQL", Category: "Database", Proficiency: 85, Order: 2},
		{Name: "Redis", Category: "Database", Proficiency: 75, Order: 3},
		{Name: "Docker", Category: "DevOps", Proficiency: 85, Order: 1},
		{Name: "Linux", Category: "DevOps", Proficiency: 90, Order: 2},
		{Name: "CI/CD", Category: "DevOps", Proficiency: 80, Order: 3},
		{Name: "Git", Category: "Tools", Proficiency: 95, Order: 1},
	}

	return db.Create(&skills).Error
}
