package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/admin/dashboard"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/login"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/session"
)

// AuthMiddleware is a Fiber middleware that checks for user authentication.
// Only the admin area requires a session; the public site stays open.
func AuthMiddleware(c *fiber.Ctx) error {
	var (
		isLoginPage   = IsLoginPage(c)
		isAdminPage   = IsAdminPage(c)
		sessDataValid bool
	)

	if !isLoginPage && !isAdminPage {
		return c.Next()
	}

	// get session cookie
	loginCookie := c.Cookies("session")

	// if no session cookie, redirect to login page
	if loginCookie == "" && !isLoginPage {
		return c.Redirect(login.Path)
	}

	// check session validity
	sessData := new(session.Data)
	_ = sessData.Read(loginCookie)

	// valid data in session
	if sessData.User.ID > 0 {
		sessDataValid = true
	}

	if sessDataValid && isLoginPage {
		return c.Redirect(dashboard.Path)
	}

	if !sessDataValid && isAdminPage {
		return c.Redirect(login.Path)
	}

	return c.Next()
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, login.Path)
}

// IsAdminPage checks if the current request is for the admin area.
func IsAdminPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, "/admin")
}
