// Package main provides the entry point for the portfolio management
// application. It runs a web server using the Fiber framework that serves the
// public portfolio site (home page and per-project detail pages) and an
// authenticated admin area where the owner manages profile settings, projects
// and skills. The application uses gorm for data persistence and an object
// store for uploaded project images.
package main
