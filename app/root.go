// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-portfolio-admin",
	Short: "GoPortfolio-Admin is a web-based portfolio content management tool",
	Long: `GoPortfolio-Admin serves a personal portfolio site and provides an
authenticated admin area for managing profile settings, projects and skills.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
