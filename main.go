package main

import (
	"os"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
