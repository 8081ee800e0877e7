package main

import (
	"os"

	"portfolio/backend/internal/app"
)

// @title        Portfolio Backend API
// @version      1.0
// @description  Chat assistant and contact form API for the portfolio website.
func main() {
	os.Exit(app.Run())
}
