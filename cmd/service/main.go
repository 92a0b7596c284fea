package main

import (
	"os"

	"ecomonitor/internal/app"
)

func main() {
	application := app.New()
	os.Exit(application.Run())
}
