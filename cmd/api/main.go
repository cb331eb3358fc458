package main

import (
	"log"

	"nusakarya/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + modules).
// 3) Start HTTP server.
func main() {
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("nusakarya api failed to start: %v", err)
	}
	if err := app.Run(); err != nil {
		log.Fatalf("nusakarya api stopped: %v", err)
	}
}
