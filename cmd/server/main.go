// Package main implements the entry point for the CareerPilot AI server,
// which provides AI-generated career roadmaps, day-by-day study plans, and
// topic explanations behind a JWT-authenticated HTTP API.
package main

import (
	"context"
	"log"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
