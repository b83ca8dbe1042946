package main

import (
	"log"

	"github.com/aussiebroadwan/jobtrackr/internal/jobtrackr/app"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal in containers; the environment wins either way.
	_ = godotenv.Load()

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
