// Command setup prepares storage ahead of the first start: it creates the
// local state database and, when DATABASE_URL is set, applies the
// leaderboard migrations.
package main

import (
	"context"
	"log"
	"time"

	"github.com/osse101/degenfarm/internal/bootstrap"
	"github.com/osse101/degenfarm/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Setup failed: %v", err)
	}
	defer storage.Close()

	for _, check := range storage.ReadinessChecks() {
		if err := check.Pinger.Ping(ctx); err != nil {
			log.Fatalf("%s is not reachable: %v", check.Name, err)
		}
		log.Printf("%s ready", check.Name)
	}

	if cfg.LeaderboardPersistent() {
		log.Println("Leaderboard migrations applied.")
	} else {
		log.Println("DATABASE_URL not set; the leaderboard will be kept in memory.")
	}
}
