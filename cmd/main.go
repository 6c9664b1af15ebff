package main

import (
	"log"
	"os"

	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.LoadEnv()

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	cache, err := services.OpenLocalCache(config.CachePath())
	if err != nil {
		// the mirror is a fallback, not a dependency
		log.Printf("local cache unavailable, running without offline mirror: %v", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	utils.InitS3()

	hub := services.NewRealtimeHub()
	alerts := services.NewAlertBus(db, hub)
	goals := services.NewGoalService(db, cache, alerts)
	streaks := services.NewStreakService(db, cache, alerts)

	deps := routes.Deps{
		DB:         db,
		Auth:       services.NewAuthService(db),
		Users:      services.NewUserService(db, cache),
		Sleep:      services.NewSleepService(db, goals, streaks, hub),
		Journal:    services.NewJournalService(db, goals, streaks, hub),
		Moods:      services.NewMoodService(db, goals, streaks, hub),
		Activities: services.NewActivityService(db, cache, goals, streaks, hub),
		Goals:      goals,
		Streaks:    streaks,
		Stats:      services.NewStatsService(db, cache),
		Alerts:     alerts,
		Hub:        hub,
	}

	r := routes.SetupRouter(deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
