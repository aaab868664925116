package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/fittrack/internal/api"
	"alcyxob/fittrack/internal/config"
	"alcyxob/fittrack/internal/kvstore"
	"alcyxob/fittrack/internal/logging"
	kvrepo "alcyxob/fittrack/internal/repository/kv"
	"alcyxob/fittrack/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	logging.Setup(cfg.Log)
	log.Info("Starting FitTrack server...")

	loc, err := cfg.Analytics.Location()
	if err != nil {
		log.Fatalf("Invalid analytics timezone: %v", err)
	}

	// --- Storage ---
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, closeStore, err := kvstore.Open(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Could not open %s storage: %v", cfg.Storage.Driver, err)
	}
	defer func() {
		log.Info("Closing storage...")
		if err := closeStore(); err != nil {
			log.Errorf("Failed to close storage: %v", err)
		}
	}()

	// --- Repositories ---
	accountRepo := kvrepo.NewAccountRepository(store)
	sessionRepo := kvrepo.NewSessionRepository(store)
	workoutRepo := kvrepo.NewWorkoutIndexRepository(store)

	// --- Services ---
	accounts := service.NewAccountDirectory(accountRepo)
	sessions := service.NewSessionHolder(sessionRepo)
	workouts := service.NewWorkoutStore(workoutRepo, accountRepo, loc)

	if active := sessions.Restore(context.Background()); active != nil {
		log.WithField("account_id", active.ID).Info("Restored signed-in session")
	} else {
		log.Info("No active session")
	}

	// --- Gin Engine ---
	if log.GetLevel() < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger())

	tokens := api.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Expiration)
	api.SetupRoutes(router, tokens, accounts, sessions, workouts, api.StatsOptions{
		Location:     loc,
		TopExercises: cfg.Analytics.TopExercises,
		RecentLimit:  cfg.Analytics.RecentLimit,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infof("Server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exiting.")
}
