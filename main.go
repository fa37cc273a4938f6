package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "tripplanner/internal/config"
	router "tripplanner/internal/http"
	"tripplanner/internal/http/handlers"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env.DBDSN)
	defer intconfig.CloseDB()

	// Payload source preference: remote trip API, then local DB, then the
	// built-in template (source nil).
	var source services.PayloadSource
	var store services.SnapshotStore
	if env.TripAPIBaseURL != "" {
		source = repositories.RemoteTripAPI{BaseURL: env.TripAPIBaseURL}
	} else if db != nil {
		source = repositories.TripPayloadRepository{DB: db}
	}
	if db != nil {
		store = repositories.TripPayloadRepository{DB: db}
	}

	handlers.SetTripService(services.NewTripService(source, store))

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
