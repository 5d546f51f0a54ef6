// @title Rumbler Backend API
// @version 1.0
// @description Rumbler API for combat-sports sparring partner matching

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8787
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	_ "RUMBLER_BACK-END/docs" // This is required for swagger
	"RUMBLER_BACK-END/internal/config"
	"RUMBLER_BACK-END/internal/events"
	"RUMBLER_BACK-END/internal/handlers"
	"RUMBLER_BACK-END/internal/matching"
	"RUMBLER_BACK-END/internal/middleware"
	"RUMBLER_BACK-END/internal/routes"
	"RUMBLER_BACK-END/internal/store"
	"RUMBLER_BACK-END/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	// --- Store + analytics sink ---
	var (
		stores    store.Stores
		publisher events.Publisher
	)
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := store.OpenPool(ctx, cfg)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pool.Close()

		pg := store.NewPostgresStore(pool)
		migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err = pg.Migrate(migrateCtx, store.SampleFighters())
		cancel()
		if err != nil {
			log.Fatalf("migrate: %v", err)
		}
		stores = pg.Stores()
		if cfg.Analytics.Sink == config.SinkPostgres {
			publisher = events.NewPostgresPublisher(pool)
		}
		log.Printf("store: postgres %s:%s/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
	default:
		stores = store.NewMemoryStore(store.SampleFighters()).Stores()
		log.Println("store: memory (data is lost on restart)")
	}
	if publisher == nil {
		switch cfg.Analytics.Sink {
		case config.SinkNone:
			publisher = events.NewNopPublisher()
		default:
			publisher = events.NewLogPublisher()
		}
	}

	// --- HTTP Handlers ---
	tracker := matching.NewTracker(stores.Swipes, matching.Options{
		Probability: cfg.Matching.Probability,
		Reroll:      cfg.Matching.Reroll,
		Events:      publisher,
	})

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, routes.Handlers{
		Health:  handlers.NewHealthHandler(stores.Pinger, cfg.App.Name),
		Profile: handlers.NewProfileHandler(stores.Profiles, validation.NewProfileValidator(nil), publisher),
		Deck:    handlers.NewDeckHandler(stores.Candidates),
		Swipe:   handlers.NewSwipeHandler(tracker),
		Swagger: cfg.App.SwaggerEnabled,
	})

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	handler := middleware.Chain(mux,
		c.Handler,
		middleware.Logging(nil),
		middleware.Recover,
		middleware.Subject(cfg),
	)

	// --- HTTP Server + Graceful Shutdown ---
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
