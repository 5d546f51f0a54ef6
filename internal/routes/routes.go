package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"RUMBLER_BACK-END/internal/handlers"
)

// Handlers groups everything SetupRoutes mounts
type Handlers struct {
	Health  *handlers.HealthHandler
	Profile *handlers.ProfileHandler
	Deck    *handlers.DeckHandler
	Swipe   *handlers.SwipeHandler
	// Swagger mounts /swagger/ when true
	Swagger bool
}

// SetupRoutes configures all application routes on mux
func SetupRoutes(mux *http.ServeMux, h Handlers) {
	// Health check routes
	mux.HandleFunc("GET /health", h.Health.Status)
	mux.HandleFunc("GET /healthz", h.Health.HealthCheck)
	mux.HandleFunc("GET /livez", h.Health.LivenessCheck)
	mux.HandleFunc("GET /readyz", h.Health.ReadinessCheck)

	// Profile routes
	mux.HandleFunc("GET /me/profile", h.Profile.Get)
	mux.HandleFunc("PUT /me/profile", h.Profile.Update)
	mux.HandleFunc("DELETE /me/profile", h.Profile.Delete)

	// Deck and matches
	mux.HandleFunc("GET /deck", h.Deck.List)
	mux.HandleFunc("POST /deck/{fighterId}/like", h.Swipe.Like)
	mux.HandleFunc("POST /deck/{fighterId}/pass", h.Swipe.Pass)
	mux.HandleFunc("GET /matches", h.Swipe.Matches)

	if h.Swagger {
		mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	}

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Rumbler backend is running."))
}
