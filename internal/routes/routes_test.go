package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "RUMBLER_BACK-END/docs"
	"RUMBLER_BACK-END/internal/config"
	"RUMBLER_BACK-END/internal/events"
	"RUMBLER_BACK-END/internal/handlers"
	"RUMBLER_BACK-END/internal/matching"
	"RUMBLER_BACK-END/internal/middleware"
	"RUMBLER_BACK-END/internal/store"
	"RUMBLER_BACK-END/internal/validation"
)

// newMux mounts the routes behind the Subject middleware, as cmd/main.go does
func newMux(swagger bool) http.Handler {
	s := store.NewMemoryStore(store.SampleFighters())
	pub := events.NewNopPublisher()
	mux := http.NewServeMux()
	SetupRoutes(mux, Handlers{
		Health:  handlers.NewHealthHandler(s, "test"),
		Profile: handlers.NewProfileHandler(s, validation.NewProfileValidator(time.Now), pub),
		Deck:    handlers.NewDeckHandler(s),
		Swipe:   handlers.NewSwipeHandler(matching.NewTracker(s, matching.Options{Probability: matching.DefaultProbability, Events: pub})),
		Swagger: swagger,
	})

	cfg := config.FromEnv()
	cfg.App.DemoUserID = "demo-user"
	cfg.JWT = config.JWTConfig{}
	return middleware.Subject(cfg)(mux)
}

func TestRoutesAreMounted(t *testing.T) {
	mux := newMux(true)
	tests := []struct {
		method, path string
		status       int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/me/profile", http.StatusOK},
		{http.MethodGet, "/livez", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/deck", http.StatusOK},
		{http.MethodGet, "/matches", http.StatusOK},
		{http.MethodPost, "/deck/ftr_001/pass", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodPost, "/deck", http.StatusMethodNotAllowed},
		{http.MethodGet, "/deck/ftr_001/like", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestSwaggerDoc(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rumbler Backend API")
	for _, path := range []string{"/health", "/healthz", "/livez", "/readyz", "/me/profile", "/deck", "/deck/{fighterId}/like", "/deck/{fighterId}/pass", "/matches"} {
		assert.Contains(t, rec.Body.String(), `"`+path+`"`)
	}
}

func TestSwaggerDisabled(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
