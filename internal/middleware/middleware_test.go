package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RUMBLER_BACK-END/internal/config"
)

func testConfig(secret string) *config.Config {
	cfg := config.FromEnv()
	cfg.App.DemoUserID = "demo-user"
	cfg.JWT = config.JWTConfig{Secret: secret, Issuer: "rumbler"}
	return cfg
}

func echoSubject() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := UserIDFromContext(r.Context())
		w.Write([]byte(id))
	})
}

func TestSubject(t *testing.T) {
	cfg := testConfig("test-secret")
	good, err := GenerateToken("alice", time.Hour, &cfg.JWT)
	require.NoError(t, err)
	expired, err := GenerateToken("alice", -time.Hour, &cfg.JWT)
	require.NoError(t, err)
	otherKey, err := GenerateToken("alice", time.Hour, &config.JWTConfig{Secret: "other", Issuer: "rumbler"})
	require.NoError(t, err)
	noSub, err := GenerateToken("", time.Hour, &cfg.JWT)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"no header uses demo subject", "", http.StatusOK, "demo-user"},
		{"valid token", "Bearer " + good, http.StatusOK, "alice"},
		{"lowercase scheme", "bearer " + good, http.StatusOK, "alice"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, ""},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized, ""},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, ""},
		{"wrong key", "Bearer " + otherKey, http.StatusUnauthorized, ""},
		{"missing sub", "Bearer " + noSub, http.StatusUnauthorized, ""},
	}
	h := Subject(cfg)(echoSubject())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.body, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"error":"Unauthorized"`)
			}
		})
	}
}

func TestSubjectIgnoresHeaderWithoutSecret(t *testing.T) {
	h := Subject(testConfig(""))(echoSubject())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "demo-user", rec.Body.String())
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generates an id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/deck", nil))
		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		line := buf.String()
		assert.True(t, strings.HasPrefix(line, "GET /deck 418 "), line)
		assert.Contains(t, line, "id="+id)
	})

	t.Run("reuses incoming id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodPost, "/deck/ftr_001/like", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
		assert.Contains(t, buf.String(), "id=req-42")
	})
}

func TestRecover(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.NotFoundHandler(), mw("a"), mw("b"), mw("c"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}
