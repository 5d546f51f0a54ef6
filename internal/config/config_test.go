package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, "8787", cfg.Server.Port)
	assert.Equal(t, "unknown", cfg.App.Name)
	assert.Equal(t, "demo-user", cfg.App.DemoUserID)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, SinkLog, cfg.Analytics.Sink)
	assert.InDelta(t, 0.4, cfg.Matching.Probability, 1e-9)
	assert.False(t, cfg.Matching.Reroll)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.IsJWTConfigured())
	require.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("APP_NAME", "eu-west")
	t.Setenv("MATCH_PROBABILITY", "0.75")
	t.Setenv("MATCH_REROLL", "true")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://localhost:3001")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := FromEnv()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "eu-west", cfg.App.Name)
	assert.InDelta(t, 0.75, cfg.Matching.Probability, 1e-9)
	assert.True(t, cfg.Matching.Reroll)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3001"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.IsJWTConfigured())
}

func TestFromEnvIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("MATCH_PROBABILITY", "lots")
	t.Setenv("DB_MAX_CONNS", "many")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := FromEnv()

	assert.InDelta(t, 0.4, cfg.Matching.Probability, 1e-9)
	assert.Equal(t, int32(5), cfg.Database.MaxConns)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "memory defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "postgres needs password",
			mutate:  func(c *Config) { c.Store.Driver = DriverPostgres },
			wantErr: "DB_PASSWORD",
		},
		{
			name: "postgres with password",
			mutate: func(c *Config) {
				c.Store.Driver = DriverPostgres
				c.Database.Password = "pw"
			},
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Store.Driver = "redis" },
			wantErr: "STORE_DRIVER",
		},
		{
			name:    "postgres sink needs postgres store",
			mutate:  func(c *Config) { c.Analytics.Sink = SinkPostgres },
			wantErr: "ANALYTICS_SINK",
		},
		{
			name:    "probability out of range",
			mutate:  func(c *Config) { c.Matching.Probability = 1.5 },
			wantErr: "MATCH_PROBABILITY",
		},
		{
			name:    "blank demo user",
			mutate:  func(c *Config) { c.App.DemoUserID = "  " },
			wantErr: "DEMO_USER_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FromEnv()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := FromEnv()
	cfg.Database.User = "rumbler"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5433"
	cfg.Database.Name = "rumbler"
	cfg.Database.SSLMode = "require"
	cfg.Database.ConnTimeout = 7 * time.Second

	assert.Equal(t, "postgres://rumbler:pw@db:5433/rumbler?sslmode=require&connect_timeout=7", cfg.GetDSN())
}
