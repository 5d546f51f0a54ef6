package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"RUMBLER_BACK-END/internal/config"
	"RUMBLER_BACK-END/internal/utils"
)

type contextKey string

const userIDKey contextKey = "user_id"

// ErrMissingSubject is returned for a token without a sub claim
var ErrMissingSubject = errors.New("token has no subject")

// UserIDFromContext returns the acting subject set by Subject
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// WithUserID stores the acting subject on ctx
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GenerateToken signs an HS256 token whose sub claim is userID
func GenerateToken(userID string, ttl time.Duration, cfg *config.JWTConfig) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken validates a token and returns its subject
func ValidateToken(tokenString string, cfg *config.JWTConfig) (string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, opts...)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenMalformed
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}

// Subject resolves who a request acts for. A bearer token's sub claim wins;
// without an Authorization header the demo subject is used. When no JWT
// secret is configured the header is ignored.
func Subject(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := cfg.App.DemoUserID

			authHeader := r.Header.Get("Authorization")
			if authHeader != "" && cfg.IsJWTConfigured() {
				// Extract token from "Bearer <token>"
				tokenParts := strings.Fields(authHeader)
				if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
					utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header format")
					return
				}
				sub, err := ValidateToken(tokenParts[1], &cfg.JWT)
				if err != nil {
					utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
					return
				}
				userID = sub
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
