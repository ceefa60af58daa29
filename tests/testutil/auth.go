package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pos/backend/internal/infrastructure/auth"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/require"
)

// SignAccessToken signs an access token the way the session service does,
// valid for ttl. A negative ttl yields an expired token.
func SignAccessToken(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, role string, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    cfg.Issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:    userID.String(),
		Role:      role,
		TokenType: auth.TokenTypeAccess,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	require.NoError(t, err)
	return token
}
