package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/auth"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	JWTRoleKey    = "jwt_role"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// TokenBlacklist is optional for checking revoked tokens
	TokenBlacklist auth.TokenBlacklist
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't require authentication
	SkipPathPrefixes []string
	// Optional callback if token is invalid (default: return 401)
	OnError func(c *gin.Context, err error)
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultJWTConfig returns default JWT middleware configuration
func DefaultJWTConfig(jwtService *auth.JWTService) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
		},
		SkipPathPrefixes: []string{
			"/swagger",
		},
	}
}

// JWTAuthMiddleware creates JWT authentication middleware
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(DefaultJWTConfig(jwtService))
}

// JWTAuthMiddlewareWithConfig creates JWT authentication middleware with custom config.
// On success the caller's user id and role are available through GetActor.
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if slices.Contains(cfg.SkipPaths, path) {
			c.Next()
			return
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Missing or malformed authorization header")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			handleAuthError(c, cfg, err, "Token validation failed")
			return
		}

		if cfg.TokenBlacklist != nil {
			ctx := c.Request.Context()

			// Individual logout
			if claims.ID != "" {
				blacklisted, err := cfg.TokenBlacklist.IsBlacklisted(ctx, claims.ID)
				if err != nil {
					// Fail open so a Redis outage does not lock everyone out
					if cfg.Logger != nil {
						cfg.Logger.Error("Failed to check token blacklist",
							zap.String("jti", claims.ID),
							zap.Error(err))
					}
				} else if blacklisted {
					handleAuthError(c, cfg, auth.ErrTokenBlacklisted, "Token has been revoked")
					return
				}
			}

			// Every token of the user issued before a forced logout
			invalidated, err := cfg.TokenBlacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
			if err != nil {
				if cfg.Logger != nil {
					cfg.Logger.Error("Failed to check user token invalidation",
						zap.String("user_id", claims.UserID),
						zap.Error(err))
				}
			} else if invalidated {
				handleAuthError(c, cfg, auth.ErrTokenBlacklisted, "User session has been invalidated")
				return
			}
		}

		setClaims(c, claims)

		if cfg.Logger != nil {
			cfg.Logger.Debug("JWT authentication successful",
				zap.String("user_id", claims.UserID),
				zap.String("role", claims.Role),
			)
		}

		c.Next()
	}
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(AuthHeaderKey)
	token, found := strings.CutPrefix(header, BearerPrefix)
	if !found || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// setClaims stores the claims on the gin context and the user id on the request logger
func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(JWTClaimsKey, claims)
	c.Set(logger.GinUserIDKey, claims.UserID)
	c.Set(JWTRoleKey, claims.Role)

	c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
}

// handleAuthError handles authentication errors
func handleAuthError(c *gin.Context, cfg JWTMiddlewareConfig, err error, message string) {
	if cfg.OnError != nil {
		cfg.OnError(c, err)
		c.Abort()
		return
	}

	if cfg.Logger != nil {
		cfg.Logger.Warn("JWT authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	code, text := authErrorCode(err)
	abortWithError(c, http.StatusUnauthorized, code, text)
}

// authErrorCode maps token validation errors onto response codes
func authErrorCode(err error) (string, string) {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return dto.ErrCodeTokenExpired, "Token has expired"
	case errors.Is(err, auth.ErrTokenBlacklisted):
		return dto.ErrCodeTokenRevoked, "Token has been revoked"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		return dto.ErrCodeTokenInvalid, "Token is not yet valid"
	case errors.Is(err, auth.ErrInvalidTokenType):
		return dto.ErrCodeTokenInvalid, "Invalid token type"
	case errors.Is(err, auth.ErrInvalidToken):
		return dto.ErrCodeTokenInvalid, "Invalid token"
	default:
		return dto.ErrCodeUnauthorized, "Authentication required"
	}
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetActor returns the authenticated caller, or the zero Actor for
// unauthenticated requests
func GetActor(c *gin.Context) shared.Actor {
	claims := GetJWTClaims(c)
	if claims == nil {
		return shared.Actor{}
	}
	return claims.Actor()
}

// OptionalJWTAuthMiddleware extracts claims when a valid token is present
// and lets the request through either way
func OptionalJWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := jwtService.ValidateAccessToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}
