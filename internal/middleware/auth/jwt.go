package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthUser represents an authenticated user from JWT
type AuthUser struct {
	UserID    int64    `json:"user_id"`
	CompanyID int64    `json:"company_id"`
	Email     string   `json:"email"`
	Groups    []string `json:"groups"`
}

// IsAuthenticated reports whether the user carries a valid identity.
func (u *AuthUser) IsAuthenticated() bool {
	return u != nil && u.UserID > 0
}

// contextKey is used for storing user in context
type contextKey string

const (
	userContextKey contextKey = "authenticated_user"
)

// JWTConfig holds the configuration for JWT middleware
type JWTConfig struct {
	Secret    string
	Logger    *zap.Logger
	SkipPaths []string // Paths to skip JWT validation
}

// JWTMiddleware creates a middleware that validates bearer tokens and loads
// the caller's identity and group memberships into the request context.
func JWTMiddleware(config JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Skip JWT validation for certain paths
			path := c.Request().URL.Path
			for _, skipPath := range config.SkipPaths {
				if strings.HasPrefix(path, skipPath) {
					return next(c)
				}
			}

			// Extract token from Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				config.Logger.Warn("Missing authorization header",
					zap.String("path", path),
					zap.String("method", c.Request().Method))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Authorization header required",
					"code":  "MISSING_AUTH_HEADER",
				})
			}

			// Check Bearer prefix
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				config.Logger.Warn("Invalid authorization header format",
					zap.String("path", path))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid authorization header format. Expected: Bearer <token>",
					"code":  "INVALID_AUTH_FORMAT",
				})
			}

			// Parse and validate JWT token
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				// Verify signing method
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(config.Secret), nil
			})

			if err != nil {
				config.Logger.Warn("JWT validation failed",
					zap.Error(err),
					zap.String("path", path))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid or expired token",
					"code":  "INVALID_TOKEN",
				})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || !token.Valid {
				config.Logger.Warn("Invalid JWT claims",
					zap.String("path", path))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid token claims",
					"code":  "INVALID_CLAIMS",
				})
			}

			authUser, err := userFromClaims(claims)
			if err != nil {
				config.Logger.Warn("Failed to extract identity from claims",
					zap.Error(err),
					zap.String("path", path))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid token claims",
					"code":  "INVALID_CLAIMS",
				})
			}

			// Store user in request context
			ctx := context.WithValue(c.Request().Context(), userContextKey, authUser)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Set("user_id", authUser.UserID)
			c.Set("company_id", authUser.CompanyID)

			config.Logger.Debug("User authenticated successfully",
				zap.Int64("user_id", authUser.UserID),
				zap.Strings("groups", authUser.Groups),
				zap.String("path", path))

			return next(c)
		}
	}
}

// userFromClaims builds an AuthUser from token claims. The subject claim is
// the numeric user ID; groups is an optional list of group names.
func userFromClaims(claims jwt.MapClaims) (*AuthUser, error) {
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return nil, fmt.Errorf("missing or invalid sub claim")
	}

	user := &AuthUser{
		UserID: int64(sub),
	}

	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if companyID, ok := claims["company_id"].(float64); ok {
		user.CompanyID = int64(companyID)
	}
	if rawGroups, ok := claims["groups"].([]interface{}); ok {
		for _, g := range rawGroups {
			if name, ok := g.(string); ok {
				user.Groups = append(user.Groups, name)
			}
		}
	}

	return user, nil
}

// GetUserFromContext extracts the authenticated user from the request context
func GetUserFromContext(c echo.Context) (*AuthUser, error) {
	user, ok := c.Request().Context().Value(userContextKey).(*AuthUser)
	if !ok || user == nil {
		return nil, fmt.Errorf("no authenticated user found in context")
	}
	return user, nil
}

// RequireAuth is a helper function to get user or return error response
func RequireAuth(c echo.Context) (*AuthUser, error) {
	user, err := GetUserFromContext(c)
	if err != nil {
		if jsonErr := c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		}); jsonErr != nil {
			return nil, jsonErr
		}
		// The response is committed; the returned error only stops the handler.
		return nil, err
	}
	return user, nil
}
