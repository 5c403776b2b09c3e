package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// setTestUser stores an AuthUser in the request context the same way the
// middleware does. Shared with rbac_test.go.
func setTestUser(c echo.Context, user *AuthUser) {
	ctx := context.WithValue(c.Request().Context(), userContextKey, user)
	c.SetRequest(c.Request().WithContext(ctx))
}

func createValidJWT(userID int64, email string, groups []string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        userID,
		"email":      email,
		"groups":     groups,
		"company_id": 42,
		"exp":        time.Now().Add(time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	})

	tokenString, _ := token.SignedString([]byte(testSecret))
	return tokenString
}

func TestJWTMiddleware_SuccessfulAuthentication(t *testing.T) {
	logger := zap.NewNop()

	config := JWTConfig{
		Secret: testSecret,
		Logger: logger,
	}

	e := echo.New()
	middleware := JWTMiddleware(config)

	handler := middleware(func(c echo.Context) error {
		user, err := GetUserFromContext(c)
		assert.NoError(t, err)
		assert.Equal(t, int64(123), user.UserID)
		assert.Equal(t, int64(42), user.CompanyID)
		assert.Equal(t, "manager@example.com", user.Email)
		assert.Equal(t, []string{"manager", "staff"}, user.Groups)
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/point-of-sale", nil)
	req.Header.Set("Authorization", "Bearer "+createValidJWT(123, "manager@example.com", []string{"manager", "staff"}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTMiddleware_Failures(t *testing.T) {
	logger := zap.NewNop()
	e := echo.New()

	expiredToken := func() string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": 123,
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		s, _ := token.SignedString([]byte(testSecret))
		return s
	}()

	missingSubToken := func() string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"email": "nobody@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		s, _ := token.SignedString([]byte(testSecret))
		return s
	}()

	tests := []struct {
		name         string
		authHeader   string
		expectedCode int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"missing subject claim", "Bearer " + missingSubToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := JWTMiddleware(JWTConfig{Secret: testSecret, Logger: logger})
			handler := middleware(func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestJWTMiddleware_SkipPaths(t *testing.T) {
	logger := zap.NewNop()
	e := echo.New()

	middleware := JWTMiddleware(JWTConfig{
		Secret:    testSecret,
		Logger:    logger,
		SkipPaths: []string{"/health", "/api/v1/subscription/plan"},
	})
	handler := middleware(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subscription/plan", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code, "skip paths must bypass token validation")
}
