package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHasGroupAccess(t *testing.T) {
	tests := []struct {
		name          string
		user          *AuthUser
		allowedGroups []string
		expected      bool
	}{
		{
			name:          "nil user is denied regardless of configuration",
			user:          nil,
			allowedGroups: []string{"manager"},
			expected:      false,
		},
		{
			name:          "unauthenticated user is denied",
			user:          &AuthUser{Groups: []string{"manager"}},
			allowedGroups: []string{"manager"},
			expected:      false,
		},
		{
			name:          "no group intersection is denied",
			user:          &AuthUser{UserID: 1, Groups: []string{"staff"}},
			allowedGroups: []string{"manager"},
			expected:      false,
		},
		{
			name:          "non-empty intersection is allowed",
			user:          &AuthUser{UserID: 1, Groups: []string{"manager", "staff"}},
			allowedGroups: []string{"manager"},
			expected:      true,
		},
		{
			name:          "empty allowed set fails closed even for authenticated users",
			user:          &AuthUser{UserID: 1, Groups: []string{"manager", "staff"}},
			allowedGroups: nil,
			expected:      false,
		},
		{
			name:          "user without groups is denied",
			user:          &AuthUser{UserID: 1},
			allowedGroups: []string{"manager"},
			expected:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasGroupAccess(tt.user, tt.allowedGroups))
		})
	}
}

func TestRoleBasedAccessMiddleware(t *testing.T) {
	e := echo.New()

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	t.Run("denies without authenticated user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RoleBasedAccess("manager")(handler)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("allows member of an allowed group", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		setTestUser(c, &AuthUser{UserID: 7, Groups: []string{"manager"}})

		err := RoleBasedAccess("manager")(handler)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("denies when route declares no groups", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		setTestUser(c, &AuthUser{UserID: 7, Groups: []string{"manager"}})

		err := RoleBasedAccess()(handler)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
