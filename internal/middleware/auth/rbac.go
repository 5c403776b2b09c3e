package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HasGroupAccess decides whether an actor may invoke a view configured with
// the given allowed group names. Unauthenticated actors are denied, and so is
// everyone when the view declares no allowed groups: the check fails closed.
func HasGroupAccess(user *AuthUser, allowedGroups []string) bool {
	if !user.IsAuthenticated() || len(allowedGroups) == 0 {
		return false
	}

	allowed := make(map[string]struct{}, len(allowedGroups))
	for _, g := range allowedGroups {
		allowed[g] = struct{}{}
	}

	for _, g := range user.Groups {
		if _, ok := allowed[g]; ok {
			return true
		}
	}

	return false
}

// RoleBasedAccess gates a route group by group membership. It must run after
// JWTMiddleware; denial is a normal 403 response, not an error.
func RoleBasedAccess(allowedGroups ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := GetUserFromContext(c)
			if !HasGroupAccess(user, allowedGroups) {
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": "You do not have permission to perform this action",
					"code":  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}
