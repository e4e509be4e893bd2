package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vitalog/vitalog/internal/app/auth"
)

const KeyCurrentUser = "current_user"

// SessionRequired rejects requests without a valid bearer session token.
func SessionRequired(issuer *auth.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return JsonError(c, http.StatusUnprocessableEntity, "Invalid Authorization header")
			}
			data, err := issuer.ValidateToken(parts[1])
			if err != nil {
				return JsonError(c, http.StatusUnauthorized, err.Error())
			}
			c.Set(KeyCurrentUser, data)
			if err := next(c); err != nil {
				c.Error(err)
			}
			return nil
		}
	}
}
