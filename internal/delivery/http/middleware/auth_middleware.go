// Package middleware holds the HTTP middleware of the service.
package middleware

import (
	"net/http"
	"strings"

	"atlas/internal/delivery/http/response"
	"atlas/internal/delivery/reqctx"
	"atlas/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates the bearer access token of protected routes.
// Rejections happen before any handler logic runs, so a bad token can
// never cause partial side effects.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the access
// token. Missing, malformed, tampered and expired tokens are all rejected
// with the same 401; the caller learns nothing beyond "not authenticated".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Fail(c, http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Fail(c, http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
		}

		// Bind the verified identity once; handlers read it from the
		// request context without re-verifying.
		reqctx.SetUserID(c, claims.UserID)

		return next(c)
	}
}
