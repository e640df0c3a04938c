// Package reqctx carries per-request values (authenticated identity,
// request ID) through typed accessors instead of ambient globals.
package reqctx

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// keyUserID stores the authenticated subject identifier. It is bound
	// exactly once per request, by the auth middleware, after the token
	// has been verified.
	keyUserID contextKey = "auth_user_id"

	// keyRequestID stores the request tracking ID.
	keyRequestID contextKey = "request_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// SetUserID binds the verified subject identifier to the request.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(keyUserID), userID)
}

// UserID returns the authenticated subject identifier bound by the auth
// middleware. The boolean is false on requests that never passed it.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(keyUserID)).(uuid.UUID)

	return userID, ok
}

// RequestID returns the request tracking ID, generating one if the
// request carried none.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request tracking ID.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}
