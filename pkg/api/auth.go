package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

// AuthContext is the trusted identity an upstream auth proxy forwards with
// every request: who the caller is and which system role they hold.
// Verification itself is out of scope — by the time a request reaches this
// process, the proxy has already authenticated it.
type AuthContext struct {
	UserID     string
	Email      string
	SystemRole statemachine.Role
}

// Authenticated reports whether the request carried any identity at all.
func (a AuthContext) Authenticated() bool {
	return a.UserID != ""
}

// Actor converts the context into the statemachine's view of the caller.
func (a AuthContext) Actor() statemachine.Actor {
	return statemachine.Actor{UserID: a.UserID, SystemRole: a.SystemRole}
}

// extractAuthContext reads the oauth2-proxy identity headers.
// X-Forwarded-User falls back to X-Forwarded-Email so deployments that only
// forward the email still get a stable user id.
func extractAuthContext(c *echo.Context) AuthContext {
	user := c.Request().Header.Get("X-Forwarded-User")
	email := c.Request().Header.Get("X-Forwarded-Email")
	if user == "" {
		user = email
	}
	return AuthContext{
		UserID:     user,
		Email:      email,
		SystemRole: statemachine.Role(c.Request().Header.Get("X-Forwarded-Role")),
	}
}
