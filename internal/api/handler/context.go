package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/carrier-gateway/internal/api/middleware"
)

// ctxClaims extracts the auth claims injected by the Auth middleware. Both
// must be present; an empty role means the middleware never ran.
func ctxClaims(c echo.Context) (role, clientID string, err error) {
	role, _ = c.Get(middleware.ContextRole).(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	clientID, _ = c.Get(middleware.ContextClientID).(string)
	if clientID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing client identity")
	}

	return role, clientID, nil
}
