package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/carrier-gateway/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type tokenRequest struct {
	ClientID     string `json:"client_id"     validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
}

type tokenResponse struct {
	Token    string `json:"token"`
	ClientID string `json:"client_id"`
	Role     string `json:"role"`
}

// Token exchanges client credentials for a bearer token.
//
// @Summary      Issue an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Client credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, client, err := h.authService.IssueToken(c.Request().Context(), req.ClientID, req.ClientSecret)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token, ClientID: client.ID, Role: client.Role})
}
