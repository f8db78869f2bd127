package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"echo error", echo.NewHTTPError(http.StatusForbidden, "forbidden"), http.StatusForbidden, "forbidden"},
		{"configuration", fmt.Errorf("find rates: %w: unknown packaging type %q", domain.ErrInvalidConfiguration, "crate"), http.StatusBadRequest, `find rates: invalid configuration: unknown packaging type "crate"`},
		{"credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"bad response", fmt.Errorf("find rates: %w: no root", domain.ErrBadResponse), http.StatusBadGateway, "carrier returned an unreadable response"},
		{"transport", fmt.Errorf("%w: status 503", domain.ErrTransport), http.StatusBadGateway, "carrier unavailable"},
		{"transport timeout", fmt.Errorf("%w: %w", domain.ErrTransport, context.DeadlineExceeded), http.StatusGatewayTimeout, "carrier timed out"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusAccepted)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected committed status to stand, got %d", rec.Code)
	}
}
