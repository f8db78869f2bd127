package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness(t *testing.T) {
	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	cases := []struct {
		name   string
		checks map[string]Checker
		want   int
	}{
		{"all up", map[string]Checker{"mongodb": ok, "redis": ok}, http.StatusOK},
		{"redis down", map[string]Checker{"mongodb": ok, "redis": down}, http.StatusServiceUnavailable},
		{"nothing configured", map[string]Checker{}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

			if err := NewReadinessHandler(tc.checks).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}

			var resp readinessResponse
			decode(t, rec, &resp)
			if len(resp.Dependencies) != len(tc.checks) {
				t.Fatalf("expected %d dependencies, got %+v", len(tc.checks), resp.Dependencies)
			}
		})
	}
}
