package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

type stubAuthService struct {
	issueFn func(ctx context.Context, clientID, secret string) (string, *domain.APIClient, error)
}

func (s *stubAuthService) IssueToken(ctx context.Context, clientID, secret string) (string, *domain.APIClient, error) {
	return s.issueFn(ctx, clientID, secret)
}

func (s *stubAuthService) Seed(ctx context.Context, clients []domain.APIClient) error {
	return nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Token_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, clientID, secret string) (string, *domain.APIClient, error) {
			if clientID != "shop_1" || secret != "s3cret" {
				t.Fatalf("unexpected args: %s %s", clientID, secret)
			}
			return "token123", &domain.APIClient{ID: clientID, Role: domain.RoleClient}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"client_id":"shop_1","client_secret":"s3cret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" || resp["client_id"] != "shop_1" || resp["role"] != "client" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Token_InvalidCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, clientID, secret string) (string, *domain.APIClient, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"client_id":"shop_1","client_secret":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := handler.Token(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Token_InvalidPayload(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, clientID, secret string) (string, *domain.APIClient, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	assertHTTPStatus(t, handler.Token(c), http.StatusBadRequest)
}

func TestAuthHandler_Token_MissingSecret(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		issueFn: func(ctx context.Context, clientID, secret string) (string, *domain.APIClient, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"client_id":"shop_1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := handler.Token(c)
	assertHTTPStatus(t, err, http.StatusUnprocessableEntity)
	if !strings.Contains(err.Error(), "client_secret is required") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != want {
		t.Fatalf("expected %d, got %d (%v)", want, he.Code, he.Message)
	}
}
