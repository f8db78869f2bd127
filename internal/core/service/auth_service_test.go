package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

type stubClientRepo struct {
	clients map[string]*domain.APIClient
	findErr error
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.APIClient)}
}

func cloneClient(c *domain.APIClient) *domain.APIClient {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubClientRepo) Upsert(_ context.Context, client *domain.APIClient) error {
	r.clients[client.ID] = cloneClient(client)
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.APIClient, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return cloneClient(c), nil
}

func hashSecret(t *testing.T, secret string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash secret: %v", err)
	}
	return string(hash)
}

func TestAuthService_Seed_Success(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	err := svc.Seed(context.Background(), []domain.APIClient{
		{ID: "shop_1", SecretHash: hashSecret(t, "pass123")},
		{ID: "ops", SecretHash: hashSecret(t, "root"), Role: domain.RoleAdmin},
	})
	if err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if repo.clients["shop_1"].Role != domain.RoleClient {
		t.Fatalf("expected default role client, got %s", repo.clients["shop_1"].Role)
	}
	if repo.clients["ops"].Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", repo.clients["ops"].Role)
	}
}

func TestAuthService_Seed_Validation(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if err := svc.Seed(context.Background(), []domain.APIClient{{ID: "shop_1", SecretHash: "plaintext"}}); !errors.Is(err, domain.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for plaintext secret, got %v", err)
	}
	if err := svc.Seed(context.Background(), []domain.APIClient{{ID: "shop_1", SecretHash: hashSecret(t, "x"), Role: "root"}}); !errors.Is(err, domain.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for bad role, got %v", err)
	}
	if err := svc.Seed(context.Background(), []domain.APIClient{{SecretHash: hashSecret(t, "x")}}); !errors.Is(err, domain.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for missing id, got %v", err)
	}
	if len(repo.clients) != 0 {
		t.Fatalf("expected nothing stored, got %d clients", len(repo.clients))
	}
}

func TestAuthService_IssueToken_Success(t *testing.T) {
	repo := newStubClientRepo()
	repo.clients["ops"] = &domain.APIClient{ID: "ops", SecretHash: hashSecret(t, "s3cret"), Role: domain.RoleAdmin}
	svc := NewAuthService(repo, "secret", time.Hour)

	token, client, err := svc.IssueToken(context.Background(), "ops", "s3cret")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if client == nil || client.ID != "ops" {
		t.Fatalf("unexpected client: %+v", client)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["client_id"] != "ops" {
		t.Fatalf("expected client_id ops, got %v", claims["client_id"])
	}
}

func TestAuthService_IssueToken_InvalidSecret(t *testing.T) {
	repo := newStubClientRepo()
	repo.clients["shop_1"] = &domain.APIClient{ID: "shop_1", SecretHash: hashSecret(t, "goodpass"), Role: domain.RoleClient}
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.IssueToken(context.Background(), "shop_1", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_IssueToken_UnknownClient(t *testing.T) {
	svc := NewAuthService(newStubClientRepo(), "secret", time.Hour)

	if _, _, err := svc.IssueToken(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_IssueToken_RepositoryError(t *testing.T) {
	repo := newStubClientRepo()
	repo.findErr = errors.New("mongo down")
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _, err := svc.IssueToken(context.Background(), "shop_1", "pass")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected repository error to surface, got %v", err)
	}
}

func TestAuthService_IssueToken_EmptyInput(t *testing.T) {
	svc := NewAuthService(newStubClientRepo(), "secret", time.Hour)

	if _, _, err := svc.IssueToken(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
