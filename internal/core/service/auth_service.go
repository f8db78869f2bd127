package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
	"github.com/99minutos/carrier-gateway/internal/core/ports"
)

// AuthService issues bearer tokens to registered API clients.
type AuthService struct {
	repo      ports.ClientRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.ClientRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Seed upserts clients configured at startup. SecretHash must already be a
// bcrypt hash; plaintext secrets are never accepted here.
func (s *AuthService) Seed(ctx context.Context, clients []domain.APIClient) error {
	for i := range clients {
		c := clients[i]
		if c.ID == "" {
			return fmt.Errorf("seed clients: %w: client id is required", domain.ErrInvalidConfiguration)
		}
		if c.Role == "" {
			c.Role = domain.RoleClient
		}
		if c.Role != domain.RoleAdmin && c.Role != domain.RoleClient {
			return fmt.Errorf("seed clients: %w: unknown role %q for %s", domain.ErrInvalidConfiguration, c.Role, c.ID)
		}
		if _, err := bcrypt.Cost([]byte(c.SecretHash)); err != nil {
			return fmt.Errorf("seed clients: %w: secret for %s is not a bcrypt hash", domain.ErrInvalidConfiguration, c.ID)
		}
		if err := s.repo.Upsert(ctx, &c); err != nil {
			return fmt.Errorf("seed clients: %w", err)
		}
	}
	return nil
}

func (s *AuthService) IssueToken(ctx context.Context, clientID, secret string) (string, *domain.APIClient, error) {
	if clientID == "" || secret == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	client, err := s.repo.FindByID(ctx, clientID)
	if err != nil {
		// Unknown clients and wrong secrets are indistinguishable to callers.
		if errors.Is(err, domain.ErrClientNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(client.SecretHash), []byte(secret)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(client)
	if err != nil {
		return "", nil, err
	}

	return token, client, nil
}

func (s *AuthService) generateToken(client *domain.APIClient) (string, error) {
	claims := jwt.MapClaims{
		"client_id": client.ID,
		"role":      client.Role,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
