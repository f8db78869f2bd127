package ports

import (
	"context"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

type AuthService interface {
	// IssueToken checks the client secret and returns a signed bearer token.
	IssueToken(ctx context.Context, clientID, secret string) (string, *domain.APIClient, error)
	// Seed registers clients whose secrets are already bcrypt hashes.
	Seed(ctx context.Context, clients []domain.APIClient) error
}
