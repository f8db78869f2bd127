package ports

import (
	"context"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

// ClientRepository stores the API clients allowed to request tokens.
type ClientRepository interface {
	FindByID(ctx context.Context, id string) (*domain.APIClient, error)
	Upsert(ctx context.Context, client *domain.APIClient) error
}
