package ports

import (
	"context"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

// ExchangeRepository persists audited carrier request/response pairs.
type ExchangeRepository interface {
	Insert(ctx context.Context, exchange *domain.Exchange) error
}
