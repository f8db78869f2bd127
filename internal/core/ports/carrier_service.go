package ports

import (
	"context"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

// Transport delivers a raw request document to the carrier and returns the raw
// reply. test selects the carrier's sandbox endpoint.
type Transport interface {
	Send(ctx context.Context, request string, test bool) (string, error)
}

// TrackingCache keeps recent successful tracking replies.
type TrackingCache interface {
	Get(ctx context.Context, key string) (*domain.TrackingResponse, bool, error)
	Set(ctx context.Context, key string, resp *domain.TrackingResponse) error
}

// CarrierService is the carrier-agnostic entry point used by the API.
type CarrierService interface {
	FindRates(ctx context.Context, shipment domain.Shipment, opts domain.RequestOptions) (*domain.RateResponse, error)
	FindTrackingInfo(ctx context.Context, identifier string, opts domain.RequestOptions) (*domain.TrackingResponse, error)
	VerifyAddress(ctx context.Context, address domain.Location, opts domain.RequestOptions) (*domain.AddressValidationResponse, error)
}

// TrackingQuery is one entry of a batch tracking request.
type TrackingQuery struct {
	Identifier string
	Options    domain.RequestOptions
}

// TrackingResult pairs a batch entry with its outcome. Exactly one of
// Response and Err is set.
type TrackingResult struct {
	Identifier string
	Response   *domain.TrackingResponse
	Err        error
}
