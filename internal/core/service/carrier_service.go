package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/carrier-gateway/internal/api/metrics"
	"github.com/99minutos/carrier-gateway/internal/carrier/fedex"
	"github.com/99minutos/carrier-gateway/internal/core/domain"
	"github.com/99minutos/carrier-gateway/internal/core/ports"
)

type carrierService struct {
	creds     fedex.Credentials
	defaults  domain.RequestOptions
	transport ports.Transport
	cache     ports.TrackingCache      // optional
	exchanges ports.ExchangeRepository // optional
	log       zerolog.Logger
	now       func() time.Time
}

// NewCarrierService returns a CarrierService that talks to FedEx through
// transport. defaults are merged under every per-call RequestOptions. cache
// and exchanges may be nil.
func NewCarrierService(
	creds fedex.Credentials,
	defaults domain.RequestOptions,
	transport ports.Transport,
	cache ports.TrackingCache,
	exchanges ports.ExchangeRepository,
	log zerolog.Logger,
) ports.CarrierService {
	return &carrierService{
		creds:     creds,
		defaults:  defaults,
		transport: transport,
		cache:     cache,
		exchanges: exchanges,
		log:       log,
		now:       time.Now,
	}
}

// FindRates quotes every service FedEx offers for shipment.
func (s *carrierService) FindRates(ctx context.Context, shipment domain.Shipment, opts domain.RequestOptions) (*domain.RateResponse, error) {
	opts = opts.Merge(s.defaults)

	req, err := fedex.BuildRateRequest(s.creds, shipment, opts, s.now())
	if err != nil {
		s.count(domain.OperationRate, false, err)
		return nil, fmt.Errorf("find rates: %w", err)
	}

	raw, err := s.send(ctx, domain.OperationRate, req, opts)
	if err != nil {
		s.finish(ctx, domain.OperationRate, opts, req, raw, false, "", err)
		return nil, fmt.Errorf("find rates: %w", err)
	}

	resp, err := fedex.ParseRateResponse(raw, shipment)
	if err != nil {
		s.finish(ctx, domain.OperationRate, opts, req, raw, false, "", err)
		return nil, fmt.Errorf("find rates: %w", err)
	}
	s.finish(ctx, domain.OperationRate, opts, req, raw, resp.Success, resp.Message, nil)
	metrics.RatesReturned.Observe(float64(len(resp.Rates)))

	return resp, nil
}

// FindTrackingInfo returns the scan history of a package. Successful replies
// are served from the tracking cache when one is configured.
func (s *carrierService) FindTrackingInfo(ctx context.Context, identifier string, opts domain.RequestOptions) (*domain.TrackingResponse, error) {
	opts = opts.Merge(s.defaults)
	identifier = strings.TrimSpace(identifier)

	key, cacheable := trackingCacheKey(identifier, opts)
	if cacheable && s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			metrics.TrackingCacheTotal.WithLabelValues("error").Inc()
			s.log.Warn().Err(err).Str("tracking", identifier).Msg("tracking cache read failed, querying carrier")
		case ok:
			metrics.TrackingCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.TrackingCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	req, err := fedex.BuildTrackingRequest(s.creds, identifier, opts)
	if err != nil {
		s.count(domain.OperationTracking, false, err)
		return nil, fmt.Errorf("find tracking info: %w", err)
	}

	raw, err := s.send(ctx, domain.OperationTracking, req, opts)
	if err != nil {
		s.finish(ctx, domain.OperationTracking, opts, req, raw, false, "", err)
		return nil, fmt.Errorf("find tracking info: %w", err)
	}

	resp, err := fedex.ParseTrackingResponse(raw)
	if err != nil {
		s.finish(ctx, domain.OperationTracking, opts, req, raw, false, "", err)
		return nil, fmt.Errorf("find tracking info: %w", err)
	}
	s.finish(ctx, domain.OperationTracking, opts, req, raw, resp.Success, resp.Message, nil)

	if resp.Success && cacheable && s.cache != nil {
		if err := s.cache.Set(ctx, key, resp); err != nil {
			s.log.Warn().Err(err).Str("tracking", identifier).Msg("failed to cache tracking reply")
		}
	}
	return resp, nil
}

// VerifyAddress asks FedEx for candidate corrections of address.
func (s *carrierService) VerifyAddress(ctx context.Context, address domain.Location, opts domain.RequestOptions) (*domain.AddressValidationResponse, error) {
	opts = opts.Merge(s.defaults)

	req, err := fedex.BuildAddressValidationRequest(s.creds, address, opts, s.now())
	if err != nil {
		s.count(domain.OperationAddressValidation, false, err)
		return nil, fmt.Errorf("verify address: %w", err)
	}

	raw, err := s.send(ctx, domain.OperationAddressValidation, req, opts)
	if err != nil {
		s.finish(ctx, domain.OperationAddressValidation, opts, req, raw, false, "", err)
		return nil, fmt.Errorf("verify address: %w", err)
	}

	resp, err := fedex.ParseAddressValidationResponse(raw)
	if err != nil {
		s.finish(ctx, domain.OperationAddressValidation, opts, req, raw, false, "", err)
		return nil, fmt.Errorf("verify address: %w", err)
	}
	s.finish(ctx, domain.OperationAddressValidation, opts, req, raw, resp.Success, resp.Message, nil)

	return resp, nil
}

// send performs the round trip. Every transport failure is reported as
// domain.ErrTransport.
func (s *carrierService) send(ctx context.Context, op domain.Operation, req string, opts domain.RequestOptions) (string, error) {
	if opts.LogXML {
		s.log.Debug().Str("operation", string(op)).Bool("test", opts.Test).
			Str("xml", fedex.RedactCredentials(req)).Msg("carrier request")
	}

	start := time.Now()
	raw, err := s.transport.Send(ctx, req, opts.Test)
	metrics.CarrierRequestDuration.WithLabelValues(string(op)).Observe(time.Since(start).Seconds())
	if err != nil {
		if !errors.Is(err, domain.ErrTransport) {
			err = fmt.Errorf("%w: %v", domain.ErrTransport, err)
		}
		return "", err
	}

	if opts.LogXML {
		s.log.Debug().Str("operation", string(op)).Str("xml", raw).Msg("carrier response")
	}
	return raw, nil
}

// finish counts the exchange and, when LogXML is set, audits it.
func (s *carrierService) finish(ctx context.Context, op domain.Operation, opts domain.RequestOptions, req, raw string, success bool, message string, err error) {
	s.count(op, success, err)
	if !opts.LogXML || s.exchanges == nil {
		return
	}

	exchange := &domain.Exchange{
		Operation:   op,
		Test:        opts.Test,
		RequestXML:  fedex.RedactCredentials(req),
		ResponseXML: raw,
		Success:     success,
		Message:     message,
		CreatedAt:   s.now().UTC(),
	}
	if err != nil {
		exchange.Error = err.Error()
	}
	if insertErr := s.exchanges.Insert(ctx, exchange); insertErr != nil {
		s.log.Warn().Err(insertErr).Str("operation", string(op)).Msg("failed to audit carrier exchange")
	}
}

func (s *carrierService) count(op domain.Operation, success bool, err error) {
	metrics.CarrierRequestsTotal.WithLabelValues(string(op), outcome(success, err)).Inc()
}

func outcome(success bool, err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidConfiguration):
		return "invalid_configuration"
	case errors.Is(err, domain.ErrTransport):
		return "transport_error"
	case errors.Is(err, domain.ErrBadResponse):
		return "bad_response"
	case err != nil:
		return "error"
	case success:
		return "success"
	default:
		return "failure"
	}
}

// trackingCacheKey identifies a tracking query. Queries narrowed by a ship
// date range are not cached.
func trackingCacheKey(identifier string, opts domain.RequestOptions) (string, bool) {
	if identifier == "" || !opts.ShipDateRangeBegin.IsZero() || !opts.ShipDateRangeEnd.IsZero() {
		return "", false
	}
	idType := strings.ToLower(opts.PackageIdentifierType)
	if idType == "" {
		idType = "tracking_number"
	}
	env := "live"
	if opts.Test {
		env = "test"
	}
	return fmt.Sprintf("%s:%s:%s", env, idType, identifier), true
}
