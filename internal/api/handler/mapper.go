package handler

import (
	"fmt"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
	"github.com/99minutos/carrier-gateway/internal/core/ports"
)

// --- Request → domain input ---

func toLocation(l locationRequest) domain.Location {
	return domain.Location{
		Address1:    l.Address1,
		Address2:    l.Address2,
		Address3:    l.Address3,
		City:        l.City,
		State:       l.State,
		PostalCode:  l.PostalCode,
		CountryCode: l.CountryCode,
		AddressType: domain.AddressType(l.AddressType),
	}
}

func toShipment(req rateRequest) (domain.Shipment, error) {
	units := domain.Metric
	if req.Units == "imperial" {
		units = domain.Imperial
	}

	pkgs := make([]domain.Package, 0, len(req.Packages))
	for i, p := range req.Packages {
		pkg, err := domain.NewPackage(p.Weight, [3]float64{p.Length, p.Width, p.Height}, units)
		if err != nil {
			return domain.Shipment{}, fmt.Errorf("packages[%d]: %w", i, err)
		}
		pkgs = append(pkgs, pkg)
	}

	return domain.Shipment{
		Origin:      toLocation(req.Origin),
		Destination: toLocation(req.Destination),
		Packages:    pkgs,
	}, nil
}

func toRateOptions(o *rateOptionsRequest) domain.RequestOptions {
	if o == nil {
		return domain.RequestOptions{}
	}
	opts := domain.RequestOptions{
		DropoffType:   o.DropoffType,
		PackagingType: o.PackagingType,
		Test:          o.Test,
	}
	if o.Shipper != nil {
		shipper := toLocation(*o.Shipper)
		opts.Shipper = &shipper
	}
	return opts
}

func toTrackingQuery(r trackingItemRequest) ports.TrackingQuery {
	q := ports.TrackingQuery{
		Identifier: r.TrackingNumber,
		Options: domain.RequestOptions{
			PackageIdentifierType: r.PackageIdentifierType,
			Test:                  r.Test,
		},
	}
	if r.ShipDateBegin != nil {
		q.Options.ShipDateRangeBegin = *r.ShipDateBegin
	}
	if r.ShipDateEnd != nil {
		q.Options.ShipDateRangeEnd = *r.ShipDateEnd
	}
	return q
}

// --- Domain result → HTTP response ---

func toLocationResponse(l domain.Location) locationResponse {
	return locationResponse{
		Address1:    l.Address1,
		Address2:    l.Address2,
		Address3:    l.Address3,
		City:        l.City,
		State:       l.State,
		PostalCode:  l.PostalCode,
		CountryCode: l.CountryCode,
		AddressType: string(l.AddressType),
	}
}

func toRateQuoteResponse(r *domain.RateResponse) rateQuoteResponse {
	rates := make([]rateEstimateResponse, len(r.Rates))
	for i, rate := range r.Rates {
		rates[i] = rateEstimateResponse{
			Carrier:     rate.Carrier,
			ServiceName: rate.ServiceName,
			ServiceCode: rate.ServiceCode,
			ServiceType: rate.ServiceType,
			TotalPrice:  rate.TotalPrice,
			Currency:    rate.Currency,
		}
		if !rate.DeliveryDate.IsZero() {
			d := rate.DeliveryDate.UTC()
			rates[i].DeliveryDate = &d
		}
	}
	return rateQuoteResponse{Success: r.Success, Message: r.Message, Rates: rates}
}

func toTrackingResponse(r *domain.TrackingResponse) trackingResponse {
	events := make([]trackingEventResponse, len(r.Events))
	for i, ev := range r.Events {
		events[i] = trackingEventResponse{
			Description: ev.Description,
			Time:        ev.Time.UTC(),
			Location:    toLocationResponse(ev.Location),
		}
	}
	return trackingResponse{
		Success:        r.Success,
		Message:        r.Message,
		TrackingNumber: r.TrackingNumber,
		Destination:    toLocationResponse(r.Destination),
		Events:         events,
	}
}

func toBatchResponse(results []ports.TrackingResult) trackingBatchResponse {
	out := make([]trackingBatchItemResponse, len(results))
	for i, res := range results {
		out[i] = trackingBatchItemResponse{TrackingNumber: res.Identifier}
		if res.Err != nil {
			out[i].Error = res.Err.Error()
			continue
		}
		tr := toTrackingResponse(res.Response)
		out[i].Tracking = &tr
	}
	return trackingBatchResponse{Results: out}
}

func toAddressVerifyResponse(r *domain.AddressValidationResponse) addressVerifyResponse {
	candidates := make([]addressCandidateResponse, len(r.Candidates))
	for i, cand := range r.Candidates {
		candidates[i] = addressCandidateResponse{
			Score:       cand.Score,
			Address:     toLocationResponse(cand.Location),
			AddressType: string(cand.AddressType),
		}
	}
	return addressVerifyResponse{Success: r.Success, Message: r.Message, Candidates: candidates}
}
