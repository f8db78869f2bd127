package fedex

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

// NoRatesMessage replaces an empty carrier message when a reply has no rates.
const NoRatesMessage = "No shipping rates could be found for the destination address"

var deliveryTimestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseRateResponse turns a RateReply into one estimate per rated service.
// A reply without rates is reported as unsuccessful, not as an error.
func ParseRateResponse(raw string, shipment domain.Shipment) (*domain.RateResponse, error) {
	root, err := readReply(StripNamespacePrefixes(raw), "RateReply", "")
	if err != nil {
		return nil, fmt.Errorf("parse rate reply: %w", err)
	}

	status := readStatus(root, "")
	resp := &domain.RateResponse{
		Success: status.success,
		Message: status.message,
		XML:     raw,
		Rates:   []domain.RateEstimate{},
	}

	for _, detail := range root.SelectElements("RateReplyDetails") {
		estimate, err := rateEstimate(detail, shipment)
		if err != nil {
			return nil, fmt.Errorf("parse rate reply: %w", err)
		}
		resp.Rates = append(resp.Rates, estimate)
	}

	if len(resp.Rates) == 0 {
		resp.Success = false
		if resp.Message == "" {
			resp.Message = NoRatesMessage
		}
	}
	return resp, nil
}

func rateEstimate(detail *etree.Element, shipment domain.Shipment) (domain.RateEstimate, error) {
	serviceCode := childText(detail, "", "ServiceType")
	serviceType := serviceCode
	if childText(detail, "", "AppliedOptions") == "SATURDAY_DELIVERY" {
		serviceType = serviceCode + saturdayDeliverySuffix
	}

	var amount float64
	if s := pathText(detail, "RatedShipmentDetails/ShipmentRateDetail/TotalNetCharge/Amount"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return domain.RateEstimate{}, fmt.Errorf("%w: total net charge %q for %s", domain.ErrBadResponse, s, serviceType)
		}
		amount = v
	}

	return domain.RateEstimate{
		Origin:       shipment.Origin,
		Destination:  shipment.Destination,
		Carrier:      CarrierName,
		ServiceName:  ServiceNameForCode(serviceType),
		ServiceCode:  serviceCode,
		ServiceType:  serviceType,
		TotalPrice:   amount,
		Currency:     pathText(detail, "RatedShipmentDetails/ShipmentRateDetail/TotalNetCharge/Currency"),
		Packages:     shipment.Packages,
		DeliveryDate: parseDeliveryTimestamp(childText(detail, "", "DeliveryTimestamp")),
	}, nil
}

// parseDeliveryTimestamp returns the zero time when the value is absent or
// not in a known layout; the delivery date is optional.
func parseDeliveryTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range deliveryTimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
