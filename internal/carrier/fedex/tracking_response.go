package fedex

import (
	"fmt"
	"sort"
	"time"

	"github.com/beevik/etree"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

var eventTimestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTrackingResponse turns a TrackReply into the shipment's destination and
// scan history. Details are read only when the reply is successful.
func ParseTrackingResponse(raw string) (*domain.TrackingResponse, error) {
	root, err := readReply(StripNamespacePrefixes(raw), "TrackReply", "")
	if err != nil {
		return nil, fmt.Errorf("parse track reply: %w", err)
	}

	status := readStatus(root, "")
	resp := &domain.TrackingResponse{
		Success: status.success,
		Message: status.message,
		XML:     raw,
		Events:  []domain.ShipmentEvent{},
	}
	if !resp.Success {
		return resp, nil
	}

	details := root.SelectElement("TrackDetails")
	if details == nil {
		return nil, fmt.Errorf("parse track reply: %w: successful reply without TrackDetails", domain.ErrBadResponse)
	}

	resp.TrackingNumber = childText(details, "", "TrackingNumber")
	if dest := details.SelectElement("DestinationAddress"); dest != nil {
		resp.Destination = domain.Location{
			City:        childText(dest, "", "City"),
			State:       childText(dest, "", "StateOrProvinceCode"),
			CountryCode: childText(dest, "", "CountryCode"),
		}
	}

	for _, ev := range details.SelectElements("Events") {
		event, ok, err := shipmentEvent(ev)
		if err != nil {
			return nil, fmt.Errorf("parse track reply: %w", err)
		}
		if ok {
			resp.Events = append(resp.Events, event)
		}
	}

	sort.SliceStable(resp.Events, func(i, j int) bool {
		return resp.Events[i].Time.Before(resp.Events[j].Time)
	})
	return resp, nil
}

// shipmentEvent reports ok=false for events without a usable address: FedEx
// emits those for internal scans and they carry nothing a caller can show.
func shipmentEvent(ev *etree.Element) (domain.ShipmentEvent, bool, error) {
	addr := ev.SelectElement("Address")
	if addr == nil {
		return domain.ShipmentEvent{}, false, nil
	}
	loc := domain.Location{
		City:        childText(addr, "", "City"),
		State:       childText(addr, "", "StateOrProvinceCode"),
		PostalCode:  childText(addr, "", "PostalCode"),
		CountryCode: childText(addr, "", "CountryCode"),
	}
	if loc.PostalCode == "" || loc.CountryCode == "" {
		return domain.ShipmentEvent{}, false, nil
	}

	ts := childText(ev, "", "Timestamp")
	when, err := zonelessTime(ts)
	if err != nil {
		return domain.ShipmentEvent{}, false, fmt.Errorf("%w: event timestamp %q", domain.ErrBadResponse, ts)
	}

	return domain.ShipmentEvent{
		Description: childText(ev, "", "EventDescription"),
		Time:        when,
		Location:    loc,
	}, true, nil
}

// zonelessTime keeps the clock fields of s and places them in UTC, dropping
// any offset FedEx attached.
func zonelessTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range eventTimestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
