package redis

import (
	"testing"
	"time"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

func TestTrackingEncoding_KeepsRawDocument(t *testing.T) {
	in := &domain.TrackingResponse{
		Success:        true,
		Message:        "SUCCESS - 0: ok",
		XML:            "<TrackReply/>",
		TrackingNumber: "077973360403984",
		Destination:    domain.Location{City: "NASHVILLE", State: "TN", CountryCode: "US"},
		Events: []domain.ShipmentEvent{{
			Description: "Delivered",
			Time:        time.Date(2026, 3, 5, 9, 12, 0, 0, time.UTC),
			Location:    domain.Location{City: "Nashville", PostalCode: "37211", CountryCode: "US"},
		}},
	}

	b, err := encodeTracking(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := decodeTracking(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if out.XML != in.XML {
		t.Errorf("expected raw xml kept, got %q", out.XML)
	}
	if out.TrackingNumber != in.TrackingNumber || !out.Success || out.Message != in.Message {
		t.Errorf("unexpected header fields: %+v", out)
	}
	if len(out.Events) != 1 || !out.Events[0].Time.Equal(in.Events[0].Time) {
		t.Errorf("unexpected events: %+v", out.Events)
	}
}

func TestDecodeTracking_Garbage(t *testing.T) {
	if _, err := decodeTracking([]byte("not json")); err == nil {
		t.Fatal("expected error for corrupt entry")
	}
}

func TestNewTrackingCache_DefaultTTL(t *testing.T) {
	if c := NewTrackingCache(nil, 0); c.ttl != defaultTrackingTTL {
		t.Fatalf("expected default ttl, got %v", c.ttl)
	}
	if c := NewTrackingCache(nil, time.Minute); c.ttl != time.Minute {
		t.Fatalf("expected configured ttl, got %v", c.ttl)
	}
}
