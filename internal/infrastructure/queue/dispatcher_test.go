package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
	"github.com/99minutos/carrier-gateway/internal/core/ports"
)

type stubCarrierService struct {
	mu      sync.Mutex
	calls   []string
	failFor map[string]error
	block   chan struct{}
}

func (s *stubCarrierService) FindRates(context.Context, domain.Shipment, domain.RequestOptions) (*domain.RateResponse, error) {
	return nil, errors.New("not used")
}

func (s *stubCarrierService) VerifyAddress(context.Context, domain.Location, domain.RequestOptions) (*domain.AddressValidationResponse, error) {
	return nil, errors.New("not used")
}

func (s *stubCarrierService) FindTrackingInfo(ctx context.Context, identifier string, _ domain.RequestOptions) (*domain.TrackingResponse, error) {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	s.mu.Lock()
	s.calls = append(s.calls, identifier)
	s.mu.Unlock()
	if err := s.failFor[identifier]; err != nil {
		return nil, err
	}
	return &domain.TrackingResponse{Success: true, TrackingNumber: identifier}, nil
}

func TestDispatcher_Track_PreservesOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &stubCarrierService{failFor: map[string]error{"bad": domain.ErrTransport}}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	queries := []ports.TrackingQuery{{Identifier: "a"}, {Identifier: "bad"}, {Identifier: "c"}, {Identifier: "a"}}
	results, err := d.Track(ctx, queries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(queries) {
		t.Fatalf("expected %d results, got %d", len(queries), len(results))
	}
	for i, r := range results {
		if r.Identifier != queries[i].Identifier {
			t.Errorf("result %d: expected %s, got %s", i, queries[i].Identifier, r.Identifier)
		}
	}
	if !errors.Is(results[1].Err, domain.ErrTransport) || results[1].Response != nil {
		t.Errorf("expected failure for bad identifier, got %+v", results[1])
	}
	if results[0].Response == nil || results[0].Response.TrackingNumber != "a" {
		t.Errorf("unexpected first result: %+v", results[0])
	}
	if len(svc.calls) != 4 {
		t.Errorf("expected 4 service calls, got %d", len(svc.calls))
	}
}

func TestDispatcher_Track_ContextCancelled(t *testing.T) {
	workerCtx, stop := context.WithCancel(context.Background())
	defer stop()

	svc := &stubCarrierService{block: make(chan struct{})}
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start(workerCtx)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := d.Track(ctx, []ports.TrackingQuery{{Identifier: "slow"}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got: %v", err)
	}
	close(svc.block)
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(8, &stubCarrierService{}, zerolog.Nop())

	first := d.shardIndex("077973360403984")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("077973360403984"); got != first {
			t.Fatalf("shard changed: %d != %d", got, first)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard out of range: %d", first)
	}
}

func TestNewDispatcher_DefaultWorkers(t *testing.T) {
	d := NewDispatcher(0, &stubCarrierService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
