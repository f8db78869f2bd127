package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/99minutos/carrier-gateway/internal/api/metrics"
	"github.com/99minutos/carrier-gateway/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

type trackingJob struct {
	ctx   context.Context
	index int
	query ports.TrackingQuery
	reply chan<- indexedResult
}

type indexedResult struct {
	index  int
	result ports.TrackingResult
}

// Dispatcher fans batch tracking queries out to a fixed set of workers using
// consistent hashing on the identifier, so repeated identifiers in a batch
// hit the same worker and, after the first, the tracking cache.
type Dispatcher struct {
	workers []chan trackingJob
	service ports.CarrierService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.CarrierService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan trackingJob, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan trackingJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Track runs every query and waits for all results. Results are returned in
// query order. A per-query failure is reported in its result; only ctx ending
// aborts the batch.
func (d *Dispatcher) Track(ctx context.Context, queries []ports.TrackingQuery) ([]ports.TrackingResult, error) {
	// Buffered so workers never block on a caller that gave up.
	replies := make(chan indexedResult, len(queries))

	for i, q := range queries {
		shard := d.shardIndex(q.Identifier)
		job := trackingJob{ctx: ctx, index: i, query: q, reply: replies}
		select {
		case d.workers[shard] <- job:
			metrics.BatchQueueDepth.WithLabelValues(strconv.Itoa(shard)).Set(float64(len(d.workers[shard])))
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	results := make([]ports.TrackingResult, len(queries))
	for range queries {
		select {
		case r := <-replies:
			results[r.index] = r.result
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return results, nil
}

// shardIndex maps an identifier deterministically to a worker index.
func (d *Dispatcher) shardIndex(identifier string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan trackingJob) {
	depth := metrics.BatchQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))
			job.reply <- indexedResult{index: job.index, result: d.process(id, job)}
		}
	}
}

func (d *Dispatcher) process(id int, job trackingJob) ports.TrackingResult {
	result := ports.TrackingResult{Identifier: job.query.Identifier}
	if err := job.ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	resp, err := d.service.FindTrackingInfo(job.ctx, job.query.Identifier, job.query.Options)
	if err != nil {
		d.log.Error().Err(err).
			Str("tracking_number", job.query.Identifier).
			Int("worker_id", id).
			Msg("batch tracking query failed")
		result.Err = err
		return result
	}
	result.Response = resp
	return result
}
