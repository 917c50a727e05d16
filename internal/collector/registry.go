package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Guliveer/sysinfo/internal/models"
)

// ErrNotRegistered is returned when a requested section has no collector.
var ErrNotRegistered = errors.New("no collector registered for section")

// Options configures the standard collectors and the Registry.
type Options struct {
	// CPUInterval is the per-core utilization sampling window.
	CPUInterval time.Duration
	// AllPartitions includes pseudo and network filesystems.
	AllPartitions bool
	// Parallel runs the requested collectors concurrently.
	Parallel bool
}

// Registry manages the registered collectors and assembles snapshots.
type Registry struct {
	collectors map[models.Section]Collector
	parallel   bool
	logger     *zap.Logger
}

// NewRegistry creates a new, empty collector registry.
func NewRegistry(logger *zap.Logger, opts Options) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		collectors: make(map[models.Section]Collector),
		parallel:   opts.Parallel,
		logger:     logger,
	}
}

// Register adds a collector if it's available on the current platform.
// A later registration for the same section replaces the earlier one.
func (r *Registry) Register(c Collector) {
	if !c.IsAvailable() {
		r.logger.Warn("Collector not available, skipping",
			zap.String("section", string(c.Section())))
		return
	}
	r.collectors[c.Section()] = c
	r.logger.Debug("Registered collector", zap.String("section", string(c.Section())))
}

// Sections returns the registered sections in canonical order.
func (r *Registry) Sections() []models.Section {
	var out []models.Section
	for _, s := range models.AllSections() {
		if _, ok := r.collectors[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Collect runs the collectors for the requested sections and returns a
// snapshot whose keys follow the request order. A failing collector yields a
// CollectorError record for its section and does not stop the others. An
// empty request returns an empty snapshot. The returned error is either
// ErrNotRegistered or the context error when collection was interrupted.
func (r *Registry) Collect(ctx context.Context, sections []models.Section) (*models.Snapshot, error) {
	snap := models.NewSnapshot()
	if len(sections) == 0 {
		return snap, nil
	}

	cols := make([]Collector, len(sections))
	for i, s := range sections {
		c, ok := r.collectors[s]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotRegistered, s)
		}
		cols[i] = c
	}

	results := make([]any, len(cols))
	var err error
	if r.parallel {
		err = r.collectParallel(ctx, cols, results)
	} else {
		err = r.collectSequential(ctx, cols, results)
	}
	if err != nil {
		return nil, err
	}

	for i, s := range sections {
		snap.Set(s, results[i])
	}
	return snap, nil
}

func (r *Registry) collectSequential(ctx context.Context, cols []Collector, results []any) error {
	for i, c := range cols {
		data, err := r.run(ctx, c)
		if err != nil {
			return err
		}
		results[i] = data
	}
	return nil
}

// collectParallel runs every collector in its own goroutine. Results are
// written by index so request order survives.
func (r *Registry) collectParallel(ctx context.Context, cols []Collector, results []any) error {
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range cols {
		i, c := i, c
		g.Go(func() error {
			data, err := r.run(gctx, c)
			if err != nil {
				return err
			}
			results[i] = data
			return nil
		})
	}
	return g.Wait()
}

// run invokes one collector. Collector failures become CollectorError
// records; only cancellation of ctx is returned as an error.
func (r *Registry) run(ctx context.Context, c Collector) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := c.Collect(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		r.logger.Warn("Collection failed",
			zap.String("section", string(c.Section())),
			zap.Error(err))
		return models.CollectorError{Error: err.Error()}, nil
	}

	r.logger.Debug("Collected section",
		zap.String("section", string(c.Section())),
		zap.Duration("took", time.Since(start)))
	return data, nil
}
