// SPDX-License-Identifier: MIT
//
// File: driver.go
// Role: the per-order growth loop.

package growth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/milliams/square-sum/builder"
	"github.com/milliams/square-sum/core"
	"github.com/milliams/square-sum/hamilton"
	"github.com/milliams/square-sum/metrics"
	"github.com/milliams/square-sum/squares"
	"github.com/milliams/square-sum/store"
)

// Driver runs the search over a range of orders. A Driver is not safe for
// concurrent Run calls.
type Driver struct {
	cfg     Config
	log     *slog.Logger
	catalog Catalog
	rec     *metrics.Recorder
	tracer  trace.Tracer

	// search is the ModeAny search; hamilton.Search unless replaced in tests.
	search func(g core.Adjacency, seed []int, opts ...hamilton.Option) (*hamilton.Result, error)
}

// New validates cfg and applies opts.
func New(cfg Config, opts ...Option) (*Driver, error) {
	if cfg.Start < 1 || cfg.End < cfg.Start {
		return nil, fmt.Errorf("%w: start=%d end=%d", ErrBadRange, cfg.Start, cfg.End)
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeAny
	}
	if cfg.Mode != ModeAny && cfg.Mode != ModeAll {
		return nil, fmt.Errorf("%w: %q", ErrBadMode, cfg.Mode)
	}

	d := &Driver{cfg: cfg, log: slog.Default(), tracer: defaultTracer(), search: hamilton.Search}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Run searches every order in [Start, End], calling fn (if non-nil) with
// each Outcome as it completes. The context is checked between orders.
// Run returns early on cancellation, an invariant violation or a catalog
// failure; the Summary covers the orders completed so far.
func (d *Driver) Run(ctx context.Context, fn func(Outcome)) (*Summary, error) {
	sum := &Summary{RunID: uuid.NewString()}
	log := d.log.With("run_id", sum.RunID)

	ctx, span := d.tracer.Start(ctx, "growth.Run", trace.WithAttributes(
		attribute.String("run.id", sum.RunID),
		attribute.Int("run.start", d.cfg.Start),
		attribute.Int("run.end", d.cfg.End),
		attribute.String("run.mode", string(d.cfg.Mode)),
	))
	defer span.End()

	err := d.run(ctx, log, sum, fn)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("run aborted", "err", err, "found", sum.Found, "failed", sum.Failed)
		return sum, err
	}
	span.SetStatus(codes.Ok, "")
	log.Info("run complete", "found", sum.Found, "failed", sum.Failed)

	return sum, nil
}

func (d *Driver) run(ctx context.Context, log *slog.Logger, sum *Summary, fn func(Outcome)) error {
	g := core.NewGraph(d.cfg.End)
	o := squares.NewOracle(2*d.cfg.End - 1)
	if err := builder.GrowTo(g, o, d.cfg.Start-1); err != nil {
		return err
	}

	var prev []int
	for n := d.cfg.Start; n <= d.cfg.End; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := builder.GrowGraph(g, o); err != nil {
			return err
		}
		d.rec.SetOrder(n)

		if prev == nil && n > 1 && d.cfg.Mode == ModeAny {
			prev = d.loadSeed(log, n-1)
		}

		out, err := d.searchOrder(ctx, g, n, prev)
		if err != nil {
			d.rec.Observe(metrics.OutcomeError, out.Iterations, out.Resets, 0, 0, out.Duration.Seconds())
			return fmt.Errorf("order %d: %w", n, err)
		}
		d.record(log, out)

		prev = out.Path
		if out.Found() {
			sum.Found++
			if d.catalog != nil {
				if err := d.catalog.Save(n, out.Path); err != nil {
					return fmt.Errorf("order %d: %w", n, err)
				}
			}
		} else {
			sum.Failed++
		}
		if fn != nil {
			fn(out)
		}
	}

	return nil
}

// searchOrder runs the configured search on g (of order n). Expected
// failures land in Outcome.Err; the returned error is fatal.
func (d *Driver) searchOrder(ctx context.Context, g *core.Graph, n int, seed []int) (Outcome, error) {
	_, span := d.tracer.Start(ctx, "growth.Order", trace.WithAttributes(
		attribute.Int("order", n),
		attribute.Bool("seeded", seed != nil && d.cfg.Mode == ModeAny),
	))
	defer span.End()

	rng := hamilton.DeriveRand(d.cfg.Seed, uint64(n))
	out := Outcome{Order: n}
	start := time.Now()

	var err error
	switch d.cfg.Mode {
	case ModeAll:
		var res *hamilton.Enumeration
		res, err = hamilton.FindAllPaths(g, hamilton.WithRand(rng))
		if res != nil {
			out.Iterations = res.Iterations
			out.Paths = res.Paths
			out.Magic = res.Magic
			if len(res.Paths) > 0 {
				out.Path = res.Paths[0]
			} else if err == nil {
				err = hamilton.ErrTimeout
			}
		}
	default:
		var res *hamilton.Result
		res, err = d.search(g, seed, hamilton.WithRand(rng))
		if res != nil {
			out.Path = res.Path
			out.Seeded = res.Seeded
			out.Iterations = res.Iterations
			out.Resets = res.Resets
		}
		if out.Path != nil && hamilton.IsMagic(out.Path) {
			out.Magic = [][]int{hamilton.Canonicalize(out.Path)}
		}
	}
	out.Duration = time.Since(start)
	span.SetAttributes(attribute.Int("iterations", out.Iterations), attribute.Int("resets", out.Resets))

	switch {
	case err == nil:
		span.SetStatus(codes.Ok, "")
	case errors.Is(err, hamilton.ErrNotConnected), errors.Is(err, hamilton.ErrTimeout):
		out.Err = err
		span.SetStatus(codes.Error, err.Error())
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return out, err
	}

	return out, nil
}

// loadSeed fetches the catalog path for order, ignoring entries that are
// missing or no longer valid.
func (d *Driver) loadSeed(log *slog.Logger, order int) []int {
	if d.catalog == nil {
		return nil
	}
	seq, err := d.catalog.Load(order)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		log.Warn("catalog load failed", "order", order, "err", err)
		return nil
	}
	if err := hamilton.ValidatePath(seq, order); err != nil {
		log.Warn("catalog path rejected", "order", order, "err", err)
		return nil
	}
	log.Debug("seed loaded from catalog", "order", order)

	return seq
}

func (d *Driver) record(log *slog.Logger, out Outcome) {
	outcome := metrics.OutcomeFound
	switch {
	case errors.Is(out.Err, hamilton.ErrNotConnected):
		outcome = metrics.OutcomeNotConnected
	case errors.Is(out.Err, hamilton.ErrTimeout):
		outcome = metrics.OutcomeTimeout
	}
	paths := len(out.Paths)
	if d.cfg.Mode == ModeAny && out.Found() {
		paths = 1
	}
	d.rec.Observe(outcome, out.Iterations, out.Resets, paths, len(out.Magic), out.Duration.Seconds())

	if out.Err != nil {
		log.Warn("no path", "order", out.Order, "reason", out.Err,
			"iterations", out.Iterations, "resets", out.Resets)
		return
	}
	log.Info("path found", "order", out.Order, "seeded", out.Seeded,
		"iterations", out.Iterations, "resets", out.Resets,
		"paths", paths, "magic", len(out.Magic), "duration", out.Duration)
}
