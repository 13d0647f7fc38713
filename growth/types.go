// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: driver configuration, options and per-order outcomes.

package growth

import (
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/milliams/square-sum/metrics"
)

// Mode selects the search run per order.
type Mode string

const (
	// ModeAny finds one path per order with the rotation search.
	ModeAny Mode = "any"

	// ModeAll enumerates distinct paths per order and flags magic ones.
	ModeAll Mode = "all"
)

var (
	// ErrBadRange is returned by New when Start < 1 or End < Start.
	ErrBadRange = errors.New("growth: bad order range")

	// ErrBadMode is returned by New for an unknown Mode.
	ErrBadMode = errors.New("growth: unknown mode")
)

const tracerName = "github.com/milliams/square-sum/growth"

// Config describes one run.
type Config struct {
	Start int   // first order searched, ≥ 1
	End   int   // last order searched, ≥ Start
	Mode  Mode  // ModeAny or ModeAll
	Seed  int64 // 0 selects the default seed
}

// Catalog persists paths by order. *store.Catalog satisfies it.
type Catalog interface {
	Save(order int, seq []int) error
	Load(order int) ([]int, error)
}

// Outcome reports the search for one order.
type Outcome struct {
	Order int

	// Path is a Hamiltonian path of 1..Order (1-indexed); nil on failure.
	// In ModeAll it is the first of Paths.
	Path []int

	// Paths holds the distinct canonical paths (ModeAll only).
	Paths [][]int

	// Magic holds the canonical paths that extend to Order+1 at an end.
	Magic [][]int

	Seeded     bool
	Iterations int
	Resets     int
	Duration   time.Duration

	// Err is hamilton.ErrNotConnected or hamilton.ErrTimeout on failure.
	Err error
}

// Found reports whether the order produced a path.
func (o Outcome) Found() bool { return o.Path != nil }

// Summary totals a run.
type Summary struct {
	RunID  string
	Found  int
	Failed int
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger. Nil panics.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("growth: WithLogger(nil)")
	}
	return func(d *Driver) { d.log = l }
}

// WithCatalog attaches a path catalog.
func WithCatalog(c Catalog) Option {
	return func(d *Driver) { d.catalog = c }
}

// WithRecorder attaches Prometheus instruments.
func WithRecorder(r *metrics.Recorder) Option {
	return func(d *Driver) { d.rec = r }
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(d *Driver) { d.tracer = tp.Tracer(tracerName) }
}

func defaultTracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(tracerName)
}
