// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/milliams/square-sum/config"
	"github.com/milliams/square-sum/growth"
	"github.com/milliams/square-sum/metrics"
	"github.com/milliams/square-sum/store"
)

type runFlags struct {
	start, end int
	find       string
	seed       int64
	storePath  string
	inMemory   bool
	metrics    bool
	resume     bool
}

func newRunCmd(gf *globalFlags) *cobra.Command {
	rf := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search every order from --start to --end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := gf.loadConfig()
			if err != nil {
				return err
			}
			rf.apply(cmd, cfg)
			if err := config.Validate(cfg); err != nil {
				return err
			}
			return runGrowth(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, rf.resume)
		},
	}
	f := cmd.Flags()
	f.IntVar(&rf.start, "start", 1, "first order to search")
	f.IntVar(&rf.end, "end", 100, "last order to search")
	f.StringVar(&rf.find, "find", config.FindAny, "any: one path per order, all: enumerate paths")
	f.Int64Var(&rf.seed, "seed", 0, "random seed (0 selects the default)")
	f.StringVar(&rf.storePath, "store", "", "catalog directory for found paths")
	f.BoolVar(&rf.inMemory, "in-memory", false, "use an in-memory catalog")
	f.BoolVar(&rf.metrics, "metrics", false, "serve Prometheus metrics while running")
	f.BoolVar(&rf.resume, "resume", false, "start after the largest order already in the catalog")

	return cmd
}

// apply copies the flags the user set over cfg.
func (rf *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("start") {
		cfg.Start = rf.start
	}
	if f.Changed("end") {
		cfg.End = rf.end
	}
	if f.Changed("find") {
		cfg.Find = rf.find
	}
	if f.Changed("seed") {
		cfg.Seed = rf.seed
	}
	if f.Changed("store") {
		cfg.Store.Path = rf.storePath
	}
	if f.Changed("in-memory") {
		cfg.Store.InMemory = rf.inMemory
	}
	if f.Changed("metrics") {
		cfg.Metrics.Enabled = rf.metrics
	}
}

func runGrowth(ctx context.Context, stdout, stderr io.Writer, cfg *config.Config, resume bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log, err := newLogger(stderr, cfg.Log)
	if err != nil {
		return err
	}

	opts := []growth.Option{growth.WithLogger(log)}
	if cfg.Store.Enabled() {
		sc := store.DefaultConfig(cfg.Store.Path)
		if cfg.Store.InMemory {
			sc = store.InMemoryConfig()
		}
		sc.Logger = log.With("component", "badger")
		cat, err := store.Open(sc)
		if err != nil {
			return err
		}
		defer cat.Close()
		opts = append(opts, growth.WithCatalog(cat))

		if resume {
			latest, err := cat.Latest(cfg.End)
			if err != nil {
				return err
			}
			if latest >= cfg.Start {
				log.Info("resuming from catalog", "latest", latest)
				cfg.Start = latest + 1
			}
			if cfg.Start > cfg.End {
				fmt.Fprintln(stdout, "nothing to do")
				return nil
			}
		}
	} else if resume {
		return errors.New("--resume needs a catalog (--store or --in-memory)")
	}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		opts = append(opts, growth.WithRecorder(metrics.NewRecorder(reg)))
		stop := serveMetrics(log, cfg.Metrics.Addr, reg)
		defer stop()
	}

	d, err := growth.New(growth.Config{
		Start: cfg.Start,
		End:   cfg.End,
		Mode:  growth.Mode(cfg.Find),
		Seed:  cfg.Seed,
	}, opts...)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	sum, err := d.Run(ctx, func(o growth.Outcome) { printOutcome(stdout, cfg.Find, o) })
	if sum != nil {
		fmt.Fprintf(stdout, "found %d of %d orders\n", sum.Found, sum.Found+sum.Failed)
	}

	return err
}

func printOutcome(w io.Writer, find string, o growth.Outcome) {
	switch {
	case o.Err != nil:
		fmt.Fprintf(w, "%d: no path (%v)\n", o.Order, o.Err)
	case find == config.FindAll:
		fmt.Fprintf(w, "%d: %d paths, %d magic\n", o.Order, len(o.Paths), len(o.Magic))
		for _, p := range o.Magic {
			fmt.Fprintf(w, "  magic %v\n", p)
		}
	default:
		fmt.Fprintf(w, "%d: %v\n", o.Order, o.Path)
	}
}

// serveMetrics exposes reg on addr until the returned stop is called.
func serveMetrics(log *slog.Logger, addr string, reg *prometheus.Registry) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("metrics server stopped", "addr", addr, "err", err)
		}
	}()
	log.Info("serving metrics", "addr", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
