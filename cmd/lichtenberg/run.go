package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lichtenberg/core"
	"github.com/katalvlaran/lichtenberg/growth"
	"github.com/katalvlaran/lichtenberg/metrics"
	"github.com/katalvlaran/lichtenberg/render"
	"github.com/katalvlaran/lichtenberg/seed"
	"github.com/katalvlaran/lichtenberg/snapshot"
)

// Driver defaults. The reference run seeds a pair with a heavy root.
const (
	defaultIterations = 50
	defaultRootWeight = 5.0
	defaultSeedSize   = 2
	framePattern      = "iteration_%03d.gv"
)

type options struct {
	configPath  string
	iterations  int
	layout      string
	seedSize    int
	rootWeight  float64
	outDir      string
	frames      bool
	snapshotOut string
	resume      string
	metricsAddr string
}

func registerFlags(fs *flag.FlagSet) *options {
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "growth config YAML (defaults when empty)")
	fs.IntVar(&o.iterations, "n", defaultIterations, "number of growth steps")
	fs.StringVar(&o.layout, "seed-layout", seed.LayoutPair, "initial layout: pair, line, ring or star")
	fs.IntVar(&o.seedSize, "seed-size", defaultSeedSize, "vertex count of the initial layout (ignored for pair)")
	fs.Float64Var(&o.rootWeight, "root-weight", defaultRootWeight, "weight of the root vertex in the initial layout")
	fs.StringVar(&o.outDir, "out", ".", "directory for frames")
	fs.BoolVar(&o.frames, "frames", true, "write a DOT frame after every step")
	fs.StringVar(&o.snapshotOut, "snapshot", "", "write the final graph to this YAML file")
	fs.StringVar(&o.resume, "resume", "", "continue from a snapshot instead of a fresh seed")
	fs.StringVar(&o.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	return o
}

// run executes one growth session. It stops early, still writing the
// snapshot, when ctx is cancelled between steps.
func run(ctx context.Context, o *options) error {
	if o.iterations < 0 {
		return fmt.Errorf("-n=%d must not be negative", o.iterations)
	}
	cfg, err := growth.LoadConfig(o.configPath)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	g, err := initialGraph(o, &cfg)
	if err != nil {
		return err
	}
	klog.Infof("run %s: %d vertices, root %q, %d steps", runID, g.VertexCount(), cfg.Root, o.iterations)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewCollector(reg, g)
	if o.metricsAddr != "" {
		srv := serveMetrics(o.metricsAddr, reg)
		defer shutdown(srv)
	}

	eng, err := growth.NewEngine(g, growth.WithConfig(cfg), growth.WithObserver(collector))
	if err != nil {
		return err
	}
	if o.frames {
		if err = os.MkdirAll(o.outDir, 0o755); err != nil {
			return err
		}
	}

	mem := usageFactory()
	start := time.Now()
	var i int
	for i = 0; i < o.iterations; i++ {
		if ctx.Err() != nil {
			klog.Warningf("run %s: interrupted after %d steps", runID, i)
			break
		}
		began := time.Now()
		res, err := eng.GrowOnce()
		if errors.Is(err, growth.ErrDisconnected) {
			klog.Fatalf("run %s: step %d: %v", runID, i, err)
		}
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if o.frames {
			if err = writeFrame(filepath.Join(o.outDir, fmt.Sprintf(framePattern, i)), g); err != nil {
				return err
			}
		}
		if klog.V(2) {
			klog.Infof("%3d%% step %d %s→%s attempts=%d took %v rss=%s",
				i*100/o.iterations, i, res.Expansion, res.Touched, res.Attempts, time.Since(began), mem.rss())
		}
	}
	klog.Infof("run %s: %d steps, %d vertices, %d edges in %v",
		runID, i, g.VertexCount(), g.EdgeCount(), time.Since(start))

	if o.snapshotOut != "" {
		return writeSnapshot(o.snapshotOut, g, cfg.Root, runID)
	}

	return nil
}

// initialGraph builds the seed layout or restores a snapshot. A restored
// snapshot's root overrides the configured one.
func initialGraph(o *options, cfg *growth.Config) (*core.Graph, error) {
	if o.resume == "" {
		return seed.Build(o.layout, o.seedSize, seed.WithRootWeight(o.rootWeight))
	}

	f, err := os.Open(o.resume)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := snapshot.Read(f)
	if err != nil {
		return nil, fmt.Errorf("resume %s: %w", o.resume, err)
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, fmt.Errorf("resume %s: %w", o.resume, err)
	}
	klog.Infof("resuming run %q from %s", doc.Run, o.resume)
	cfg.Root = doc.Root

	return g, nil
}

func writeFrame(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render.WriteDOT(f, g); err != nil {
		f.Close()
		return fmt.Errorf("frame %s: %w", path, err)
	}

	return f.Close()
}

func writeSnapshot(path string, g *core.Graph, root, runID string) error {
	doc, err := snapshot.FromGraph(g, root)
	if err != nil {
		return err
	}
	doc.Run = runID

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = doc.Write(f); err != nil {
		f.Close()
		return err
	}
	klog.Infof("snapshot written to %s", path)

	return f.Close()
}

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Errorf("metrics server: %v", err)
		}
	}()
	klog.Infof("serving metrics on %s/metrics", addr)

	return srv
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		klog.Errorf("metrics server shutdown: %v", err)
	}
}
