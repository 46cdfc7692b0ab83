// Command querk evaluates the next local collision query of a Union-Find
// decoder on stored or generated scenarios, and cross-checks the scalar
// reference against the fixed-width kernel.
//
//	querk query  --fixture square.yaml --node 0 --explain
//	querk verify --fixture square.yaml
//	querk verify --seed 7 --rounds 50 --nodes 500
//	querk gen    --topology grid --rows 4 --cols 5 --seed 1 --out grid.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/querk/logging"
)

// app carries state resolved once per invocation by the root command.
type app struct {
	cfg     Config
	log     *slog.Logger
	metrics *http.Server

	configPath string
	logLevel   string
	logJSON    bool
	workers    int
	chunkSize  int
	metricsAdr string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree writing results to out and logs to
// errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "querk",
		Short:         "Next local collision query for a Union-Find decoder",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, errOut)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.logJSON, "log-json", false, "log as JSON")
	pf.IntVar(&a.workers, "workers", 0, "kernel executor parallel chunks (0 = GOMAXPROCS)")
	pf.IntVar(&a.chunkSize, "chunk-size", 0, "kernel executor nodes per chunk")
	pf.StringVar(&a.metricsAdr, "metrics-addr", "", "serve Prometheus metrics on this address")

	root.AddCommand(newQueryCmd(a), newVerifyCmd(a), newGenCmd(a))
	return root
}

// setup loads the config, applies flag overrides, builds the logger and
// starts the metrics endpoint.
func (a *app) setup(cmd *cobra.Command, errOut io.Writer) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	if flags.Changed("workers") {
		cfg.Executor.Workers = a.workers
	}
	if flags.Changed("chunk-size") {
		cfg.Executor.ChunkSize = a.chunkSize
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = a.metricsAdr
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	a.cfg = cfg
	a.log = logging.New(logging.Config{Level: level, JSON: cfg.Log.JSON, Service: "querk", Output: errOut})

	if cfg.Metrics.Addr != "" {
		return a.serveMetrics(cfg.Metrics.Addr)
	}
	return nil
}

func (a *app) serveMetrics(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	a.metrics = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := a.metrics.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server stopped", "error", err)
		}
	}()
	a.log.Info("serving metrics", "addr", ln.Addr().String())
	return nil
}

func (a *app) teardown() error {
	if a.metrics == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.metrics.Shutdown(ctx)
}
