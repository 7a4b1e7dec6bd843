package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/hupe1980/triedo"
	"github.com/hupe1980/triedo/command"
	"github.com/hupe1980/triedo/config"
	promcollector "github.com/hupe1980/triedo/metrics/prometheus"
	"github.com/hupe1980/triedo/runner"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	var flags indexFlags
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Execute commands from stdin or a file",
		Long: `Execute to-do list commands line by line and print one result per command.

The first line holds the command count and is not executed. Malformed lines
are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			if metricsAddr != "" {
				cfg.Metrics.Addr = metricsAddr
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runInteractive(cmd.Context(), cfg, in, cmd.OutOrStdout())
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")

	return cmd
}

func runInteractive(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	logger := cfg.Logger()
	listOpts := append(cfg.ListOptions(), triedo.WithLogger(logger))

	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		listOpts = append(listOpts, triedo.WithMetricsCollector(promcollector.New(reg)))

		stop, err := serveMetrics(cfg.Metrics.Addr, reg)
		if err != nil {
			return err
		}
		defer stop()
		logger.Info("serving metrics", "addr", cfg.Metrics.Addr)
	}

	format, _ := command.ParseFormat(cfg.Batch.Format)
	sum, err := runner.Interactive(ctx, in, out,
		runner.WithListOptions(listOpts...),
		runner.WithFormat(format),
		runner.WithCodec(cfg.OutputCodec()),
		runner.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Debug("run finished", "executed", sum.Executed, "skipped", sum.Skipped)
	return nil
}

// serveMetrics exposes reg on addr until the returned stop func is called.
func serveMetrics(addr string, reg *prometheus.Registry) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "metrics server: %v\n", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
