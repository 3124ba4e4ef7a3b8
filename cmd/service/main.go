// Command service bootstraps the process and reports readiness. With
// --metrics-addr it keeps running, serving log line metrics until it is
// interrupted.
package main

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

	"github.com/philipp01105/bootlog/bootstrap"
	"github.com/philipp01105/bootlog/config"
)

const flagMetricsAddr = "metrics-addr"

func main() {
	if err := newRootCommand(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the service command. A nil out logs to stdout.
func newRootCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "service",
		Short:        "Bootstrap the service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			envFile, err := cmd.Flags().GetString(config.FlagEnvFile)
			if err != nil {
				return err
			}
			metricsAddr, err := cmd.Flags().GetString(flagMetricsAddr)
			if err != nil {
				return err
			}
			return run(cmd.Context(), bootstrap.Options{
				Config: config.Options{EnvFile: envFile, Flags: cmd.Flags()},
				Output: out,
			}, metricsAddr)
		},
	}
	config.RegisterFlags(cmd.Flags())
	cmd.Flags().String(flagMetricsAddr, "", "serve Prometheus metrics on this address and wait for a signal")
	return cmd
}

func run(ctx context.Context, opts bootstrap.Options, metricsAddr string) error {
	reg := prometheus.NewRegistry()
	if metricsAddr != "" {
		opts.Registerer = reg
	}

	app, err := bootstrap.Run(ctx, opts)
	if err != nil {
		return err
	}

	if metricsAddr == "" {
		app.Logger.Info("Service has been finished successfully")
		return app.Shutdown(ctx)
	}

	ln, err := net.Listen("tcp", metricsAddr)
	if err != nil {
		_ = app.Shutdown(ctx)
		return fmt.Errorf("listening on %s: %w", metricsAddr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Error("Metrics server stopped: %v", err)
		}
	}()
	app.OnShutdown(srv.Shutdown)

	app.Logger.Info("Serving metrics on %s", ln.Addr())
	return app.Wait(ctx)
}
