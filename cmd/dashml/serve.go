package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vango-dev/dashml/pkg/middleware"
	"github.com/vango-dev/dashml/pkg/render"
	"github.com/vango-dev/dashml/pkg/server"
)

type serveOptions struct {
	host    string
	port    int
	metrics bool
	tracing bool
}

func serveCmd(flags *globalFlags) *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo page over HTTP",
		Long: `Serve the demo document over HTTP until interrupted.

With metrics enabled the server exposes Prometheus metrics at /metrics.
Tracing uses the global OpenTelemetry tracer provider.

Examples:
  dashml serve
  dashml serve --port=9000 --metrics=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Serve.Host = opts.host
			}
			if cmd.Flags().Changed("port") {
				cfg.Serve.Port = opts.port
			}
			if cmd.Flags().Changed("metrics") {
				cfg.Metrics.Enabled = opts.metrics
			}
			if cmd.Flags().Changed("tracing") {
				cfg.Tracing.Enabled = opts.tracing
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := server.NewRouter(server.RouterConfig{
				Metrics:        cfg.Metrics.Enabled,
				MetricsOptions: []middleware.MetricsOption{middleware.WithNamespace(cfg.Metrics.Namespace)},
				Tracing:        cfg.Tracing.Enabled,
				TracingOptions: []middleware.OTelOption{middleware.WithTracerName(cfg.Tracing.TracerName)},
				Logger:         slog.Default(),
			})
			router.Method(http.MethodGet, "/", server.Handler(
				server.Static(simpleDocument()),
				server.WithDoctype(cfg.Serve.Doctype),
				server.WithRendererConfig(render.RendererConfig{Pretty: cfg.Render.Pretty, Indent: cfg.Render.Indent}),
			))

			srv := server.New(&server.ServerConfig{Address: cfg.Address()}, router)
			success(cmd.OutOrStdout(), "Serving on http://%s", cfg.Address())
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&opts.host, "host", "H", "", "Host to bind to (default from dashml.json)")
	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "Port to listen on (default from dashml.json)")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", true, "Expose Prometheus metrics")
	cmd.Flags().BoolVar(&opts.tracing, "tracing", false, "Trace requests with OpenTelemetry")

	return cmd
}
