package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gutentopics/gutentopics/internal/adapters/driving/web"
	"github.com/gutentopics/gutentopics/internal/core/domain"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP upload server",
	Long: `Start an HTTP server that accepts ebook uploads on POST /upload and
serves stored analyses under /results. Prometheus metrics are exposed on
/metrics and the topic model's reachability on /health.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errNoAnalysisService
	}

	serverSettings := domain.DefaultAppSettings().Server
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		serverSettings = settings.Server
	}

	cfg := web.ConfigFrom(serverSettings)
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	var opts []web.Option
	if metricsHandler != nil {
		opts = append(opts, web.WithMetrics(metricsHandler))
	}
	if healthCheck != nil {
		opts = append(opts, web.WithHealthCheck(healthCheck))
	}

	server := web.NewServer(analysisService, cfg, opts...)
	fmt.Fprintf(cmd.OutOrStdout(), "Upload server listening on %s\n", cfg.Addr)
	return server.Run(cmd.Context())
}
