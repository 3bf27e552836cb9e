// Package cli provides the gutentopics command line interface.
package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/gutentopics/gutentopics/internal/core/ports/driving"
	"github.com/gutentopics/gutentopics/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Services wired in by the composition root. Commands report an error when
// the service they need is missing.
var (
	analysisService   driving.AnalysisService
	corpusService     driving.CorpusService
	normalizerService driving.NormalizerService
	settingsService   driving.SettingsService
	metricsHandler    http.Handler
	healthCheck       func(context.Context) error
)

// Services groups the dependencies of the CLI.
type Services struct {
	Analysis   driving.AnalysisService
	Corpus     driving.CorpusService
	Normalizer driving.NormalizerService
	Settings   driving.SettingsService

	// Metrics is served on /metrics by the serve command. Optional.
	Metrics http.Handler

	// HealthCheck backs /health on the serve command. Optional.
	HealthCheck func(context.Context) error
}

// SetServices installs the services used by every command.
func SetServices(s Services) {
	analysisService = s.Analysis
	corpusService = s.Corpus
	normalizerService = s.Normalizer
	settingsService = s.Settings
	metricsHandler = s.Metrics
	healthCheck = s.HealthCheck
}

var errNoAnalysisService = errors.New("analysis service not configured")

var rootCmd = &cobra.Command{
	Use:   "gutentopics",
	Short: "Attribute public-domain ebooks to topics",
	Long: `gutentopics cleans Project Gutenberg ebooks into content-word lemmas and
attributes them to topics of a pre-trained topic model, listing the known
books that share each topic.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose") //nolint:errcheck // flag is always registered
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
