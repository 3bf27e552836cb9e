package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gutentopics/gutentopics/internal/adapters/driving/watch"
	"github.com/gutentopics/gutentopics/internal/core/domain"
)

var watchDir string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Analyse ebooks dropped into an inbox directory",
	Long: `Watch a directory and analyse every .txt file written to it. Each file is
analysed once after it stops changing, and a one-line summary is printed.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchDir, "dir", "", "inbox directory (overrides watch.dir)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errNoAnalysisService
	}

	dir := domain.DefaultAppSettings().Watch.Dir
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		dir = settings.Watch.Dir
	}
	if watchDir != "" {
		dir = watchDir
	}

	out := cmd.OutOrStdout()
	w := watch.New(dir, analysisService, watch.WithResultHandler(func(r watch.Result) {
		printWatchResult(out, r)
	}))

	fmt.Fprintf(out, "Watching %s for ebooks (Ctrl+C to stop)\n", dir)
	return w.Run(cmd.Context())
}

func printWatchResult(w io.Writer, r watch.Result) {
	if r.Err != nil {
		fmt.Fprintf(w, "%s: %v\n", r.Path, describeFailure(r.Err))
		return
	}
	writeSummaryLine(w, r.Analysis)
}
