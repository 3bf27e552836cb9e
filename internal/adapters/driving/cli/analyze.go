package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Attribute an ebook to topics",
	Long: `Clean an ebook text file and attribute it to topics of the topic model.

The report lists each assigned topic with its keywords and the known books
that share it. The analysis is stored and can be shown again with
'gutentopics results show <id>'.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errNoAnalysisService
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	analysis, err := analysisService.Analyze(cmd.Context(), filepath.Base(path), content)
	if err != nil {
		return describeFailure(err)
	}

	if analyzeJSON {
		return printJSON(cmd, analysis)
	}
	writeReport(cmd.OutOrStdout(), analysis)
	return nil
}

// describeFailure prefixes pipeline errors with a hint for the user.
func describeFailure(err error) error {
	switch {
	case errors.Is(err, domain.ErrDecoding):
		return fmt.Errorf("the file could not be decoded as text: %w", err)
	case errors.Is(err, domain.ErrAttribution):
		return fmt.Errorf("the topic model could not process the book: %w", err)
	case errors.Is(err, domain.ErrNotReady):
		return fmt.Errorf("language resources are not initialised: %w", err)
	default:
		return fmt.Errorf("analysis failed: %w", err)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
