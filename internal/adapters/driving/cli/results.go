package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resultsJSON bool

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse stored analyses",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored analyses, newest first",
	Args:  cobra.NoArgs,
	RunE:  runResultsList,
}

var resultsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runResultsShow,
}

func init() {
	resultsShowCmd.Flags().BoolVar(&resultsJSON, "json", false, "output the analysis as JSON")
	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsShowCmd)
	rootCmd.AddCommand(resultsCmd)
}

func runResultsList(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errNoAnalysisService
	}

	analyses, err := analysisService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(analyses) == 0 {
		fmt.Fprintln(out, "No analyses yet. Run 'gutentopics analyze <file>'.")
		return nil
	}

	for i := range analyses {
		writeSummaryLine(out, &analyses[i])
	}
	fmt.Fprintf(out, "\nTotal: %d analyses\n", len(analyses))
	return nil
}

func runResultsShow(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errNoAnalysisService
	}

	analysis, err := analysisService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	if resultsJSON {
		return printJSON(cmd, analysis)
	}
	writeReport(cmd.OutOrStdout(), analysis)
	return nil
}
