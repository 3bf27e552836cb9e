package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

var errNoCorpusService = errors.New("corpus service not configured")

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the index of known books",
}

var corpusImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Replace the corpus index from a CSV file",
	Long: `Replace the corpus index with the rows of a CSV file.

Each row holds a book name and its topic id. A header row is optional.
Use -1 for books without a confident topic.`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusImport,
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the known books and their topics",
	Args:  cobra.NoArgs,
	RunE:  runCorpusList,
}

func init() {
	corpusCmd.AddCommand(corpusImportCmd)
	corpusCmd.AddCommand(corpusListCmd)
	rootCmd.AddCommand(corpusCmd)
}

func runCorpusImport(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errNoCorpusService
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	n, err := corpusService.Import(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("failed to import corpus: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d books.\n", n)
	return nil
}

func runCorpusList(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errNoCorpusService
	}

	idx, err := corpusService.Index(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	out := cmd.OutOrStdout()
	if idx.Len() == 0 {
		fmt.Fprintln(out, "The corpus index is empty.")
		return nil
	}

	for i, name := range idx.DocumentNames {
		topic := "none"
		if t := idx.TopicOfDocument[i]; t != domain.NoTopic {
			topic = fmt.Sprintf("%d", t)
		}
		fmt.Fprintf(out, "  %-40s topic %s\n", name, topic)
	}
	fmt.Fprintf(out, "\nTotal: %d books\n", idx.Len())
	return nil
}
