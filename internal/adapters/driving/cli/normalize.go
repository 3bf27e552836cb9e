package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

var normalizeEncoding string

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file>",
	Short: "Write the cleaned form of an ebook",
	Long: `Strip distribution boilerplate from an ebook and write its content-word
lemmas, space separated, to cleaned_<name> in the configured output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeEncoding, "encoding", "", "source encoding (detected when empty)")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	if normalizerService == nil {
		return errors.New("normalizer service not configured")
	}

	outDir := domain.DefaultAppSettings().Output.CleanedDir
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		outDir = settings.Output.CleanedDir
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	name := filepath.Base(path)
	doc, err := normalizerService.Normalize(domain.RawDocument{
		Name:     name,
		Content:  content,
		Encoding: normalizeEncoding,
	})
	if err != nil {
		return describeFailure(err)
	}

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create %s: %w", outDir, err)
	}
	outPath := filepath.Join(outDir, "cleaned_"+name)
	if err := os.WriteFile(outPath, []byte(doc.Text()), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d tokens to %s\n", doc.Len(), outPath)
	return nil
}
