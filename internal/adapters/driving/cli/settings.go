package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gutentopics/gutentopics/internal/core/domain"
)

var errNoSettingsService = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change settings such as the topic model address and the
encoding detection threshold. Settings are stored in a TOML file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting. The value is checked before it is saved.

Examples:
  gutentopics settings set topicmodel.base_url http://models:8765
  gutentopics settings set topicmodel.timeout 45s
  gutentopics settings set encoding.min_confidence 50`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	values := settingValues(settings)
	for _, key := range settingsService.Keys() {
		fmt.Fprintf(out, "  %-32s %s\n", key, values[key])
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Config file: %s\n", settingsService.ConfigPath())

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(out, "Warning: %v\n", err)
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	key := args[0]
	if !slices.Contains(settingsService.Keys(), key) {
		return fmt.Errorf("unknown setting %q", key)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), settingValues(settings)[key])
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", key, value)
	return nil
}

// settingValues renders every setting keyed by its config key.
func settingValues(s *domain.AppSettings) map[string]string {
	dataDir := s.Storage.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}

	return map[string]string{
		"topicmodel.base_url":            s.TopicModel.BaseURL,
		"topicmodel.timeout":             s.TopicModel.Timeout.String(),
		"topicmodel.requests_per_second": strconv.FormatFloat(s.TopicModel.RequestsPerSecond, 'g', -1, 64),
		"topicmodel.burst":               strconv.Itoa(s.TopicModel.Burst),
		"encoding.min_confidence":        strconv.Itoa(s.Encoding.MinConfidence),
		"encoding.sample_bytes":          strconv.Itoa(s.Encoding.SampleBytes),
		"storage.data_dir":               dataDir,
		"output.cleaned_dir":             s.Output.CleanedDir,
		"server.addr":                    s.Server.Addr,
		"server.upload_dir":              s.Server.UploadDir,
		"server.max_upload_bytes":        strconv.FormatInt(s.Server.MaxUploadBytes, 10),
		"watch.dir":                      s.Watch.Dir,
	}
}
