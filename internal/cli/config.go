package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/disha/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

var configForce bool

const configHeader = `# disha configuration
#
# [scoring.weights] must sum to 1.0. [deadlines] locale is a BCP 47 tag
# (en-IN prints "10 Jan 2026", en-US prints "Jan 10, 2026").

`

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg := config.Default()
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	// Resolve paths for the directories only; the file keeps ~ paths
	if err := cfg.ExpandPaths(); err != nil {
		return err
	}
	configFile, err := config.ExpandPath(configPath)
	if err != nil {
		return err
	}

	// Create directories
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil && !configForce {
		fmt.Fprintf(out, "Config file already exists at %s\n", configFile)
		fmt.Fprintln(out, "Use 'disha config show' to view current configuration")
		return nil
	}

	data = append([]byte(configHeader), data...)
	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Record physical stats with 'disha stats set'")
	fmt.Fprintln(out, "  2. Add assessment results with 'disha scores set <kind> category=value ...'")
	fmt.Fprintln(out, "  3. Run 'disha profile' and 'disha sports' to see recommendations")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# Config file: %s\n\n", configPath)
	fmt.Fprintln(out, string(data))
	return nil
}
