package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/btq/internal/btctl"
	"github.com/srg/btq/pkg/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// formatVersion adds 'v' prefix if version starts with a digit
func formatVersion(ver string) string {
	if len(ver) > 0 && unicode.IsDigit(rune(ver[0])) {
		return "v" + ver
	}
	return ver
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "btq",
	Short: "Bluetooth device query launcher",
	Long: `Query and control Bluetooth devices through bluetoothctl:

- List known or connected devices with their link state
- Rank devices against a substring query, launcher-style
- Connect and disconnect devices as detached background actions

All radio and link operations are delegated to the external bluetoothctl
binary; btq only parses its output and ranks the results.`,
	Version: formatVersion(version),
}

// controllerFactory builds the controller for a command run.
// This is a variable so that it can be overridden in tests.
var controllerFactory = func(binary string, logger *logrus.Logger) *btctl.Controller {
	return btctl.NewController(btctl.NewRunner(binary), logger)
}

// loadConfig resolves the --config flag, falling back to the default path
// under the user config dir.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return config.DefaultConfig(), nil
		}
		path = filepath.Join(dir, "btq", "config.yaml")
	}
	return config.Load(path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Ctrl+C is a normal exit, not an error - exit silently
		if errors.Is(err, context.Canceled) {
			return
		}
		// Print user-friendly error message
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", FormatUserError(err))
		os.Exit(1)
	}
}

func init() {
	// Silence Cobra's "Error:" prefix - main() prints clean errors
	rootCmd.SilenceErrors = true

	// Add subcommands
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(disconnectCmd)

	// Global flags
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: $XDG_CONFIG_HOME/btq/config.yaml)")

	// Add -v as a short flag for --version
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
}
