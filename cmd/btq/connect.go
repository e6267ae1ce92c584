package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/srg/btq/internal/device"
)

// connectCmd represents the connect command
var connectCmd = &cobra.Command{
	Use:   "connect <device-id>",
	Short: "Connect a device",
	Long: `Ask bluetoothctl to connect the given device.

The command is launched detached: btq does not wait for it, capture its
output, or learn whether it succeeded. Run 'btq devices' afterwards to see
the actual link state.`,
	Args: cobra.ExactArgs(1),
	RunE: runConnect,
}

func runConnect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := configureLogger(cmd, cfg)
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true

	controller := controllerFactory(cfg.Binary, logger)
	if err := controller.Connect(device.RawID(args[0])); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "connect requested for %s (detached, outcome not reported)\n", args[0])
	return nil
}
