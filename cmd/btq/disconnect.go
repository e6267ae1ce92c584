package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/srg/btq/internal/device"
)

// disconnectCmd represents the disconnect command
var disconnectCmd = &cobra.Command{
	Use:   "disconnect <device-id>",
	Short: "Disconnect a device",
	Long: `Ask bluetoothctl to disconnect the given device.

Launched detached with the same no-outcome contract as connect.`,
	Args: cobra.ExactArgs(1),
	RunE: runDisconnect,
}

func runDisconnect(cmd *cobra.Command, args []string) error {
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
	if err := controller.Disconnect(device.RawID(args[0])); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "disconnect requested for %s (detached, outcome not reported)\n", args[0])
	return nil
}
