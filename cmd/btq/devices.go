package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/srg/btq/internal/device"
)

// devicesCmd represents the devices command
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List known Bluetooth devices",
	Long: `List the devices bluetoothctl knows about, in the tool's own order.

Each entry shows the device id, name, category icon if the tool reports
one, and the current link state. With --connected only currently connected
devices are listed.`,
	RunE: runDevices,
}

var (
	devicesFormat        string
	devicesConnectedOnly bool
)

func init() {
	devicesCmd.Flags().StringVarP(&devicesFormat, "format", "f", "table", "Output format (table, json)")
	devicesCmd.Flags().BoolVarP(&devicesConnectedOnly, "connected", "c", false, "List only connected devices")
}

func runDevices(cmd *cobra.Command, args []string) error {
	if err := validateFormat(devicesFormat); err != nil {
		return err
	}

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

	ctx := context.Background()
	var devices []*device.Device
	if devicesConnectedOnly {
		devices = controller.ConnectedDevices(ctx)
	} else {
		devices = controller.Devices(ctx)
	}

	if devicesFormat == "json" {
		return displayJSON(cmd.OutOrStdout(), devices)
	}
	return displayDevicesTable(cmd.OutOrStdout(), devices)
}
