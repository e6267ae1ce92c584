package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/srg/btq/launcher"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Rank devices against a query string",
	Long: `Refresh the device list from bluetoothctl and rank it against a query.

An empty query matches every known device. Each result carries the one
action that makes sense for the device's current link state: "Connect X"
for disconnected devices, "Disconnect X" for connected ones. Disconnected
devices rank first since connecting is the common action.`,
	RunE: runQuery,
}

var (
	queryFormat    string
	queryNoTrigger bool
)

func init() {
	queryCmd.Flags().StringVarP(&queryFormat, "format", "f", "table", "Output format (table, json)")
	queryCmd.Flags().BoolVar(&queryNoTrigger, "no-trigger", false, "Simulate an inactive query context (always yields no results)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	if err := validateFormat(queryFormat); err != nil {
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

	// All arguments validated - don't show usage on runtime errors
	cmd.SilenceUsage = true

	l := launcher.New(controllerFactory(cfg.Binary, logger), logger)
	l.Refresh(context.Background())

	query := launcher.Query{
		Trigger: cfg.Trigger,
		Text:    strings.Join(args, " "),
	}
	if queryNoTrigger {
		query.Trigger = ""
	}

	results := l.HandleQuery(query)

	if queryFormat == "json" {
		return displayJSON(cmd.OutOrStdout(), results)
	}
	return displayResultsTable(cmd.OutOrStdout(), results)
}

func validateFormat(format string) error {
	validFormats := []string{"table", "json"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid format '%s': must be one of %v", format, validFormats)
}
