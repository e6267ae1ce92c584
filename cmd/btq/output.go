package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/srg/btq/internal/device"
	"github.com/srg/btq/launcher"
)

func displayJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func displayDevicesTable(w io.Writer, devices []*device.Device) error {
	if len(devices) == 0 {
		fmt.Fprintln(w, "No devices known")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tICON\tSTATE")
	fmt.Fprintln(tw, strings.Repeat("-", 60))

	for _, dev := range devices {
		icon := dev.Icon
		if icon == "" {
			icon = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", dev.ID, dev.Name, icon, stateLabel(dev.Connected))
	}

	return tw.Flush()
}

func displayResultsTable(w io.Writer, results []launcher.Result) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ACTION\tID\tICON\tSCORE")
	fmt.Fprintln(tw, strings.Repeat("-", 60))

	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\n", res.Text, res.Subtext, res.Icon, res.Score)
	}

	return tw.Flush()
}

func stateLabel(connected bool) string {
	if connected {
		return color.GreenString("connected")
	}
	return "disconnected"
}
