package main

import (
	"errors"
	"os/exec"

	"github.com/srg/btq/internal/device"
)

// FormatUserError rewrites low-level errors into actionable messages
// before they reach the terminal.
func FormatUserError(err error) string {
	switch {
	case errors.Is(err, exec.ErrNotFound):
		return "bluetoothctl not found in PATH; install bluez to use btq"
	case errors.Is(err, device.ErrInvalidTarget):
		return "internal error: action requested on an invalid device target"
	default:
		return err.Error()
	}
}
