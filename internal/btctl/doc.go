// Package btctl shells out to the external bluetoothctl binary and parses
// its human-readable output into device records. The tool is treated as an
// opaque black box with a text contract that may grow or drop fields.
package btctl
