package btctl

import (
	"strings"

	"github.com/srg/btq/internal/device"
)

// devicePrefix starts every well-formed line of a `devices` listing:
//
//	Device AA:BB:CC:DD:EE:FF Some Headset
const devicePrefix = "Device "

// ParseDeviceIDs extracts device ids from a listing payload, one per
// well-formed "Device <id> <name>" line, preserving the tool's ordering.
// Lines without the prefix are ignored. An empty payload yields an empty
// slice.
func ParseDeviceIDs(payload string) []string {
	ids := make([]string, 0)
	for _, line := range strings.Split(payload, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, devicePrefix) {
			continue
		}
		rest := strings.TrimPrefix(line, devicePrefix)
		id, _, ok := strings.Cut(rest, " ")
		if !ok {
			id = rest
		}
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// ParseDeviceInfo builds a device record for id from a detail payload of
// colon-delimited "Key: Value" lines. Fields the payload does not carry
// get defaults: a placeholder name containing the id, Connected false, no
// icon. Lines without a separator and unknown keys are skipped; a
// malformed line never aborts the record.
func ParseDeviceInfo(id, payload string) *device.Device {
	dev := &device.Device{
		ID:   id,
		Name: device.PlaceholderName(id),
	}

	for _, line := range strings.Split(payload, "\n") {
		key, rawValue, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		value := strings.TrimSpace(rawValue)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "name":
			dev.Name = value
		case "connected":
			dev.Connected = strings.EqualFold(value, "yes")
		case "icon":
			dev.Icon = strings.ToLower(value)
		}
	}

	return dev
}
