package device

import (
	"errors"
	"fmt"
)

// Icon names handed to the launcher frontend. The xdg: prefix tells the
// frontend to resolve against the active icon theme.
const (
	IconConnected    = "xdg:bluetooth-active"
	IconDisconnected = "xdg:bluetooth-disabled"
	xdgPrefix        = "xdg:"
)

// ErrInvalidTarget indicates an action was requested on a zero Target.
// This is a caller bug, not external-tool unpredictability, and is the one
// failure surfaced loudly instead of being absorbed as an empty result.
var ErrInvalidTarget = errors.New("invalid target: neither raw id nor device reference")

// Device represents one known Bluetooth peripheral as reported by the
// external controller tool. Records are ephemeral: every listing produces
// fresh objects, and a device has no identity beyond its ID string.
type Device struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	Connected bool   `json:"connected"`
}

// PlaceholderName returns the generated display name used when the detail
// block carries no Name field.
func PlaceholderName(id string) string {
	return fmt.Sprintf("Bluetooth Device %s", id)
}

// ResolvedIcon picks the icon reference shown for the device. The device
// category icon is only used for connected devices that report one;
// everything else falls back to the connection-state icon.
func (d *Device) ResolvedIcon() string {
	if d.Icon == "" || !d.Connected {
		if d.Connected {
			return IconConnected
		}
		return IconDisconnected
	}
	return xdgPrefix + d.Icon
}

// Target identifies the subject of a connect/disconnect action: either a
// raw id string or a reference to a cached Device record. The tagged
// variant replaces runtime type inspection with a single kind switch.
type Target struct {
	kind targetKind
	id   string
	ref  *Device
}

type targetKind int

const (
	targetInvalid targetKind = iota
	targetRawID
	targetRef
)

// RawID builds a Target from a bare id string. Actions on a RawID target
// always launch the external command; there is no cached state to consult.
func RawID(id string) Target {
	return Target{kind: targetRawID, id: id}
}

// Ref builds a Target from a cached device record. Actions on a Ref target
// consult and optimistically update the record's Connected flag.
func Ref(d *Device) Target {
	return Target{kind: targetRef, ref: d}
}

// ID returns the device id the target resolves to, or an error for the
// zero Target.
func (t Target) ID() (string, error) {
	switch t.kind {
	case targetRawID:
		return t.id, nil
	case targetRef:
		return t.ref.ID, nil
	default:
		return "", ErrInvalidTarget
	}
}

// Ref returns the referenced device record, or nil for RawID and zero
// targets.
func (t Target) Ref() *Device {
	if t.kind == targetRef {
		return t.ref
	}
	return nil
}

// Valid reports whether the target carries either case of the variant.
func (t Target) Valid() bool {
	return t.kind != targetInvalid
}
