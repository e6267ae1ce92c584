package btctl

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/srg/btq/internal/device"
)

// Controller drives the external Bluetooth control tool. Listing calls are
// blocking and capture output; connect/disconnect launches are detached
// with no observable outcome. A failed or silent tool invocation is
// indistinguishable from "no devices" and is reported as an empty list,
// never as an error.
type Controller struct {
	runner Runner
	logger *logrus.Logger
}

// NewController creates a controller on top of the given runner.
func NewController(runner Runner, logger *logrus.Logger) *Controller {
	if logger == nil {
		logger = logrus.New()
	}
	return &Controller{
		runner: runner,
		logger: logger,
	}
}

// Devices lists all devices known to the tool, fetching the detail block
// for each id in listing order.
func (c *Controller) Devices(ctx context.Context) []*device.Device {
	return c.list(ctx, "devices")
}

// ConnectedDevices lists only the currently connected devices.
func (c *Controller) ConnectedDevices(ctx context.Context) []*device.Device {
	return c.list(ctx, "devices", "Connected")
}

func (c *Controller) list(ctx context.Context, args ...string) []*device.Device {
	out, err := c.runner.Output(ctx, args...)
	if err != nil {
		c.logger.WithError(err).Warn("device listing failed, treating as empty")
		return []*device.Device{}
	}

	ids := ParseDeviceIDs(string(out))
	devices := make([]*device.Device, 0, len(ids))
	for _, id := range ids {
		devices = append(devices, c.Info(ctx, id))
	}

	c.logger.WithField("device_count", len(devices)).Debug("device listing complete")
	return devices
}

// Info fetches and parses the detail block for one device id. A failed
// invocation yields a record built entirely from defaults.
func (c *Controller) Info(ctx context.Context, id string) *device.Device {
	out, err := c.runner.Output(ctx, "info", id)
	if err != nil {
		c.logger.WithError(err).WithField("device", id).Warn("device info failed, using defaults")
		return ParseDeviceInfo(id, "")
	}
	return ParseDeviceInfo(id, string(out))
}

// Connect asks the tool to establish a link to the target device. For a
// Ref target whose record is already connected this is a no-op; otherwise
// the command is launched detached and the record's Connected flag is
// flipped optimistically. The cache may diverge from reality until the
// next refresh if the detached command silently fails.
func (c *Controller) Connect(target device.Target) error {
	return c.setLinkState(target, true)
}

// Disconnect asks the tool to drop the link to the target device. Same
// no-op and optimistic-update contract as Connect.
func (c *Controller) Disconnect(target device.Target) error {
	return c.setLinkState(target, false)
}

func (c *Controller) setLinkState(target device.Target, connected bool) error {
	id, err := target.ID()
	if err != nil {
		return err
	}

	if ref := target.Ref(); ref != nil && ref.Connected == connected {
		c.logger.WithField("device", id).Debug("link state already matches, skipping")
		return nil
	}

	verb := "disconnect"
	if connected {
		verb = "connect"
	}

	if err := c.runner.StartDetached(verb, id); err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"device": id,
			"action": verb,
		}).Warn("detached launch failed")
		return nil
	}

	if ref := target.Ref(); ref != nil {
		ref.Connected = connected
	}

	c.logger.WithFields(logrus.Fields{
		"device": id,
		"action": verb,
	}).Info("link state change requested")
	return nil
}
