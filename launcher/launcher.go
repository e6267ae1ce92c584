package launcher

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/srg/btq/internal/btctl"
	"github.com/srg/btq/internal/device"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Rank scores for result entries. Disconnected devices score higher
// because connecting is the common action; the constants are fixed per
// state, not computed.
const (
	ScoreConnected    = 0.0
	ScoreDisconnected = 1.0
)

// DefaultTrigger is the query prefix the launcher frontend registers for
// this handler.
const DefaultTrigger = "bt"

// Query is one request from the launcher frontend. An empty Trigger is the
// "no active query" sentinel: the handler produced it outside any query
// context and must return nothing. This is distinct from a Text that is
// empty after trimming, which matches every cached device.
type Query struct {
	Trigger string
	Text    string
}

// ActionKind names the single action attached to a result entry.
type ActionKind string

const (
	ActionConnect    ActionKind = "connect"
	ActionDisconnect ActionKind = "disconnect"
)

// Result is one ranked entry answering a query.
type Result struct {
	Device  *device.Device `json:"device"`
	Score   float64        `json:"score"`
	Text    string         `json:"text"`    // display label, e.g. "Connect Foo"
	Subtext string         `json:"subtext"` // raw device id
	Icon    string         `json:"icon"`    // resolved icon reference
	Action  ActionKind     `json:"action"`  // the one action not matching the current state
}

// Launcher owns the controller and the cached device list. The cache is
// rebuilt wholesale by Refresh and read by HandleQuery; nothing mutates it
// in place. Single caller, no locking.
type Launcher struct {
	controller *btctl.Controller
	devices    *orderedmap.OrderedMap[string, *device.Device]
	logger     *logrus.Logger
}

// New creates a launcher around the given controller.
func New(controller *btctl.Controller, logger *logrus.Logger) *Launcher {
	if logger == nil {
		logger = logrus.New()
	}
	return &Launcher{
		controller: controller,
		devices:    orderedmap.New[string, *device.Device](),
		logger:     logger,
	}
}

// Refresh rebuilds the cached device list from the external tool. The old
// cache is discarded, never merged; two lookups for the same id across a
// refresh produce unrelated records. Blocks until the tool exits.
func (l *Launcher) Refresh(ctx context.Context) {
	devices := l.controller.Devices(ctx)

	cache := orderedmap.New[string, *device.Device](len(devices))
	for _, dev := range devices {
		cache.Set(dev.ID, dev)
	}
	l.devices = cache

	l.logger.WithField("device_count", cache.Len()).Debug("device cache refreshed")
}

// Devices returns the cached records in listing order.
func (l *Launcher) Devices() []*device.Device {
	devices := make([]*device.Device, 0, l.devices.Len())
	for pair := l.devices.Oldest(); pair != nil; pair = pair.Next() {
		devices = append(devices, pair.Value)
	}
	return devices
}

// HandleQuery ranks the cached devices against the query. No active query
// context returns nil; an empty trimmed query matches everything;
// otherwise a device matches when its lowercased name contains the
// lowercased query as a substring. Results are ordered by descending
// score, stable by listing order within a score.
func (l *Launcher) HandleQuery(query Query) []Result {
	if query.Trigger == "" {
		return nil
	}

	needle := strings.ToLower(strings.TrimSpace(query.Text))

	results := make([]Result, 0, l.devices.Len())
	for pair := l.devices.Oldest(); pair != nil; pair = pair.Next() {
		dev := pair.Value
		if needle != "" && !strings.Contains(strings.ToLower(dev.Name), needle) {
			continue
		}
		results = append(results, makeResult(dev))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Activate performs the result's single action against the controller.
func (l *Launcher) Activate(res Result) error {
	target := device.Ref(res.Device)
	if res.Action == ActionConnect {
		return l.controller.Connect(target)
	}
	return l.controller.Disconnect(target)
}

func makeResult(dev *device.Device) Result {
	res := Result{
		Device:  dev,
		Subtext: dev.ID,
		Icon:    dev.ResolvedIcon(),
	}
	if dev.Connected {
		res.Score = ScoreConnected
		res.Text = "Disconnect " + dev.Name
		res.Action = ActionDisconnect
	} else {
		res.Score = ScoreDisconnected
		res.Text = "Connect " + dev.Name
		res.Action = ActionConnect
	}
	return res
}
