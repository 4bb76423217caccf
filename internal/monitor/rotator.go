package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"envirotrack/internal/classify"
	"envirotrack/internal/hw"
	"envirotrack/internal/state"
)

type displayMode int

const (
	modeTemperature displayMode = iota
	modeHumidity
	modePressure
	modeOrientation
	modeCount
)

// minRotateDelay is a floor on the rotation cadence so a tiny configured
// interval cannot turn into a sub-200ms refresh storm.
const minRotateDelay = 200 * time.Millisecond

// Rotator is the display loop: it cycles temperature → humidity → pressure →
// orientation, always rendering the latest snapshot. Its cadence is
// independent of how often new samples arrive.
type Rotator struct {
	display hw.Display
	shared  *state.Shared
	rotate  time.Duration
}

func NewRotator(display hw.Display, shared *state.Shared, rotate time.Duration) *Rotator {
	return &Rotator{display: display, shared: shared, rotate: rotate}
}

func (r *Rotator) Run(ctx context.Context) error {
	mode := modeTemperature
	for {
		if r.shared.Stopping() || ctx.Err() != nil {
			return nil
		}

		// While paused the previous content is left alone. Before the first
		// publish there is nothing to show.
		if !r.shared.Paused() {
			if reading, labels, ok := r.shared.Snapshot(); ok {
				msg, status := formatMode(mode, reading, labels)
				if err := r.display.ShowMessage(msg, classify.Color(status)); err != nil {
					// Display is best-effort; never let it stop the rotation.
					slog.Warn("display render failed", "error", err)
				}
				mode = (mode + 1) % modeCount
			}
		}

		if !sleep(ctx, r.delay()) {
			return nil
		}
	}
}

func (r *Rotator) delay() time.Duration {
	d := r.rotate / 5
	if d < minRotateDelay {
		d = minRotateDelay
	}
	return d
}

func formatMode(m displayMode, reading hw.Reading, labels classify.Classification) (string, classify.Status) {
	switch m {
	case modeTemperature:
		return fmt.Sprintf("T:%.1f", reading.Temperature), labels.Temperature
	case modeHumidity:
		return fmt.Sprintf("H:%.1f", reading.Humidity), labels.Humidity
	case modePressure:
		return fmt.Sprintf("P:%.0f", reading.Pressure), labels.Pressure
	default:
		return fmt.Sprintf("P:%.0f/R:%.0f/Y:%.0f", reading.Pitch, reading.Roll, reading.Yaw), labels.Orientation
	}
}
