// Package classify maps readings onto comfort/alignment labels. Everything
// here is a pure function of its arguments; it is safe to call from any
// goroutine without synchronization.
package classify

import (
	"envirotrack/internal/config"
	"envirotrack/internal/hw"
)

type Status string

const (
	Low         Status = "Low"
	Comfortable Status = "Comfortable"
	High        Status = "High"
	Aligned     Status = "Aligned"
	Tilted      Status = "Tilted"
)

// Classification is the derived label set for one reading.
type Classification struct {
	Temperature Status
	Humidity    Status
	Pressure    Status
	Orientation Status
}

// Bucket places v against the inclusive range r. Boundary values are
// Comfortable.
func Bucket(v float64, r config.Range) Status {
	switch {
	case v < r.Min:
		return Low
	case v > r.Max:
		return High
	default:
		return Comfortable
	}
}

// Orientation is Aligned only when all three axes sit inside their inclusive
// ranges. There is no per-axis reporting; one axis out means Tilted.
func Orientation(pitch, roll, yaw float64, o config.OrientationRanges) Status {
	if o.Pitch.Contains(pitch) && o.Roll.Contains(roll) && o.Yaw.Contains(yaw) {
		return Aligned
	}
	return Tilted
}

// Classify derives the full label set for r against t.
func Classify(r hw.Reading, t config.Thresholds) Classification {
	return Classification{
		Temperature: Bucket(r.Temperature, t.Temperature),
		Humidity:    Bucket(r.Humidity, t.Humidity),
		Pressure:    Bucket(r.Pressure, t.Pressure),
		Orientation: Orientation(r.Pitch, r.Roll, r.Yaw, t.Orientation),
	}
}

// Display palette, matching the LED conventions: comfortable/aligned green,
// high red, low blue, tilted amber.
var (
	green = hw.RGB{R: 0, G: 255, B: 0}
	red   = hw.RGB{R: 255, G: 0, B: 0}
	blue  = hw.RGB{R: 0, G: 0, B: 255}
	amber = hw.RGB{R: 255, G: 191, B: 0}
	white = hw.RGB{R: 255, G: 255, B: 255}
)

// Color returns the display color for a status.
func Color(s Status) hw.RGB {
	switch s {
	case Comfortable, Aligned:
		return green
	case High:
		return red
	case Low:
		return blue
	case Tilted:
		return amber
	default:
		return white
	}
}
