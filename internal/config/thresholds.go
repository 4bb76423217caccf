package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Defaults for the optional meta tunables.
const (
	DefaultCalibrationOffset = -1.5
	DefaultPollSeconds       = 10
	DefaultRotateSeconds     = 5
)

// Range is an inclusive [Min, Max] comfort band. Min < Max always holds for
// a validated Thresholds value.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v falls inside the inclusive range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

type OrientationRanges struct {
	Pitch Range
	Roll  Range
	Yaw   Range
}

// Thresholds is the classification configuration. It is built once by
// LoadThresholds and never mutated afterwards; every loop shares the same
// value by read-only copy.
type Thresholds struct {
	Temperature Range
	Humidity    Range
	Pressure    Range
	Orientation OrientationRanges

	// CalibrationOffset is added to the raw temperature before rounding.
	CalibrationOffset float64
	PollInterval      time.Duration
	RotateInterval    time.Duration
}

// ValidationError reports an unreadable, malformed or incomplete thresholds
// document. The process must not start when one is returned.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Raw document shape. Pointers distinguish "absent" from zero so validation
// can reject missing keys explicitly instead of defaulting them downstream.
type rawRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type rawOrientation struct {
	Pitch *rawRange `json:"pitch"`
	Roll  *rawRange `json:"roll"`
	Yaw   *rawRange `json:"yaw"`
}

type rawMeta struct {
	TemperatureCalibrationOffset *float64 `json:"temperature_calibration_offset"`
	PollSeconds                  *int     `json:"poll_seconds"`
	RotateSeconds                *int     `json:"rotate_seconds"`
}

type rawThresholds struct {
	Temperature *rawRange       `json:"temperature"`
	Humidity    *rawRange       `json:"humidity"`
	Pressure    *rawRange       `json:"pressure"`
	Orientation *rawOrientation `json:"orientation"`
	Meta        *rawMeta        `json:"meta"`
}

// LoadThresholds reads and exhaustively validates the thresholds document at
// path. Any problem — unreadable file, malformed JSON, missing section,
// missing or non-numeric bound, min >= max — fails with a *ValidationError.
func LoadThresholds(path string) (Thresholds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, &ValidationError{Msg: fmt.Sprintf("cannot read thresholds %q", path), Err: err}
	}

	var raw rawThresholds
	if err := json.Unmarshal(data, &raw); err != nil {
		return Thresholds{}, &ValidationError{Msg: fmt.Sprintf("malformed thresholds %q", path), Err: err}
	}

	temperature, err := checkRange("temperature", raw.Temperature)
	if err != nil {
		return Thresholds{}, err
	}
	humidity, err := checkRange("humidity", raw.Humidity)
	if err != nil {
		return Thresholds{}, err
	}
	pressure, err := checkRange("pressure", raw.Pressure)
	if err != nil {
		return Thresholds{}, err
	}

	if raw.Orientation == nil {
		return Thresholds{}, validationErrorf("missing %q section", "orientation")
	}
	pitch, err := checkRange("orientation.pitch", raw.Orientation.Pitch)
	if err != nil {
		return Thresholds{}, err
	}
	roll, err := checkRange("orientation.roll", raw.Orientation.Roll)
	if err != nil {
		return Thresholds{}, err
	}
	yaw, err := checkRange("orientation.yaw", raw.Orientation.Yaw)
	if err != nil {
		return Thresholds{}, err
	}

	t := Thresholds{
		Temperature:       temperature,
		Humidity:          humidity,
		Pressure:          pressure,
		Orientation:       OrientationRanges{Pitch: pitch, Roll: roll, Yaw: yaw},
		CalibrationOffset: DefaultCalibrationOffset,
		PollInterval:      DefaultPollSeconds * time.Second,
		RotateInterval:    DefaultRotateSeconds * time.Second,
	}

	if meta := raw.Meta; meta != nil {
		if meta.TemperatureCalibrationOffset != nil {
			t.CalibrationOffset = *meta.TemperatureCalibrationOffset
		}
		if meta.PollSeconds != nil {
			if *meta.PollSeconds <= 0 {
				return Thresholds{}, validationErrorf("meta.poll_seconds must be positive, got %d", *meta.PollSeconds)
			}
			t.PollInterval = time.Duration(*meta.PollSeconds) * time.Second
		}
		if meta.RotateSeconds != nil {
			if *meta.RotateSeconds <= 0 {
				return Thresholds{}, validationErrorf("meta.rotate_seconds must be positive, got %d", *meta.RotateSeconds)
			}
			t.RotateInterval = time.Duration(*meta.RotateSeconds) * time.Second
		}
	}

	return t, nil
}

func checkRange(name string, r *rawRange) (Range, error) {
	if r == nil {
		return Range{}, validationErrorf("missing %q section", name)
	}
	if r.Min == nil || r.Max == nil {
		return Range{}, validationErrorf("%q must have both min and max", name)
	}
	if *r.Min >= *r.Max {
		return Range{}, validationErrorf("invalid range for %q: min (%v) must be below max (%v)", name, *r.Min, *r.Max)
	}
	return Range{Min: *r.Min, Max: *r.Max}, nil
}
