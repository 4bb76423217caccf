// Package hw holds the hardware collaborator interfaces and their Raspberry
// Pi implementations. The monitor loops only ever see the interfaces; tests
// substitute fakes.
package hw

import "context"

// Reading is one atomic set of sensor values from a single sampling tick.
// Values are rounded to one decimal by the sampler before publishing, so
// display, shared state and the sensor log all agree.
type Reading struct {
	Temperature float64
	Humidity    float64
	Pressure    float64
	Pitch       float64
	Roll        float64
	Yaw         float64
}

// RGB is the display text color.
type RGB struct {
	R, G, B uint8
}

// Sensor acquires one full environmental reading. Any failure is wrapped in
// a *SensorError; the caller treats it as fatal.
type Sensor interface {
	Read() (Reading, error)
}

// Display renders a short scrolling message. Implementations are not
// required to be safe for concurrent use; callers serialize.
type Display interface {
	ShowMessage(text string, c RGB) error
	Clear() error
}

// Input delivers edge-triggered press events for a single physical control.
// Run blocks until ctx is done; onPress is invoked once per press edge and
// must not block.
type Input interface {
	Run(ctx context.Context, onPress func()) error
}

// SensorError reports a failed hardware acquisition.
type SensorError struct {
	Op  string
	Err error
}

func (e *SensorError) Error() string { return "sensor " + e.Op + ": " + e.Err.Error() }

func (e *SensorError) Unwrap() error { return e.Err }
