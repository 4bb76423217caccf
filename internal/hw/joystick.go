package hw

import (
	"context"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

const joystickDebounce = 150 * time.Millisecond

// GPIOJoystick watches a single button wired active-low on a GPIO pin and
// reports press edges only. Releases and repeats while held produce nothing.
type GPIOJoystick struct {
	pin gpio.PinIn
}

func NewGPIOJoystick(pinName string) (*GPIOJoystick, error) {
	if err := initHost(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("gpio pin %q not found", pinName)
	}
	if err := pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, fmt.Errorf("gpio in %q: %w", pinName, err)
	}
	return &GPIOJoystick{pin: pin}, nil
}

// Run blocks delivering debounced press edges to onPress until ctx is done.
// The short edge-wait timeout exists only so ctx cancellation is noticed.
func (j *GPIOJoystick) Run(ctx context.Context, onPress func()) error {
	var lastPress time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if !j.pin.WaitForEdge(200 * time.Millisecond) {
			continue
		}
		// Falling edge requested, but re-read to drop release glitches.
		if j.pin.Read() != gpio.Low {
			continue
		}
		now := time.Now()
		if now.Sub(lastPress) < joystickDebounce {
			continue
		}
		lastPress = now
		onPress()
	}
}
