package hw

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var (
	hostOnce sync.Once
	hostErr  error
)

func initHost() error {
	hostOnce.Do(func() {
		_, hostErr = host.Init()
	})
	return hostErr
}

// OpenI2C initializes the periph host (once) and opens the default I2C bus,
// usually /dev/i2c-1. The caller owns the returned bus and shares it between
// the devices attached to it.
func OpenI2C() (i2c.BusCloser, error) {
	if err := initHost(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		return nil, fmt.Errorf("i2c open: %w", err)
	}
	return bus, nil
}
