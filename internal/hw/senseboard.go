package hw

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/bmxx80"
)

// SenseBoard reads the full environmental set from two I2C devices: a BME280
// for temperature/humidity/pressure and an LSM9DS1 IMU for orientation.
type SenseBoard struct {
	env *bmxx80.Dev
	imu *lsm9ds1
}

func NewSenseBoard(bus i2c.Bus, envAddr, imuAddr, magAddr uint16) (*SenseBoard, error) {
	env, err := bmxx80.NewI2C(bus, envAddr, &bmxx80.DefaultOpts)
	if err != nil {
		return nil, fmt.Errorf("bmxx80: %w", err)
	}

	imu, err := newLSM9DS1(bus, imuAddr, magAddr)
	if err != nil {
		_ = env.Halt()
		return nil, fmt.Errorf("lsm9ds1: %w", err)
	}

	return &SenseBoard{env: env, imu: imu}, nil
}

// Read acquires one raw reading. Calibration and rounding are the sampler's
// job, not the driver's.
func (b *SenseBoard) Read() (Reading, error) {
	var env physic.Env
	if err := b.env.Sense(&env); err != nil {
		return Reading{}, &SensorError{Op: "environment", Err: err}
	}

	temperature := env.Temperature.Celsius()
	humidity := humidityPercent(env.Humidity)
	pressure := pressureHPa(env.Pressure)

	pitch, roll, yaw, err := b.imu.orientation()
	if err != nil {
		return Reading{}, &SensorError{Op: "orientation", Err: err}
	}

	return Reading{
		Temperature: temperature,
		Humidity:    humidity,
		Pressure:    pressure,
		Pitch:       pitch,
		Roll:        roll,
		Yaw:         yaw,
	}, nil
}

func (b *SenseBoard) Close() error {
	return b.env.Halt()
}

// humidityPercent converts a physic relative humidity (fixed point at
// 0.00001 %rH per unit) to percent.
func humidityPercent(h physic.RelativeHumidity) float64 {
	return float64(h) / float64(physic.PercentRH)
}

// pressureHPa converts a physic pressure (stored in nano Pascal) to
// hectopascal: 1 hPa = 100 Pa = 1e11 nPa.
func pressureHPa(p physic.Pressure) float64 {
	return float64(p) / float64(100*physic.Pascal)
}
