package hw

import (
	"encoding/binary"
	"fmt"
	"math"

	"periph.io/x/conn/v3/i2c"
)

// Minimal LSM9DS1 reader: accelerometer for pitch/roll, magnetometer for a
// tilt-uncompensated yaw. periph has no packaged driver for this IMU, so the
// handful of registers we need are driven directly.
const (
	lsmRegWhoAmI = 0x0F
	lsmWhoAmIAG  = 0x68 // accel/gyro identity
	lsmWhoAmIM   = 0x3D // magnetometer identity

	lsmRegCtrl6XL = 0x20 // accel control: ODR and full scale
	lsmRegOutXLXL = 0x28 // accel X low byte, auto-increments

	lsmRegCtrl1M = 0x20 // mag control: performance and ODR
	lsmRegCtrl3M = 0x22 // mag control: operating mode
	lsmRegOutXLM = 0x28 // mag X low byte

	// mag reads need the sub-address MSB set for auto-increment
	lsmMagAutoInc = 0x80

	// ±2g full scale, 0.061 mg/LSB
	lsmAccelScale = 0.000061
	// ±4 gauss full scale, 0.14 mgauss/LSB
	lsmMagScale = 0.00014
)

type lsm9ds1 struct {
	accel i2c.Dev
	mag   i2c.Dev
}

func newLSM9DS1(bus i2c.Bus, accelAddr, magAddr uint16) (*lsm9ds1, error) {
	d := &lsm9ds1{
		accel: i2c.Dev{Bus: bus, Addr: accelAddr},
		mag:   i2c.Dev{Bus: bus, Addr: magAddr},
	}

	var id [1]byte
	if err := d.accel.Tx([]byte{lsmRegWhoAmI}, id[:]); err != nil {
		return nil, fmt.Errorf("accel who-am-i: %w", err)
	}
	if id[0] != lsmWhoAmIAG {
		return nil, fmt.Errorf("unexpected accel identity 0x%02X (want 0x%02X)", id[0], lsmWhoAmIAG)
	}
	if err := d.mag.Tx([]byte{lsmRegWhoAmI}, id[:]); err != nil {
		return nil, fmt.Errorf("mag who-am-i: %w", err)
	}
	if id[0] != lsmWhoAmIM {
		return nil, fmt.Errorf("unexpected mag identity 0x%02X (want 0x%02X)", id[0], lsmWhoAmIM)
	}

	// Accelerometer on at 119 Hz, ±2g.
	if err := d.accel.Tx([]byte{lsmRegCtrl6XL, 0x60}, nil); err != nil {
		return nil, fmt.Errorf("accel config: %w", err)
	}
	// Magnetometer medium performance, 10 Hz, continuous conversion.
	if err := d.mag.Tx([]byte{lsmRegCtrl1M, 0x70}, nil); err != nil {
		return nil, fmt.Errorf("mag config: %w", err)
	}
	if err := d.mag.Tx([]byte{lsmRegCtrl3M, 0x00}, nil); err != nil {
		return nil, fmt.Errorf("mag mode: %w", err)
	}

	return d, nil
}

// orientation returns pitch, roll and yaw in degrees. Pitch and roll come
// from the gravity vector; yaw is the horizontal magnetometer heading and is
// not tilt-compensated.
func (d *lsm9ds1) orientation() (pitch, roll, yaw float64, err error) {
	var buf [6]byte
	if err = d.accel.Tx([]byte{lsmRegOutXLXL}, buf[:]); err != nil {
		err = fmt.Errorf("accel read: %w", err)
		return
	}
	ax := float64(int16(binary.LittleEndian.Uint16(buf[0:2]))) * lsmAccelScale
	ay := float64(int16(binary.LittleEndian.Uint16(buf[2:4]))) * lsmAccelScale
	az := float64(int16(binary.LittleEndian.Uint16(buf[4:6]))) * lsmAccelScale

	if err = d.mag.Tx([]byte{lsmRegOutXLM | lsmMagAutoInc}, buf[:]); err != nil {
		err = fmt.Errorf("mag read: %w", err)
		return
	}
	mx := float64(int16(binary.LittleEndian.Uint16(buf[0:2]))) * lsmMagScale
	my := float64(int16(binary.LittleEndian.Uint16(buf[2:4]))) * lsmMagScale

	pitch = degrees(math.Atan2(-ax, math.Hypot(ay, az)))
	roll = degrees(math.Atan2(ay, az))
	yaw = degrees(math.Atan2(my, mx))
	return
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
