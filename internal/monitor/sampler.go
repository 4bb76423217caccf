package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"envirotrack/internal/classify"
	"envirotrack/internal/config"
	"envirotrack/internal/hw"
	"envirotrack/internal/state"
	"envirotrack/internal/store"
)

// After this many consecutive append failures the store is considered gone
// and the sampler gives up. A single failure only costs that one sample.
const persistFailLimit = 5

// Sampler is the acquisition loop: read, classify, publish, append, sleep.
type Sampler struct {
	sensor     hw.Sensor
	log        store.SensorLog
	shared     *state.Shared
	thresholds config.Thresholds
}

func NewSampler(sensor hw.Sensor, log store.SensorLog, shared *state.Shared, t config.Thresholds) *Sampler {
	return &Sampler{sensor: sensor, log: log, shared: shared, thresholds: t}
}

// Run loops until ctx is canceled or stop is requested. A sensor failure is
// fatal and returned; append failures are logged and tolerated up to
// persistFailLimit in a row. While paused the loop keeps ticking but neither
// samples nor appends.
func (s *Sampler) Run(ctx context.Context) error {
	persistFails := 0
	for {
		if s.shared.Stopping() || ctx.Err() != nil {
			return nil
		}

		if !s.shared.Paused() {
			raw, err := s.sensor.Read()
			if err != nil {
				return fmt.Errorf("sensor read: %w", err)
			}

			reading := calibrate(raw, s.thresholds.CalibrationOffset)
			labels := classify.Classify(reading, s.thresholds)
			s.shared.Publish(reading, labels)

			slog.Debug("sample",
				"temperature", reading.Temperature,
				"humidity", reading.Humidity,
				"pressure", reading.Pressure,
				"pitch", reading.Pitch,
				"roll", reading.Roll,
				"yaw", reading.Yaw,
				"temperature_status", labels.Temperature,
				"humidity_status", labels.Humidity,
				"pressure_status", labels.Pressure,
				"orientation_status", labels.Orientation,
			)

			rec := store.Record{Reading: reading, Labels: labels, Time: time.Now()}
			if err := s.log.Append(rec); err != nil {
				persistFails++
				slog.Warn("sensor log append failed, sample dropped",
					"error", err,
					"consecutive_failures", persistFails,
				)
				if persistFails >= persistFailLimit {
					return fmt.Errorf("sensor log failing persistently (%d in a row): %w", persistFails, err)
				}
			} else {
				persistFails = 0
			}
		}

		// Fixed delay, not fixed rate: drift from acquisition and append
		// latency is accepted. Pause is not re-checked mid-sleep, so a
		// toggle takes up to one poll interval to take effect.
		if !sleep(ctx, s.thresholds.PollInterval) {
			return nil
		}
	}
}

// calibrate applies the temperature offset, then rounds every value to one
// decimal so state, display and storage all carry the same numbers.
func calibrate(r hw.Reading, offset float64) hw.Reading {
	return hw.Reading{
		Temperature: round1(r.Temperature + offset),
		Humidity:    round1(r.Humidity),
		Pressure:    round1(r.Pressure),
		Pitch:       round1(r.Pitch),
		Roll:        round1(r.Roll),
		Yaw:         round1(r.Yaw),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// sleep waits for d or until ctx is done; it reports false on cancellation.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
