package app

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"envirotrack/internal/config"
	"envirotrack/internal/hw"
	"envirotrack/internal/monitor"
	"envirotrack/internal/state"
	"envirotrack/internal/store"
)

// Run wires the collaborators and drives the two loops plus the joystick
// handler until ctx is canceled or one of them fails fatally. On every exit
// path the display is cleared and the store closed.
func Run(ctx context.Context, cfg config.Config) error {
	thresholds, err := config.LoadThresholds(cfg.ThresholdsPath)
	if err != nil {
		return err
	}
	slog.Info("thresholds loaded",
		"path", cfg.ThresholdsPath,
		"temperature", thresholds.Temperature,
		"humidity", thresholds.Humidity,
		"pressure", thresholds.Pressure,
		"calibrationOffset", thresholds.CalibrationOffset,
		"pollInterval", thresholds.PollInterval,
		"rotateInterval", thresholds.RotateInterval,
	)

	dbConn, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(dbConn); closeErr != nil {
			slog.Error("db close", "error", closeErr)
		}
	}()

	if err := store.Migrate(dbConn); err != nil {
		return err
	}

	bus, err := hw.OpenI2C()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := bus.Close(); closeErr != nil {
			slog.Error("i2c close", "error", closeErr)
		}
	}()

	board, err := hw.NewSenseBoard(bus, cfg.BME280Address, cfg.IMUAddress, cfg.MagAddress)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := board.Close(); closeErr != nil {
			slog.Error("sensor halt", "error", closeErr)
		}
	}()

	var display hw.Display
	switch cfg.Display {
	case "oled":
		display, err = hw.NewOLEDDisplay(bus)
		if err != nil {
			return err
		}
	default:
		display = hw.NewConsoleDisplay()
	}
	display = monitor.LockDisplay(display)

	var input hw.Input
	input, err = hw.NewGPIOJoystick(cfg.JoystickPin)
	if err != nil {
		return err
	}

	shared := state.New()
	sensorLog := store.NewSensorLog(dbConn)

	pause := monitor.NewPauseHandler(display, shared)
	sampler := monitor.NewSampler(board, sensorLog, shared, thresholds)
	rotator := monitor.NewRotator(display, shared, thresholds.RotateInterval)

	slog.Info("monitor running",
		"display", cfg.Display,
		"joystickPin", cfg.JoystickPin,
		"sqlitePath", cfg.SQLitePath,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sampler.Run(gctx) })
	g.Go(func() error { return rotator.Run(gctx) })
	g.Go(func() error { return pause.Run(gctx) })
	g.Go(func() error { return input.Run(gctx, pause.Press) })

	err = g.Wait()
	shared.RequestStop()

	if clearErr := display.Clear(); clearErr != nil {
		slog.Warn("display clear failed", "error", clearErr)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
