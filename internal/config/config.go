package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level

	// SQLitePath is the sensor log database file.
	SQLitePath string
	// ThresholdsPath is the JSON comfort/alignment band document.
	ThresholdsPath string

	BME280Address uint16
	IMUAddress    uint16
	MagAddress    uint16
	JoystickPin   string

	// Display selects the display driver: "console" or "oled".
	Display string
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	sqlitePath := strings.TrimSpace(os.Getenv("SQLITE_PATH"))
	if sqlitePath == "" {
		sqlitePath = "envirotrack.db"
	}

	thresholdsPath := strings.TrimSpace(os.Getenv("THRESHOLDS_PATH"))
	if thresholdsPath == "" {
		thresholdsPath = "enviro_config.json"
	}

	bme280AddressStr := strings.TrimSpace(os.Getenv("BME280_ADDRESS"))
	if bme280AddressStr == "" {
		bme280AddressStr = "0x76"
	}
	bme280Address, err := strconv.ParseUint(bme280AddressStr, 0, 16)
	if err != nil {
		return Config{}, fmt.Errorf("invalid BME280_ADDRESS %q: %w", bme280AddressStr, err)
	}

	imuAddressStr := strings.TrimSpace(os.Getenv("IMU_ADDRESS"))
	if imuAddressStr == "" {
		imuAddressStr = "0x6b"
	}
	imuAddress, err := strconv.ParseUint(imuAddressStr, 0, 16)
	if err != nil {
		return Config{}, fmt.Errorf("invalid IMU_ADDRESS %q: %w", imuAddressStr, err)
	}

	magAddressStr := strings.TrimSpace(os.Getenv("MAG_ADDRESS"))
	if magAddressStr == "" {
		magAddressStr = "0x1e"
	}
	magAddress, err := strconv.ParseUint(magAddressStr, 0, 16)
	if err != nil {
		return Config{}, fmt.Errorf("invalid MAG_ADDRESS %q: %w", magAddressStr, err)
	}

	joystickPin := strings.TrimSpace(os.Getenv("JOYSTICK_PIN"))
	if joystickPin == "" {
		joystickPin = "GPIO23"
	}

	display := strings.TrimSpace(os.Getenv("DISPLAY_DRIVER"))
	if display == "" {
		display = "console"
	}
	switch display {
	case "console", "oled":
	default:
		return Config{}, fmt.Errorf("invalid DISPLAY_DRIVER %q (allowed: console, oled)", display)
	}

	return Config{
		AppEnv:         appEnv,
		LogLevel:       level,
		SQLitePath:     sqlitePath,
		ThresholdsPath: thresholdsPath,
		BME280Address:  uint16(bme280Address),
		IMUAddress:     uint16(imuAddress),
		MagAddress:     uint16(magAddress),
		JoystickPin:    joystickPin,
		Display:        display,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
