package config

import (
	"log/slog"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "LOG_LEVEL", "SQLITE_PATH", "THRESHOLDS_PATH",
		"BME280_ADDRESS", "IMU_ADDRESS", "MAG_ADDRESS", "JOYSTICK_PIN", "DISPLAY_DRIVER",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	got, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v, want nil", err)
	}

	if got.AppEnv != "dev" {
		t.Errorf("AppEnv = %q, want %q", got.AppEnv, "dev")
	}
	if got.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want %v", got.LogLevel, slog.LevelInfo)
	}
	if got.SQLitePath != "envirotrack.db" {
		t.Errorf("SQLitePath = %q, want %q", got.SQLitePath, "envirotrack.db")
	}
	if got.ThresholdsPath != "enviro_config.json" {
		t.Errorf("ThresholdsPath = %q, want %q", got.ThresholdsPath, "enviro_config.json")
	}
	if got.BME280Address != 0x76 {
		t.Errorf("BME280Address = 0x%X, want 0x76", got.BME280Address)
	}
	if got.IMUAddress != 0x6B {
		t.Errorf("IMUAddress = 0x%X, want 0x6B", got.IMUAddress)
	}
	if got.MagAddress != 0x1E {
		t.Errorf("MagAddress = 0x%X, want 0x1E", got.MagAddress)
	}
	if got.JoystickPin != "GPIO23" {
		t.Errorf("JoystickPin = %q, want %q", got.JoystickPin, "GPIO23")
	}
	if got.Display != "console" {
		t.Errorf("Display = %q, want %q", got.Display, "console")
	}
}

func TestLoadFromEnv_AppEnv_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		appEnv string
	}{
		{name: "staging", appEnv: "staging"},
		{name: "uppercase", appEnv: "DEV"},
		{name: "random", appEnv: "whatever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("APP_ENV", tt.appEnv)

			_, err := LoadFromEnv()
			if err == nil {
				t.Fatalf("LoadFromEnv() error = nil, want non-nil")
			}
		})
	}
}

func TestLoadFromEnv_Addresses(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    uint16
		wantErr bool
	}{
		{name: "hex", value: "0x77", want: 0x77},
		{name: "decimal", value: "118", want: 118},
		{name: "trims whitespace", value: "  0x76  ", want: 0x76},
		{name: "garbage", value: "not-an-addr", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("BME280_ADDRESS", tt.value)

			got, err := LoadFromEnv()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("LoadFromEnv() error = nil, want non-nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v, want nil", err)
			}
			if got.BME280Address != tt.want {
				t.Errorf("BME280Address = 0x%X, want 0x%X", got.BME280Address, tt.want)
			}
		})
	}
}

func TestLoadFromEnv_DisplayDriver(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "default console", value: "", want: "console"},
		{name: "oled", value: "oled", want: "oled"},
		{name: "unknown", value: "hdmi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DISPLAY_DRIVER", tt.value)

			got, err := LoadFromEnv()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("LoadFromEnv() error = nil, want non-nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v, want nil", err)
			}
			if got.Display != tt.want {
				t.Errorf("Display = %q, want %q", got.Display, tt.want)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", in: "debug", want: slog.LevelDebug},
		{name: "info", in: "info", want: slog.LevelInfo},
		{name: "warn", in: "warn", want: slog.LevelWarn},
		{name: "warning", in: "warning", want: slog.LevelWarn},
		{name: "error", in: "error", want: slog.LevelError},
		{name: "mixed case", in: "DeBuG", want: slog.LevelDebug},
		{name: "invalid", in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseLogLevel(%q) error = nil, want non-nil", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLogLevel(%q) error = %v, want nil", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
