package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/simp-lee/logger"
)

func boolPtr(b bool) *bool { return &b }

func TestSetupLogger_LevelMapping(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"info level", "info", slog.LevelInfo},
		{"warn level", "warn", slog.LevelWarn},
		{"error level", "error", slog.LevelError},
		{"uppercase DEBUG", "DEBUG", slog.LevelDebug},
		{"invalid defaults to info", "invalid", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := SetupLogger(&LogConfig{Level: tt.level, Format: "text"})
			if err != nil {
				t.Fatalf("SetupLogger error: %v", err)
			}
			defer log.Close()

			if !log.Enabled(context.TODO(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > slog.LevelDebug && log.Enabled(context.TODO(), tt.wantLevel-1) {
				t.Errorf("expected level %v to be disabled (configured: %v)", tt.wantLevel-1, tt.wantLevel)
			}
		})
	}
}

func TestSetupLogger_NilConfig(t *testing.T) {
	if _, err := SetupLogger(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestSetupLogger_ConsoleAndFile(t *testing.T) {
	log, err := SetupLogger(&LogConfig{
		Level:    "info",
		Format:   "json",
		FilePath: filepath.Join(t.TempDir(), "shopadmin.log"),
	})
	if err != nil {
		t.Fatalf("SetupLogger error: %v", err)
	}
	defer log.Close()
}

func TestSetupLogger_SetsDefault(t *testing.T) {
	log, err := SetupLogger(&LogConfig{Level: "warn", Format: "text", Color: boolPtr(false)})
	if err != nil {
		t.Fatalf("SetupLogger error: %v", err)
	}
	defer log.Close()

	if slog.Default().Handler() != log.Handler() {
		t.Error("SetupLogger did not set slog.Default()")
	}
}

func TestBuildLoggerOpts(t *testing.T) {
	// Level, Middleware, ConsoleFormat, ConsoleColor.
	const baseCount = 4
	// FilePath + FileFormat.
	const fileBaseCount = baseCount + 2

	tests := []struct {
		name      string
		cfg       *LogConfig
		wantCount int
	}{
		{"nil config", nil, 0},
		{"console only", &LogConfig{Level: "info", Format: "text"}, baseCount},
		{"unknown format", &LogConfig{Level: "info", Format: "whatever"}, baseCount},
		{"color false", &LogConfig{Level: "info", Format: "text", Color: boolPtr(false)}, baseCount},
		{"file", &LogConfig{Level: "info", Format: "json", FilePath: "/tmp/x.log"}, fileBaseCount},
		{
			"file with rotation",
			&LogConfig{
				Level: "info", Format: "json", FilePath: "/tmp/x.log",
				MaxSizeMB: 10, RetentionDays: 7, MaxBackups: 3, CompressRotated: boolPtr(true),
			},
			fileBaseCount + 4,
		},
		{"rotation ignored without file", &LogConfig{Level: "info", Format: "json", MaxSizeMB: 10}, baseCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(buildLoggerOpts(tt.cfg)); got != tt.wantCount {
				t.Errorf("len(opts) = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want logger.OutputFormat
	}{
		{"text", logger.FormatText},
		{"JSON", logger.FormatJSON},
		{"", logger.FormatCustom},
	}
	for _, tt := range tests {
		if got := parseFormat(tt.in); got != tt.want {
			t.Errorf("parseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
