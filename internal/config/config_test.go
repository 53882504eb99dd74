package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoadPredictionConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want PredictionConfig
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: PredictionConfig{HistoryWindow: 50, SampleGaps: 10, MinIntervalMinutes: 30, MaxIntervalHours: 24},
		},
		{
			name: "overrides",
			env: map[string]string{
				"PREDICTION_HISTORY_WINDOW":       "100",
				"PREDICTION_SAMPLE_GAPS":          "5",
				"PREDICTION_MIN_INTERVAL_MINUTES": "20",
				"PREDICTION_MAX_INTERVAL_HOURS":   "12.5",
			},
			want: PredictionConfig{HistoryWindow: 100, SampleGaps: 5, MinIntervalMinutes: 20, MaxIntervalHours: 12.5},
		},
		{
			name: "invalid values fall back",
			env: map[string]string{
				"PREDICTION_HISTORY_WINDOW":     "-1",
				"PREDICTION_SAMPLE_GAPS":        "abc",
				"PREDICTION_MAX_INTERVAL_HOURS": "0",
			},
			want: PredictionConfig{HistoryWindow: 50, SampleGaps: 10, MinIntervalMinutes: 30, MaxIntervalHours: 24},
		},
		{
			name: "max below min resets both",
			env: map[string]string{
				"PREDICTION_MIN_INTERVAL_MINUTES": "120",
				"PREDICTION_MAX_INTERVAL_HOURS":   "1",
			},
			want: PredictionConfig{HistoryWindow: 50, SampleGaps: 10, MinIntervalMinutes: 30, MaxIntervalHours: 24},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got := LoadPredictionConfig()
			if *got != tt.want {
				t.Errorf("LoadPredictionConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestLoadAlarmConfig(t *testing.T) {
	t.Setenv("ALARM_CHECK_CONCURRENCY", "8")
	t.Setenv("ALARM_DISPATCH_TTL_HOURS", "2")
	t.Setenv("ALARM_SKIP_SUPPRESSION", "false")

	got := LoadAlarmConfig()
	if got.CheckConcurrency != 8 {
		t.Errorf("CheckConcurrency = %d, want 8", got.CheckConcurrency)
	}
	if got.DispatchTTL != 2*time.Hour {
		t.Errorf("DispatchTTL = %v, want 2h", got.DispatchTTL)
	}
	if got.SkipSuppression {
		t.Error("SkipSuppression = true, want false")
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	t.Run("url wins", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app")
		cfg, err := LoadDatabaseConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DSN() != "postgres://u:p@db:5432/app" {
			t.Errorf("DSN() = %q", cfg.DSN())
		}
	})

	t.Run("built from parts", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_HOST", "pg")
		t.Setenv("DB_PORT", "6543")
		t.Setenv("DB_NAME", "tracker")
		cfg, err := LoadDatabaseConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		dsn := cfg.DSN()
		for _, part := range []string{"host=pg", "port=6543", "dbname=tracker", "sslmode=disable"} {
			if !strings.Contains(dsn, part) {
				t.Errorf("DSN() = %q, missing %q", dsn, part)
			}
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("DB_PORT", "five")
		if _, err := LoadDatabaseConfig(); err != ErrInvalidDatabasePort {
			t.Errorf("err = %v, want ErrInvalidDatabasePort", err)
		}
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
