package config

import (
	"os"
	"strconv"
)

const (
	predictionHistoryWindowEnv = "PREDICTION_HISTORY_WINDOW"
	predictionSampleGapsEnv    = "PREDICTION_SAMPLE_GAPS"
	predictionMinIntervalEnv   = "PREDICTION_MIN_INTERVAL_MINUTES"
	predictionMaxIntervalEnv   = "PREDICTION_MAX_INTERVAL_HOURS"

	defaultPredictionHistoryWindow = 50
	defaultPredictionSampleGaps    = 10
	defaultPredictionMinInterval   = 30
	defaultPredictionMaxInterval   = 24.0
)

type PredictionConfig struct {
	HistoryWindow      int     // Recent activities fetched per baby
	SampleGaps         int     // Most recent gaps considered for the median interval
	MinIntervalMinutes int     // Lower clamp for derived intervals
	MaxIntervalHours   float64 // Upper clamp for derived intervals
}

func DefaultPredictionConfig() *PredictionConfig {
	return &PredictionConfig{
		HistoryWindow:      defaultPredictionHistoryWindow,
		SampleGaps:         defaultPredictionSampleGaps,
		MinIntervalMinutes: defaultPredictionMinInterval,
		MaxIntervalHours:   defaultPredictionMaxInterval,
	}
}

func LoadPredictionConfig() *PredictionConfig {
	cfg := DefaultPredictionConfig()

	cfg.HistoryWindow = positiveIntEnv(predictionHistoryWindowEnv, cfg.HistoryWindow)
	cfg.SampleGaps = positiveIntEnv(predictionSampleGapsEnv, cfg.SampleGaps)
	cfg.MinIntervalMinutes = positiveIntEnv(predictionMinIntervalEnv, cfg.MinIntervalMinutes)

	if v := os.Getenv(predictionMaxIntervalEnv); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			cfg.MaxIntervalHours = parsed
		}
	}

	// A max below the min would make every clamp collapse onto the max.
	if cfg.MaxIntervalHours*60 < float64(cfg.MinIntervalMinutes) {
		cfg.MaxIntervalHours = defaultPredictionMaxInterval
		cfg.MinIntervalMinutes = defaultPredictionMinInterval
	}

	return cfg
}
