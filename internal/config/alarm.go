package config

import (
	"os"
	"time"
)

const (
	alarmCheckConcurrencyEnv = "ALARM_CHECK_CONCURRENCY"
	alarmDispatchTTLEnv      = "ALARM_DISPATCH_TTL_HOURS"
	alarmSkipSuppressionEnv  = "ALARM_SKIP_SUPPRESSION"

	defaultAlarmCheckConcurrency = 4
	defaultAlarmDispatchTTLHours = 6
)

type AlarmConfig struct {
	CheckConcurrency int           // Babies evaluated in parallel per check
	DispatchTTL      time.Duration // How long a dispatched alarm is remembered
	SkipSuppression  bool          // Apply recorded skips to the overdue check
}

func LoadAlarmConfig() *AlarmConfig {
	return &AlarmConfig{
		CheckConcurrency: positiveIntEnv(alarmCheckConcurrencyEnv, defaultAlarmCheckConcurrency),
		DispatchTTL:      time.Duration(positiveIntEnv(alarmDispatchTTLEnv, defaultAlarmDispatchTTLHours)) * time.Hour,
		SkipSuppression:  os.Getenv(alarmSkipSuppressionEnv) != "false",
	}
}
