package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config keeps runtime settings for the planner.
type Config struct {
	DatabaseURL    string
	TelegramToken  string
	ReportInterval time.Duration
	RegenerateAt   string // HH:MM local time for the nightly regeneration job

	// Planning window settings, passed into the engine explicitly.
	DayStartHour   int
	DayEndHour     int
	HorizonDays    int
	MinSlotHours   float64
	UrgencyHorizon int
	PriorityFactor int
}

// Load reads configuration from an optional config.yaml and the environment.
// Environment variables (DATABASE_URL, TELEGRAM_TOKEN, ...) override the file.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("database_url", "study_planner.db")
	v.SetDefault("telegram_token", "")
	v.SetDefault("report_interval_hours", 24)
	v.SetDefault("regenerate_at", "03:30")
	v.SetDefault("day_start_hour", 8)
	v.SetDefault("day_end_hour", 22)
	v.SetDefault("horizon_days", 7)
	v.SetDefault("min_slot_hours", 0.25)
	v.SetDefault("urgency_horizon_days", 90)
	v.SetDefault("priority_factor", 10)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		DatabaseURL:    v.GetString("database_url"),
		TelegramToken:  v.GetString("telegram_token"),
		ReportInterval: time.Duration(v.GetInt("report_interval_hours")) * time.Hour,
		RegenerateAt:   v.GetString("regenerate_at"),
		DayStartHour:   v.GetInt("day_start_hour"),
		DayEndHour:     v.GetInt("day_end_hour"),
		HorizonDays:    v.GetInt("horizon_days"),
		MinSlotHours:   v.GetFloat64("min_slot_hours"),
		UrgencyHorizon: v.GetInt("urgency_horizon_days"),
		PriorityFactor: v.GetInt("priority_factor"),
	}

	if cfg.DayEndHour <= cfg.DayStartHour {
		return cfg, fmt.Errorf("day_end_hour (%d) must be after day_start_hour (%d)", cfg.DayEndHour, cfg.DayStartHour)
	}
	if cfg.HorizonDays <= 0 {
		return cfg, fmt.Errorf("horizon_days must be positive")
	}

	return cfg, nil
}
