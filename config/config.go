package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all planner configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Planner specifics
	Planner        PlannerConfig
	Scheduler      SchedulerConfig
	Parser         ParserConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PlannerConfig struct {
	Timezone string
}

type SchedulerConfig struct {
	WorkdayStartHour int
	WorkdayEndHour   int
	SlotStepMinutes  int
	LookaheadDays    int
}

type ParserConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Logger
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Planner
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	if _, err := time.LoadLocation(cfg.Planner.Timezone); err != nil {
		return nil, fmt.Errorf("invalid planner.timezone %q: %w", cfg.Planner.Timezone, err)
	}

	// Scheduler
	cfg.Scheduler.WorkdayStartHour = viper.GetInt("scheduler.workday_start_hour")
	cfg.Scheduler.WorkdayEndHour = viper.GetInt("scheduler.workday_end_hour")
	cfg.Scheduler.SlotStepMinutes = viper.GetInt("scheduler.slot_step_minutes")
	cfg.Scheduler.LookaheadDays = viper.GetInt("scheduler.lookahead_days")
	if cfg.Scheduler.WorkdayStartHour >= cfg.Scheduler.WorkdayEndHour {
		return nil, fmt.Errorf("scheduler workday window %d-%d is empty",
			cfg.Scheduler.WorkdayStartHour, cfg.Scheduler.WorkdayEndHour)
	}

	// Parser cache
	cfg.Parser.CacheSize = viper.GetInt("parser.cache_size")
	cfg.Parser.CacheTTL = viper.GetDuration("parser.cache_ttl")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("planner.timezone", "UTC")
	viper.SetDefault("scheduler.workday_start_hour", 9)
	viper.SetDefault("scheduler.workday_end_hour", 17)
	viper.SetDefault("scheduler.slot_step_minutes", 30)
	viper.SetDefault("scheduler.lookahead_days", 7)
	viper.SetDefault("parser.cache_size", 128)
	viper.SetDefault("parser.cache_ttl", "5m")
}
