package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Scheduling window.
	WorkingHourStart int    `mapstructure:"WORKING_HOUR_START"`
	WorkingHourEnd   int    `mapstructure:"WORKING_HOUR_END"`
	MaxSuggestions   int    `mapstructure:"MAX_SUGGESTIONS"`
	SlotDurationMin  int    `mapstructure:"SLOT_DURATION_MIN"`
	ScanHorizonDays  int    `mapstructure:"SCAN_HORIZON_DAYS"`
	Timezone         string `mapstructure:"TIMEZONE"`
	SessionTTLMin    int    `mapstructure:"SESSION_TTL_MIN"`

	// Google Calendar backend.
	CalendarID      string `mapstructure:"CALENDAR_ID"`
	CredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`

	// Gemini time resolution.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// MongoDB (booking records).
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisLockDB    int    `mapstructure:"REDIS_LOCK_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("WORKING_HOUR_START", 10)
	viper.SetDefault("WORKING_HOUR_END", 17)
	viper.SetDefault("MAX_SUGGESTIONS", 3)
	viper.SetDefault("SLOT_DURATION_MIN", 60)
	viper.SetDefault("SCAN_HORIZON_DAYS", 14)
	viper.SetDefault("TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("SESSION_TTL_MIN", 30)
	viper.SetDefault("CALENDAR_ID", "primary")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_LOCK_DB", 1)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
