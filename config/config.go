package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// DefaultEnvFile is read when no other file is given.
const DefaultEnvFile = ".env"

var ErrMissingSessionSecret = errors.New("SESSION_SECRET is required")

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
	Orders  OrdersConfig
}

type AppConfig struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret   string
	Expiry   time.Duration
	FlashTTL time.Duration
}

type OrdersConfig struct {
	RecentLimit    int
	LegacyDataFile string
}

// IsProduction reports whether APP_ENV is "production".
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// LoadConfigFrom reads envFile if it exists and overlays the process
// environment. A missing file is not an error.
func LoadConfigFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:            v.GetString("APP_PORT"),
			Env:             v.GetString("APP_ENV"),
			LogLevel:        v.GetString("LOG_LEVEL"),
			CORSAllowOrigin: v.GetString("CORS_ALLOW_ORIGIN"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret:   v.GetString("SESSION_SECRET"),
			Expiry:   parseDuration(v.GetString("SESSION_EXPIRY"), 24*time.Hour),
			FlashTTL: parseDuration(v.GetString("FLASH_TTL"), 5*time.Minute),
		},
		Orders: OrdersConfig{
			RecentLimit:    v.GetInt("RECENT_ORDERS_LIMIT"),
			LegacyDataFile: v.GetString("LEGACY_DATA_FILE"),
		},
	}

	if config.Session.Secret == "" {
		return nil, ErrMissingSessionSecret
	}
	if config.Orders.RecentLimit < 1 {
		config.Orders.RecentLimit = 10
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOW_ORIGIN", "*")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "packer_tracker")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_EXPIRY", "24h")
	v.SetDefault("FLASH_TTL", "5m")
	v.SetDefault("RECENT_ORDERS_LIMIT", 10)
	v.SetDefault("LEGACY_DATA_FILE", "packer_data.txt")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
