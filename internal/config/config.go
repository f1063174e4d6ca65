package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Site    SiteConfig    `mapstructure:"site"`
	Client  ClientConfig  `mapstructure:"client"`
	Store   StoreConfig   `mapstructure:"store"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Weather WeatherConfig `mapstructure:"weather"`
	Deploy  DeployConfig  `mapstructure:"deploy"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
	Host string `mapstructure:"host"`
}

// SiteConfig describes where the page shells and data files live
type SiteConfig struct {
	Root     string `mapstructure:"root" validate:"required"`
	Output   string `mapstructure:"output" validate:"required"`
	DataMode string `mapstructure:"data_mode" validate:"oneof=file http"`
	BaseURL  string `mapstructure:"base_url" validate:"omitempty,url"`
}

// ClientConfig holds outbound HTTP client configuration for data fetches
type ClientConfig struct {
	Timeout              int `mapstructure:"timeout" validate:"min=1"`
	MaxRequestsPerSecond int `mapstructure:"max_requests_per_second" validate:"min=1"`
}

// StoreConfig selects the backend of the visitor key/value store
type StoreConfig struct {
	Driver           string `mapstructure:"driver" validate:"oneof=cookie redis memory"`
	CookieMaxAgeDays int    `mapstructure:"cookie_max_age_days" validate:"min=1"`
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	Database  int    `mapstructure:"database"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// WeatherConfig holds OpenWeatherMap settings for the home page
type WeatherConfig struct {
	BaseURL string  `mapstructure:"base_url" validate:"required,url"`
	APIKey  string  `mapstructure:"api_key"`
	Lat     float64 `mapstructure:"lat" validate:"min=-90,max=90"`
	Lon     float64 `mapstructure:"lon" validate:"min=-180,max=180"`
	Timeout int     `mapstructure:"timeout" validate:"min=1"`
}

// DeployConfig holds the S3 target for published builds
type DeployConfig struct {
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
}

// LogConfig controls logrus output
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Load loads configuration from a YAML file with environment variable overrides.
// A missing file is not an error; defaults and the environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Warn("config.yaml not found, using defaults and environment")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks field ranges and enumerations
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Site.DataMode == "http" && c.Site.BaseURL == "" {
		return fmt.Errorf("invalid configuration: site.base_url is required when site.data_mode is http")
	}
	return nil
}

// ApplyLogging configures the global logrus logger
func (c *Config) ApplyLogging() {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if c.Log.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")

	v.SetDefault("site.root", "./web")
	v.SetDefault("site.output", "./public")
	v.SetDefault("site.data_mode", "file")
	v.SetDefault("site.base_url", "")

	v.SetDefault("client.timeout", 10)
	v.SetDefault("client.max_requests_per_second", 20)

	v.SetDefault("store.driver", "cookie")
	v.SetDefault("store.cookie_max_age_days", 365)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.key_prefix", "chamber:visitor:")

	v.SetDefault("weather.base_url", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("weather.api_key", "")
	v.SetDefault("weather.lat", 9.0765)
	v.SetDefault("weather.lon", 7.3986)
	v.SetDefault("weather.timeout", 10)

	v.SetDefault("deploy.bucket", "")
	v.SetDefault("deploy.prefix", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
