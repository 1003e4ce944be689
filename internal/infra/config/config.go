package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Booking   BookingConfig   `yaml:"booking"`
	CMS       CMSConfig       `yaml:"cms"`
	Maps      MapsConfig      `yaml:"maps"`
	Locations LocationsConfig `yaml:"locations"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// BookingConfig points at the class booking platform. The API key is a
// secret and must come from the environment in production deployments.
type BookingConfig struct {
	BaseURL string `yaml:"baseUrl"`
	APIKey  string `yaml:"apiKey"`
}

// CMSConfig points at the headless CMS that publishes business locations.
type CMSConfig struct {
	BaseURL  string `yaml:"baseUrl"`
	APIKey   string `yaml:"apiKey"`
	PageSize int    `yaml:"pageSize"`
}

// MapsConfig points at the geocoding / distance matrix provider.
type MapsConfig struct {
	BaseURL string `yaml:"baseUrl"`
	APIKey  string `yaml:"apiKey"`
}

// LocationsConfig controls the nearest-locations ranking behavior.
type LocationsConfig struct {
	DefaultLimit int `yaml:"defaultLimit"`
	MaxLimit     int `yaml:"maxLimit"`
	Preselect    int `yaml:"preselect"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("BOOKING_BASE_URL"); v != "" {
		cfg.Booking.BaseURL = v
	}
	if v := os.Getenv("BOOKING_API_KEY"); v != "" {
		cfg.Booking.APIKey = v
	}
	if v := os.Getenv("CMS_BASE_URL"); v != "" {
		cfg.CMS.BaseURL = v
	}
	if v := os.Getenv("CMS_API_KEY"); v != "" {
		cfg.CMS.APIKey = v
	}
	if v := os.Getenv("CMS_PAGE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.CMS.PageSize = parsed
		}
	}
	if v := os.Getenv("MAPS_BASE_URL"); v != "" {
		cfg.Maps.BaseURL = v
	}
	if v := os.Getenv("MAPS_API_KEY"); v != "" {
		cfg.Maps.APIKey = v
	}
	if v := os.Getenv("LOCATIONS_DEFAULT_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Locations.DefaultLimit = parsed
		}
	}
	if v := os.Getenv("LOCATIONS_MAX_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Locations.MaxLimit = parsed
		}
	}
	if v := os.Getenv("LOCATIONS_PRESELECT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Locations.Preselect = parsed
		}
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			AllowedOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		Booking: BookingConfig{
			BaseURL: "https://api.bookthatapp.com/v1",
		},
		CMS: CMSConfig{
			BaseURL:  "https://cms.example.com/api",
			PageSize: 50,
		},
		Maps: MapsConfig{
			BaseURL: "https://maps.example.com/v2",
		},
		Locations: LocationsConfig{
			DefaultLimit: 3,
			MaxLimit:     10,
			Preselect:    10,
		},
	}
}

// Validate ensures the configuration is safe to use. A missing booking API
// key is a startup failure so the secret never has to be checked inside the
// request path.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.Booking.BaseURL) == "" {
		return errors.New("booking.baseUrl cannot be empty")
	}
	if strings.TrimSpace(c.Booking.APIKey) == "" {
		return errors.New("booking.apiKey cannot be empty")
	}
	if strings.TrimSpace(c.CMS.BaseURL) == "" {
		return errors.New("cms.baseUrl cannot be empty")
	}
	if c.CMS.PageSize <= 0 {
		return errors.New("cms.pageSize must be positive")
	}
	if strings.TrimSpace(c.Maps.BaseURL) == "" {
		return errors.New("maps.baseUrl cannot be empty")
	}
	if c.Locations.DefaultLimit <= 0 {
		return errors.New("locations.defaultLimit must be positive")
	}
	if c.Locations.MaxLimit < c.Locations.DefaultLimit {
		return errors.New("locations.maxLimit cannot be below locations.defaultLimit")
	}
	if c.Locations.Preselect <= 0 {
		return errors.New("locations.preselect must be positive")
	}
	return nil
}
