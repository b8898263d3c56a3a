package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// BoundingBox is a lat/lon rectangle used to filter scraped bulletin rows.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Contains reports whether the coordinate falls inside the box.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// CacheTTL is how long a computed report stays fresh.
	CacheTTL time.Duration

	// Primary source: PHIVOLCS bulletin scraper.
	PhivolcsURL     string
	PhivolcsTimeout time.Duration
	RegionKeyword   string
	RegionBounds    BoundingBox

	// Secondary source: USGS fdsnws event query.
	USGSURL          string
	USGSTimeout      time.Duration
	SearchCenterLat  float64
	SearchCenterLon  float64
	SearchRadiusKm   float64
	SearchMinMag     float64
	SearchWindowDays int

	// Kafka severe-area alert publishing (optional).
	KafkaBrokers       []string
	KafkaAlertTopic    string
	KafkaAlertsEnabled bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parsePositiveDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parsePositiveDuration("CACHE_TTL", "2m")
	if err != nil {
		return nil, err
	}
	phivolcsTimeout, err := parsePositiveDuration("PHIVOLCS_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}
	usgsTimeout, err := parsePositiveDuration("USGS_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	brokers := parseBrokers(os.Getenv("KAFKA_BROKERS"))
	alertsEnabled := len(brokers) > 0
	if v := os.Getenv("KAFKA_ALERTS_ENABLED"); v != "" {
		alertsEnabled = v == "true"
	}

	var floatErr error
	envFloat := func(key string, fallback float64) float64 {
		v, err := parseFloat(key, fallback)
		if err != nil && floatErr == nil {
			floatErr = err
		}
		return v
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		CacheTTL:        cacheTTL,

		PhivolcsURL:     envOrDefault("PHIVOLCS_URL", "https://earthquake.phivolcs.dost.gov.ph/"),
		PhivolcsTimeout: phivolcsTimeout,
		RegionKeyword:   os.Getenv("REGION_KEYWORD"),
		RegionBounds: BoundingBox{
			MinLat: envFloat("REGION_MIN_LAT", 4.0),
			MaxLat: envFloat("REGION_MAX_LAT", 21.5),
			MinLon: envFloat("REGION_MIN_LON", 116.0),
			MaxLon: envFloat("REGION_MAX_LON", 127.5),
		},

		USGSURL:          envOrDefault("USGS_URL", "https://earthquake.usgs.gov/fdsnws/event/1/query"),
		USGSTimeout:      usgsTimeout,
		SearchCenterLat:  envFloat("SEARCH_CENTER_LAT", 12.8797),
		SearchCenterLon:  envFloat("SEARCH_CENTER_LON", 121.7740),
		SearchRadiusKm:   envFloat("SEARCH_RADIUS_KM", 1000),
		SearchMinMag:     envFloat("SEARCH_MIN_MAGNITUDE", 3.5),
		SearchWindowDays: 7,

		KafkaBrokers:       brokers,
		KafkaAlertTopic:    envOrDefault("KAFKA_ALERT_TOPIC", "relief-area-alerts"),
		KafkaAlertsEnabled: alertsEnabled,
	}

	if floatErr != nil {
		return nil, floatErr
	}
	if !cfg.RegionBounds.Contains(cfg.SearchCenterLat, cfg.SearchCenterLon) {
		return nil, fmt.Errorf("SEARCH_CENTER (%.4f, %.4f) lies outside REGION bounds",
			cfg.SearchCenterLat, cfg.SearchCenterLon)
	}
	if cfg.SearchRadiusKm <= 0 {
		return nil, fmt.Errorf("SEARCH_RADIUS_KM must be positive")
	}
	if cfg.KafkaAlertsEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, fmt.Errorf("KAFKA_ALERTS_ENABLED is true but KAFKA_BROKERS is not set")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

func parseBrokers(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}
