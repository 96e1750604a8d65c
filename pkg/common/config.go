package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig is constructed once at startup and passed into the components
// that need it. Nothing reads process-wide settings after this point.
type AppConfig struct {
	DBType       string
	DBPath       string
	PostgresDSN  string
	HTTPHostPort string
	CorsOrigins  []string

	// Rate limiting is enabled only when both rate and burst are set.
	RateLimiting bool
	DefaultRate  float64
	DefaultBurst int
}

func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		DBType:       strings.TrimSpace(os.Getenv(EnvKeyDACDBType)),
		DBPath:       strings.TrimSpace(os.Getenv(EnvKeyDACDbPath)),
		PostgresDSN:  strings.TrimSpace(os.Getenv(EnvKeyDACPostgresDSN)),
		HTTPHostPort: strings.TrimSpace(os.Getenv(EnvKeyDACHttpHostPort)),
	}

	if origins := strings.TrimSpace(os.Getenv(EnvKeyDACCorsOrigins)); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CorsOrigins = append(cfg.CorsOrigins, origin)
			}
		}
	}

	rateStr := strings.TrimSpace(os.Getenv(EnvKeyDACDefaultRate))
	burstStr := strings.TrimSpace(os.Getenv(EnvKeyDACDefaultBurst))
	if rateStr != "" || burstStr != "" {
		rate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s, should be a float64 value: %w", EnvKeyDACDefaultRate, err)
		}
		burst, err := strconv.ParseInt(burstStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s, should be an int value: %w", EnvKeyDACDefaultBurst, err)
		}
		cfg.RateLimiting = true
		cfg.DefaultRate = rate
		cfg.DefaultBurst = int(burst)
	}

	return cfg, nil
}
