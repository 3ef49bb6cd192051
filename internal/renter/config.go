package renter

import (
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/koustreak/SiaRi/internal/errs"
	"github.com/koustreak/SiaRi/internal/logger"
)

// Config holds all settings needed to reach a renterd daemon.
type Config struct {
	// APIAddr is the daemon's API root.
	// Example: "http://localhost:9980/api"
	APIAddr string

	// Password authenticates every request as user "api".
	Password string

	// Timeout bounds each request end to end. Zero means no limit, which is
	// what streamed object transfers need.
	Timeout time.Duration

	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool

	// Debug dumps requests and responses through the transport logger.
	Debug bool

	// Log receives a per-request debug event when set.
	Log *logger.Logger
}

// DefaultConfig returns a config for the given daemon address and password.
func DefaultConfig(apiAddr, password string) *Config {
	return &Config{
		APIAddr:  apiAddr,
		Password: password,
	}
}

// fileConfig is the YAML schema of a config file. Timeout uses Go duration
// syntax, e.g. "90s".
type fileConfig struct {
	APIAddr            string `yaml:"api_addr"`
	Password           string `yaml:"password"`
	Timeout            string `yaml:"timeout"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
	Debug              bool   `yaml:"debug"`
}

// LoadConfig reads a YAML config file. Missing keys keep their zero values;
// New reports anything a usable config still lacks.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "read config "+path, err)
	}
	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidData, "parse config "+path, err)
	}
	cfg := &Config{
		APIAddr:            raw.APIAddr,
		Password:           raw.Password,
		InsecureSkipVerify: raw.InsecureSkipVerify,
		Debug:              raw.Debug,
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, errs.Wrap(errs.ErrKindInvalidData, "parse config timeout "+raw.Timeout, err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}
