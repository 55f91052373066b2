package config

import (
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// Port the HTTP server listens on
	Port string `env:"PORT" envDefault:"5250"`

	// LogLevel is any level logrus can parse (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Rates struct {
		// Strict rejects unknown periods instead of falling back to last-5-years
		Strict bool `env:"RATES_STRICT" envDefault:"false"`

		// DBPath is the sqlite file holding published snapshots
		DBPath string `env:"RATES_DB_PATH" envDefault:"database/rates.db"`
	}

	Snapshots struct {
		// Maximum number of retries for a failed snapshot write
		MaxRetries int `env:"SNAPSHOT_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in milliseconds
		RetryDelay int `env:"SNAPSHOT_RETRY_DELAY_MS" envDefault:"500"`
	}

	// CORSOrigins lists the allowed origins, "*" for any
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AllowedOrigins returns CORSOrigins trimmed, without empty entries
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range c.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// AllowAllOrigins reports whether CORS should accept any origin
func (c *Config) AllowAllOrigins() bool {
	origins := c.AllowedOrigins()
	return len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
}

// NewLogger builds the JSON stdout logger used across the server
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logger.WithError(err).Warnf("Unknown log level %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
