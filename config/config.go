package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	DriverPinot      = "pinot"
	DriverClickhouse = "clickhouse"
)

type Config struct {
	StoreDriver    string        `validate:"required,oneof=pinot clickhouse"`
	PinotHost      string        `validate:"required"`
	PinotPort      int           `validate:"min=1,max=65535"`
	PinotPath      string        `validate:"startswith=/"`
	PinotScheme    string        `validate:"oneof=http https"`
	DbDsn          string        `validate:"required_if=StoreDriver clickhouse"`
	ListenAddr     string        `validate:"required"`
	QueryTimeout   time.Duration `validate:"gt=0"`
	FilterPushdown bool
	PageTitle      string
	LogLevel       string `validate:"oneof=trace debug info warn warning error fatal panic"`
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the process-wide configuration, loading it on first use.
func GetConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.WithError(err).Debug("no .env file, using process environment")
		}
		cfg, err := Load(os.Getenv)
		if err != nil {
			log.WithError(err).Fatal("invalid configuration")
		}
		config = cfg
	})
	return config
}

// Load builds a Config from lookup, falling back to defaults for unset keys.
func Load(lookup func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			return v
		}
		return def
	}

	port, err := strconv.Atoi(get("PINOT_PORT", "8099"))
	if err != nil {
		return nil, fmt.Errorf("PINOT_PORT: %w", err)
	}
	timeout, err := time.ParseDuration(get("QUERY_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("QUERY_TIMEOUT: %w", err)
	}
	pushdown, err := strconv.ParseBool(get("FILTER_PUSHDOWN", "false"))
	if err != nil {
		return nil, fmt.Errorf("FILTER_PUSHDOWN: %w", err)
	}

	cfg := &Config{
		StoreDriver:    strings.ToLower(get("STORE_DRIVER", DriverPinot)),
		PinotHost:      get("PINOT_HOST", "localhost"),
		PinotPort:      port,
		PinotPath:      get("PINOT_PATH", "/query/sql"),
		PinotScheme:    strings.ToLower(get("PINOT_SCHEME", "http")),
		DbDsn:          get("DB_DSN", ""),
		ListenAddr:     get("LISTEN_ADDR", ":8501"),
		QueryTimeout:   timeout,
		FilterPushdown: pushdown,
		PageTitle:      get("PAGE_TITLE", "Realtime Dashboard"),
		LogLevel:       strings.ToLower(get("LOG_LEVEL", "info")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// BrokerURL is the full query endpoint of the Pinot broker.
func (c *Config) BrokerURL() string {
	host := net.JoinHostPort(c.PinotHost, strconv.Itoa(c.PinotPort))
	return c.PinotScheme + "://" + host + c.PinotPath
}
