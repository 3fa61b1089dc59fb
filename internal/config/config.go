package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	DatabaseURI          string
	AuthSecret           string
	OperatorPasswordHash string
	LowStockThreshold    int
	StockPollInterval    time.Duration
	WorkerPoolSize       int
	ShutdownTimeout      time.Duration
	MaxLowStockBatch     int
}

const (
	defaultRunAddress        = ":8080"
	defaultAuthSecret        = "change-me-in-production"
	defaultLowStockThreshold = 5
	defaultStockPollInterval = 30 * time.Second
	defaultWorkerPoolSize    = 4
	defaultShutdownTimeout   = 10 * time.Second
	defaultMaxLowStockBatch  = 32
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		AuthSecret:           getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		OperatorPasswordHash: getString(lookup, "OPERATOR_PASSWORD_HASH", ""),
		LowStockThreshold:    getInt(lookup, "LOW_STOCK_THRESHOLD", defaultLowStockThreshold),
		StockPollInterval:    getDuration(lookup, "STOCK_POLL_INTERVAL", defaultStockPollInterval),
		WorkerPoolSize:       getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		MaxLowStockBatch:     getInt(lookup, "LOW_STOCK_BATCH", defaultMaxLowStockBatch),
	}

	fs := flag.NewFlagSet("sel3a", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.StockPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.OperatorPasswordHash, "operator-password-hash", cfg.OperatorPasswordHash, "Bcrypt hash of the operator password")
	fs.IntVar(&cfg.LowStockThreshold, "low-stock-threshold", cfg.LowStockThreshold, "Stock level at which products are reported as low")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent stock monitor workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between stock level checks")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.MaxLowStockBatch, "low-stock-batch", cfg.MaxLowStockBatch, "Maximum products per low stock report")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.StockPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = string(content)
	}

	if cfg.LowStockThreshold < 0 {
		cfg.LowStockThreshold = defaultLowStockThreshold
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.MaxLowStockBatch <= 0 {
		cfg.MaxLowStockBatch = defaultMaxLowStockBatch
	}

	if cfg.StockPollInterval <= 0 {
		cfg.StockPollInterval = defaultStockPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
