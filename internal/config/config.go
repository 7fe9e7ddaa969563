package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"StockScout/internal/notifier"
)

// Config holds all application configuration.
type Config struct {
	SMTP struct {
		User string `yaml:"user"`
		Pass string `yaml:"pass"`
		To   string `yaml:"to"` // comma-separated recipients
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"smtp"`
	Scan struct {
		TickersFile  string `yaml:"tickers_file"`
		LookbackDays int    `yaml:"lookback_days"`
		OutputDir    string `yaml:"output_dir"`
		TopN         int    `yaml:"top_n"`
	} `yaml:"scan"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; the env surface alone is
// enough to run.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.SMTP.User = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		cfg.SMTP.Pass = v
	}
	if v := os.Getenv("SMTP_TO"); v != "" {
		cfg.SMTP.To = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = port
		}
	}
	if v := os.Getenv("TICKERS_FILE"); v != "" {
		cfg.Scan.TickersFile = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Scan.LookbackDays = days
		}
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Scan.OutputDir = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.SMTP.Host == "" {
		cfg.SMTP.Host = "smtp.gmail.com"
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.Scan.TickersFile == "" {
		cfg.Scan.TickersFile = "tickers.txt"
	}
	if cfg.Scan.LookbackDays == 0 {
		cfg.Scan.LookbackDays = 126
	}
	if cfg.Scan.OutputDir == "" {
		cfg.Scan.OutputDir = "output"
	}
	if cfg.Scan.TopN == 0 {
		cfg.Scan.TopN = 10
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 18 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockscout.db"
	}

	return cfg, nil
}

// Validate checks structural settings. Missing SMTP credentials are not an
// error; they disable notification.
func (c *Config) Validate() error {
	if c.Scan.TickersFile == "" {
		return fmt.Errorf("scan.tickers_file is required")
	}
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("smtp.port out of range: %d", c.SMTP.Port)
	}
	if c.Scan.LookbackDays < 1 {
		return fmt.Errorf("scan.lookback_days must be positive")
	}
	if c.Scan.TopN < 1 {
		return fmt.Errorf("scan.top_n must be positive")
	}
	return nil
}

// Recipients splits the comma-separated recipient list, dropping empties.
func (c *Config) Recipients() []string {
	var out []string
	for _, r := range strings.Split(c.SMTP.To, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// NotifierConfig maps the SMTP section onto the notifier's explicit config.
func (c *Config) NotifierConfig() notifier.Config {
	return notifier.Config{
		User:       c.SMTP.User,
		Password:   c.SMTP.Pass,
		Recipients: c.Recipients(),
		Host:       c.SMTP.Host,
		Port:       c.SMTP.Port,
	}
}
