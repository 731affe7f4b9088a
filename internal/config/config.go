package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port        int              `json:"port"`
	LogConfig   logger.LogConfig `json:"log_config"`
	CORSHosts   []string         `json:"cors_hosts"`
	RateLimitMS int              `json:"rate_limit_ms"`
	Database    DatabaseConfig   `json:"database"`
	AI          AIConfig         `json:"ai"`
	Analysis    AnalysisConfig   `json:"analysis"`
	History     HistoryConfig    `json:"history"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"db_name"`
	SSLMode  string `json:"ssl_mode"`
}

type AIConfig struct {
	Provider string      `json:"provider"`
	Model    string      `json:"model"`
	Data     interface{} `json:"data"`
}

type AnalysisConfig struct {
	MaxWordsPerChunk int `json:"max_words_per_chunk"`
	MaxInputChars    int `json:"max_input_chars"`
	TimeoutSeconds   int `json:"timeout_seconds"`
	RetryAttempts    int `json:"retry_attempts"`
	RetryDelayMS     int `json:"retry_delay_ms"`
}

type HistoryConfig struct {
	Enable        bool   `json:"enable"`
	RetentionDays int    `json:"retention_days"`
	CleanupSpec   string `json:"cleanup_spec"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.AI.Provider == "" {
		return nil, fmt.Errorf("ai.provider is required")
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.0-flash"
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.Analysis.MaxWordsPerChunk == 0 {
		cfg.Analysis.MaxWordsPerChunk = 1000
	}
	if cfg.Analysis.MaxInputChars == 0 {
		cfg.Analysis.MaxInputChars = 100000
	}
	if cfg.Analysis.TimeoutSeconds == 0 {
		cfg.Analysis.TimeoutSeconds = 300
	}
	if cfg.Analysis.RetryAttempts == 0 {
		cfg.Analysis.RetryAttempts = 3
	}
	if cfg.Analysis.RetryDelayMS == 0 {
		cfg.Analysis.RetryDelayMS = 1000
	}
	if cfg.History.Enable {
		if cfg.Database.DSN == "" && cfg.Database.Host == "" {
			return nil, fmt.Errorf("database is required when history is enabled")
		}
		if cfg.History.RetentionDays == 0 {
			cfg.History.RetentionDays = 90
		}
		if cfg.History.CleanupSpec == "" {
			cfg.History.CleanupSpec = "0 3 * * *"
		}
	}
	return &cfg, nil
}
