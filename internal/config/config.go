// Package config loads santorini.config and strategy.config, with
// environment-variable overrides for the fields an operator most often
// wants to tweak without editing the file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config is the contents of santorini.config: where the Administrator
// listens, and which player type fills unfilled roster slots.
type Config struct {
	IP            string `json:"IP"`
	Port          int    `json:"port"`
	DefaultPlayer string `json:"default-player"`
	Parallel      bool   `json:"parallel,omitempty"`
}

// StrategyConfig is the contents of strategy.config: the look-ahead
// depth for the NLooksAhead and Smart strategies.
type StrategyConfig struct {
	LookAhead int `json:"look-ahead"`
}

// Load reads santorini.config from path, then applies SANTORINI_IP /
// SANTORINI_PORT / SANTORINI_DEFAULT_PLAYER overrides in the style of
// the bot pool's getEnv helper.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.IP = getEnv("SANTORINI_IP", cfg.IP)
	if portStr := os.Getenv("SANTORINI_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("config: SANTORINI_PORT must be an integer: %w", err)
		}
		cfg.Port = port
	}
	cfg.DefaultPlayer = getEnv("SANTORINI_DEFAULT_PLAYER", cfg.DefaultPlayer)

	if cfg.Port <= 0 {
		return nil, fmt.Errorf("config: port must be positive, got %d", cfg.Port)
	}
	return &cfg, nil
}

// LoadStrategy reads strategy.config from path.
func LoadStrategy(path string) (*StrategyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg StrategyConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.LookAhead < 1 {
		return nil, fmt.Errorf("config: look-ahead must be >= 1, got %d", cfg.LookAhead)
	}
	return &cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
