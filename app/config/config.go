// Package config loads the server configuration from an optional YAML
// file with environment overrides for deploy-time secrets.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr   string `yaml:"listen_addr"`
	DataDir      string `yaml:"data_dir"`
	StaticDir    string `yaml:"static_dir"`
	ViewsDir     string `yaml:"views_dir"`
	PostsPerPage int    `yaml:"posts_per_page"`

	SessionTTLMinutes int `yaml:"session_ttl_minutes"`

	News NewsConfig `yaml:"news"`
}

type NewsConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// SessionTTL returns the session lifetime as a duration.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// Load reads the config file at path, falling back to defaults when
// the path is empty. NEWS_API_KEY and PRESSROOM_ADDR environment
// variables override the file.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		ListenAddr:        ":8080",
		DataDir:           "data/badger",
		StaticDir:         "static",
		ViewsDir:          "",
		PostsPerPage:      10,
		SessionTTLMinutes: 120,
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PRESSROOM_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("PRESSROOM_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		c.News.APIKey = v
	}
}

func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.PostsPerPage < 1 {
		return fmt.Errorf("posts_per_page must be at least 1")
	}
	if c.SessionTTLMinutes < 1 {
		return fmt.Errorf("session_ttl_minutes must be at least 1")
	}
	return nil
}
