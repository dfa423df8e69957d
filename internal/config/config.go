package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the client configuration loaded from the environment.
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	ShopAddress string `mapstructure:"shop_address"`
	APIKey      string `mapstructure:"api_key"`
	APISecret   string `mapstructure:"api_secret"`
	APIToken    string `mapstructure:"api_token"`

	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables, with an optional
// dotenv file for local development. Credentials default to empty strings;
// whether they are usable is decided at call time, not here.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("shop_address", "")
	v.SetDefault("api_key", "")
	v.SetDefault("api_secret", "")
	v.SetDefault("api_token", "")
	v.SetDefault("http_timeout_seconds", 20)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	return &cfg, nil
}
