package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	APIURL     string        `mapstructure:"api_url"`
	StreamURL  string        `mapstructure:"stream_url"`
	Username   string        `mapstructure:"username"`
	Password   string        `mapstructure:"password"`
	RedisAddr  string        `mapstructure:"redis_addr"`
	Channel    string        `mapstructure:"channel"`
	NoStream   bool          `mapstructure:"no_stream"`
	NoRenew    bool          `mapstructure:"no_renew"`
	PingPeriod time.Duration `mapstructure:"ping_period"`
	Debug      bool          `mapstructure:"debug"`
}

// Load reads the yaml config file, falling back to defaults and
// ATRIUM_-prefixed environment variables when none is found.
func Load(ctx context.Context, path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("atrium")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("atrium")
	v.AutomaticEnv()

	v.SetDefault("api_url", "http://localhost:8080")
	v.SetDefault("stream_url", "ws://localhost:8080/stream")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("channel", "atrium-events")
	v.SetDefault("ping_period", "54s")

	if err := v.ReadInConfig(); err != nil {
		slog.DebugContext(ctx, "config file not found, using defaults", "error", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}

	return &cfg, nil
}
