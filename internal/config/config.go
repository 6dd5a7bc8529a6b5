package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Cart    CartConfig    `mapstructure:"cart"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Contact ContactConfig `mapstructure:"contact"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// CatalogConfig selects the catalog source. Source is "json" or "postgres";
// either way the catalog is materialized once at startup and stays read-only.
type CatalogConfig struct {
	Source      string `mapstructure:"source"`
	Path        string `mapstructure:"path"`
	DatabaseURL string `mapstructure:"database_url"`
}

// CartConfig selects the durable slot backend: "memory", "file", or "redis".
type CartConfig struct {
	Backend string `mapstructure:"backend"`
	DataDir string `mapstructure:"data_dir"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ContactConfig configures the optional SMTP forwarding of contact messages.
// Messages are always kept in the message repository; mail is best-effort.
type ContactConfig struct {
	SMTPServer string `mapstructure:"smtp_server"`
	SMTPPort   string `mapstructure:"smtp_port"`
	SMTPUser   string `mapstructure:"smtp_user"`
	SMTPPass   string `mapstructure:"smtp_pass"`
	From       string `mapstructure:"from"`
	To         string `mapstructure:"to"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the yaml config file at configPath, if any, applies defaults,
// and lets STOREFRONT_* environment variables override individual keys.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("catalog.source", "json")
	v.SetDefault("catalog.path", "data/products.json")
	v.SetDefault("cart.backend", "memory")
	v.SetDefault("cart.data_dir", "data/carts")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("STOREFRONT")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}
