package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type RateLimit struct {
	Enabled     bool
	MaxRequests int
	Window      time.Duration
}

type Config struct {
	HTTP      HTTP
	DB        DB
	JWT       JWT
	RedisAddr string
	RateLimit RateLimit
}

// Load reads an optional YAML file and lets ADBOARD_* environment variables
// override every key (ADBOARD_DB_HOST, ADBOARD_HTTP_PORT, ...). The file
// path may be empty; env plus defaults is a complete configuration.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("adboard")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 8000)
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "adboard")
	v.SetDefault("jwt.secret", "dev-secret")
	v.SetDefault("jwt.issuer", "adboard")
	v.SetDefault("jwt.exp_min", 60)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.max_requests", 100)
	v.SetDefault("ratelimit.window", "1m")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
		JWT: JWT{
			Secret: v.GetString("jwt.secret"),
			Issuer: v.GetString("jwt.issuer"),
			ExpMin: v.GetInt("jwt.exp_min"),
		},
		RedisAddr: v.GetString("redis.addr"),
		RateLimit: RateLimit{
			Enabled:     v.GetBool("ratelimit.enabled"),
			MaxRequests: v.GetInt("ratelimit.max_requests"),
			Window:      v.GetDuration("ratelimit.window"),
		},
	}
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	return cfg, nil
}
