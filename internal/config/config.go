package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig
	Gin      *GinConfig
	Postgres *PostgresConfig
	Redis    *RedisConfig
	Worker   *WorkerConfig
}

type APIConfig struct {
	Environment        string
	Port               string
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
}

type GinConfig struct {
	Mode string
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DB       string
	SSLMode  string `mapstructure:"ssl_mode"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode)
}

// RedisConfig is optional: an empty URL disables the summary cache and the
// background worker.
type RedisConfig struct {
	URL        string
	SummaryTTL time.Duration `mapstructure:"summary_ttl"`
}

type WorkerConfig struct {
	Enabled     bool
	Concurrency int
	SweepCron   string `mapstructure:"sweep_cron"`
}

var watchOnce sync.Once

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("redis.summary_ttl", "30s")
	v.SetDefault("worker.enabled", true)
	v.SetDefault("worker.concurrency", 10)
	v.SetDefault("worker.sweep_cron", "@every 1m")
}

// Load reads the YAML file at path. Every key can be overridden from the
// environment, e.g. POSTGRES_HOST or REDIS_URL. Edits to the file are logged
// while the process runs; settings are only applied at start.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}

	watchOnce.Do(func() {
		v.OnConfigChange(func(e fsnotify.Event) {
			zap.L().Warn("config file changed, restart to apply", zap.String("file", e.Name), zap.String("op", e.Op.String()))
		})
		v.WatchConfig()
	})

	return conf, nil
}

func (c *AppConfig) validate() error {
	switch {
	case c.API == nil || c.API.Port == "":
		return fmt.Errorf("config: api.port is required")
	case c.API.JWTSigningKey == "":
		return fmt.Errorf("config: api.jwt_signing_key is required")
	case c.Postgres == nil:
		return fmt.Errorf("config: postgres section is required")
	}

	if c.Gin == nil {
		c.Gin = &GinConfig{Mode: "debug"}
	}
	if c.Redis == nil {
		c.Redis = &RedisConfig{}
	}
	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}

	return nil
}
