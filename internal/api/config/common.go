package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// ErrMissingDSN 未配置数据库连接串
var ErrMissingDSN = errors.New("database connection string is required (set DATABASE_URL or database.dsn)")

// LoadConfig 从文件与环境变量加载配置并填充到 Cfg
func LoadConfig() error {
	cfg, err := Load("./configs")
	if err != nil {
		return err
	}
	Cfg = cfg
	return nil
}

// Load 读取指定目录下的 config.yaml，环境变量优先
func Load(paths ...string) (*Config, error) {
	// .env 不存在时忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvPrefix("PULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("database.dsn", "DATABASE_URL", "PULSE_DATABASE_DSN"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.DB.DSN) == "" {
		return nil, ErrMissingDSN
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle", 5)
	v.SetDefault("database.max_open", 20)
	v.SetDefault("database.max_lifetime", 30)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("logstash.address", "")
	v.SetDefault("logstash.index", "logstash-pulseboard")
	v.SetDefault("logstash.token", "")
	v.SetDefault("cors.allowed_origins", []string{})
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.reconcile_spec", "@daily")
	v.SetDefault("stats.default_window_days", 30)
	v.SetDefault("stats.cache_ttl_minutes", 60)
}
