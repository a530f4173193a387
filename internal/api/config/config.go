package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Cors     CorsConfig     `mapstructure:"cors"`
	Cron     CronConfig     `mapstructure:"cron"`
	Stats    StatsConfig    `mapstructure:"stats"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// RedisConfig Redis配置，Addr 为空时关闭统计缓存
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// CorsConfig 跨域配置，为空时允许所有来源
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CronConfig 定时任务配置
type CronConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	ReconcileSpec string `mapstructure:"reconcile_spec"`
}

// StatsConfig 统计接口配置
type StatsConfig struct {
	DefaultWindowDays int `mapstructure:"default_window_days"`
	CacheTTLMinutes   int `mapstructure:"cache_ttl_minutes"`
}
