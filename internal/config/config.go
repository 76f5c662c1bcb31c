// Package config загрузка конфигурации сервиса из TOML-файла.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса.
type Config struct {
	Server    Server    `toml:"server"`
	Database  Database  `toml:"database"`
	Logs      Logs      `toml:"logs"`
	Metrics   Metrics   `toml:"metrics"`
	NATS      NATS      `toml:"nats"`
	Scheduler Scheduler `toml:"scheduler"`
}

// Server настройки HTTP-сервера.
type Server struct {
	Port               int `toml:"port"`
	ReadTimeoutSec     int `toml:"read_timeout_sec"`
	WriteTimeoutSec    int `toml:"write_timeout_sec"`
	IdleTimeoutSec     int `toml:"idle_timeout_sec"`
	ShutdownTimeoutSec int `toml:"shutdown_timeout_sec"`
	RateLimitPerSec    int `toml:"rate_limit_per_sec"`
	RateLimitBurst     int `toml:"rate_limit_burst"`
}

// Database настройки подключения к PostgreSQL.
type Database struct {
	Host               string `toml:"host"`
	Port               int    `toml:"port"`
	User               string `toml:"user"`
	Password           string `toml:"password"`
	DBName             string `toml:"dbname"`
	SSLMode            string `toml:"sslmode"`
	MaxOpenConns       int    `toml:"max_open_conns"`
	MaxIdleConns       int    `toml:"max_idle_conns"`
	ConnMaxLifetimeMin int    `toml:"conn_max_lifetime_min"`
	MigrationsDir      string `toml:"migrations_dir"`
}

// DSN собирает строку подключения к PostgreSQL.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Logs настройки логирования.
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки метрик Prometheus.
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
}

// NATS настройки подключения к шине сообщений.
type NATS struct {
	URL           string `toml:"url"`
	SubjectPrefix string `toml:"subject_prefix"`
}

// Scheduler настройки планировщика напоминаний.
type Scheduler struct {
	RulePrefix string `toml:"rule_prefix"`
	TickSec    int    `toml:"tick_sec"`
}

// Load читает конфигурацию из TOML-файла и применяет значения по умолчанию.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.ReadTimeoutSec == 0 {
		c.Server.ReadTimeoutSec = 15
	}
	if c.Server.WriteTimeoutSec == 0 {
		c.Server.WriteTimeoutSec = 15
	}
	if c.Server.IdleTimeoutSec == 0 {
		c.Server.IdleTimeoutSec = 60
	}
	if c.Server.ShutdownTimeoutSec == 0 {
		c.Server.ShutdownTimeoutSec = 10
	}
	if c.Server.RateLimitPerSec == 0 {
		c.Server.RateLimitPerSec = 100
	}
	if c.Server.RateLimitBurst == 0 {
		c.Server.RateLimitBurst = 200
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetimeMin == 0 {
		c.Database.ConnMaxLifetimeMin = 30
	}
	if c.Database.MigrationsDir == "" {
		c.Database.MigrationsDir = "migrations"
	}
	if c.Logs.File == "" {
		c.Logs.File = "logs/app.log"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "vehicle-service"
	}
	if c.NATS.SubjectPrefix == "" {
		c.NATS.SubjectPrefix = "vehicle-service"
	}
	if c.Scheduler.RulePrefix == "" {
		c.Scheduler.RulePrefix = "vehicle-service-reminders"
	}
	if c.Scheduler.TickSec == 0 {
		c.Scheduler.TickSec = 30
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port <= 0 {
		return fmt.Errorf("database.port must be positive, got %d", c.Database.Port)
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.NATS.URL == "" {
		return fmt.Errorf("nats.url is required")
	}
	return nil
}
