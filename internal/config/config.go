package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DefaultConfigPath = "config/config.yaml"

	// Логин всегда выдает токен на 24 часа; DefaultTTL - для вызовов без явного ttl.
	defaultAccessTTLMinutes  = 60 * 24
	defaultDefaultTTLMinutes = 15
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql, sqlite
		DSN    string `yaml:"url"`
		// Порог медленного запроса в миллисекундах для SQL-логгера
		SlowQueryMS int  `yaml:"slow_query_ms"`
		AutoMigrate bool `yaml:"auto_migrate"`
	} `yaml:"database"`

	JWT struct {
		Secret            string `yaml:"secret"`
		TTLMinutes        int    `yaml:"ttl"`
		DefaultTTLMinutes int    `yaml:"default_ttl"`
	} `yaml:"jwt"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Workers struct {
		// Период фоновой деактивации просроченных вакансий и токенов; 0 - выключено
		ExpiryIntervalMinutes int `yaml:"expiry_interval_minutes"`
	} `yaml:"workers"`
}

// Load читает .env (если есть), config.yaml (если есть) и переменные окружения.
// Переменные окружения имеют приоритет над файлом.
func Load() (*Config, error) {
	// .env необязателен: в контейнере переменные приходят снаружи
	_ = godotenv.Load()

	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	if err := loadFile(configPath, &cfg); err != nil {
		return nil, err
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_AUTO_MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DATABASE_AUTO_MIGRATE %q: %w", v, err)
		}
		cfg.Database.AutoMigrate = b
	}
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("JWT_TTL_MINUTES"); v != "" {
		ttl, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid JWT_TTL_MINUTES %q: %w", v, err)
		}
		cfg.JWT.TTLMinutes = ttl
	}
	if v := os.Getenv("WORKERS_EXPIRY_INTERVAL_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid WORKERS_EXPIRY_INTERVAL_MINUTES %q: %w", v, err)
		}
		cfg.Workers.ExpiryIntervalMinutes = minutes
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORS.AllowedOrigins = origins
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.SlowQueryMS == 0 {
		c.Database.SlowQueryMS = 200
	}
	if c.JWT.TTLMinutes == 0 {
		c.JWT.TTLMinutes = defaultAccessTTLMinutes
	}
	if c.JWT.DefaultTTLMinutes == 0 {
		c.JWT.DefaultTTLMinutes = defaultDefaultTTLMinutes
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	var problems []string

	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		problems = append(problems, fmt.Sprintf("database.driver %q is not supported", c.Database.Driver))
	}
	if c.Database.DSN == "" {
		problems = append(problems, "database.url is required")
	}
	if c.JWT.Secret == "" {
		problems = append(problems, "jwt.secret is required")
	}
	if c.JWT.TTLMinutes < 0 || c.JWT.DefaultTTLMinutes < 0 {
		problems = append(problems, "jwt ttl must not be negative")
	}
	if c.Workers.ExpiryIntervalMinutes < 0 {
		problems = append(problems, "workers.expiry_interval_minutes must not be negative")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.JWT.TTLMinutes) * time.Minute
}

func (c *Config) DefaultTTL() time.Duration {
	return time.Duration(c.JWT.DefaultTTLMinutes) * time.Minute
}

func (c *Config) ExpiryInterval() time.Duration {
	return time.Duration(c.Workers.ExpiryIntervalMinutes) * time.Minute
}

func (c *Config) SlowQueryThreshold() time.Duration {
	return time.Duration(c.Database.SlowQueryMS) * time.Millisecond
}
