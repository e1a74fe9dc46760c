// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// StorageMemory хранит запросы в памяти процесса.
	StorageMemory = "memory"
	// StoragePostgres хранит запросы в PostgreSQL.
	StoragePostgres = "postgres"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env-default:"local"`
	Storage         `yaml:"storage"`
	RedisConnection `yaml:"redis_connection"`
	HTTPServer      `yaml:"http_server"`
	Report          `yaml:"report"`
	RateLimit       `yaml:"rate_limit"`
	RabbitMQ        `yaml:"rabbitmq"`
}

// Storage структура для выбора и настройки хранилища запросов
type Storage struct {
	StorageType             string `yaml:"type" env-default:"memory"`
	StorageConnectionString string `yaml:"connection_string"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес отключает кеширование.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// Report настройки расчета прогресса отчета
type Report struct {
	MaxDurationMs int           `yaml:"max_duration_ms" env-default:"60000"`
	CacheTTL      time.Duration `yaml:"cache_ttl" env-default:"1h"`
}

// RateLimit настройки ограничения частоты запросов. RPS = 0 отключает лимит.
type RateLimit struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// RabbitMQ настройки публикации событий. Пустой URL отключает публикацию.
type RabbitMQ struct {
	URL        string        `yaml:"url"`
	Exchange   string        `yaml:"exchange" env-default:"reports"`
	RoutingKey string        `yaml:"routing_key" env-default:"request.submitted"`
	Retries    int           `yaml:"retries" env-default:"5"`
	RetryDelay time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// MustLoad функция для загрузки конфига из файла, путь к которому задан в CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает и проверяет конфиг по указанному пути
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file: %s - does not exist", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет значения, без которых сервис не может стартовать
func (c *Config) Validate() error {
	if c.MaxDurationMs <= 0 {
		return errors.New("report.max_duration_ms must be positive")
	}
	switch c.StorageType {
	case StorageMemory:
	case StoragePostgres:
		if c.StorageConnectionString == "" {
			return errors.New("storage.connection_string is required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown storage type %q", c.StorageType)
	}
	if c.RPS < 0 {
		return errors.New("rate_limit.rps must not be negative")
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Storage:\n"+
			"  Type: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Report:\n"+
			"  MaxDurationMs: %d\n"+
			"  CacheTTL: %s\n"+
			"RateLimit:\n"+
			"  RPS: %g\n"+
			"  Burst: %d\n"+
			"RabbitMQ:\n"+
			"  Exchange: %s\n"+
			"  RoutingKey: %s\n",
		c.Env,
		c.StorageType,
		c.AddressRedis,
		c.User,
		c.DB,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.MaxDurationMs,
		c.CacheTTL,
		c.RPS,
		c.Burst,
		c.Exchange,
		c.RoutingKey,
	)
}
