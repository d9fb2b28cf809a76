// config реализует конфигурацию requests-service: загрузка из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Ops      OpsConfig      `yaml:"ops"`
	Postgres PostgresConfig `yaml:"postgres"`
	Mongo    MongoConfig    `yaml:"mongo"`
	S3       S3Config       `yaml:"s3"`
	Files    FilesConfig    `yaml:"files"`
	Timeline TimelineConfig `yaml:"timeline"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// TimeoutConfig — сервисные таймауты (общий дедлайн обработки запроса).
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
}

// HTTPConfig — сетевые настройки REST API.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50080"`
}

// OpsConfig — служебный HTTP (health/metrics).
type OpsConfig struct {
	Host string `yaml:"host" env:"OPS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"OPS_PORT" env-default:"50090"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// Addr возвращает адрес в формате host:port.
func (o OpsConfig) Addr() string {
	return net.JoinHostPort(o.Host, o.Port)
}

// PostgresConfig — подключение к PostgreSQL (заявки/бакеты/файлы).
type PostgresConfig struct {
	URL string `yaml:"url" env:"POSTGRES_URL" env-required:"true"`
}

// MongoConfig — подключение к MongoDB (события таймлайна и индекс).
type MongoConfig struct {
	URL string `yaml:"url" env:"MONGO_URL" env-required:"true"`
}

// S3Config — подключение к S3/MinIO (содержимое файлов).
type S3Config struct {
	Endpoint     string `yaml:"endpoint" env:"S3_ENDPOINT" env-required:"true"`
	RootUser     string `yaml:"root_user" env:"S3_ROOT_USER" env-required:"true"`
	RootPassword string `yaml:"root_password" env:"S3_ROOT_PASSWORD" env-required:"true"`
	// Bucket — общий физический бакет; бакеты заявок живут в нём префиксами.
	Bucket string `yaml:"bucket" env:"S3_BUCKET" env-default:"request-files"`
}

// FilesConfig — лимиты файловых вложений.
// Значения задают параметры лениво создаваемого бакета заявки.
type FilesConfig struct {
	// Суммарная квота бакета заявки. По умолчанию 100 MiB.
	QuotaSize int64 `yaml:"quota_size" env:"FILES_QUOTA_SIZE" env-default:"104857600"`
	// Максимальный размер одного файла. По умолчанию 10 MiB.
	MaxFileSize int64 `yaml:"max_file_size" env:"FILES_MAX_FILE_SIZE" env-default:"10485760"`
}

// TimelineConfig — выдача таймлайна.
type TimelineConfig struct {
	// PreviewSize — максимум ответов, денормализуемых в превью корня.
	PreviewSize int32 `yaml:"preview_size" env:"TIMELINE_PREVIEW_SIZE" env-default:"5"`
	// Пагинация: size=0 -> берём Default; верхняя граница — Max.
	Default int32 `yaml:"default" env:"TIMELINE_DEFAULT_LIMIT" env-default:"25"`
	Max     int32 `yaml:"max"     env:"TIMELINE_MAX_LIMIT"     env-default:"100"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}

		if err := c.validate(); err != nil {
			return nil, err
		}

		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}

		if err := c.validate(); err != nil {
			return nil, err
		}

		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		if err := cfg.validate(); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.Postgres.URL == "" {
		return fmt.Errorf("postgres.url is required")
	}

	if c.Mongo.URL == "" {
		return fmt.Errorf("mongo.url is required")
	}

	if c.S3.Endpoint == "" {
		return fmt.Errorf("s3.endpoint is required")
	}

	if c.Files.MaxFileSize <= 0 {
		return fmt.Errorf("files.max_file_size must be > 0")
	}

	if c.Files.QuotaSize < c.Files.MaxFileSize {
		return fmt.Errorf("files.quota_size must be >= files.max_file_size")
	}

	if c.Timeline.PreviewSize <= 0 {
		return fmt.Errorf("timeline.preview_size must be > 0")
	}

	if c.Timeline.Default <= 0 {
		return fmt.Errorf("timeline.default must be > 0")
	}

	if c.Timeline.Max <= 0 {
		return fmt.Errorf("timeline.max must be > 0")
	}

	if c.Timeline.Default > c.Timeline.Max {
		return fmt.Errorf("timeline.default must be <= timeline.max")
	}

	return nil
}
