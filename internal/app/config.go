package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/vocab-builder/internal/observability"
	"github.com/yungbote/vocab-builder/internal/platform/envutil"
	"github.com/yungbote/vocab-builder/internal/platform/logger"
	"github.com/yungbote/vocab-builder/internal/platform/mongodb"
	"github.com/yungbote/vocab-builder/internal/platform/redis"
)

const DefaultPort = 3000

type HTTPConfig struct {
	Port              int           `yaml:"port"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	MaxRequestBytes   int64         `yaml:"max_request_bytes"`
}

// Addr is the listen address for Port on all interfaces.
func (h HTTPConfig) Addr() string { return fmt.Sprintf(":%d", h.Port) }

type LogConfig struct {
	Mode  string `yaml:"mode"`
	Level string `yaml:"level"`
}

type Config struct {
	Log   LogConfig                 `yaml:"log"`
	HTTP  HTTPConfig                `yaml:"http"`
	Mongo mongodb.Config            `yaml:"mongo"`
	Redis redis.Config              `yaml:"redis"`
	OTel  observability.OtelConfig `yaml:"otel"`
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{Mode: "development"},
		HTTP: HTTPConfig{
			Port:              DefaultPort,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       2 * time.Minute,
			ShutdownTimeout:   15 * time.Second,
			MaxRequestBytes:   100 << 10,
		},
		Mongo: mongodb.Config{
			URI:            mongodb.DefaultURI,
			ConnectTimeout: 10 * time.Second,
		},
		Redis: redis.Config{
			TTL: 10 * time.Minute,
		},
		OTel: observability.OtelConfig{
			ServiceName: "vocab-builder",
			SampleRatio: 0.1,
		},
	}
}

// LoadConfig layers defaults, the optional YAML file named by
// VOCAB_CONFIG_PATH, and environment overrides. log may be nil.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := defaultConfig()

	if path, ok := envutil.String("VOCAB_CONFIG_PATH"); ok {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
		if log != nil {
			log.Info("Loaded config file", "path", path)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	if log != nil {
		log.Debug("Config resolved",
			"port", cfg.HTTP.Port,
			"mongo_database", cfg.Mongo.Database,
			"redis_enabled", cfg.Redis.Addr != "",
			"otel_enabled", cfg.OTel.Enabled,
		)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var errs []error
	setInt := func(dst *int, name string) {
		v, err := envutil.Int(name, *dst)
		errs = append(errs, err)
		*dst = v
	}
	setInt64 := func(dst *int64, name string) {
		v, err := envutil.Int64(name, *dst)
		errs = append(errs, err)
		*dst = v
	}
	setDuration := func(dst *time.Duration, name string) {
		v, err := envutil.Duration(name, *dst)
		errs = append(errs, err)
		*dst = v
	}
	setString := func(dst *string, name string) {
		if v, ok := envutil.String(name); ok {
			*dst = v
		}
	}

	setString(&cfg.Log.Mode, "LOG_MODE")
	setString(&cfg.Log.Level, "LOG_LEVEL")

	setInt(&cfg.HTTP.Port, "PORT")
	setInt64(&cfg.HTTP.MaxRequestBytes, "HTTP_MAX_REQUEST_BYTES")
	setDuration(&cfg.HTTP.ShutdownTimeout, "HTTP_SHUTDOWN_TIMEOUT")

	setString(&cfg.Mongo.URI, "MONGODB_URI")
	setString(&cfg.Mongo.Database, "MONGODB_DATABASE")
	setDuration(&cfg.Mongo.ConnectTimeout, "MONGODB_CONNECT_TIMEOUT")

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "REDIS_DB")
	setDuration(&cfg.Redis.TTL, "WORD_CACHE_TTL")

	cfg.OTel.Enabled = envutil.Bool("OTEL_ENABLED", cfg.OTel.Enabled)
	cfg.OTel.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", cfg.OTel.Insecure)
	setString(&cfg.OTel.ServiceName, "OTEL_SERVICE_NAME")
	setString(&cfg.OTel.Endpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")
	if raw, ok := envutil.String("OTEL_EXPORTER_OTLP_HEADERS"); ok {
		cfg.OTel.Headers = observability.ParseHeaders(raw)
	}
	ratio, err := envutil.Float("OTEL_SAMPLER_RATIO", cfg.OTel.SampleRatio)
	errs = append(errs, err)
	cfg.OTel.SampleRatio = ratio
	cfg.OTel.Environment = cfg.Log.Mode

	return errors.Join(errs...)
}

func (c *Config) validate() error {
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("PORT: %d is not a valid TCP port", c.HTTP.Port)
	}
	if strings.TrimSpace(c.Mongo.URI) == "" {
		c.Mongo.URI = mongodb.DefaultURI
	}
	if c.Mongo.Database == "" {
		db, err := mongodb.DatabaseFromURI(c.Mongo.URI)
		if err != nil {
			return err
		}
		if db == "" {
			db = mongodb.DefaultDatabase
		}
		c.Mongo.Database = db
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		c.HTTP.ShutdownTimeout = 15 * time.Second
	}
	return nil
}
