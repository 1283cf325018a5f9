package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const (
	TransitSourcePTV     = "ptv"
	TransitSourceFixture = "fixture"

	defaultPTVBaseURL = "https://timetableapi.ptv.vic.gov.au"
)

type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Sentry  SentryConfig
	Transit TransitConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Worker  WorkerConfig
	Alarm   AlarmConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type LogConfig struct {
	Level string
}

// SentryConfig - отправка ошибок в Sentry; пустой DSN выключает отправку
type SentryConfig struct {
	DSN        string
	SampleRate float64
}

type TransitConfig struct {
	Source             string
	BaseURL            string
	APIKey             string
	UserID             string
	RequestTimeout     time.Duration
	FixturePath        string
	DefaultMaxResults  int
	DefaultMaxDistance float64
	MaxRetries         int
	RetryBackoff       time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled        bool
	KeyPrefix      string
	StopsCacheTTL  time.Duration
	RoutesCacheTTL time.Duration
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	BatchSize         int
	// ClaimMinIdle - через сколько неподтверждённое сообщение забирается повторно
	ClaimMinIdle time.Duration
}

type AlarmConfig struct {
	DefaultBufferMinutes int
	DefaultTravelMinutes int
}

// Load reads configuration from .env in the working directory and the environment
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile reads configuration from path (optional) and the environment.
// Environment variables take precedence over the file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Sentry: SentryConfig{
			DSN:        v.GetString("SENTRY_DSN"),
			SampleRate: v.GetFloat64("SENTRY_SAMPLE_RATE"),
		},
		Transit: TransitConfig{
			Source:             v.GetString("TRANSIT_SOURCE"),
			BaseURL:            v.GetString("PTV_BASE_URL"),
			APIKey:             v.GetString("PTV_API_KEY"),
			UserID:             v.GetString("PTV_USER_ID"),
			RequestTimeout:     time.Duration(v.GetInt("PTV_REQUEST_TIMEOUT")) * time.Second,
			FixturePath:        v.GetString("TRANSIT_FIXTURE_PATH"),
			DefaultMaxResults:  v.GetInt("STOPS_MAX_RESULTS"),
			DefaultMaxDistance: v.GetFloat64("STOPS_MAX_DISTANCE"),
			MaxRetries:         v.GetInt("TRANSIT_MAX_RETRIES"),
			RetryBackoff:       time.Duration(v.GetInt("TRANSIT_RETRY_BACKOFF")) * time.Millisecond,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:        v.GetBool("CACHE_ENABLED"),
			KeyPrefix:      v.GetString("CACHE_KEY_PREFIX"),
			StopsCacheTTL:  time.Duration(v.GetInt("STOPS_CACHE_TTL")) * time.Second,
			RoutesCacheTTL: time.Duration(v.GetInt("ROUTES_CACHE_TTL")) * time.Second,
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			BatchSize:         v.GetInt("WORKER_BATCH_SIZE"),
			ClaimMinIdle:      time.Duration(v.GetInt("WORKER_CLAIM_MIN_IDLE")) * time.Millisecond,
		},
		Alarm: AlarmConfig{
			DefaultBufferMinutes: v.GetInt("ALARM_DEFAULT_BUFFER"),
			DefaultTravelMinutes: v.GetInt("ALARM_DEFAULT_TRAVEL"),
		},
	}

	cfg.applyDefaults()

	return cfg, nil
}

// Set default values if not provided
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Sentry.SampleRate == 0 {
		c.Sentry.SampleRate = 1.0
	}
	if c.Transit.Source == "" {
		c.Transit.Source = TransitSourcePTV
	}
	if c.Transit.BaseURL == "" {
		c.Transit.BaseURL = defaultPTVBaseURL
	}
	if c.Transit.RequestTimeout == 0 {
		c.Transit.RequestTimeout = 10 * time.Second
	}
	if c.Transit.DefaultMaxResults == 0 {
		c.Transit.DefaultMaxResults = 20
	}
	if c.Transit.DefaultMaxDistance == 0 {
		c.Transit.DefaultMaxDistance = 2000
	}
	if c.Transit.RetryBackoff == 0 {
		c.Transit.RetryBackoff = 200 * time.Millisecond
	}
	if c.Redis.Host == "" {
		c.Redis.Host = "localhost"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Cache.KeyPrefix == "" {
		c.Cache.KeyPrefix = "wakemeup:"
	}
	if c.Cache.StopsCacheTTL == 0 {
		c.Cache.StopsCacheTTL = 5 * time.Minute
	}
	if c.Cache.RoutesCacheTTL == 0 {
		c.Cache.RoutesCacheTTL = time.Hour
	}
	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "stop-lookup-workers"
	}
	if c.Worker.StreamReadTimeout == 0 {
		c.Worker.StreamReadTimeout = 1000 * time.Millisecond
	}
	if c.Worker.BatchSize == 0 {
		c.Worker.BatchSize = 20
	}
	if c.Worker.ClaimMinIdle == 0 {
		c.Worker.ClaimMinIdle = 30 * time.Second
	}
	if c.Alarm.DefaultBufferMinutes == 0 {
		c.Alarm.DefaultBufferMinutes = 10
	}
	if c.Alarm.DefaultTravelMinutes == 0 {
		c.Alarm.DefaultTravelMinutes = 25
	}
}

// Validate reports configuration that prevents the service from answering requests
func (c *Config) Validate() error {
	switch c.Transit.Source {
	case TransitSourcePTV:
		if c.Transit.APIKey == "" || c.Transit.UserID == "" {
			return fmt.Errorf("PTV_API_KEY and PTV_USER_ID are required when TRANSIT_SOURCE=%s", TransitSourcePTV)
		}
	case TransitSourceFixture:
		if c.Transit.FixturePath == "" {
			return fmt.Errorf("TRANSIT_FIXTURE_PATH is required when TRANSIT_SOURCE=%s", TransitSourceFixture)
		}
	default:
		return fmt.Errorf("unknown TRANSIT_SOURCE %q", c.Transit.Source)
	}
	if c.Sentry.SampleRate < 0 || c.Sentry.SampleRate > 1 {
		return fmt.Errorf("SENTRY_SAMPLE_RATE must be within 0..1")
	}
	if c.Transit.MaxRetries < 0 {
		return fmt.Errorf("TRANSIT_MAX_RETRIES must not be negative")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
