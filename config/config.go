package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gummi-coder/Novora-sub009/config/algo"
)

const envPrefix = "novora"

type HTTPConfiguration struct {
	Host string `json:"host"`
	Port uint32 `json:"port"`
}

type ServerConfiguration struct {
	HTTP HTTPConfiguration `json:"http"`
}

type RedisConfiguration struct {
	Scheme   string `json:"scheme" split_words:"true"`
	Host     string `json:"host" split_words:"true"`
	Port     int    `json:"port" split_words:"true"`
	Username string `json:"username" split_words:"true"`
	Password string `json:"password" split_words:"true"`
	Database string `json:"database" split_words:"true"`

	// Dsn takes precedence over the individual connection fields.
	Dsn string `json:"dsn" split_words:"true"`

	TLSSkipVerify bool   `json:"tls_skip_verify" split_words:"true"`
	TLSCACertFile string `json:"tls_ca_cert_file" split_words:"true"`
	TLSCertFile   string `json:"tls_cert_file" split_words:"true"`
	TLSKeyFile    string `json:"tls_key_file" split_words:"true"`
}

func (rc RedisConfiguration) BuildDsn() string {
	if rc.Dsn != "" {
		return rc.Dsn
	}

	if rc.Host == "" {
		return ""
	}

	scheme := rc.Scheme
	if scheme == "" {
		scheme = "redis"
	}

	u := &url.URL{
		Scheme: scheme,
		Host:   fmt.Sprintf("%s:%d", rc.Host, rc.Port),
		Path:   "/" + rc.Database,
	}

	if rc.Username != "" || rc.Password != "" {
		u.User = url.UserPassword(rc.Username, rc.Password)
	}

	return u.String()
}

type QueueConfiguration struct {
	Type        QueueProvider `json:"type" split_words:"true"`
	Concurrency int           `json:"concurrency" split_words:"true"`
}

type LoggerConfiguration struct {
	Level string `json:"level" split_words:"true"`
}

type SentryConfiguration struct {
	Dsn string `json:"dsn" split_words:"true"`
}

type SignatureConfiguration struct {
	Hash string `json:"hash" split_words:"true"`
}

type RetryConfiguration struct {
	MaxRetries    uint    `json:"max_retries" split_words:"true"`
	RetryDelay    uint64  `json:"retry_delay" split_words:"true"`
	BackoffFactor float64 `json:"backoff_factor" split_words:"true"`
}

type RateLimitConfiguration struct {
	Enabled  bool `json:"enabled" split_words:"true"`
	Rate     int  `json:"rate" split_words:"true"`
	Duration int  `json:"duration" split_words:"true"`
}

type DeliveryConfiguration struct {
	// HttpTimeout is in seconds.
	HttpTimeout     uint64                 `json:"http_timeout" split_words:"true"`
	MaxResponseSize uint64                 `json:"max_response_size" split_words:"true"`
	UserAgent       string                 `json:"user_agent" split_words:"true"`
	LockTTL         uint64                 `json:"lock_ttl" split_words:"true"`
	Retry           RetryConfiguration     `json:"retry" split_words:"true"`
	RateLimit       RateLimitConfiguration `json:"rate_limit" split_words:"true"`
}

func (d DeliveryConfiguration) Timeout() time.Duration {
	return time.Duration(d.HttpTimeout) * time.Second
}

func (d DeliveryConfiguration) LockExpiry() time.Duration {
	return time.Duration(d.LockTTL) * time.Second
}

type Configuration struct {
	Environment string                 `json:"env" split_words:"true"`
	Server      ServerConfiguration    `json:"server" split_words:"true"`
	Redis       RedisConfiguration     `json:"redis" split_words:"true"`
	Queue       QueueConfiguration     `json:"queue" split_words:"true"`
	Logger      LoggerConfiguration    `json:"logger" split_words:"true"`
	Sentry      SentryConfiguration    `json:"sentry" split_words:"true"`
	Signature   SignatureConfiguration `json:"signature" split_words:"true"`
	Delivery    DeliveryConfiguration  `json:"delivery" split_words:"true"`
}

type QueueProvider string

const (
	RedisQueueProvider    QueueProvider = "redis"
	InMemoryQueueProvider QueueProvider = "in-memory"
)

const (
	DevelopmentEnvironment string = "development"
)

var DefaultConfiguration = Configuration{
	Environment: DevelopmentEnvironment,
	Server: ServerConfiguration{
		HTTP: HTTPConfiguration{
			Host: "0.0.0.0",
			Port: 5005,
		},
	},
	Redis: RedisConfiguration{
		Scheme: "redis",
		Host:   "localhost",
		Port:   6379,
	},
	Queue: QueueConfiguration{
		Type:        RedisQueueProvider,
		Concurrency: 10,
	},
	Logger: LoggerConfiguration{
		Level: "info",
	},
	Signature: SignatureConfiguration{
		Hash: algo.SHA256,
	},
	Delivery: DeliveryConfiguration{
		HttpTimeout:     10,
		MaxResponseSize: 50 * 1024,
		UserAgent:       "Novora-Webhooks/0.1",
		LockTTL:         30,
		Retry: RetryConfiguration{
			MaxRetries:    3,
			RetryDelay:    1000,
			BackoffFactor: 2,
		},
		RateLimit: RateLimitConfiguration{
			Enabled:  false,
			Rate:     1000,
			Duration: 60,
		},
	},
}

// Load builds the configuration from the defaults, the JSON file at p (if
// it exists) and NOVORA_* environment variables, in that order of precedence.
func Load(p string) (Configuration, error) {
	c := DefaultConfiguration

	if p != "" {
		f, err := os.Open(p)
		switch {
		case err == nil:
			defer f.Close()

			if err := json.NewDecoder(f).Decode(&c); err != nil {
				return Configuration{}, fmt.Errorf("failed to decode config file %s: %w", p, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// env and defaults only
		default:
			return Configuration{}, err
		}
	}

	if err := envconfig.Process(envPrefix, &c); err != nil {
		return Configuration{}, err
	}

	if c.Environment == "" {
		c.Environment = DevelopmentEnvironment
	}

	if err := Validate(&c); err != nil {
		return Configuration{}, err
	}

	return c, nil
}

// Validate checks a loaded configuration for unusable values.
func Validate(c *Configuration) error {
	if err := ensureSignature(c.Signature); err != nil {
		return err
	}

	switch c.Queue.Type {
	case RedisQueueProvider:
		if strings.TrimSpace(c.Redis.BuildDsn()) == "" {
			return errors.New("redis queue requires a redis dsn or host")
		}
	case InMemoryQueueProvider:
	default:
		return fmt.Errorf("unknown queue type %q, must be one of [%s %s]", c.Queue.Type, RedisQueueProvider, InMemoryQueueProvider)
	}

	if c.Queue.Concurrency <= 0 {
		return errors.New("queue concurrency must be greater than zero")
	}

	if c.Delivery.HttpTimeout == 0 {
		return errors.New("delivery http_timeout must be greater than zero")
	}

	if c.Delivery.Retry.BackoffFactor < 1 {
		return errors.New("delivery retry backoff_factor must be at least 1")
	}

	if c.Delivery.RateLimit.Enabled && (c.Delivery.RateLimit.Rate <= 0 || c.Delivery.RateLimit.Duration <= 0) {
		return errors.New("delivery rate_limit rate and duration must be greater than zero")
	}

	return nil
}

func ensureSignature(signature SignatureConfiguration) error {
	if _, ok := algo.M[signature.Hash]; !ok {
		return fmt.Errorf("invalid hash algorithm - '%s', must be one of %s", signature.Hash, reflect.ValueOf(algo.M).MapKeys())
	}
	return nil
}
