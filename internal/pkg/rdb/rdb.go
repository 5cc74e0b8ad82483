package rdb

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/gummi-coder/Novora-sub009/config"
	"github.com/gummi-coder/Novora-sub009/util"
)

// Redis wraps the client shared by the store, cache, locker, limiter and
// queue so they all talk to the same instance.
type Redis struct {
	dsn    string
	client redis.UniversalClient
}

type TLSConfig struct {
	SkipVerify bool
	CACertFile string
	CertFile   string
	KeyFile    string
}

func NewClient(dsn string) (*Redis, error) {
	return NewClientWithTLS(dsn, nil)
}

// NewClientWithTLS creates a Redis client; tlsConfig applies to rediss:// URLs.
func NewClientWithTLS(dsn string, tlsConfig *TLSConfig) (*Redis, error) {
	if util.IsStringEmpty(dsn) {
		return nil, errors.New("redis dsn cannot be empty")
	}

	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, err
	}

	if tlsConfig != nil {
		var serverName string
		if opts.TLSConfig != nil {
			serverName = opts.TLSConfig.ServerName
		}

		tlsCfg, err := buildTLSConfig(tlsConfig)
		if err != nil {
			return nil, err
		}

		if tlsCfg.ServerName == "" {
			tlsCfg.ServerName = serverName
		}
		opts.TLSConfig = tlsCfg
	}

	client := redis.NewClient(opts)

	if err := redisotel.InstrumentTracing(client); err != nil {
		return nil, err
	}

	return &Redis{dsn: dsn, client: client}, nil
}

// NewClientFromConfig builds the DSN and TLS settings from cfg.
func NewClientFromConfig(cfg config.RedisConfiguration) (*Redis, error) {
	var tlsConfig *TLSConfig
	if cfg.TLSSkipVerify || cfg.TLSCACertFile != "" || (cfg.TLSCertFile != "" && cfg.TLSKeyFile != "") {
		tlsConfig = &TLSConfig{
			SkipVerify: cfg.TLSSkipVerify,
			CACertFile: cfg.TLSCACertFile,
			CertFile:   cfg.TLSCertFile,
			KeyFile:    cfg.TLSKeyFile,
		}
	}

	return NewClientWithTLS(cfg.BuildDsn(), tlsConfig)
}

func buildTLSConfig(cfg *TLSConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: cfg.SkipVerify, //nolint:gosec // opt-in via config
	}

	if cfg.CACertFile != "" {
		caCert, err := os.ReadFile(cfg.CACertFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate: %w", err)
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caCert) {
			return nil, errors.New("failed to parse CA certificate")
		}
		tlsConfig.RootCAs = pool
	}

	if cfg.CertFile != "" && cfg.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load client certificate: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}

// Client returns the underlying redis client.
func (r *Redis) Client() redis.UniversalClient {
	return r.client
}

// MakeRedisClient satisfies asynq.RedisConnOpt.
func (r *Redis) MakeRedisClient() interface{} {
	return r.client
}

func (r *Redis) Close() error {
	return r.client.Close()
}
