package store

import (
	"time"

	"filmnames/internal/platform/config"
	"filmnames/internal/platform/logger"
)

// Config selects and configures the backends Open connects
type Config struct {
	AppName string // reported to Postgres as application_name

	PG  PGConfig
	RDS RedisConfig
}

// PGConfig configures Postgres
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // zero uses the pg package default
	PingTimeout    time.Duration // zero uses the pg package default
}

// RedisConfig configures the optional shared cache
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// FromEnv reads SERVICE_PGSQL_* and SERVICE_REDIS_*. Postgres is enabled when
// SERVICE_PGSQL_DBURL is set, Redis when SERVICE_REDIS_ADDR is set
func FromEnv(root config.Conf, app string) Config {
	pc := root.Prefix("SERVICE_PGSQL_")
	rc := root.Prefix("SERVICE_REDIS_")

	url := pc.MayString("DBURL", "")
	addr := rc.MayString("ADDR", "")
	return Config{
		AppName: app,
		PG: PGConfig{
			Enabled:        url != "",
			URL:            url,
			MaxConns:       int32(pc.MayPositiveInt("MAX_CONNS", 4)),
			LogSQL:         pc.MayBool("LOG_SQL", false),
			SlowQueryMs:    pc.MayInt("SLOW_MS", 500),
			ConnectRetries: pc.MayPositiveInt("CONNECT_RETRIES", 20),
			PingTimeout:    pc.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		RDS: RedisConfig{
			Enabled:  addr != "",
			Addr:     addr,
			Password: rc.MayString("PASSWORD", ""),
			DB:       rc.MayInt("DB", 0),
		},
	}
}

// Option mutates the Store before any backend is opened
type Option func(*Store) error

// WithLogger sets the logger handed to the SQL tracer and connection logs
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}
