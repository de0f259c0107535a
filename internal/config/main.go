//nolint:mnd //no magic number
package config

import (
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/config"
	str2duration "github.com/xhit/go-str2duration/v2"
)

type Config struct {
	Env            string
	Port           int
	Throttle       bool
	WebURL         string
	SentryDsn      string
	SampleRate     float64
	DBDsn          string
	Release        string
	MaxQueryWindow time.Duration
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.Throttle = parser.EnvBool("THROTTLE", true)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:3000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.DBDsn = parser.EnvStr("DB_DSN", "postgres://postgres@localhost/postgres")
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)
	cfg.MaxQueryWindow = envDuration(logger, parser.EnvStr("MAX_QUERY_WINDOW", "13w"))

	return cfg
}

// envDuration accepts the extended duration syntax ("13w", "1d12h") since
// query windows are naturally expressed in days and weeks.
func envDuration(logger *slog.Logger, value string) time.Duration {
	duration, err := str2duration.ParseDuration(value)
	if err != nil {
		logger.Warn("invalid duration, falling back to zero", slog.String("value", value))
		return 0
	}
	return duration
}
