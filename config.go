package tseries

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EnvPrefix is prepended to every variable Config reads.
const EnvPrefix = "TSERIES_"

// Config holds the display preferences that decide how ambiguous dates
// are read. It is passed explicitly; nothing in this package reads it
// behind the caller's back.
type Config struct {
	DateDayFirst  bool        `env:"DATE_DAYFIRST" envDefault:"false"`
	DateYearFirst bool        `env:"DATE_YEARFIRST" envDefault:"false"`
	Timezone      string      `env:"TIMEZONE"`
	Errors        ErrorPolicy `env:"ERRORS" envDefault:"ignore"`
	LogLevel      string      `env:"LOG_LEVEL" envDefault:"warn"`
}

// LoadConfig reads TSERIES_* variables after loading whichever of
// envFiles exist.
func LoadConfig(envFiles ...string) (*Config, error) {
	existing := make([]string, 0, len(envFiles))
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, errors.Wrap(err, "load env files")
		}
	}

	c := &Config{}
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if _, err := ParseErrorPolicy(string(c.Errors)); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log level")
	}
	if _, err := MaybeGetTZ(c.Timezone); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone; nil when unset.
func (c *Config) Location() (*time.Location, error) {
	return MaybeGetTZ(c.Timezone)
}

// Logger builds a logger at LogLevel, falling back to warn.
func (c *Config) Logger() *logrus.Logger {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	return newLogger(level)
}

// Options turns c into parser options, logger included.
func (c *Config) Options() []ParserOption {
	return []ParserOption{WithConfig(c), WithLogger(c.Logger())}
}
