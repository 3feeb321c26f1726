package tseries

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/araddon/tseries/dtparser"
)

// ErrorPolicy says what the conversion entrypoints do with a value they
// cannot parse.
type ErrorPolicy string

const (
	// ErrorsIgnore leaves the offending value untouched in the output.
	ErrorsIgnore ErrorPolicy = "ignore"
	// ErrorsRaise stops at the first failure and returns it.
	ErrorsRaise ErrorPolicy = "raise"
)

// ParseErrorPolicy accepts "ignore" or "raise"; the empty string means
// ignore.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch ErrorPolicy(s) {
	case "", ErrorsIgnore:
		return ErrorsIgnore, nil
	case ErrorsRaise:
		return ErrorsRaise, nil
	}
	return "", errors.Errorf("errors must be %q or %q, got %q", ErrorsIgnore, ErrorsRaise, s)
}

var defaultLogger logrus.FieldLogger = newLogger(logrus.WarnLevel)

func newLogger(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(level)
	return l
}

type parser struct {
	dayFirst  bool
	yearFirst bool
	policy    ErrorPolicy
	log       logrus.FieldLogger
	metrics   *Metrics
	now       func() time.Time
}

// ParserOption configures a single parse or conversion call.
type ParserOption func(*parser) error

func newParser(opts ...ParserOption) (*parser, error) {
	p := &parser{
		policy: ErrorsIgnore,
		log:    defaultLogger,
		now:    time.Now,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// DayFirst prefers 01/05/2009 as 1 May when a date is ambiguous.
func DayFirst(dayFirst bool) ParserOption {
	return func(p *parser) error {
		p.dayFirst = dayFirst
		return nil
	}
}

// YearFirst prefers 01/05/09 as 2001-05-09 when a date is ambiguous.
// ToDatetime reads every string with dtparser while it is set.
func YearFirst(yearFirst bool) ParserOption {
	return func(p *parser) error {
		p.yearFirst = yearFirst
		return nil
	}
}

// Errors sets the policy for values ToDatetime cannot parse.
func Errors(policy ErrorPolicy) ParserOption {
	return func(p *parser) error {
		v, err := ParseErrorPolicy(string(policy))
		if err != nil {
			return err
		}
		p.policy = v
		return nil
	}
}

func WithLogger(log logrus.FieldLogger) ParserOption {
	return func(p *parser) error {
		if log != nil {
			p.log = log
		}
		return nil
	}
}

func WithMetrics(m *Metrics) ParserOption {
	return func(p *parser) error {
		p.metrics = m
		return nil
	}
}

// WithClock replaces time.Now for two-digit year pivoting and for the
// default date of strings that carry no date at all.
func WithClock(now func() time.Time) ParserOption {
	return func(p *parser) error {
		if now != nil {
			p.now = now
		}
		return nil
	}
}

// WithConfig applies the date preferences and error policy of c.
func WithConfig(c *Config) ParserOption {
	return func(p *parser) error {
		if c == nil {
			return nil
		}
		p.dayFirst = c.DateDayFirst
		p.yearFirst = c.DateYearFirst
		if c.Errors != "" {
			return Errors(c.Errors)(p)
		}
		return nil
	}
}

func (p *parser) dtOptions() []dtparser.Option {
	return []dtparser.Option{
		dtparser.DayFirst(p.dayFirst),
		dtparser.YearFirst(p.yearFirst),
		dtparser.Now(p.now),
	}
}
