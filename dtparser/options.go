package dtparser

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// ErrEmpty is returned for strings with nothing but whitespace in them.
var ErrEmpty = errors.New("empty date string")

// ParseError describes a string the parser could not make sense of.
type ParseError struct {
	Input string
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s %q in %q", e.Msg, e.Token, e.Input)
	}
	return fmt.Sprintf("%s in %q", e.Msg, e.Input)
}

// Option adjusts how ambiguous strings are read.
type Option func(*parser)

// DayFirst reads 01/05/09 as 1 May rather than 5 January.
func DayFirst(dayFirst bool) Option {
	return func(p *parser) {
		p.dayFirst = dayFirst
	}
}

// YearFirst reads 01/05/09 as 2001-05-09 rather than 2009-01-05.
func YearFirst(yearFirst bool) Option {
	return func(p *parser) {
		p.yearFirst = yearFirst
	}
}

// Now sets the clock two-digit years are pivoted around.
func Now(now func() time.Time) Option {
	return func(p *parser) {
		if now != nil {
			p.now = now
		}
	}
}
