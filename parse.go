// Package tseries parses the loosely formatted date strings found in
// tabular data: quarter shorthand, partial dates whose resolution has to
// be inferred, and bulk conversion of string columns.
package tseries

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/araddon/tseries/dtparser"
)

// Fields a string may legitimately give as zero. A zero year, month or
// day means the field was not really there.
var canBeZero = map[dtparser.Field]bool{
	dtparser.FieldHour:        true,
	dtparser.FieldMinute:      true,
	dtparser.FieldSecond:      true,
	dtparser.FieldMicrosecond: true,
}

// ParseTimeString tries hard to read arg as a date: quarter shorthand
// first ("4Q2005", "05Q1"), then the general parser. It returns the date
// with every field the string did not give taken from 0001-01-01
// 00:00:00, the parser's raw field result, and the resolution the string
// committed to. Any failure is a *DateParseError.
func ParseTimeString(arg string, opts ...ParserOption) (time.Time, *dtparser.Result, Resolution, error) {
	p, err := newParser(opts...)
	if err != nil {
		return time.Time{}, nil, 0, err
	}
	return p.parseTimeString(arg)
}

// MustParseTimeString is ParseTimeString that panics on failure.
func MustParseTimeString(arg string, opts ...ParserOption) (time.Time, Resolution) {
	t, _, reso, err := ParseTimeString(arg, opts...)
	if err != nil {
		panic(err.Error())
	}
	return t, reso
}

func (p *parser) parseTimeString(arg string) (time.Time, *dtparser.Result, Resolution, error) {
	t, res, reso, err := p.parseUpper(strings.ToUpper(arg))
	if err != nil {
		p.metrics.observeError("parse_time_string")
		p.log.WithFields(logrus.Fields{"input": arg}).WithError(err).Debug("could not parse time string")
		return time.Time{}, nil, 0, newDateParseError(arg, err)
	}
	p.metrics.observeParse(reso)
	return t, res, reso, nil
}

func (p *parser) parseUpper(arg string) (time.Time, *dtparser.Result, Resolution, error) {
	qt, ok, err := parseQuarter(arg)
	if err != nil {
		return time.Time{}, nil, 0, err
	}
	if ok {
		res := &dtparser.Result{}
		res.Set(dtparser.FieldYear, qt.Year())
		res.Set(dtparser.FieldMonth, int(qt.Month()))
		return qt, res, ResoQuarter, nil
	}

	res, err := dtparser.ParseResult(arg, p.dtOptions()...)
	if err != nil {
		return time.Time{}, nil, 0, err
	}
	t, reso, err := resolve(res)
	if err != nil {
		return time.Time{}, nil, 0, err
	}
	return t, res, reso, nil
}

// resolve replaces the present fields of res onto the default date and
// names the last of them. A present field after an absent one is an
// error: "2005 15th" has a day but no month.
func resolve(res *dtparser.Result) (time.Time, Resolution, error) {
	repl := [...]int{1, 1, 1, 0, 0, 0, 0}
	reso := ResoYear
	stopped := false
	for _, f := range dtparser.Fields {
		v, ok := res.Get(f)
		if ok && (v != 0 || canBeZero[f]) {
			repl[f] = v
			if stopped {
				return time.Time{}, 0, errors.Errorf("missing attribute before %s", f)
			}
			reso = resolutionOf(f)
		} else {
			stopped = true
		}
	}
	t, err := dtparser.Date(repl[0], repl[1], repl[2], repl[3], repl[4], repl[5], repl[6], time.UTC)
	if err != nil {
		return time.Time{}, 0, err
	}
	return t, reso, nil
}
