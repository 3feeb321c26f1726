package tseries

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/araddon/tseries/dtparser"
)

// Series is a labeled one-dimensional column of values.
type Series struct {
	Name   string
	Index  []string
	Values []any
}

// NewSeries pairs values with index labels. A nil index is replaced by
// "0", "1", ...
func NewSeries(name string, index []string, values []any) (*Series, error) {
	if index == nil {
		index = make([]string, len(values))
		for i := range index {
			index[i] = strconv.Itoa(i)
		}
	}
	if len(index) != len(values) {
		return nil, errors.Errorf("index has %d labels but there are %d values", len(index), len(values))
	}
	return &Series{Name: name, Index: index, Values: values}, nil
}

func (s *Series) Len() int {
	return len(s.Values)
}

// Get returns the value at the first position labeled label.
func (s *Series) Get(label string) (any, bool) {
	for i, l := range s.Index {
		if l == label {
			return s.Values[i], true
		}
	}
	return nil, false
}

// ToDatetime converts arg to date/time values.
//
//	nil               nil
//	time.Time         returned unchanged
//	Datetime64        its time.Time
//	*Series           a new *Series, same Index and Name
//	[]string, []any   []any, element by element
//	string            time.Time, or the string itself (see below)
//
// Under ErrorsIgnore, the default, values that cannot be parsed are
// left in the output exactly as they came in; under ErrorsRaise the
// first failure is returned as a *DateParseError.
func ToDatetime(arg any, opts ...ParserOption) (any, error) {
	p, err := newParser(opts...)
	if err != nil {
		return nil, err
	}
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v, nil
	case Datetime64:
		return v.Time(), nil
	case *Series:
		if v == nil {
			return v, nil
		}
		return p.toDatetimeSeries(v)
	case []string:
		values := make([]any, len(v))
		for i, s := range v {
			values[i] = s
		}
		return p.stringToDatetime(values)
	case []any:
		return p.stringToDatetime(v)
	case string:
		return p.toDatetimeScalar(v)
	}
	return nil, errors.Errorf("cannot convert %T to datetime", arg)
}

// ToDatetimeScalar converts a single string. The empty string is
// returned as is.
func ToDatetimeScalar(s string, opts ...ParserOption) (any, error) {
	p, err := newParser(opts...)
	if err != nil {
		return nil, err
	}
	return p.toDatetimeScalar(s)
}

// ToDatetimeSeries converts the values of s, keeping its index and name.
func ToDatetimeSeries(s *Series, opts ...ParserOption) (*Series, error) {
	p, err := newParser(opts...)
	if err != nil {
		return nil, err
	}
	return p.toDatetimeSeries(s)
}

// StringToDatetime converts values element-wise; out[i] always
// corresponds to values[i]. nil elements are missing values and stay nil.
func StringToDatetime(values []any, opts ...ParserOption) ([]any, error) {
	p, err := newParser(opts...)
	if err != nil {
		return nil, err
	}
	return p.stringToDatetime(values)
}

func (p *parser) toDatetimeScalar(s string) (any, error) {
	if s == "" {
		return s, nil
	}
	t, err := p.parseFull(s)
	if err != nil {
		if p.policy == ErrorsRaise {
			return nil, err
		}
		return s, nil
	}
	return t, nil
}

func (p *parser) toDatetimeSeries(s *Series) (*Series, error) {
	values, err := p.stringToDatetime(s.Values)
	if err != nil {
		return nil, errors.Wrapf(err, "series %q", s.Name)
	}
	index := make([]string, len(s.Index))
	copy(index, s.Index)
	return &Series{Name: s.Name, Index: index, Values: values}, nil
}

func (p *parser) stringToDatetime(values []any) ([]any, error) {
	out := make([]any, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case nil:
		case time.Time:
			out[i] = x
		case Datetime64:
			out[i] = x.Time()
		case string:
			if x == "" {
				out[i] = x
				continue
			}
			t, err := p.parseFull(x)
			if err != nil {
				if p.policy == ErrorsRaise {
					return nil, errors.Wrapf(err, "element %d", i)
				}
				p.log.WithFields(logrus.Fields{"index": i, "input": x}).Debug("leaving unparseable element untouched")
				out[i] = x
				continue
			}
			out[i] = t
		default:
			if p.policy == ErrorsRaise {
				return nil, errors.Errorf("element %d: cannot convert %T to datetime", i, v)
			}
			out[i] = v
		}
	}
	return out, nil
}

// parseFull reads a complete date with github.com/araddon/dateparse and
// falls back to dtparser for the shapes only dtparser knows, such as
// ordinals without a month. Missing fields default to today at midnight.
// Strings without a year ("10:30", "Mar 15") and year-first preferences
// go to dtparser directly: dateparse reads the former as year 0 and has
// no year-first mode.
func (p *parser) parseFull(s string) (time.Time, error) {
	upper := strings.ToUpper(s)
	y, m, d := p.now().Date()
	def := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	res, rerr := dtparser.ParseResult(upper, p.dtOptions()...)
	yearless := rerr == nil && !res.Has(dtparser.FieldYear)

	if !yearless && !p.yearFirst {
		t, err := dateparse.ParseIn(s, time.UTC,
			dateparse.PreferMonthFirst(!p.dayFirst),
			dateparse.RetryAmbiguousDateWithSwap(true),
		)
		if err == nil && t.Year() != 0 {
			p.metrics.observeConversion("dateparse")
			return t, nil
		}
		p.log.WithFields(logrus.Fields{"input": s, "year": t.Year()}).WithError(err).Debug("dateparse rejected input, trying dtparser")
	}

	var (
		t   time.Time
		err = rerr
	)
	if err == nil {
		t, err = res.Time(def)
	}
	if err != nil {
		p.metrics.observeError("to_datetime")
		return time.Time{}, newDateParseError(s, err)
	}
	p.metrics.observeConversion("dtparser")
	return t, nil
}
