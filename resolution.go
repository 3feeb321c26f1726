package tseries

import (
	"github.com/pkg/errors"

	"github.com/araddon/tseries/dtparser"
)

// Resolution is the coarsest unit a date string actually committed to.
// The first seven values line up with dtparser.Field.
type Resolution int

const (
	ResoYear Resolution = iota
	ResoMonth
	ResoDay
	ResoHour
	ResoMinute
	ResoSecond
	ResoMicrosecond
	ResoQuarter
)

var resolutionNames = [...]string{"year", "month", "day", "hour", "minute", "second", "microsecond", "quarter"}

func (r Resolution) String() string {
	if r < 0 || int(r) >= len(resolutionNames) {
		return "unknown"
	}
	return resolutionNames[r]
}

// ParseResolution is the inverse of Resolution.String.
func ParseResolution(s string) (Resolution, error) {
	for i, name := range resolutionNames {
		if name == s {
			return Resolution(i), nil
		}
	}
	return 0, errors.Errorf("unknown resolution %q", s)
}

func resolutionOf(f dtparser.Field) Resolution {
	return Resolution(f)
}

func (r Resolution) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Resolution) UnmarshalText(b []byte) error {
	v, err := ParseResolution(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
