package tseries

import (
	"time"

	"github.com/pkg/errors"
)

// Datetime64 is a raw timestamp: nanoseconds since the Unix epoch, UTC.
type Datetime64 int64

func (d Datetime64) Time() time.Time {
	return time.Unix(0, int64(d)).UTC()
}

// NormalizeDate truncates a time.Time or Datetime64 to midnight in its
// own location.
func NormalizeDate(v any) (time.Time, error) {
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x
	case Datetime64:
		t = x.Time()
	case *Bound:
		if x == nil {
			return time.Time{}, errors.New("cannot normalize a nil bound")
		}
		t = x.Time
	default:
		return time.Time{}, errors.Errorf("cannot normalize %T", v)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()), nil
}

// Format renders t as YYYYMMDD.
func Format(t time.Time) string {
	return t.Format("20060102")
}

// DeltaToMicroseconds counts whole microseconds in d.
func DeltaToMicroseconds(d time.Duration) int64 {
	return int64(d / time.Microsecond)
}
