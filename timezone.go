package tseries

import (
	"time"
	_ "time/tzdata" // zone names resolve without a system zoneinfo

	"github.com/pkg/errors"
)

// Bound is one end of a date range. A nil Loc marks a naive value whose
// Time is a wall clock carried in UTC.
type Bound struct {
	Time time.Time
	Loc  *time.Location
}

// Aware makes a zone-aware bound from t and its location.
func Aware(t time.Time) *Bound {
	return &Bound{Time: t, Loc: t.Location()}
}

// Naive keeps the wall clock of t and drops its zone.
func Naive(t time.Time) *Bound {
	return &Bound{Time: wallClock(t)}
}

func (b *Bound) aware() bool {
	return b != nil && b.Loc != nil
}

func (b *Bound) naive() *Bound {
	if b == nil {
		return nil
	}
	return &Bound{Time: wallClock(b.Time)}
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func sameZone(a, b *time.Location) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

func zoneName(l *time.Location) string {
	if l == nil {
		return "<naive>"
	}
	return l.String()
}

// InferTZ returns the zone shared by start and end, nil if both are
// naive or missing. Two aware bounds in different zones are a caller
// bug and panic with *TZMismatchError.
func InferTZ(start, end *Bound) *time.Location {
	infer := func(a, b *Bound) *time.Location {
		if a.aware() && b.aware() && !sameZone(a.Loc, b.Loc) {
			panic(&TZMismatchError{Inferred: zoneName(a.Loc), Given: zoneName(b.Loc)})
		}
		if a.aware() {
			return a.Loc
		}
		if b.aware() {
			return b.Loc
		}
		return nil
	}
	switch {
	case start != nil:
		return infer(start, end)
	case end != nil:
		return infer(end, start)
	}
	return nil
}

// MaybeGetTZ resolves an IANA zone name such as "America/Denver". The
// empty name resolves to nil.
func MaybeGetTZ(name string) (*time.Location, error) {
	if name == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown time zone %q", name)
	}
	return loc, nil
}

// FigureOutTimezone settles the zone of a range from its bounds and an
// optional explicit tz. tz is adopted when the bounds carry none and
// must agree with them otherwise; disagreement panics with
// *TZMismatchError. Both bounds come back naive: the zone travels
// separately from here on.
func FigureOutTimezone(start, end *Bound, tz *time.Location) (*Bound, *Bound, *time.Location) {
	inferred := InferTZ(start, end)
	loc := inferred
	switch {
	case inferred == nil && tz != nil:
		loc = tz
	case tz != nil && !sameZone(inferred, tz):
		panic(&TZMismatchError{Inferred: zoneName(inferred), Given: zoneName(tz)})
	}
	return start.naive(), end.naive(), loc
}

// FigureOutTimezoneName is FigureOutTimezone with tz given by name.
func FigureOutTimezoneName(start, end *Bound, name string) (*Bound, *Bound, *time.Location, error) {
	tz, err := MaybeGetTZ(name)
	if err != nil {
		return nil, nil, nil, err
	}
	s, e, loc := FigureOutTimezone(start, end, tz)
	return s, e, loc, nil
}
