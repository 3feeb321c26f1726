package dtparser

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Field identifies one calendar component of a parsed date string.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldMicrosecond

	numFields = int(FieldMicrosecond) + 1
)

// Fields lists every Field from most to least significant.
var Fields = [numFields]Field{
	FieldYear, FieldMonth, FieldDay, FieldHour, FieldMinute, FieldSecond, FieldMicrosecond,
}

var fieldNames = [numFields]string{"year", "month", "day", "hour", "minute", "second", "microsecond"}

func (f Field) String() string {
	if f < 0 || int(f) >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Result records which fields a date string actually contained, and
// their values. Fields that were not in the input are unset, never zero
// filled.
type Result struct {
	values [numFields]int
	has    uint8

	Weekday    time.Weekday
	HasWeekday bool

	TZName    string
	TZOffset  int // seconds east of UTC
	HasOffset bool
}

// Has reports whether f was present in the input.
func (r *Result) Has(f Field) bool {
	return r.has&(1<<uint(f)) != 0
}

// Get returns the value of f and whether it was present.
func (r *Result) Get(f Field) (int, bool) {
	if !r.Has(f) {
		return 0, false
	}
	return r.values[f], true
}

// Set marks f present with value v.
func (r *Result) Set(f Field, v int) {
	r.values[f] = v
	r.has |= 1 << uint(f)
}

// Empty reports whether no calendar field was found.
func (r *Result) Empty() bool {
	return r.has == 0
}

func (r *Result) String() string {
	var parts []string
	for _, f := range Fields {
		if v, ok := r.Get(f); ok {
			parts = append(parts, fmt.Sprintf("%s=%d", f, v))
		}
	}
	if r.HasWeekday {
		parts = append(parts, fmt.Sprintf("weekday=%d", int(r.Weekday)))
	}
	if r.TZName != "" {
		parts = append(parts, fmt.Sprintf("tzname=%q", r.TZName))
	}
	if r.HasOffset {
		parts = append(parts, fmt.Sprintf("tzoffset=%d", r.TZOffset))
	}
	return "Result(" + strings.Join(parts, ", ") + ")"
}

// Location is the zone named or offset in the input, or nil if none was
// given or the abbreviation is not one we can pin to an offset.
func (r *Result) Location() *time.Location {
	switch {
	case r.HasOffset:
		return time.FixedZone(r.TZName, r.TZOffset)
	case utcNames[r.TZName]:
		return time.UTC
	}
	return nil
}

// Time fills the fields of def with those present in r. The zone comes
// from the input when it names one, otherwise from def.
func (r *Result) Time(def time.Time) (time.Time, error) {
	v := [numFields]int{
		def.Year(), int(def.Month()), def.Day(),
		def.Hour(), def.Minute(), def.Second(), def.Nanosecond() / 1000,
	}
	for _, f := range Fields {
		if x, ok := r.Get(f); ok {
			v[f] = x
		}
	}
	loc := r.Location()
	if loc == nil {
		loc = def.Location()
	}
	return Date(v[FieldYear], v[FieldMonth], v[FieldDay], v[FieldHour], v[FieldMinute], v[FieldSecond], v[FieldMicrosecond], loc)
}

// Date builds a time, rejecting any component out of its calendar range
// instead of normalizing it the way time.Date does.
func Date(year, month, day, hour, min, sec, usec int, loc *time.Location) (time.Time, error) {
	switch {
	case year < 1 || year > 9999:
		return time.Time{}, errors.Errorf("year %d is out of range", year)
	case month < 1 || month > 12:
		return time.Time{}, errors.Errorf("month must be in 1..12, got %d", month)
	case day < 1 || day > daysIn(time.Month(month), year):
		return time.Time{}, errors.Errorf("day is out of range for month, got %d", day)
	case hour < 0 || hour > 23:
		return time.Time{}, errors.Errorf("hour must be in 0..23, got %d", hour)
	case min < 0 || min > 59:
		return time.Time{}, errors.Errorf("minute must be in 0..59, got %d", min)
	case sec < 0 || sec > 59:
		return time.Time{}, errors.Errorf("second must be in 0..59, got %d", sec)
	case usec < 0 || usec > 999999:
		return time.Time{}, errors.Errorf("microsecond must be in 0..999999, got %d", usec)
	}
	return time.Date(year, time.Month(month), day, hour, min, sec, usec*1000, loc), nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
