package tseries

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// oleTimeZero is day 0 of spreadsheet serial dates.
var oleTimeZero = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const (
	// Spreadsheets count a 29 February 1900 that never happened, so
	// serials below 61 (before 1 March 1900) do not map to real dates.
	oleMinSerial = 61
	// 9999-12-31
	oleMaxSerial = 2958465
)

const microsPerDay = 24 * 60 * 60 * 1000000

// OLE2Datetime converts a spreadsheet serial date. The fractional part
// is the time of day, kept to the microsecond.
func OLE2Datetime(serial float64) (time.Time, error) {
	if math.IsNaN(serial) || serial < oleMinSerial || serial >= oleMaxSerial+1 {
		return time.Time{}, &RangeError{Value: strconv.FormatFloat(serial, 'f', -1, 64)}
	}
	days := math.Floor(serial)
	us := math.Round((serial - days) * microsPerDay)
	return oleTimeZero.AddDate(0, 0, int(days)).Add(time.Duration(us) * time.Microsecond), nil
}

// OLE2DatetimeString converts a serial written as a decimal string
// without going through float64.
func OLE2DatetimeString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid serial date %q", s)
	}
	if d.LessThan(decimal.NewFromInt(oleMinSerial)) || d.GreaterThanOrEqual(decimal.NewFromInt(oleMaxSerial+1)) {
		return time.Time{}, &RangeError{Value: s}
	}
	days := d.Floor()
	us := d.Sub(days).Mul(decimal.NewFromInt(microsPerDay)).Round(0).IntPart()
	return oleTimeZero.AddDate(0, 0, int(days.IntPart())).Add(time.Duration(us) * time.Microsecond), nil
}

// Datetime2OLE is the inverse of OLE2Datetime, reading t as a wall
// clock.
func Datetime2OLE(t time.Time) (float64, error) {
	w := wallClock(t)
	secs := w.Unix() - oleTimeZero.Unix()
	serial := float64(secs)/86400 + float64(w.Nanosecond())/(86400*1e9)
	if serial < oleMinSerial {
		return 0, &RangeError{Value: w.Format(time.RFC3339Nano)}
	}
	return serial, nil
}
