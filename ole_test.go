package tseries

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestOLE2Datetime(t *testing.T) {
	ts, err := OLE2Datetime(61)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 61), ts)
	assert.Equal(t, "1900-03-01 00:00:00 +0000 UTC", ts.String())

	ts, err = OLE2Datetime(61.5)
	require.NoError(t, err)
	assert.Equal(t, "1900-03-01 12:00:00 +0000 UTC", ts.String())

	ts, err = OLE2Datetime(40000.25)
	require.NoError(t, err)
	assert.Equal(t, "2009-07-06 06:00:00 +0000 UTC", ts.String())

	for _, bad := range []float64{60, 60.999, 1, 0, -5} {
		_, err := OLE2Datetime(bad)
		require.Error(t, err, "for %v", bad)
		assert.True(t, errors.Is(err, ErrOutOfRange))
		var re *RangeError
		assert.True(t, errors.As(err, &re))
	}
	_, err = OLE2Datetime(3e6)
	assert.Error(t, err)
}

func TestOLE2DatetimeMatchesExcelize(t *testing.T) {
	for _, serial := range []float64{62, 100, 367, 1000, 25569, 40000, 45000} {
		ours, err := OLE2Datetime(serial)
		require.NoError(t, err)
		theirs, err := excelize.ExcelDateToTime(serial, false)
		require.NoError(t, err)
		assert.Equal(t, theirs.Format("2006-01-02"), ours.Format("2006-01-02"), "serial %v", serial)
	}
}

func TestOLE2DatetimeString(t *testing.T) {
	ts, err := OLE2DatetimeString("61.5")
	require.NoError(t, err)
	assert.Equal(t, "1900-03-01 12:00:00 +0000 UTC", ts.String())

	ts, err = OLE2DatetimeString(" 25569.75 ")
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01 18:00:00 +0000 UTC", ts.String())

	_, err = OLE2DatetimeString("60.99")
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = OLE2DatetimeString("sixty-one")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrOutOfRange))
}

func TestDatetime2OLE(t *testing.T) {
	for _, serial := range []float64{61, 61.5, 40000.25, 45000.125} {
		ts, err := OLE2Datetime(serial)
		require.NoError(t, err)
		back, err := Datetime2OLE(ts)
		require.NoError(t, err)
		assert.InDelta(t, serial, back, 1e-9)
	}

	_, err := Datetime2OLE(time.Date(1900, time.February, 28, 0, 0, 0, 0, time.UTC))
	assert.True(t, errors.Is(err, ErrOutOfRange))
}
