package dtparser

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dateTest struct {
	in, out  string
	dayFirst bool
	err      bool
}

var (
	testDefault = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	testNow     = Now(func() time.Time { return time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC) })
)

var testInputs = []dateTest{
	// yyyy-mm-dd and friends
	{in: "2014-04-26", out: "2014-04-26 00:00:00 +0000 UTC"},
	{in: "2014-04-26 17:24:37.3186369", out: "2014-04-26 17:24:37.318636 +0000 UTC"},
	{in: "2016-03-14 00:00:00.000", out: "2016-03-14 00:00:00 +0000 UTC"},
	{in: "2014-05-11 08:20:13,787", out: "2014-05-11 08:20:13.787 +0000 UTC"},
	{in: "2014-04-26 05:24:37 PM", out: "2014-04-26 17:24:37 +0000 UTC"},
	{in: "2009-08-12T22:15:09Z", out: "2009-08-12 22:15:09 +0000 UTC"},
	{in: "2009-08-12T22:15:09-07:00", out: "2009-08-13 05:15:09 +0000 UTC"},
	{in: "2009-08-12T22:15:09-0700", out: "2009-08-13 05:15:09 +0000 UTC"},
	{in: "2012-08-03 18:31:59 +00:00", out: "2012-08-03 18:31:59 +0000 UTC"},
	{in: "2012-08-03 18:31:59 UTC", out: "2012-08-03 18:31:59 +0000 UTC"},
	// mm/dd/yyyy
	{in: "03/19/2012 10:11:59", out: "2012-03-19 10:11:59 +0000 UTC"},
	{in: "3/1/2014", out: "2014-03-01 00:00:00 +0000 UTC"},
	{in: "4/8/2014 22:05", out: "2014-04-08 22:05:00 +0000 UTC"},
	{in: "19/03/2012", out: "2012-03-19 00:00:00 +0000 UTC"},
	{in: "04/02/2014", out: "2014-04-02 00:00:00 +0000 UTC"},
	{in: "04/02/2014", out: "2014-02-04 00:00:00 +0000 UTC", dayFirst: true},
	{in: "3.31.2014", out: "2014-03-31 00:00:00 +0000 UTC"},
	{in: "2014/03/31", out: "2014-03-31 00:00:00 +0000 UTC"},
	// month names
	{in: "oct 7, 1970", out: "1970-10-07 00:00:00 +0000 UTC"},
	{in: "oct. 7, 1970", out: "1970-10-07 00:00:00 +0000 UTC"},
	{in: "7 oct 1970", out: "1970-10-07 00:00:00 +0000 UTC"},
	{in: "7 September 1970", out: "1970-09-07 00:00:00 +0000 UTC"},
	{in: "13-Feb-03", out: "2003-02-13 00:00:00 +0000 UTC"},
	{in: "May 8, 2009 5:57:51 PM", out: "2009-05-08 17:57:51 +0000 UTC"},
	{in: "Mon Jan  2 15:04:05 2006", out: "2006-01-02 15:04:05 +0000 UTC"},
	{in: "Thu May 08 11:57:51 -0700 2009", out: "2009-05-08 18:57:51 +0000 UTC"},
	{in: "Fri Jul 03 2015 18:04:07 GMT+0100 (GMT Daylight Time)", out: "2015-07-03 17:04:07 +0000 UTC"},
	{in: "September 17, 2012 at 5:00pm UTC-05", out: "2012-09-17 22:00:00 +0000 UTC"},
	{in: "12 Feb 2006, 19:17", out: "2006-02-12 19:17:00 +0000 UTC"},
	{in: "Jan 2005", out: "2005-01-01 00:00:00 +0000 UTC"},
	// ordinals
	{in: "September 17th, 2012", out: "2012-09-17 00:00:00 +0000 UTC"},
	{in: "May 1st 2012", out: "2012-05-01 00:00:00 +0000 UTC"},
	{in: "3rd September 2012", out: "2012-09-03 00:00:00 +0000 UTC"},
	// compact digits
	{in: "2014", out: "2014-01-01 00:00:00 +0000 UTC"},
	{in: "20140601", out: "2014-06-01 00:00:00 +0000 UTC"},
	{in: "20140722105203", out: "2014-07-22 10:52:03 +0000 UTC"},
	{in: "171113 14:14:20", out: "2017-11-13 14:14:20 +0000 UTC"},
	// time only takes the date from the default
	{in: "5pm", out: "2000-01-01 17:00:00 +0000 UTC"},
	{in: "10:30", out: "2000-01-01 10:30:00 +0000 UTC"},
}

func TestParse(t *testing.T) {
	for _, th := range testInputs {
		ts, err := Parse(th.in, testDefault, DayFirst(th.dayFirst), testNow)
		require.NoError(t, err, "for %q", th.in)
		got := fmt.Sprintf("%v", ts.In(time.UTC))
		assert.Equal(t, th.out, got, "Expected %q but got %q from %q", th.out, got, th.in)
	}
}

var testParseErrors = []dateTest{
	{in: "", err: true},
	{in: "   ", err: true},
	{in: "INVALID", err: true},
	{in: "not-a-date", err: true},
	{in: `{"hello"}`, err: true},
	{in: "2014-13-13", err: true},
	{in: "2014-02-30", err: true},
	{in: "10:", err: true},
	{in: "1 2 3 4", err: true},
	{in: "PM", err: true},
	{in: "13 PM", err: true},
	{in: "Jan Feb 2005", err: true},
	{in: "2005 1999 15th", err: true},
	{in: "2005-03-15 10:18446744073709551646", err: true},
	{in: "10:30:18446744073709551646", err: true},
	{in: "2005-03-15 10:30 +01:18446744073709551646", err: true},
	{in: "Oct '18446744073709551646", err: true},
}

func TestParseErrors(t *testing.T) {
	for _, th := range testParseErrors {
		v, err := Parse(th.in, testDefault, testNow)
		assert.Error(t, err, "%v for %q", v, th.in)
	}

	_, err := ParseResult("")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = ParseResult("INVALID")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "INVALID", pe.Token)
	assert.Equal(t, "INVALID", pe.Input)
	assert.Contains(t, pe.Error(), "unknown token")
}

func TestParseResultFields(t *testing.T) {
	res, err := ParseResult("2005-03")
	require.NoError(t, err)
	assert.True(t, res.Has(FieldYear))
	assert.True(t, res.Has(FieldMonth))
	assert.False(t, res.Has(FieldDay))
	assert.False(t, res.Has(FieldHour))
	assert.Equal(t, "Result(year=2005, month=3)", res.String())

	res, err = ParseResult("10:30")
	require.NoError(t, err)
	assert.False(t, res.Has(FieldYear))
	h, ok := res.Get(FieldHour)
	assert.True(t, ok)
	assert.Equal(t, 10, h)
	m, _ := res.Get(FieldMinute)
	assert.Equal(t, 30, m)
	assert.False(t, res.Has(FieldSecond))

	res, err = ParseResult("2005 15th")
	require.NoError(t, err)
	y, _ := res.Get(FieldYear)
	d, _ := res.Get(FieldDay)
	assert.Equal(t, 2005, y)
	assert.Equal(t, 15, d)
	assert.False(t, res.Has(FieldMonth))

	res, err = ParseResult("2005-03-01 00:00:00.000")
	require.NoError(t, err)
	for _, f := range Fields {
		assert.True(t, res.Has(f), "expected %s to be present", f)
	}
	us, _ := res.Get(FieldMicrosecond)
	assert.Equal(t, 0, us)

	res, err = ParseResult("Tue 10:00 PST")
	require.NoError(t, err)
	assert.True(t, res.HasWeekday)
	assert.Equal(t, time.Tuesday, res.Weekday)
	assert.Equal(t, "PST", res.TZName)
	assert.Nil(t, res.Location())
}

func TestYearFirst(t *testing.T) {
	res, err := ParseResult("10/11/12", YearFirst(true), testNow)
	require.NoError(t, err)
	y, _ := res.Get(FieldYear)
	m, _ := res.Get(FieldMonth)
	d, _ := res.Get(FieldDay)
	assert.Equal(t, []int{2010, 11, 12}, []int{y, m, d})

	res, err = ParseResult("10/11/12", YearFirst(true), DayFirst(true), testNow)
	require.NoError(t, err)
	y, _ = res.Get(FieldYear)
	m, _ = res.Get(FieldMonth)
	d, _ = res.Get(FieldDay)
	assert.Equal(t, []int{2010, 12, 11}, []int{y, m, d})
}

func TestPivotYear(t *testing.T) {
	p := newParser("", []Option{testNow})
	assert.Equal(t, 2017, p.pivotYear(17))
	assert.Equal(t, 2075, p.pivotYear(75))
	assert.Equal(t, 1976, p.pivotYear(76))
	assert.Equal(t, 2000, p.pivotYear(0))
}

func TestLex(t *testing.T) {
	toks, err := lex("2009-08-12T22:15:09.99Z")
	require.NoError(t, err)
	var got []string
	for _, tok := range toks {
		got = append(got, tok.val)
	}
	assert.Equal(t, []string{"2009", "-", "08", "-", "12", "T", "22", ":", "15", ":", "09", ".", "99", "Z"}, got)

	toks, err = lex("May  8th")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, tokWord, toks[0].kind)
	assert.Equal(t, "MAY", toks[0].val)
	assert.Equal(t, tokSpace, toks[1].kind)
	assert.Equal(t, tokNumber, toks[2].kind)
	assert.Equal(t, "TH", toks[3].val)

	_, err = lex("2009_08")
	assert.Error(t, err)
}

func TestDate(t *testing.T) {
	ts, err := Date(2012, 2, 29, 23, 59, 59, 999999, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2012-02-29 23:59:59.999999 +0000 UTC", ts.String())

	for _, bad := range [][7]int{
		{0, 1, 1, 0, 0, 0, 0},
		{2011, 2, 29, 0, 0, 0, 0},
		{2011, 0, 1, 0, 0, 0, 0},
		{2011, 1, 1, 24, 0, 0, 0},
		{2011, 1, 1, 0, 60, 0, 0},
		{2011, 1, 1, 0, 0, 60, 0},
		{2011, 1, 1, 0, 0, 0, 1000000},
	} {
		_, err := Date(bad[0], bad[1], bad[2], bad[3], bad[4], bad[5], bad[6], time.UTC)
		assert.Error(t, err, "%v", bad)
	}
}
