package tseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestFigureOutTimezoneMatching(t *testing.T) {
	denver := mustLoc(t, "America/Denver")
	start := Aware(time.Date(2013, time.February, 1, 9, 30, 0, 0, denver))
	end := Aware(time.Date(2013, time.April, 1, 17, 0, 0, 0, denver))

	s, e, loc := FigureOutTimezone(start, end, nil)
	require.NotNil(t, loc)
	assert.Equal(t, "America/Denver", loc.String())
	assert.Nil(t, s.Loc)
	assert.Nil(t, e.Loc)
	assert.Equal(t, time.Date(2013, time.February, 1, 9, 30, 0, 0, time.UTC), s.Time)
	assert.Equal(t, time.Date(2013, time.April, 1, 17, 0, 0, 0, time.UTC), e.Time)

	// explicit zone that agrees
	_, _, loc = FigureOutTimezone(start, end, mustLoc(t, "America/Denver"))
	assert.Equal(t, "America/Denver", loc.String())
}

func TestFigureOutTimezoneMismatch(t *testing.T) {
	denver := mustLoc(t, "America/Denver")
	london := mustLoc(t, "Europe/London")
	start := Aware(time.Date(2013, time.February, 1, 0, 0, 0, 0, denver))
	end := Aware(time.Date(2013, time.April, 1, 0, 0, 0, 0, london))

	assert.PanicsWithError(t, "inferred time zone America/Denver does not match Europe/London", func() {
		FigureOutTimezone(start, end, nil)
	})
	assert.Panics(t, func() { InferTZ(start, end) })

	// bounds agree but the explicit zone does not
	assert.PanicsWithError(t, "inferred time zone America/Denver does not match Europe/London", func() {
		FigureOutTimezone(start, Aware(time.Date(2013, time.April, 1, 0, 0, 0, 0, denver)), london)
	})
}

func TestFigureOutTimezoneAwareAndNaive(t *testing.T) {
	tokyo := mustLoc(t, "Asia/Tokyo")
	start := Naive(time.Date(2020, time.May, 1, 8, 0, 0, 0, time.UTC))
	end := Aware(time.Date(2020, time.May, 3, 20, 15, 0, 0, tokyo))

	s, e, loc := FigureOutTimezone(start, end, nil)
	require.NotNil(t, loc)
	assert.Equal(t, "Asia/Tokyo", loc.String())
	assert.Nil(t, s.Loc)
	assert.Nil(t, e.Loc)
	assert.Equal(t, time.Date(2020, time.May, 1, 8, 0, 0, 0, time.UTC), s.Time)
	// wall clock kept, not converted
	assert.Equal(t, time.Date(2020, time.May, 3, 20, 15, 0, 0, time.UTC), e.Time)

	assert.Equal(t, "Asia/Tokyo", InferTZ(end, start).String())
	assert.Equal(t, "Asia/Tokyo", InferTZ(nil, end).String())
}

func TestFigureOutTimezoneExplicit(t *testing.T) {
	start := Naive(time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC))

	s, e, loc := FigureOutTimezone(start, nil, nil)
	assert.Nil(t, loc)
	assert.Nil(t, e)
	assert.Nil(t, s.Loc)

	s, e, loc, err := FigureOutTimezoneName(start, nil, "Europe/Paris")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", loc.String())
	assert.Nil(t, e)
	assert.Equal(t, start.Time, s.Time)

	_, _, _, err = FigureOutTimezoneName(start, nil, "Mars/Olympus_Mons")
	assert.Error(t, err)

	s, e, loc = FigureOutTimezone(nil, nil, nil)
	assert.Nil(t, s)
	assert.Nil(t, e)
	assert.Nil(t, loc)
}

func TestMaybeGetTZ(t *testing.T) {
	loc, err := MaybeGetTZ("")
	require.NoError(t, err)
	assert.Nil(t, loc)

	loc, err = MaybeGetTZ("America/Los_Angeles")
	require.NoError(t, err)
	assert.Equal(t, "America/Los_Angeles", loc.String())

	_, err = MaybeGetTZ("Nowhere/Special")
	assert.Error(t, err)
}
