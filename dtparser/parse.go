// Package dtparser reads human-entered date strings and reports which
// calendar fields they actually contained.
//
// It understands ISO-ish dates ("2009-08-12T22:15:09Z"), slash, dash and
// dot separated triples ("03/19/2012", "13-Feb-03", "3.31.2014"),
// compact digit runs ("20140601", "171113"), month and weekday names,
// ordinals ("September 17th"), clock times with optional fractions and
// AM/PM, and zone names or numeric offsets.
package dtparser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var monthNames = map[string]int{
	"JAN": 1, "JANUARY": 1,
	"FEB": 2, "FEBRUARY": 2,
	"MAR": 3, "MARCH": 3,
	"APR": 4, "APRIL": 4,
	"MAY": 5,
	"JUN": 6, "JUNE": 6,
	"JUL": 7, "JULY": 7,
	"AUG": 8, "AUGUST": 8,
	"SEP": 9, "SEPT": 9, "SEPTEMBER": 9,
	"OCT": 10, "OCTOBER": 10,
	"NOV": 11, "NOVEMBER": 11,
	"DEC": 12, "DECEMBER": 12,
}

var weekdayNames = map[string]time.Weekday{
	"SUN": time.Sunday, "SUNDAY": time.Sunday,
	"MON": time.Monday, "MONDAY": time.Monday,
	"TUE": time.Tuesday, "TUES": time.Tuesday, "TUESDAY": time.Tuesday,
	"WED": time.Wednesday, "WEDNESDAY": time.Wednesday,
	"THU": time.Thursday, "THUR": time.Thursday, "THURS": time.Thursday, "THURSDAY": time.Thursday,
	"FRI": time.Friday, "FRIDAY": time.Friday,
	"SAT": time.Saturday, "SATURDAY": time.Saturday,
}

var (
	utcNames  = map[string]bool{"UTC": true, "GMT": true, "UT": true, "Z": true}
	jumpWords = map[string]bool{"T": true, "AT": true, "ON": true, "OF": true, "AND": true, "THE": true}
	ordinals  = map[string]bool{"ST": true, "ND": true, "RD": true, "TH": true}
)

type ymdKind uint8

const (
	kindAny ymdKind = iota
	kindYear
	kindMonth
	kindDay
)

// ymdItem is a number that belongs to the date part but whose role may
// not be known until every token has been seen.
type ymdItem struct {
	val    int
	digits int
	kind   ymdKind
}

type parser struct {
	datestr   string
	toks      []token
	i         int
	res       *Result
	ymd       []ymdItem
	dayFirst  bool
	yearFirst bool
	now       func() time.Time
}

func newParser(datestr string, opts []Option) *parser {
	p := &parser{datestr: datestr, res: &Result{}, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseResult breaks datestr into calendar fields without filling in
// anything the string did not say.
func ParseResult(datestr string, opts ...Option) (*Result, error) {
	if strings.TrimSpace(datestr) == "" {
		return nil, ErrEmpty
	}
	p := newParser(datestr, opts)
	toks, err := lex(datestr)
	if err != nil {
		return nil, err
	}
	p.toks = toks
	if err := p.run(); err != nil {
		return nil, err
	}
	if err := p.resolveYMD(); err != nil {
		return nil, err
	}
	if p.res.Empty() {
		return nil, p.errorf("", "no date or time fields")
	}
	return p.res, nil
}

// Parse is ParseResult followed by Result.Time: fields missing from
// datestr are taken from def.
func Parse(datestr string, def time.Time, opts ...Option) (time.Time, error) {
	res, err := ParseResult(datestr, opts...)
	if err != nil {
		return time.Time{}, err
	}
	t, err := res.Time(def)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q", datestr)
	}
	return t, nil
}

func (p *parser) errorf(tok string, format string, args ...interface{}) error {
	return &ParseError{Input: p.datestr, Token: tok, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) peek(n int) (token, bool) {
	j := p.i + n
	if j < 0 || j >= len(p.toks) {
		return token{}, false
	}
	return p.toks[j], true
}

func (p *parser) run() error {
	for p.i < len(p.toks) {
		var err error
		switch p.toks[p.i].kind {
		case tokNumber:
			err = p.number()
		case tokWord:
			err = p.word()
		case tokPunct:
			err = p.punct()
		default:
			p.i++
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) number() error {
	t := p.toks[p.i]
	v, err := strconv.Atoi(t.val)
	if err != nil {
		return p.errorf(t.val, "number out of range")
	}
	n := len(t.val)
	next, hasNext := p.peek(1)

	switch {
	case hasNext && next.is(tokPunct, ":"):
		return p.clock()
	case hasNext && next.kind == tokPunct && strings.Contains("-/.", next.val) && p.startsDateComponent(2):
		return p.dateRun(next.val)
	case hasNext && next.kind == tokWord && ordinals[next.val]:
		p.i += 2
		return p.appendYMD(v, n, kindDay)
	}

	if at, pm, ok := p.meridiemAt(1); ok && n <= 2 {
		if err := p.setHour12(t.val, v, pm); err != nil {
			return err
		}
		p.i += at + 1
		return nil
	}

	switch {
	case len(p.ymd) == 0 && !p.res.Has(FieldHour) && (n == 8 || n == 12 || n == 14):
		// YYYYMMDD[hhmm[ss]]
		p.ymd = append(p.ymd,
			ymdItem{val: atoi(t.val[0:4]), digits: 4, kind: kindYear},
			ymdItem{val: atoi(t.val[4:6]), digits: 2, kind: kindMonth},
			ymdItem{val: atoi(t.val[6:8]), digits: 2, kind: kindDay},
		)
		if n >= 12 {
			p.res.Set(FieldHour, atoi(t.val[8:10]))
			p.res.Set(FieldMinute, atoi(t.val[10:12]))
		}
		if n == 14 {
			p.res.Set(FieldSecond, atoi(t.val[12:14]))
		}
		p.i++
		return nil
	case n == 6 && len(p.ymd) == 0:
		// YYMMDD
		p.ymd = append(p.ymd,
			ymdItem{val: atoi(t.val[0:2]), digits: 2, kind: kindYear},
			ymdItem{val: atoi(t.val[2:4]), digits: 2, kind: kindMonth},
			ymdItem{val: atoi(t.val[4:6]), digits: 2, kind: kindDay},
		)
		p.i++
		return nil
	case n == 6 && !p.res.Has(FieldHour):
		// HHMMSS after a date
		p.res.Set(FieldHour, atoi(t.val[0:2]))
		p.res.Set(FieldMinute, atoi(t.val[2:4]))
		p.res.Set(FieldSecond, atoi(t.val[4:6]))
		p.i++
		return nil
	}

	p.i++
	return p.appendYMD(v, n, kindAny)
}

// clock reads hh:mm[:ss[.ffffff]] starting at the hour token.
func (p *parser) clock() error {
	t := p.toks[p.i]
	if p.res.Has(FieldHour) {
		return p.errorf(t.val, "time given twice")
	}
	p.res.Set(FieldHour, atoi(t.val))
	p.i++
	m, ok := p.numberAfter(":")
	if !ok {
		return p.errorf(":", "incomplete time")
	}
	mv, err := p.tokenInt(m)
	if err != nil {
		return err
	}
	p.res.Set(FieldMinute, mv)
	s, ok := p.numberAfter(":")
	if !ok {
		return nil
	}
	sv, err := p.tokenInt(s)
	if err != nil {
		return err
	}
	p.res.Set(FieldSecond, sv)
	frac, ok := p.numberAfter(".")
	if !ok {
		frac, ok = p.numberAfter(",")
	}
	if ok {
		p.res.Set(FieldMicrosecond, microseconds(frac.val))
	}
	return nil
}

// numberAfter consumes sep followed by a number token.
func (p *parser) numberAfter(sep string) (token, bool) {
	cur, ok := p.peek(0)
	if !ok || !cur.is(tokPunct, sep) {
		return token{}, false
	}
	next, ok := p.peek(1)
	if !ok || next.kind != tokNumber {
		return token{}, false
	}
	p.i += 2
	return next, true
}

// tokenInt converts a digit run, rejecting values that overflow int.
func (p *parser) tokenInt(t token) (int, error) {
	v, err := strconv.Atoi(t.val)
	if err != nil {
		return 0, p.errorf(t.val, "number out of range")
	}
	return v, nil
}

// dateRun reads up to three date components joined by the same separator.
func (p *parser) dateRun(sep string) error {
	if err := p.dateComponent(p.toks[p.i]); err != nil {
		return err
	}
	p.i++
	for count := 1; count < 3; count++ {
		cur, ok := p.peek(0)
		if !ok || !cur.is(tokPunct, sep) || !p.startsDateComponent(1) {
			break
		}
		next, _ := p.peek(1)
		if err := p.dateComponent(next); err != nil {
			return err
		}
		p.i += 2
	}
	return nil
}

func (p *parser) startsDateComponent(n int) bool {
	t, ok := p.peek(n)
	if !ok {
		return false
	}
	if t.kind == tokNumber {
		return true
	}
	_, isMonth := monthNames[t.val]
	return t.kind == tokWord && isMonth
}

func (p *parser) dateComponent(t token) error {
	if t.kind == tokWord {
		return p.appendYMD(monthNames[t.val], 0, kindMonth)
	}
	v, err := strconv.Atoi(t.val)
	if err != nil {
		return p.errorf(t.val, "number out of range")
	}
	return p.appendYMD(v, len(t.val), kindAny)
}

// meridiemAt looks for AM or PM n tokens ahead, allowing one space
// before it.
func (p *parser) meridiemAt(n int) (at int, pm bool, ok bool) {
	t, found := p.peek(n)
	if found && t.kind == tokSpace {
		n++
		t, found = p.peek(n)
	}
	if !found || t.kind != tokWord {
		return 0, false, false
	}
	switch t.val {
	case "AM":
		return n, false, true
	case "PM":
		return n, true, true
	}
	return 0, false, false
}

func (p *parser) setHour12(tok string, h int, pm bool) error {
	if h < 1 || h > 12 {
		return p.errorf(tok, "hour out of range for 12-hour clock")
	}
	h %= 12
	if pm {
		h += 12
	}
	p.res.Set(FieldHour, h)
	return nil
}

func (p *parser) word() error {
	t := p.toks[p.i]
	w := t.val

	if m, ok := monthNames[w]; ok {
		if err := p.appendYMD(m, 0, kindMonth); err != nil {
			return err
		}
		p.i++
		// abbreviations like "Oct."
		if next, ok := p.peek(0); ok && next.is(tokPunct, ".") {
			p.i++
		}
		return nil
	}

	switch wd, isWeekday := weekdayNames[w]; {
	case isWeekday:
		p.res.Weekday, p.res.HasWeekday = wd, true
	case w == "AM" || w == "PM":
		h, ok := p.res.Get(FieldHour)
		if !ok {
			return p.errorf(w, "meridiem without an hour")
		}
		if err := p.setHour12(w, h, w == "PM"); err != nil {
			return err
		}
	case jumpWords[w]:
	case utcNames[w]:
		if p.res.TZName != "" {
			return p.errorf(w, "zone given twice")
		}
		p.res.TZName = w
	case p.res.Has(FieldHour) && p.res.TZName == "" && len(w) >= 3 && len(w) <= 5:
		p.res.TZName = w
	default:
		return p.errorf(w, "unknown token")
	}
	p.i++
	return nil
}

func (p *parser) punct() error {
	t := p.toks[p.i]
	switch t.val {
	case "+", "-":
		if p.res.Has(FieldHour) && !p.res.HasOffset {
			if next, ok := p.peek(1); ok && next.kind == tokNumber {
				sign := 1
				if t.val == "-" {
					sign = -1
				}
				return p.offset(sign)
			}
		}
	case "(":
		// parenthesised zone comments such as "(MST)"
		for p.i < len(p.toks) && !p.toks[p.i].is(tokPunct, ")") {
			p.i++
		}
	case "'":
		// '70
		if next, ok := p.peek(1); ok && next.kind == tokNumber {
			y, err := p.tokenInt(next)
			if err != nil {
				return err
			}
			p.i += 2
			return p.appendYMD(y, len(next.val), kindYear)
		}
	}
	p.i++
	return nil
}

// offset reads +hh, +hhmm or +hh:mm starting at the sign token.
func (p *parser) offset(sign int) error {
	num := p.toks[p.i+1]
	var hh, mm int
	switch len(num.val) {
	case 4:
		hh, mm = atoi(num.val[:2]), atoi(num.val[2:])
		p.i += 2
	case 1, 2:
		hh = atoi(num.val)
		p.i += 2
		if m, ok := p.numberAfter(":"); ok {
			v, err := p.tokenInt(m)
			if err != nil {
				return err
			}
			mm = v
		}
	default:
		return p.errorf(num.val, "malformed zone offset")
	}
	if hh > 14 || mm > 59 {
		return p.errorf(num.val, "zone offset out of range")
	}
	p.res.TZOffset = sign * (hh*3600 + mm*60)
	p.res.HasOffset = true
	return nil
}

func (p *parser) appendYMD(v, digits int, kind ymdKind) error {
	if len(p.ymd) >= 3 {
		return p.errorf(strconv.Itoa(v), "too many date components")
	}
	p.ymd = append(p.ymd, ymdItem{val: v, digits: digits, kind: kind})
	return nil
}

// resolveYMD decides which of the collected numbers is the year, month
// and day.
func (p *parser) resolveYMD() error {
	yi, mi, di := -1, -1, -1
	for idx, it := range p.ymd {
		var slot *int
		switch it.kind {
		case kindYear:
			slot = &yi
		case kindMonth:
			slot = &mi
		case kindDay:
			slot = &di
		default:
			continue
		}
		if *slot >= 0 {
			return p.errorf(strconv.Itoa(it.val), "date component given twice")
		}
		*slot = idx
	}

	var err error
	if yi >= 0 || di >= 0 {
		err = p.fillYMD(&yi, &mi, &di)
	} else {
		yi, di, err = p.guessYMD(&mi)
	}
	if err != nil {
		return err
	}

	if yi >= 0 {
		year := p.ymd[yi].val
		if p.ymd[yi].digits <= 2 {
			year = p.pivotYear(year)
		}
		p.res.Set(FieldYear, year)
	}
	if mi >= 0 {
		p.res.Set(FieldMonth, p.ymd[mi].val)
	}
	if di >= 0 {
		p.res.Set(FieldDay, p.ymd[di].val)
	}
	return nil
}

func bigYMD(it ymdItem) bool {
	return it.val > 31 || it.digits > 2
}

// fillYMD places the free numbers once the year or day is pinned by
// an apostrophe, an ordinal or a compact digit run.
func (p *parser) fillYMD(yi, mi, di *int) error {
	for idx, it := range p.ymd {
		if it.kind != kindAny {
			continue
		}
		switch {
		case bigYMD(it) && *yi < 0:
			*yi = idx
		case bigYMD(it):
			return p.errorf(strconv.Itoa(it.val), "cannot place date component")
		case *mi < 0 && it.val <= 12:
			*mi = idx
		case *di < 0:
			*di = idx
		case *yi < 0:
			*yi = idx
		default:
			return p.errorf(strconv.Itoa(it.val), "cannot place date component")
		}
	}
	return nil
}

// guessYMD orders bare numbers using magnitude first and the day-first
// and year-first preferences only when that is ambiguous.
func (p *parser) guessYMD(mi *int) (yi, di int, err error) {
	ymd := p.ymd
	yi, di = -1, -1
	switch n := len(ymd); {
	case n == 0:
	case n == 1:
		if *mi == 0 {
			break
		}
		if bigYMD(ymd[0]) {
			yi = 0
		} else {
			di = 0
		}
	case n == 2 && *mi >= 0:
		other := 1 - *mi
		if bigYMD(ymd[other]) {
			yi = other
		} else {
			di = other
		}
	case n == 2:
		switch {
		case bigYMD(ymd[0]):
			yi, *mi = 0, 1
		case bigYMD(ymd[1]):
			*mi, yi = 0, 1
		case p.dayFirst && ymd[1].val <= 12:
			di, *mi = 0, 1
		default:
			*mi, di = 0, 1
		}
	case n == 3:
		switch *mi {
		case 0:
			if bigYMD(ymd[1]) {
				yi, di = 1, 2
			} else {
				di, yi = 1, 2
			}
		case 1:
			if bigYMD(ymd[0]) || (p.yearFirst && ymd[2].val <= 31) {
				yi, di = 0, 2
			} else {
				di, yi = 0, 2
			}
		case 2:
			if bigYMD(ymd[1]) {
				di, yi = 0, 1
			} else {
				yi, di = 0, 1
			}
		default:
			switch {
			case bigYMD(ymd[0]) || (p.yearFirst && ymd[1].val <= 12 && ymd[2].val <= 31):
				yi = 0
				if p.dayFirst && ymd[2].val <= 12 {
					di, *mi = 1, 2
				} else {
					*mi, di = 1, 2
				}
			case ymd[0].val > 12 || (p.dayFirst && ymd[1].val <= 12):
				di, *mi, yi = 0, 1, 2
			default:
				*mi, di, yi = 0, 1, 2
			}
		}
	default:
		return -1, -1, p.errorf("", "too many date components")
	}
	return yi, di, nil
}

// pivotYear places a two-digit year within fifty years of the clock.
func (p *parser) pivotYear(y int) int {
	now := p.now().Year()
	y += now / 100 * 100
	if y >= now+50 {
		y -= 100
	} else if y < now-50 {
		y += 100
	}
	return y
}

// microseconds scales a fraction's digits to six places.
func microseconds(frac string) int {
	if len(frac) > 6 {
		frac = frac[:6]
	}
	return atoi(frac + strings.Repeat("0", 6-len(frac)))
}

// atoi is only called on digit runs of checked, short length.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
