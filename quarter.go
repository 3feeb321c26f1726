package tseries

import (
	"strconv"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/araddon/tseries/dtparser"
)

// Quarter shorthand such as 4Q2005, 2005Q4, 4Q05 and 05Q4. Patterns
// only anchor at the start; the length check in parseQuarter does the
// rest.
var (
	qpat1full = regexp2.MustCompile(`^([0-9])Q([0-9]{4})`, regexp2.None)
	qpat2full = regexp2.MustCompile(`^([0-9]{4})Q([0-9])`, regexp2.None)
	qpat1     = regexp2.MustCompile(`^([0-9])Q([0-9]{2})`, regexp2.None)
	qpat2     = regexp2.MustCompile(`^([0-9]{2})Q([0-9])`, regexp2.None)
)

type quarterPattern struct {
	re           *regexp2.Regexp
	quarterFirst bool
}

var (
	shortQuarterPatterns = []quarterPattern{{qpat1, true}, {qpat2, false}}
	fullQuarterPatterns  = []quarterPattern{{qpat1full, true}, {qpat2full, false}}
)

// parseQuarter recognizes quarter notation in an upper-cased string of
// length 4 or 6. ok is false when nothing matched and the caller should
// go on to general parsing.
func parseQuarter(s string) (t time.Time, ok bool, err error) {
	var (
		pats       []quarterPattern
		addCentury bool
	)
	switch len(s) {
	case 4:
		pats, addCentury = shortQuarterPatterns, true
	case 6:
		pats = fullQuarterPatterns
	default:
		return time.Time{}, false, nil
	}

	for _, qp := range pats {
		m, err := qp.re.FindStringMatch(s)
		if err != nil {
			return time.Time{}, false, err
		}
		if m == nil {
			continue
		}
		qs, ys := m.GroupByNumber(1).String(), m.GroupByNumber(2).String()
		if !qp.quarterFirst {
			qs, ys = ys, qs
		}
		q, _ := strconv.Atoi(qs)
		y, _ := strconv.Atoi(ys)
		if addCentury {
			y += 2000
		}
		t, err := dtparser.Date(y, (q-1)*3+1, 1, 0, 0, 0, 0, time.UTC)
		return t, true, err
	}
	return time.Time{}, false, nil
}
