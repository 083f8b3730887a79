package rdf

import (
	"strconv"
	"time"
)

// maxDateTimeLen bounds the amount of input the date/time scanner looks at.
const maxDateTimeLen = 40

// Time-only values are anchored to this date so they share the epoch
// conversion with dateTime values.
const (
	timeAnchorYear  = 1902
	timeAnchorMonth = time.January
	timeAnchorDay   = 1
)

// dateTimeFields holds the wall-clock fields scanned from a lexical form.
type dateTimeFields struct {
	year, month, day     int
	hour, minute, second int
	fraction             int
	tzHour, tzMinute     int
	hasTimezone          bool
}

func parseDateTime(id TypeID, text string) (*Term, error) {
	if id != TypeDateTime && id != TypeDate && id != TypeTime {
		return nil, reject(ErrUnsupportedType, id, text)
	}
	if len(text) > maxDateTimeLen {
		text = text[:maxDateTimeLen]
	}

	fields, err := scanDateTime(id, text)
	if err != nil {
		return nil, reject(err, id, text)
	}
	seconds, err := fields.epochSeconds(id)
	if err != nil {
		return nil, reject(err, id, text)
	}
	return newTerm(id, Temporal{Seconds: seconds, HasTimezone: fields.hasTimezone}, text), nil
}

// scanDateTime reads
//
//	dateTime := date 'T' time tz?
//	date     := int '-' int '-' int
//	time     := int ':' int ':' int ('.' int)?
//	tz       := 'Z' | ('+'|'-') int ':' int
//
// where a bare time may only carry the 'Z' zone. A fraction ending in the
// digit zero is rejected.
func scanDateTime(id TypeID, text string) (dateTimeFields, error) {
	var f dateTimeFields
	sc := scanner{s: text}

	if id == TypeDateTime || id == TypeDate {
		if !sc.integer(&f.year) || !sc.lit('-') || !sc.integer(&f.month) || !sc.lit('-') || !sc.integer(&f.day) {
			return f, sc.failure()
		}
	}
	if id == TypeDateTime && !sc.lit('T') {
		return f, ErrSyntax
	}
	if id == TypeDateTime || id == TypeTime {
		if !sc.integer(&f.hour) || !sc.lit(':') || !sc.integer(&f.minute) || !sc.lit(':') || !sc.integer(&f.second) {
			return f, sc.failure()
		}
		if sc.lit('.') {
			if !sc.integer(&f.fraction) {
				return f, sc.failure()
			}
			if f.fraction%10 == 0 {
				return f, ErrSyntax
			}
		}
	}

	switch sc.peek() {
	case 'Z':
		sc.pos++
		f.hasTimezone = true
	case '+', '-':
		if id == TypeTime {
			return f, ErrSyntax
		}
		if !sc.integer(&f.tzHour) || !sc.lit(':') || !sc.integer(&f.tzMinute) {
			return f, sc.failure()
		}
		f.hasTimezone = true
	}

	if !sc.done() {
		return f, ErrSyntax
	}
	return f, nil
}

// epochSeconds converts the wall-clock fields with the proleptic Gregorian
// calendar, ignoring any timezone. Out of range fields are normalized the
// way mktime does (month 13 is January of the next year).
func (f dateTimeFields) epochSeconds(id TypeID) (int64, error) {
	year, month, day := f.year, time.Month(f.month), f.day
	if id == TypeTime {
		year, month, day = timeAnchorYear, timeAnchorMonth, timeAnchorDay
	}
	t := time.Date(year, month, day, f.hour, f.minute, f.second, 0, time.UTC)

	// time.Date normalizes silently; a result outside the range the fields
	// can express means the arithmetic wrapped.
	if y := int64(t.Year()); y < minEpochYear || y > maxEpochYear {
		return 0, ErrOutOfRange
	}
	return t.Unix(), nil
}

// The scanner accepts 32 bit field values; with those the normalized year
// stays well inside these bounds unless the conversion overflowed.
const (
	minEpochYear int64 = -(1 << 31) - 1<<28
	maxEpochYear int64 = (1 << 31) + 1<<28
)

// scanner mimics the scanf conversions the lexical grammar is defined by:
// integer conversions skip leading blanks and take an optional sign.
type scanner struct {
	s   string
	pos int
	err error
}

func (sc *scanner) peek() byte {
	if sc.pos >= len(sc.s) {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) done() bool {
	return sc.pos == len(sc.s)
}

func (sc *scanner) lit(c byte) bool {
	if sc.peek() != c {
		return false
	}
	sc.pos++
	return true
}

func (sc *scanner) integer(dst *int) bool {
	i := sc.pos
	for i < len(sc.s) && isBlank(sc.s[i]) {
		i++
	}
	start := i
	if i < len(sc.s) && (sc.s[i] == '+' || sc.s[i] == '-') {
		i++
	}
	digits := i
	for i < len(sc.s) && sc.s[i] >= '0' && sc.s[i] <= '9' {
		i++
	}
	if i == digits {
		sc.err = ErrSyntax
		return false
	}
	v, err := strconv.ParseInt(sc.s[start:i], 10, 32)
	if err != nil {
		sc.err = ErrOutOfRange
		return false
	}
	*dst = int(v)
	sc.pos = i
	return true
}

// failure returns the reason the last conversion failed.
func (sc *scanner) failure() error {
	if sc.err != nil {
		return sc.err
	}
	return ErrSyntax
}

func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
