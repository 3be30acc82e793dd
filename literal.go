package wktcrs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Number is a numeric literal. Literal keeps the source spelling so that
// precision and notation survive a round trip; Value is its parsed form and
// is never used for computation by this package.
type Number struct {
	Value   float64
	Literal string
}

// Num returns a Number written in the shortest form that parses back to v.
func Num(v float64) Number {
	return Number{Value: v, Literal: strconv.FormatFloat(v, 'f', -1, 64)}
}

// numberShape is the WKT numeric literal: optional sign, decimal digits with
// an optional fraction, and an optional exponent. Inf, NaN and hex floats
// are not numbers in WKT.
var numberShape = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber reads a WKT numeric literal.
func ParseNumber(s string) (Number, error) {
	if !numberShape.MatchString(s) {
		return Number{}, fmt.Errorf("invalid numeric literal %q", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, err
	}
	return Number{Value: v, Literal: s}, nil
}

func (n Number) String() string {
	if n.Literal != "" {
		return n.Literal
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// Precision reports the number of digits after the decimal point in the
// literal, ignoring any exponent.
func (n Number) Precision() int {
	s := n.String()
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}

// Equal compares two numbers by value.
func (n Number) Equal(o Number) bool { return n.Value == o.Value }

// Value is an attribute that may be written either as quoted text or as a
// bare number, such as an identifier code. The written form is preserved.
type Value struct {
	Text   string
	Quoted bool
}

// Text returns a quoted Value.
func Text(s string) Value { return Value{Text: s, Quoted: true} }

// Code returns a bare numeric Value.
func Code(n int) Value { return Value{Text: strconv.Itoa(n)} }

func (v Value) String() string {
	if v.Quoted {
		return quote(v.Text)
	}
	return v.Text
}

// quote wraps s in double quotes. A quote that is already doubled is kept
// as is; a lone quote is doubled.
func quote(s string) string {
	b := &strings.Builder{}
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '"' {
			b.WriteByte(c)
			continue
		}
		b.WriteString(`""`)
		if i+1 < len(s) && s[i+1] == '"' {
			i++
		}
	}
	b.WriteByte('"')
	return b.String()
}

// unquote returns the text between the outer quotes of a literal. ok is
// false when the literal is not quoted.
func unquote(lit string) (string, bool) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", false
	}
	return lit[1 : len(lit)-1], true
}

func isQuoted(lit string) bool {
	_, ok := unquote(lit)
	return ok
}

// isToken reports whether lit is a bare enumerated token such as north or
// ellipsoidal.
func isToken(lit string) bool {
	if lit == "" {
		return false
	}
	for i := 0; i < len(lit); i++ {
		c := lit[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c == '_':
		case i > 0 && (c >= '0' && c <= '9' || c == '-'):
		default:
			return false
		}
	}
	return true
}

// dateTimeShape accepts the ISO 8601 forms used by temporal extents and
// time origins: a year, year-month, calendar or ordinal date, optionally
// followed by a time of day with fraction and zone designator.
var dateTimeShape = regexp.MustCompile(`^[+-]?\d{4}(-\d{2}(-\d{2})?|-\d{3})?(T\d{2}(:\d{2}(:\d{2}(\.\d+)?)?)?(Z|[+-]\d{2}(:?\d{2})?)?)?$`)

// IsDateTime reports whether s has the shape of an ISO 8601 date or
// date-time literal and is therefore written without quotes.
func IsDateTime(s string) bool { return dateTimeShape.MatchString(s) }
