// Package codec converts WKT literals to Go values and back.
package codec

import (
	"context"
	"time"

	wktcrs "github.com/reoring/wktcrs"
)

// DateTime returns a Codec between WKT date/time literals, as used by
// TIMEEXTENT and TIMEORIGIN, and time.Time. Values without a zone are UTC.
// Ordinal dates are not supported.
func DateTime() wktcrs.Codec[string, time.Time] { return dateTimeCodec{} }

type dateTimeCodec struct{}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T15Z07:00",
	"2006-01-02T15",
	"2006-01-02",
	"2006-01",
	"2006",
}

func (dateTimeCodec) Decode(ctx context.Context, a string) (time.Time, error) {
	if !wktcrs.IsDateTime(a) {
		return time.Time{}, invalid(a, "ISO 8601 date/time", nil)
	}
	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, a)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, invalid(a, "supported ISO 8601 date/time", lastErr)
}

// Encode writes a calendar date when t is midnight UTC and an RFC 3339
// timestamp otherwise.
func (dateTimeCodec) Encode(ctx context.Context, b time.Time) (string, error) {
	if b.IsZero() {
		return "", invalid("", "non-zero time", nil)
	}
	u := b.UTC()
	if u.Equal(time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)) {
		return u.Format("2006-01-02"), nil
	}
	return u.Format(time.RFC3339Nano), nil
}

func invalid(lit, want string, cause error) error {
	return wktcrs.Issues{{
		Code:    wktcrs.CodeInvalidLiteral,
		Offset:  -1,
		Message: "want " + want + ", got " + lit,
		Cause:   cause,
	}}
}
