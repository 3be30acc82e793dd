package wktcrs

import (
	"context"
	"fmt"
	"io"

	eng "github.com/reoring/wktcrs/internal/engine"
)

// Parse reads one CRS from WKT text. The first failure ends the parse and
// is returned as Issues; no partial model is produced. Parse keeps no state
// between calls and is safe for concurrent use.
func Parse(text string, opts ...ParseOpt) (CRS, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	d, err := eng.Parse(text, opt.engine())
	if err != nil {
		return nil, toIssues(err)
	}
	c, err := resolveCRS(d, d.Root())
	if err != nil {
		return nil, toIssues(err)
	}
	return c, nil
}

// ParseReader reads all of r and parses it. When MaxBytes is set, at most
// MaxBytes+1 bytes are consumed and longer input fails with CodeTruncated.
func ParseReader(r io.Reader, opts ...ParseOpt) (CRS, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, Issues{{Code: CodeSyntax, Offset: -1, Message: fmt.Sprintf("read: %v", err), Cause: err}}
	}
	return Parse(string(b), opt)
}

// MustParse is like Parse but panics on error. It is meant for literals in
// tests and examples.
func MustParse(text string) CRS {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

// Codec converts between a WKT literal representation A and a Go value B.
// See the codec package for implementations.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}
