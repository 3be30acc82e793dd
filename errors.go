package wktcrs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/wktcrs/i18n"
	eng "github.com/reoring/wktcrs/internal/engine"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Scanner
	CodeUnmatchedBracket = eng.CodeUnmatchedBracket
	CodeUnterminatedText = eng.CodeUnterminatedText
	CodeSyntax           = eng.CodeSyntax
	CodeTooDeep          = eng.CodeTooDeep
	CodeTruncated        = eng.CodeTruncated
	// Factories
	CodeMissingAttribute    = "missing_attribute"
	CodeUnexpectedAttribute = "unexpected_attribute"
	CodeInvalidLiteral      = "invalid_literal"
	CodeMissingElement      = "missing_element"
	CodeUnrecognizedElement = "unrecognized_element"
	CodeDuplicateElement    = "duplicate_element"
	// Top-level dispatch
	CodeAmbiguousRoot = "ambiguous_root"
)

// Issue describes why a parse failed.
type Issue struct {
	Code    string // One of the codes listed above.
	Path    string // Keyword path of the offending element, e.g. /GEODCRS/DATUM.
	Keyword string // Offending keyword, when there is one.
	Offset  int    // Byte offset in the input (-1 when unknown).
	Message string
	Cause   error // Optional: underlying error.
}

func (it Issue) String() string {
	b := &strings.Builder{}
	b.WriteString(it.Code)
	if it.Path != "" {
		fmt.Fprintf(b, " at %s", it.Path)
	}
	if it.Offset >= 0 {
		fmt.Fprintf(b, " (offset %d)", it.Offset)
	}
	if it.Message != "" {
		b.WriteString(": ")
		b.WriteString(it.Message)
	}
	return b.String()
}

// Issues is the error returned by Parse. A parse stops at its first
// failure, so it normally holds exactly one Issue.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(iss)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// Unwrap exposes the causes of the collected issues.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// newIssue builds a single-issue error whose message starts with the
// localized text for code.
func newIssue(code, path, keyword string, offset int, detail string) Issues {
	msg := i18n.T(code, map[string]string{"keyword": keyword})
	if detail != "" {
		msg += ": " + detail
	}
	return Issues{{Code: code, Path: path, Keyword: keyword, Offset: offset, Message: msg}}
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		msg := i18n.T(ie.Code, nil) + ": " + ie.Message
		return Issues{{Code: ie.Code, Keyword: ie.Keyword, Offset: ie.Offset, Message: msg, Cause: err}}
	}
	return Issues{{Code: CodeSyntax, Offset: -1, Message: err.Error(), Cause: err}}
}
