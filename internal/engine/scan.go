package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Grammar delimiters.
const (
	LeftBracket  = '['
	RightBracket = ']'
	Separator    = ','
	Quote        = '"'
)

// derivingKeywords mark a subtree as defined through a conversion.
var derivingKeywords = []string{"DERIVINGCONVERSION", "CONVERSION", "PROJECTION"}

// IsDerivingKeyword reports whether kw introduces a deriving conversion or a
// map projection.
func IsDerivingKeyword(kw string) bool {
	for _, d := range derivingKeywords {
		if kw == d {
			return true
		}
	}
	return false
}

// scanner holds the state of one pass over the input.
type scanner struct {
	text     string
	opt      Options
	caser    cases.Caser
	elems    []Element
	stack    []int // indices of open node elements
	inQuote  bool
	quoteAt  int
	segStart int
	closed   bool // root node has been closed
	last     byte // last delimiter seen outside quotes
}

// Scan tokenizes text into the flat, order-preserving element list. It
// validates bracket balance but does not assign owners; see Index.
func Scan(text string, opt Options) ([]Element, error) {
	if opt.MaxBytes > 0 && int64(len(text)) > opt.MaxBytes {
		return nil, issueAt(CodeTruncated, int(opt.MaxBytes), "max bytes exceeded")
	}
	s := &scanner{text: text, opt: opt, caser: cases.Upper(language.Und)}
	if err := s.run(); err != nil {
		return nil, err
	}
	if len(s.elems) > 0 {
		for _, e := range s.elems {
			if e.Kind == KindNode && IsDerivingKeyword(e.Keyword) {
				s.elems[0].Derived = true
				break
			}
		}
	}
	return s.elems, nil
}

func (s *scanner) run() error {
	for i := 0; i < len(s.text); i++ {
		c := s.text[i]
		if c == Quote {
			if !s.inQuote {
				s.quoteAt = i
			}
			s.inQuote = !s.inQuote
			continue
		}
		if s.inQuote {
			continue
		}
		var err error
		switch c {
		case LeftBracket:
			err = s.open(i)
		case RightBracket:
			err = s.close(i)
		case Separator:
			err = s.separator(i)
		}
		if err != nil {
			return err
		}
	}
	if s.inQuote {
		return issueAt(CodeUnterminatedText, s.quoteAt, "unterminated quoted text")
	}
	if n := len(s.stack); n > 0 {
		top := s.elems[s.stack[n-1]]
		return issueAt(CodeUnmatchedBracket, top.Start-1, "unmatched opening bracket after %s", top.Text)
	}
	if len(s.elems) == 0 {
		return issueAt(CodeSyntax, 0, "no root element")
	}
	if rest, off := s.segment(s.segStart, len(s.text)); rest != "" {
		return issueAt(CodeSyntax, off, "unexpected text %q after root element", rest)
	}
	return nil
}

func (s *scanner) open(i int) error {
	kw, off := s.segment(s.segStart, i)
	if len(s.stack) == 0 && s.closed {
		return issueAt(CodeSyntax, off, "unexpected second root element %q", kw)
	}
	if s.last == RightBracket {
		return issueAt(CodeSyntax, off, "missing separator before %q", kw)
	}
	if !validKeyword(kw) {
		return issueAt(CodeSyntax, off, "invalid keyword %q", kw)
	}
	if s.opt.MaxDepth > 0 && len(s.stack)+1 > s.opt.MaxDepth {
		return issueAt(CodeTooDeep, off, "max depth exceeded")
	}
	idx := len(s.elems)
	s.elems = append(s.elems, Element{
		Index:   idx,
		Kind:    KindNode,
		Keyword: s.caser.String(kw),
		Text:    kw,
		Start:   i + 1,
		Stop:    -1,
		Offset:  off,
		Parent:  -1,
	})
	s.stack = append(s.stack, idx)
	s.segStart = i + 1
	s.last = LeftBracket
	return nil
}

func (s *scanner) close(i int) error {
	if len(s.stack) == 0 {
		return issueAt(CodeUnmatchedBracket, i, "unmatched closing bracket")
	}
	if err := s.literal(i); err != nil {
		return err
	}
	n := len(s.stack)
	s.elems[s.stack[n-1]].Stop = i
	s.stack = s.stack[:n-1]
	if len(s.stack) == 0 {
		s.closed = true
	}
	s.segStart = i + 1
	s.last = RightBracket
	return nil
}

func (s *scanner) separator(i int) error {
	if len(s.stack) == 0 {
		return issueAt(CodeSyntax, i, "separator outside of root element")
	}
	if s.last != RightBracket {
		if v, _ := s.segment(s.segStart, i); v == "" {
			return issueAt(CodeSyntax, i, "empty value before separator")
		}
	}
	if err := s.literal(i); err != nil {
		return err
	}
	s.segStart = i + 1
	s.last = Separator
	return nil
}

// literal emits the value between the last delimiter and i, if any. A
// value must follow a separator or an opening bracket.
func (s *scanner) literal(i int) error {
	v, off := s.segment(s.segStart, i)
	if v == "" {
		if s.last == Separator {
			return issueAt(CodeSyntax, i, "empty value after separator")
		}
		return nil
	}
	if s.last == RightBracket {
		return issueAt(CodeSyntax, off, "missing separator before %q", v)
	}
	s.elems = append(s.elems, Element{
		Index:  len(s.elems),
		Kind:   KindLiteral,
		Text:   v,
		Start:  off,
		Stop:   off + len(v),
		Offset: off,
		Parent: -1,
	})
	return nil
}

// segment returns text[from:to] without surrounding white space, and the
// offset where the trimmed value starts.
func (s *scanner) segment(from, to int) (string, int) {
	raw := s.text[from:to]
	trimmed := strings.TrimLeft(raw, " \t\r\n")
	off := from + len(raw) - len(trimmed)
	return strings.TrimRight(trimmed, " \t\r\n"), off
}

func validKeyword(kw string) bool {
	if kw == "" {
		return false
	}
	for i := 0; i < len(kw); i++ {
		c := kw[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case i > 0 && (c >= '0' && c <= '9' || c == '_'):
		default:
			return false
		}
	}
	return true
}
