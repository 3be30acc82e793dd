package wktcrs

import (
	"fmt"
	"strconv"

	eng "github.com/reoring/wktcrs/internal/engine"
)

// attrs gives positional access to the literals owned by one element.
type attrs struct {
	d    *eng.Document
	el   eng.Element
	list []eng.Element
}

func attributesOf(d *eng.Document, el eng.Element) attrs {
	return attrs{d: d, el: el, list: d.Attributes(el)}
}

// expect checks that there are at least min and at most max attributes.
func (a attrs) expect(min, max int) error {
	if len(a.list) < min {
		return newIssue(CodeMissingAttribute, a.d.Path(a.el), a.el.Keyword, a.el.Offset,
			fmt.Sprintf("want at least %d, got %d", min, len(a.list)))
	}
	if len(a.list) > max {
		extra := a.list[max]
		return newIssue(CodeUnexpectedAttribute, a.d.Path(extra), a.el.Keyword, extra.Offset,
			fmt.Sprintf("want at most %d, got %d", max, len(a.list)))
	}
	return nil
}

func (a attrs) has(i int) bool { return i < len(a.list) }

func (a attrs) invalid(i int, want string) error {
	lit := a.list[i]
	return newIssue(CodeInvalidLiteral, a.d.Path(lit), a.el.Keyword, lit.Offset,
		fmt.Sprintf("want %s, got %s", want, lit.Text))
}

// text reads a quoted literal.
func (a attrs) text(i int) (string, error) {
	s, ok := unquote(a.list[i].Text)
	if !ok {
		return "", a.invalid(i, "quoted text")
	}
	return s, nil
}

// number reads a bare numeric literal.
func (a attrs) number(i int) (Number, error) {
	lit := a.list[i].Text
	if isQuoted(lit) {
		return Number{}, a.invalid(i, "number")
	}
	n, err := ParseNumber(lit)
	if err != nil {
		return Number{}, a.invalid(i, "number")
	}
	return n, nil
}

// integer reads a bare integer literal.
func (a attrs) integer(i int) (int, error) {
	n, err := strconv.Atoi(a.list[i].Text)
	if err != nil {
		return 0, a.invalid(i, "integer")
	}
	return n, nil
}

// token reads a bare enumerated token.
func (a attrs) token(i int) (string, error) {
	lit := a.list[i].Text
	if !isToken(lit) {
		return "", a.invalid(i, "keyword token")
	}
	return lit, nil
}

// value reads either quoted text or a bare number, keeping the form.
func (a attrs) value(i int) (Value, error) {
	lit := a.list[i].Text
	if s, ok := unquote(lit); ok {
		return Value{Text: s, Quoted: true}, nil
	}
	if _, err := ParseNumber(lit); err != nil {
		return Value{}, a.invalid(i, "quoted text or number")
	}
	return Value{Text: lit}, nil
}

// temporal reads a date/time literal, bare or quoted, or quoted free text.
func (a attrs) temporal(i int) (string, error) {
	lit := a.list[i].Text
	if s, ok := unquote(lit); ok {
		return s, nil
	}
	if !IsDateTime(lit) {
		return "", a.invalid(i, "ISO 8601 date/time or quoted text")
	}
	return lit, nil
}

// subNodes iterates the direct sub-nodes of el in declaration order.
func subNodes(d *eng.Document, el eng.Element, fn func(sub eng.Element) error) error {
	for _, sub := range d.SubNodes(el) {
		if err := fn(sub); err != nil {
			return err
		}
	}
	return nil
}

func unrecognized(d *eng.Document, el eng.Element) error {
	return newIssue(CodeUnrecognizedElement, d.Path(el), el.Text, el.Offset, "")
}

func duplicate(d *eng.Document, el eng.Element) error {
	return newIssue(CodeDuplicateElement, d.Path(el), el.Text, el.Offset, "")
}

func missing(d *eng.Document, el eng.Element, what string) error {
	return newIssue(CodeMissingElement, d.Path(el), el.Keyword, el.Offset, what)
}

// once guards a singleton sub-node slot.
func once[T comparable](d *eng.Document, sub eng.Element, slot *T, parse func(*eng.Document, eng.Element) (T, error)) error {
	var zero T
	if *slot != zero {
		return duplicate(d, sub)
	}
	v, err := parse(d, sub)
	if err != nil {
		return err
	}
	*slot = v
	return nil
}

// textLeafOf reads the single quoted attribute of ANCHOR, SCOPE, REMARK and
// similar leaves. The text may be empty.
func textLeafOf(d *eng.Document, el eng.Element) (string, error) {
	a := attributesOf(d, el)
	if err := a.expect(1, 1); err != nil {
		return "", err
	}
	if err := noSubNodes(d, el); err != nil {
		return "", err
	}
	return a.text(0)
}

func noSubNodes(d *eng.Document, el eng.Element) error {
	if subs := d.SubNodes(el); len(subs) > 0 {
		return unrecognized(d, subs[0])
	}
	return nil
}

// onceText stores a text leaf, rejecting a second occurrence. A nil slot
// means the leaf has not been seen.
func onceText(d *eng.Document, sub eng.Element, slot **string) error {
	return once(d, sub, slot, func(d *eng.Document, el eng.Element) (*string, error) {
		s, err := textLeafOf(d, el)
		if err != nil {
			return nil, err
		}
		return &s, nil
	})
}
