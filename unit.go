package wktcrs

import (
	"fmt"

	eng "github.com/reoring/wktcrs/internal/engine"
)

// Unit is a unit of measure such as ANGLEUNIT["degree",0.0174532925199433].
// Factor converts to the SI base unit of the kind; it is stored, never
// applied. Time units may omit it.
type Unit struct {
	Kind        UnitKind
	Name        string
	Factor      *Number
	Identifiers []*Identifier
}

// NewUnit returns a unit with a conversion factor.
func NewUnit(kind UnitKind, name string, factor Number) *Unit {
	return &Unit{Kind: kind, Name: name, Factor: &factor}
}

// Degree is ANGLEUNIT["degree",0.0174532925199433].
func Degree() *Unit {
	return NewUnit(UnitAngle, "degree", Number{Value: 0.0174532925199433, Literal: "0.0174532925199433"})
}

// Metre is LENGTHUNIT["metre",1].
func Metre() *Unit { return NewUnit(UnitLength, "metre", Num(1)) }

// Unity is SCALEUNIT["unity",1].
func Unity() *Unit { return NewUnit(UnitScale, "unity", Num(1)) }

func parseUnit(d *eng.Document, el eng.Element) (*Unit, error) {
	kind, ok := unitKindOf(el.Keyword)
	if !ok {
		return nil, unrecognized(d, el)
	}
	a := attributesOf(d, el)
	min := 2
	if kind == UnitTime {
		min = 1
	}
	if err := a.expect(min, 2); err != nil {
		return nil, err
	}
	u := &Unit{Kind: kind}
	var err error
	if u.Name, err = a.text(0); err != nil {
		return nil, err
	}
	if a.has(1) {
		f, err := a.number(1)
		if err != nil {
			return nil, err
		}
		u.Factor = &f
	}
	err = subNodes(d, el, func(sub eng.Element) error {
		if kwID.has(sub.Keyword) {
			return appendIdentifier(d, sub, &u.Identifiers)
		}
		return unrecognized(d, sub)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// parseUnitOf parses el as a unit and requires the given kind.
func parseUnitOf(kind UnitKind) func(*eng.Document, eng.Element) (*Unit, error) {
	return func(d *eng.Document, el eng.Element) (*Unit, error) {
		if k, ok := unitKindOf(el.Keyword); !ok || k != kind {
			return nil, newIssue(CodeUnrecognizedElement, d.Path(el), el.Text, el.Offset,
				fmt.Sprintf("want a %s unit", kind))
		}
		return parseUnit(d, el)
	}
}

func (u *Unit) emit(e emitter) {
	e.begin(unitKeywords[u.Kind].canonical())
	e.text(u.Name)
	if u.Factor != nil {
		e.number(*u.Factor)
	}
	emitAll(e, u.Identifiers)
	e.end()
}
